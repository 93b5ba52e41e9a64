package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/examdesk-api/internal/dto"
	"github.com/noah-isme/examdesk-api/internal/models"
	"github.com/noah-isme/examdesk-api/pkg/response"
)

type siteContent interface {
	Page(slug string) (*dto.SitePage, error)
	SchoolPage(ctx context.Context, session *models.Session, schoolID int64, name string) (*dto.SchoolPageResponse, error)
}

// SiteHandler serves marketing and per-school content pages.
type SiteHandler struct {
	site siteContent
}

// NewSiteHandler constructs the handler.
func NewSiteHandler(site siteContent) *SiteHandler {
	return &SiteHandler{site: site}
}

// Page godoc
// @Summary Public site page
// @Tags Site
// @Produce json
// @Param page path string true "home, about or pricing"
// @Success 200 {object} response.Envelope{data=dto.SitePage}
// @Failure 404 {object} response.Envelope
// @Router /site/{page} [get]
func (h *SiteHandler) Page(c *gin.Context) {
	page, err := h.site.Page(c.Param("page"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, response.Envelope{Data: page})
}

// SchoolPage godoc
// @Summary School content page
// @Tags Site
// @Produce json
// @Security BearerAuth
// @Param id path int true "School ID"
// @Param name path string true "Page name"
// @Success 200 {object} response.Envelope{data=dto.SchoolPageResponse}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schools/{id}/pages/{name} [get]
func (h *SiteHandler) SchoolPage(c *gin.Context) {
	schoolID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	page, err := h.site.SchoolPage(c.Request.Context(), sessionFromContext(c), schoolID, c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page)
}
