package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/examdesk-api/internal/models"
	"github.com/noah-isme/examdesk-api/internal/service"
	"github.com/noah-isme/examdesk-api/pkg/response"
)

type resultExporter interface {
	AdminResults(ctx context.Context, session *models.Session, format string) (*service.ExportFile, error)
	TeacherResults(ctx context.Context, session *models.Session, format string) (*service.ExportFile, error)
}

// ExportHandler streams result rosters as downloads.
type ExportHandler struct {
	exports resultExporter
}

// NewExportHandler constructs the handler.
func NewExportHandler(exports resultExporter) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// AdminResults godoc
// @Summary Download recent exam results
// @Tags Exports
// @Produce text/csv,application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param format query string false "csv, pdf or xlsx" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /dashboard/admin/results/export [get]
func (h *ExportHandler) AdminResults(c *gin.Context) {
	file, err := h.exports.AdminResults(c.Request.Context(), sessionFromContext(c), c.Query("format"))
	h.write(c, file, err)
}

// TeacherResults godoc
// @Summary Download exam results with student and exam references
// @Tags Exports
// @Produce text/csv,application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param format query string false "csv, pdf or xlsx" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /dashboard/teacher/results/export [get]
func (h *ExportHandler) TeacherResults(c *gin.Context) {
	file, err := h.exports.TeacherResults(c.Request.Context(), sessionFromContext(c), c.Query("format"))
	h.write(c, file, err)
}

func (h *ExportHandler) write(c *gin.Context, file *service.ExportFile, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Header("Cache-Control", "no-store")
	c.Header("X-Export-Rows", strconv.Itoa(file.Rows))
	c.Data(http.StatusOK, file.ContentType, file.Body)
}
