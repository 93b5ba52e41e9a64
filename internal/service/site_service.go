package service

import (
	"context"
	"strings"
	"time"

	"github.com/noah-isme/examdesk-api/internal/dto"
	"github.com/noah-isme/examdesk-api/internal/models"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
)

type schoolPageReader interface {
	FindBySchool(ctx context.Context, schoolID int64, name string) (*models.Page, error)
}

// SiteService serves the public marketing pages and per-school content pages.
type SiteService struct {
	pages       map[string]dto.SitePage
	schoolPages schoolPageReader
}

// NewSiteService constructs a SiteService from parsed site content.
func NewSiteService(pages map[string]dto.SitePage, schoolPages schoolPageReader) *SiteService {
	if pages == nil {
		pages = map[string]dto.SitePage{}
	}
	return &SiteService{pages: pages, schoolPages: schoolPages}
}

// Page returns the marketing page with the given slug.
func (s *SiteService) Page(slug string) (*dto.SitePage, error) {
	page, ok := s.pages[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "page not found")
	}
	return &page, nil
}

// SchoolPage returns a content page of a school. Only members of that school may read it.
func (s *SiteService) SchoolPage(ctx context.Context, session *models.Session, schoolID int64, name string) (*dto.SchoolPageResponse, error) {
	if session == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if session.SchoolID != schoolID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "page belongs to another school")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "page name is required")
	}
	page, err := s.schoolPages.FindBySchool(ctx, schoolID, name)
	if err != nil {
		return nil, err
	}
	resp := &dto.SchoolPageResponse{SchoolID: page.SchoolID, PageName: page.PageName, Content: page.Content}
	if page.UpdatedAt.Valid {
		resp.UpdatedAt = page.UpdatedAt.Time.UTC().Format(time.RFC3339)
	}
	return resp, nil
}
