package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/examdesk-api/internal/dto"
	"github.com/noah-isme/examdesk-api/internal/models"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
)

type fakeSite struct {
	schoolID int64
	name     string
}

func (f *fakeSite) Page(slug string) (*dto.SitePage, error) {
	if slug != "pricing" {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "page not found")
	}
	return &dto.SitePage{Slug: "pricing", Title: "Pricing"}, nil
}

func (f *fakeSite) SchoolPage(_ context.Context, _ *models.Session, schoolID int64, name string) (*dto.SchoolPageResponse, error) {
	f.schoolID, f.name = schoolID, name
	return &dto.SchoolPageResponse{}, nil
}

func TestSitePage(t *testing.T) {
	h := NewSiteHandler(&fakeSite{})
	r := testRouter(nil)
	r.GET("/site/:page", h.Page)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/site/pricing", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=300", rec.Header().Get("Cache-Control"))
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Pricing", envelope.Data["title"])

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/site/careers", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSchoolPageParsesParams(t *testing.T) {
	site := &fakeSite{}
	h := NewSiteHandler(site)
	r := testRouter(&models.Session{UserID: 7, Role: models.RoleTeacher, SchoolID: 4})
	r.GET("/schools/:id/pages/:name", h.SchoolPage)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schools/4/pages/welcome", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(4), site.schoolID)
	assert.Equal(t, "welcome", site.name)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schools/zero/pages/welcome", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
