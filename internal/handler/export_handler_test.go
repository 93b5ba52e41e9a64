package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/examdesk-api/internal/models"
	"github.com/noah-isme/examdesk-api/internal/service"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
)

type fakeExporter struct {
	file   *service.ExportFile
	err    error
	format string
}

func (f *fakeExporter) AdminResults(_ context.Context, _ *models.Session, format string) (*service.ExportFile, error) {
	f.format = format
	return f.file, f.err
}

func (f *fakeExporter) TeacherResults(_ context.Context, _ *models.Session, format string) (*service.ExportFile, error) {
	f.format = format
	return f.file, f.err
}

func TestExportWritesAttachment(t *testing.T) {
	exporter := &fakeExporter{file: &service.ExportFile{
		Filename:    "admin-results-20260110.csv",
		ContentType: "text/csv",
		Body:        []byte("Student,Exam\nAda,Algebra\n"),
		Rows:        1,
	}}
	h := NewExportHandler(exporter)
	r := testRouter(&models.Session{UserID: 1, Role: models.RoleAdmin})
	r.GET("/exports/results", h.AdminResults)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exports/results?format=csv", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "csv", exporter.format)
	assert.Equal(t, `attachment; filename="admin-results-20260110.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "1", rec.Header().Get("X-Export-Rows"))
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Ada,Algebra")
}

func TestExportDisabled(t *testing.T) {
	h := NewExportHandler(&fakeExporter{err: appErrors.ErrDisabled})
	r := testRouter(&models.Session{UserID: 7, Role: models.RoleTeacher})
	r.GET("/exports/results", h.TeacherResults)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exports/results", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
}
