package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"github.com/noah-isme/examdesk-api/internal/models"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
	"github.com/noah-isme/examdesk-api/pkg/export"
)

type adminResultSource interface {
	Results(ctx context.Context, session *models.Session) ([]models.AdminExamResult, error)
}

type teacherResultSource interface {
	Results(ctx context.Context, session *models.Session) ([]models.TeacherExamResult, error)
}

// ExportConfig toggles and bounds roster downloads.
type ExportConfig struct {
	Enabled bool
	MaxRows int
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
	Rows        int
}

// ExportService renders the result rosters shown on the dashboards.
type ExportService struct {
	admin   adminResultSource
	teacher teacherResultSource
	cfg     ExportConfig
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(admin adminResultSource, teacher teacherResultSource, cfg ExportConfig, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = 5000
	}
	return &ExportService{admin: admin, teacher: teacher, cfg: cfg, logger: logger, now: time.Now}
}

// AdminResults exports the recent results list of the admin dashboard.
func (s *ExportService) AdminResults(ctx context.Context, session *models.Session, format string) (*ExportFile, error) {
	renderer, err := s.renderer(format)
	if err != nil {
		return nil, err
	}
	results, err := s.admin.Results(ctx, session)
	if err != nil {
		return nil, err
	}
	table := export.Table{
		Title:   "Recent Exam Results",
		Columns: []string{"Result ID", "Student", "Exam", "Subject", "Uploaded", "Result PDF"},
	}
	for _, r := range results {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(r.ID, 10), r.Username, r.ExamName, r.SubjectName, formatUploaded(r.UploadedAt), r.ResultPDFURL,
		})
	}
	return s.render(renderer, "recent-results", table)
}

// TeacherResults exports the detailed results list of the teacher dashboard.
func (s *ExportService) TeacherResults(ctx context.Context, session *models.Session, format string) (*ExportFile, error) {
	renderer, err := s.renderer(format)
	if err != nil {
		return nil, err
	}
	results, err := s.teacher.Results(ctx, session)
	if err != nil {
		return nil, err
	}
	table := export.Table{
		Title:   "Exam Results",
		Columns: []string{"Result ID", "Student ID", "Student", "Exam ID", "Exam", "Subject", "Uploaded", "Result PDF"},
	}
	for _, r := range results {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(r.ID, 10), strconv.FormatInt(r.StudentID, 10), r.Username,
			strconv.FormatInt(r.ExamID, 10), r.ExamName, r.SubjectName, formatUploaded(r.UploadedAt), r.ResultPDFURL,
		})
	}
	return s.render(renderer, "exam-results", table)
}

func (s *ExportService) renderer(format string) (export.Renderer, error) {
	if !s.cfg.Enabled {
		return nil, appErrors.Clone(appErrors.ErrDisabled, "exports are disabled")
	}
	parsed, err := export.ParseFormat(format)
	if err != nil {
		return nil, appErrors.WrapAs(appErrors.ErrValidation, err, err.Error())
	}
	return export.RendererFor(parsed)
}

func (s *ExportService) render(renderer export.Renderer, name string, table export.Table) (*ExportFile, error) {
	if len(table.Rows) > s.cfg.MaxRows {
		s.logger.Warn("export truncated", zap.String("export", name), zap.Int("rows", len(table.Rows)), zap.Int("max_rows", s.cfg.MaxRows))
		table.Rows = table.Rows[:s.cfg.MaxRows]
	}
	body, err := renderer.Render(table)
	if err != nil {
		return nil, appErrors.WrapAs(appErrors.ErrInternal, err, "render export")
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("%s-%s.%s", name, s.now().UTC().Format("20060102"), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Body:        body,
		Rows:        len(table.Rows),
	}, nil
}

func formatUploaded(t null.Time) string {
	if !t.Valid {
		return ""
	}
	return t.Time.UTC().Format("2006-01-02 15:04")
}
