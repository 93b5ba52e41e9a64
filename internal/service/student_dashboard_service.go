package service

import (
	"context"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"github.com/noah-isme/examdesk-api/internal/dto"
	"github.com/noah-isme/examdesk-api/internal/models"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
)

type studentResolver interface {
	FindByUserID(ctx context.Context, userID int64) (*models.StudentRef, error)
}

type studentResultLister interface {
	ListByStudent(ctx context.Context, studentID int64) ([]models.StudentExamResult, error)
}

type studentQueryStore interface {
	ListByStudent(ctx context.Context, studentID int64) ([]models.StudentQuery, error)
	Create(ctx context.Context, in models.QueryInsert) (*models.Query, error)
}

// StudentDashboardParams groups constructor dependencies.
type StudentDashboardParams struct {
	Students studentResolver
	Results  studentResultLister
	Queries  studentQueryStore
	Cache    *CacheService
	Metrics  *MetricsService
	Logger   *zap.Logger
	Config   DashboardConfig
}

// StudentDashboardService shows a student their results and queries and accepts new queries.
type StudentDashboardService struct {
	students studentResolver
	results  studentResultLister
	queries  studentQueryStore
	cache    *CacheService
	metrics  *MetricsService
	logger   *zap.Logger
	cfg      DashboardConfig
}

// NewStudentDashboardService constructs the student controller.
func NewStudentDashboardService(p StudentDashboardParams) *StudentDashboardService {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentDashboardService{
		students: p.Students,
		results:  p.Results,
		queries:  p.Queries,
		cache:    p.Cache,
		metrics:  p.Metrics,
		logger:   logger,
		cfg:      p.Config.withDefaults(),
	}
}

// Load resolves the caller's student row, then reads their results and queries.
// Without a student row nothing else is read and the error is returned.
func (s *StudentDashboardService) Load(ctx context.Context, session *models.Session, notifier Notifier) (*dto.StudentDashboardResponse, error) {
	if err := requireSession(session, models.RoleStudent); err != nil {
		return nil, err
	}
	notifier = notifierOrNop(notifier)

	student, err := s.resolve(ctx, session)
	if err != nil {
		notifier.Notify(ctx, loadFailedNotification())
		return nil, err
	}
	return s.load(ctx, session, student, notifier), nil
}

// SubmitQuery files a new pending query for the caller and returns the refreshed dashboard.
func (s *StudentDashboardService) SubmitQuery(ctx context.Context, session *models.Session, text string, examID *int64, notifier Notifier) (*dto.StudentDashboardResponse, error) {
	if err := requireSession(session, models.RoleStudent); err != nil {
		return nil, err
	}
	notifier = notifierOrNop(notifier)
	if strings.TrimSpace(text) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "query text is required")
	}

	student, err := s.resolve(ctx, session)
	if err != nil {
		s.submitFailed(ctx, session, err, notifier)
		return nil, err
	}

	status := models.QueryPending
	in := models.QueryInsert{StudentID: student.ID, QueryText: text, Status: &status}
	if examID != nil {
		exam := null.Int64From(*examID)
		in.ExamID = &exam
	}

	start := time.Now()
	_, err = s.queries.Create(ctx, in)
	s.metrics.ObserveDBQuery("student_submit_query", time.Since(start))
	if err != nil {
		s.submitFailed(ctx, session, err, notifier)
		return nil, err
	}
	notifier.Notify(ctx, models.Notification{Title: "Query Submitted", Description: "Your query has been submitted successfully."})

	return s.load(ctx, session, student, notifier), nil
}

func (s *StudentDashboardService) load(ctx context.Context, session *models.Session, student *models.StudentRef, notifier Notifier) *dto.StudentDashboardResponse {
	key := snapshotKey(models.RoleStudent, session.UserID)
	snap := s.prior(ctx, key)
	snap.Student = student
	run := newSectionRun(models.RoleStudent, session.UserID, s.metrics, s.logger)

	var results []models.StudentExamResult
	if run.load(ctx, dto.SectionResults, func(ctx context.Context) (err error) {
		results, err = s.results.ListByStudent(ctx, student.ID)
		return err
	}) {
		snap.Results = results
		snap.Stats.TotalResults = len(results)
	}

	var queries []models.StudentQuery
	if run.load(ctx, dto.SectionQueries, func(ctx context.Context) (err error) {
		queries, err = s.queries.ListByStudent(ctx, student.ID)
		return err
	}) {
		snap.Queries = queries
		snap.Stats.PendingQueries, snap.Stats.AnsweredQueries = 0, 0
		for _, q := range queries {
			switch q.Status {
			case models.QueryPending:
				snap.Stats.PendingQueries++
			case models.QueryAnswered:
				snap.Stats.AnsweredQueries++
			}
		}
	}

	snap.StaleSections = run.finish(ctx, notifier)
	snap.Normalize()
	if err := s.cache.Set(ctx, key, snap, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("dashboard snapshot not persisted", zap.String("key", key), zap.Error(err))
	}
	return snap
}

func (s *StudentDashboardService) resolve(ctx context.Context, session *models.Session) (*models.StudentRef, error) {
	start := time.Now()
	student, err := s.students.FindByUserID(ctx, session.UserID)
	s.metrics.ObserveDBQuery("student_"+dto.SectionStudent, time.Since(start))
	if err != nil {
		s.logger.Warn("student record unavailable", zap.Int64("user_id", session.UserID), zap.Error(err))
		s.metrics.RecordSectionFailure(models.RoleStudent, dto.SectionStudent)
		return nil, err
	}
	return student, nil
}

func (s *StudentDashboardService) submitFailed(ctx context.Context, session *models.Session, err error, notifier Notifier) {
	s.logger.Warn("query submission failed", zap.Int64("user_id", session.UserID), zap.Error(err))
	notifier.Notify(ctx, models.Notification{Title: "Error", Description: "Failed to submit query", Severity: models.SeverityDestructive})
}

func (s *StudentDashboardService) prior(ctx context.Context, key string) *dto.StudentDashboardResponse {
	var cached dto.StudentDashboardResponse
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		cached.StaleSections = nil
		return &cached
	}
	return &dto.StudentDashboardResponse{}
}
