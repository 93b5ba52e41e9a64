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

type studentUserLister interface {
	ListWithUser(ctx context.Context) ([]models.StudentWithUser, error)
}

type detailedResultLister interface {
	ListDetailed(ctx context.Context) ([]models.TeacherExamResult, error)
}

type teacherQueryStore interface {
	ListWithStudent(ctx context.Context) ([]models.TeacherQuery, error)
	Update(ctx context.Context, id int64, patch models.QueryUpdate) (int64, error)
}

// TeacherDashboardParams groups constructor dependencies.
type TeacherDashboardParams struct {
	Students studentUserLister
	Results  detailedResultLister
	Queries  teacherQueryStore
	Cache    *CacheService
	Metrics  *MetricsService
	Logger   *zap.Logger
	Config   DashboardConfig
}

// TeacherDashboardService lists students, results and queries and records responses.
// Reads are not narrowed to the teacher's classes; row-level policies on the
// backend decide what is visible.
type TeacherDashboardService struct {
	students studentUserLister
	results  detailedResultLister
	queries  teacherQueryStore
	cache    *CacheService
	metrics  *MetricsService
	logger   *zap.Logger
	cfg      DashboardConfig
	now      func() time.Time
}

// NewTeacherDashboardService constructs the teacher controller.
func NewTeacherDashboardService(p TeacherDashboardParams) *TeacherDashboardService {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherDashboardService{
		students: p.Students,
		results:  p.Results,
		queries:  p.Queries,
		cache:    p.Cache,
		metrics:  p.Metrics,
		logger:   logger,
		cfg:      p.Config.withDefaults(),
		now:      time.Now,
	}
}

// Load reads students, results and queries for the teacher overview.
func (s *TeacherDashboardService) Load(ctx context.Context, session *models.Session, notifier Notifier) (*dto.TeacherDashboardResponse, error) {
	if err := requireSession(session, models.RoleTeacher); err != nil {
		return nil, err
	}
	notifier = notifierOrNop(notifier)
	key := snapshotKey(models.RoleTeacher, session.UserID)

	snap := s.prior(ctx, key)
	run := newSectionRun(models.RoleTeacher, session.UserID, s.metrics, s.logger)

	var students []models.StudentWithUser
	if run.load(ctx, dto.SectionStudents, func(ctx context.Context) (err error) {
		students, err = s.students.ListWithUser(ctx)
		return err
	}) {
		snap.Students = students
		snap.Stats.TotalStudents = len(students)
	}

	var results []models.TeacherExamResult
	if run.load(ctx, dto.SectionResults, func(ctx context.Context) (err error) {
		results, err = s.results.ListDetailed(ctx)
		return err
	}) {
		snap.Results = results
		snap.Stats.TotalResults = len(results)
	}

	var queries []models.TeacherQuery
	if run.load(ctx, dto.SectionQueries, func(ctx context.Context) (err error) {
		queries, err = s.queries.ListWithStudent(ctx)
		return err
	}) {
		snap.Queries = queries
		snap.Stats.PendingQueries = 0
		for _, q := range queries {
			if q.Status == models.QueryPending {
				snap.Stats.PendingQueries++
			}
		}
	}

	snap.StaleSections = run.finish(ctx, notifier)
	snap.Normalize()
	if err := s.cache.Set(ctx, key, snap, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("dashboard snapshot not persisted", zap.String("key", key), zap.Error(err))
	}
	return snap, nil
}

// Respond answers a query and returns the refreshed dashboard.
func (s *TeacherDashboardService) Respond(ctx context.Context, session *models.Session, queryID int64, text string, notifier Notifier) (*dto.TeacherDashboardResponse, error) {
	if err := requireSession(session, models.RoleTeacher); err != nil {
		return nil, err
	}
	notifier = notifierOrNop(notifier)
	if strings.TrimSpace(text) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "response text is required")
	}

	status := models.QueryAnswered
	response := null.StringFrom(text)
	teacherID := null.Int64From(session.UserID)
	updatedAt := null.TimeFrom(s.now().UTC())
	patch := models.QueryUpdate{
		ResponseText: &response,
		Status:       &status,
		TeacherID:    &teacherID,
		UpdatedAt:    &updatedAt,
	}

	start := time.Now()
	_, err := s.queries.Update(ctx, queryID, patch)
	s.metrics.ObserveDBQuery("teacher_respond", time.Since(start))
	if err != nil {
		s.logger.Warn("query response failed", zap.Int64("query_id", queryID), zap.Int64("user_id", session.UserID), zap.Error(err))
		notifier.Notify(ctx, models.Notification{Title: "Error", Description: "Failed to submit response", Severity: models.SeverityDestructive})
		return nil, err
	}
	notifier.Notify(ctx, models.Notification{Title: "Response Submitted", Description: "Your response has been sent to the student."})

	return s.Load(ctx, session, notifier)
}

// Results returns the detailed results roster.
func (s *TeacherDashboardService) Results(ctx context.Context, session *models.Session) ([]models.TeacherExamResult, error) {
	if err := requireSession(session, models.RoleTeacher); err != nil {
		return nil, err
	}
	return s.results.ListDetailed(ctx)
}

func (s *TeacherDashboardService) prior(ctx context.Context, key string) *dto.TeacherDashboardResponse {
	var cached dto.TeacherDashboardResponse
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		cached.StaleSections = nil
		return &cached
	}
	return &dto.TeacherDashboardResponse{}
}
