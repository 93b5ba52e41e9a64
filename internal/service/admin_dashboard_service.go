package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/examdesk-api/internal/dto"
	"github.com/noah-isme/examdesk-api/internal/models"
)

type schoolLister interface {
	List(ctx context.Context) ([]models.School, error)
}

type userSchoolLister interface {
	ListWithSchool(ctx context.Context) ([]models.UserWithSchool, error)
}

type recentResultLister interface {
	ListRecent(ctx context.Context, limit int) ([]models.AdminExamResult, error)
}

type queryCounter interface {
	CountByStatus(ctx context.Context, status models.QueryStatus) (int, error)
}

// AdminDashboardParams groups constructor dependencies.
type AdminDashboardParams struct {
	Schools schoolLister
	Users   userSchoolLister
	Results recentResultLister
	Queries queryCounter
	Cache   *CacheService
	Metrics *MetricsService
	Logger  *zap.Logger
	Config  DashboardConfig
}

// AdminDashboardService composes the platform-wide overview.
type AdminDashboardService struct {
	schools schoolLister
	users   userSchoolLister
	results recentResultLister
	queries queryCounter
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
	cfg     DashboardConfig
}

// NewAdminDashboardService constructs the admin controller.
func NewAdminDashboardService(p AdminDashboardParams) *AdminDashboardService {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminDashboardService{
		schools: p.Schools,
		users:   p.Users,
		results: p.Results,
		queries: p.Queries,
		cache:   p.Cache,
		metrics: p.Metrics,
		logger:  logger,
		cfg:     p.Config.withDefaults(),
	}
}

// Load reads schools, users, recent results and the pending query count.
// A failed read leaves its section at the previous snapshot value.
func (s *AdminDashboardService) Load(ctx context.Context, session *models.Session, notifier Notifier) (*dto.AdminDashboardResponse, error) {
	if err := requireSession(session, models.RoleAdmin); err != nil {
		return nil, err
	}
	notifier = notifierOrNop(notifier)
	key := snapshotKey(models.RoleAdmin, session.UserID)

	snap := s.prior(ctx, key)
	run := newSectionRun(models.RoleAdmin, session.UserID, s.metrics, s.logger)

	var schools []models.School
	if run.load(ctx, dto.SectionSchools, func(ctx context.Context) (err error) {
		schools, err = s.schools.List(ctx)
		return err
	}) {
		snap.Schools = schools
		snap.Stats.TotalSchools = len(schools)
	}

	var users []models.UserWithSchool
	if run.load(ctx, dto.SectionUsers, func(ctx context.Context) (err error) {
		users, err = s.users.ListWithSchool(ctx)
		return err
	}) {
		snap.Users = users
		snap.Stats.TotalUsers = len(users)
		snap.Stats.TotalStudents = countRole(users, models.RoleStudent)
		snap.Stats.TotalTeachers = countRole(users, models.RoleTeacher)
		snap.Stats.TotalAdmins = countRole(users, models.RoleAdmin)
	}

	var results []models.AdminExamResult
	if run.load(ctx, dto.SectionResults, func(ctx context.Context) (err error) {
		results, err = s.results.ListRecent(ctx, s.cfg.RecentResultsLimit)
		return err
	}) {
		snap.RecentResults = results
		snap.Stats.TotalResults = len(results)
	}

	var pending int
	if run.load(ctx, dto.SectionPending, func(ctx context.Context) (err error) {
		pending, err = s.queries.CountByStatus(ctx, models.QueryPending)
		return err
	}) {
		snap.Stats.PendingQueries = pending
	}

	snap.StaleSections = run.finish(ctx, notifier)
	snap.Normalize()
	if err := s.cache.Set(ctx, key, snap, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("dashboard snapshot not persisted", zap.String("key", key), zap.Error(err))
	}
	return snap, nil
}

// Results returns the recent results roster without touching the other sections.
func (s *AdminDashboardService) Results(ctx context.Context, session *models.Session) ([]models.AdminExamResult, error) {
	if err := requireSession(session, models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.results.ListRecent(ctx, s.cfg.RecentResultsLimit)
}

func (s *AdminDashboardService) prior(ctx context.Context, key string) *dto.AdminDashboardResponse {
	var cached dto.AdminDashboardResponse
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		cached.StaleSections = nil
		return &cached
	}
	return &dto.AdminDashboardResponse{}
}

func countRole(users []models.UserWithSchool, role models.UserRole) int {
	n := 0
	for _, u := range users {
		if u.Role == role {
			n++
		}
	}
	return n
}
