package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/examdesk-api/internal/models"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
)

// DashboardConfig tunes the role dashboards.
type DashboardConfig struct {
	CacheTTL           time.Duration
	RecentResultsLimit int
}

func (c DashboardConfig) withDefaults() DashboardConfig {
	if c.CacheTTL <= 0 {
		c.CacheTTL = 24 * time.Hour
	}
	if c.RecentResultsLimit <= 0 {
		c.RecentResultsLimit = 50
	}
	return c
}

// sectionRun tracks one dashboard load. Each section is attempted on its own;
// failures are logged, counted and remembered so the load can report them once.
type sectionRun struct {
	role    models.UserRole
	userID  int64
	metrics *MetricsService
	logger  *zap.Logger
	failed  []string
}

func newSectionRun(role models.UserRole, userID int64, metrics *MetricsService, logger *zap.Logger) *sectionRun {
	return &sectionRun{role: role, userID: userID, metrics: metrics, logger: logger}
}

func (r *sectionRun) load(ctx context.Context, section string, fn func(context.Context) error) bool {
	start := time.Now()
	err := fn(ctx)
	r.metrics.ObserveDBQuery(fmt.Sprintf("%s_%s", r.role, section), time.Since(start))
	if err != nil {
		r.logger.Warn("dashboard section failed",
			zap.String("role", string(r.role)),
			zap.Int64("user_id", r.userID),
			zap.String("section", section),
			zap.Error(err),
		)
		r.metrics.RecordSectionFailure(r.role, section)
		r.failed = append(r.failed, section)
		return false
	}
	return true
}

// finish emits the single load-failure notification when any section failed.
func (r *sectionRun) finish(ctx context.Context, notifier Notifier) []string {
	if len(r.failed) > 0 {
		notifier.Notify(ctx, loadFailedNotification())
	}
	return r.failed
}

func snapshotKey(role models.UserRole, userID int64) string {
	return fmt.Sprintf("dash:%s:%d", role, userID)
}

func requireSession(session *models.Session, role models.UserRole) error {
	if session == nil {
		return appErrors.ErrUnauthorized
	}
	if session.Role != role {
		return appErrors.Clone(appErrors.ErrForbidden, fmt.Sprintf("%s dashboard requires the %s role", role, role))
	}
	return nil
}

func notifierOrNop(n Notifier) Notifier {
	if n == nil {
		return NopNotifier{}
	}
	return n
}
