package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/examdesk-api/internal/dto"
	"github.com/noah-isme/examdesk-api/internal/models"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
)

func sampleUsers() []models.UserWithSchool {
	roles := []models.UserRole{
		models.RoleStudent, models.RoleStudent, models.RoleStudent, models.RoleStudent, models.RoleStudent, models.RoleStudent,
		models.RoleTeacher, models.RoleTeacher, models.RoleTeacher,
		models.RoleAdmin,
	}
	users := make([]models.UserWithSchool, len(roles))
	for i, role := range roles {
		users[i] = models.UserWithSchool{ID: int64(i + 1), Role: role, SchoolName: "Northside High"}
	}
	return users
}

type adminFixture struct {
	schools *fakeSchools
	users   *fakeUsers
	results *fakeRecentResults
	pending *fakeCounter
	cache   *memoryCacheRepo
	metrics *MetricsService
	svc     *AdminDashboardService
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		schools: &fakeSchools{schools: []models.School{{ID: 1}, {ID: 2}, {ID: 3}}},
		users:   &fakeUsers{users: sampleUsers()},
		results: &fakeRecentResults{results: []models.AdminExamResult{{ID: 1}, {ID: 2}}},
		pending: &fakeCounter{count: 2},
		cache:   newMemoryCacheRepo(),
		metrics: NewMetricsService(),
	}
	f.svc = NewAdminDashboardService(AdminDashboardParams{
		Schools: f.schools,
		Users:   f.users,
		Results: f.results,
		Queries: f.pending,
		Cache:   newTestCache(f.cache),
		Metrics: f.metrics,
	})
	return f
}

func TestAdminDashboardLoadAggregates(t *testing.T) {
	f := newAdminFixture()
	notifier := &captureNotifier{}

	snap, err := f.svc.Load(context.Background(), adminSession(), notifier)
	require.NoError(t, err)

	assert.Equal(t, dto.AdminStats{
		TotalSchools:   3,
		TotalUsers:     10,
		TotalStudents:  6,
		TotalTeachers:  3,
		TotalAdmins:    1,
		TotalResults:   2,
		PendingQueries: 2,
	}, snap.Stats)
	assert.Empty(t, snap.StaleSections)
	assert.Empty(t, notifier.all())
	assert.Equal(t, 50, f.results.lastLimit)
	assert.Equal(t, models.QueryPending, f.pending.lastStatus)
}

func TestAdminDashboardFailedSectionKeepsPriorSnapshot(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	_, err := f.svc.Load(ctx, adminSession(), &captureNotifier{})
	require.NoError(t, err)

	f.users.err = appErrors.WrapAs(appErrors.ErrBackend, errors.New("timeout"), "")
	f.users.users = nil
	f.schools.schools = append(f.schools.schools, models.School{ID: 4})
	notifier := &captureNotifier{}

	snap, err := f.svc.Load(ctx, adminSession(), notifier)
	require.NoError(t, err)

	assert.Equal(t, 4, snap.Stats.TotalSchools)
	assert.Equal(t, 10, snap.Stats.TotalUsers)
	assert.Equal(t, 6, snap.Stats.TotalStudents)
	assert.Len(t, snap.Users, 10)
	assert.Equal(t, 2, snap.Stats.PendingQueries)
	assert.Equal(t, []string{dto.SectionUsers}, snap.StaleSections)

	notes := notifier.all()
	require.Len(t, notes, 1)
	assert.Equal(t, "Error", notes[0].Title)
	assert.Equal(t, "Failed to load dashboard data", notes[0].Description)
	assert.Equal(t, models.SeverityDestructive, notes[0].Severity)
	assert.Equal(t, uint64(1), f.metrics.Snapshot().SectionFailures)
}

func TestAdminDashboardFailuresWithoutPriorUseDefaults(t *testing.T) {
	f := newAdminFixture()
	f.schools.err = errors.New("down")
	f.results.err = errors.New("down")
	notifier := &captureNotifier{}

	snap, err := f.svc.Load(context.Background(), adminSession(), notifier)
	require.NoError(t, err)

	assert.Equal(t, 0, snap.Stats.TotalSchools)
	assert.NotNil(t, snap.Schools)
	assert.Empty(t, snap.RecentResults)
	assert.Equal(t, 10, snap.Stats.TotalUsers)
	assert.ElementsMatch(t, []string{dto.SectionSchools, dto.SectionResults}, snap.StaleSections)
	assert.Len(t, notifier.all(), 1)
}

func TestAdminDashboardRequiresAdmin(t *testing.T) {
	f := newAdminFixture()

	_, err := f.svc.Load(context.Background(), teacherSession(), nil)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	_, err = f.svc.Load(context.Background(), nil, nil)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
	assert.Zero(t, f.schools.calls)
}
