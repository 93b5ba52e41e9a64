package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/noah-isme/examdesk-api/internal/models"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
)

type teacherFixture struct {
	students *fakeStudentUsers
	results  *fakeDetailedResults
	queries  *fakeTeacherQueries
	svc      *TeacherDashboardService
}

func newTeacherFixture() *teacherFixture {
	f := &teacherFixture{
		students: &fakeStudentUsers{students: []models.StudentWithUser{{ID: 1}, {ID: 2}, {ID: 3}}},
		results:  &fakeDetailedResults{results: []models.TeacherExamResult{{ID: 1}, {ID: 2}}},
		queries: &fakeTeacherQueries{queries: []models.TeacherQuery{
			{Query: models.Query{ID: 1, Status: models.QueryPending}},
			{Query: models.Query{ID: 2, Status: models.QueryAnswered, ResponseText: null.StringFrom("ok")}},
			{Query: models.Query{ID: 3, Status: models.QueryPending}},
		}},
	}
	f.svc = NewTeacherDashboardService(TeacherDashboardParams{
		Students: f.students,
		Results:  f.results,
		Queries:  f.queries,
		Cache:    newTestCache(newMemoryCacheRepo()),
		Metrics:  NewMetricsService(),
	})
	f.svc.now = func() time.Time { return time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC) }
	return f
}

func TestTeacherDashboardLoadCountsPending(t *testing.T) {
	f := newTeacherFixture()

	snap, err := f.svc.Load(context.Background(), teacherSession(), &captureNotifier{})
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Stats.TotalStudents)
	assert.Equal(t, 2, snap.Stats.TotalResults)
	assert.Equal(t, 2, snap.Stats.PendingQueries)
	assert.Len(t, snap.Queries, 3)
}

func TestTeacherRespondRejectsBlankText(t *testing.T) {
	f := newTeacherFixture()
	notifier := &captureNotifier{}

	_, err := f.svc.Respond(context.Background(), teacherSession(), 1, "   \n\t", notifier)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Empty(t, f.queries.updates)
	assert.Empty(t, notifier.all())
}

func TestTeacherRespondAnswersQueryAndReloads(t *testing.T) {
	f := newTeacherFixture()
	notifier := &captureNotifier{}

	snap, err := f.svc.Respond(context.Background(), teacherSession(), 3, "Page 2 was re-marked.", notifier)
	require.NoError(t, err)
	require.NotNil(t, snap)

	require.Len(t, f.queries.updates, 1)
	patch := f.queries.updates[0]
	assert.Equal(t, int64(3), f.queries.updatedID)
	assert.Equal(t, models.QueryAnswered, *patch.Status)
	assert.Equal(t, "Page 2 was re-marked.", patch.ResponseText.String)
	assert.Equal(t, int64(7), patch.TeacherID.Int64)
	assert.Equal(t, time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC), patch.UpdatedAt.Time)
	assert.Nil(t, patch.QueryText)
	assert.Equal(t, 1, f.queries.listCalls)

	notes := notifier.all()
	require.Len(t, notes, 1)
	assert.Equal(t, "Response Submitted", notes[0].Title)
	assert.Equal(t, "Your response has been sent to the student.", notes[0].Description)
}

func TestTeacherRespondIsRepeatable(t *testing.T) {
	f := newTeacherFixture()
	ctx := context.Background()

	_, err := f.svc.Respond(ctx, teacherSession(), 3, "Same answer", nil)
	require.NoError(t, err)
	_, err = f.svc.Respond(ctx, teacherSession(), 3, "Same answer", nil)
	require.NoError(t, err)

	require.Len(t, f.queries.updates, 2)
	assert.Equal(t, f.queries.updates[0], f.queries.updates[1])
}

func TestTeacherRespondFailure(t *testing.T) {
	f := newTeacherFixture()
	f.queries.updateErr = appErrors.WrapAs(appErrors.ErrBackend, errors.New("timeout"), "")
	notifier := &captureNotifier{}

	snap, err := f.svc.Respond(context.Background(), teacherSession(), 3, "answer", notifier)
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, appErrors.ErrBackend)
	assert.Zero(t, f.queries.listCalls)

	notes := notifier.all()
	require.Len(t, notes, 1)
	assert.Equal(t, "Failed to submit response", notes[0].Description)
	assert.Equal(t, models.SeverityDestructive, notes[0].Severity)
}
