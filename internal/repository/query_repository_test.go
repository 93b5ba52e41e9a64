package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/noah-isme/examdesk-api/internal/models"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
)

var queryRowColumns = []string{"id", "student_id", "teacher_id", "exam_id", "query_text", "response_text", "status", "created_at", "updated_at"}

func TestQueryRepositoryCountByStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM queries WHERE status = $1")).
		WithArgs("pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := NewQueryRepository(db).CountByStatus(context.Background(), models.QueryPending)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestQueryRepositoryListWithStudentKeepsQueriesWithoutExam(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	cols := append(append([]string{}, queryRowColumns...), "username", "exam_name")
	rows := sqlmock.NewRows(cols).
		AddRow(1, 11, nil, nil, "Why was Q3 marked wrong?", nil, "pending", time.Now(), nil, "budi", nil)
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN exams e ON e.id = q.exam_id ORDER BY q.created_at DESC")).
		WillReturnRows(rows)

	queries, err := NewQueryRepository(db).ListWithStudent(context.Background())
	require.NoError(t, err)
	require.Len(t, queries, 1)
	assert.Equal(t, "budi", queries[0].Username)
	assert.False(t, queries[0].ExamName.Valid)
	assert.Equal(t, models.QueryPending, queries[0].Status)
}

func TestQueryRepositoryListWithStudentReadsMissingStatusAsPending(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	cols := append(append([]string{}, queryRowColumns...), "username", "exam_name")
	rows := sqlmock.NewRows(cols).
		AddRow(2, 11, 7, 3, "Q5 total is off", "Fixed", "answered", time.Now(), time.Now(), "budi", "Algebra").
		AddRow(1, 12, nil, nil, "Missing page 4", nil, "pending", time.Now(), nil, "sari", nil)
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(q.status, 'pending') AS status")).
		WillReturnRows(rows)

	queries, err := NewQueryRepository(db).ListWithStudent(context.Background())
	require.NoError(t, err)
	require.Len(t, queries, 2)
	assert.Equal(t, models.QueryAnswered, queries[0].Status)
	assert.Equal(t, models.QueryPending, queries[1].Status)
}

func TestQueryRepositoryListByStudentReadsMissingStatusAsPending(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	cols := append(append([]string{}, queryRowColumns...), "exam_name")
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(q.status, 'pending') AS status")).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, 12, nil, nil, "Missing page 4", nil, "pending", time.Now(), nil, nil))

	queries, err := NewQueryRepository(db).ListByStudent(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, queries, 1)
	assert.Equal(t, models.QueryPending, queries[0].Status)
}

func TestQueryRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	status := models.QueryPending
	exam := null.Int64From(3)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO queries AS q (student_id, query_text, exam_id, status) VALUES ($1, $2, $3, $4) RETURNING")).
		WithArgs(int64(11), "Please recheck page 2", int64(3), "pending").
		WillReturnRows(sqlmock.NewRows(queryRowColumns).
			AddRow(21, 11, nil, 3, "Please recheck page 2", nil, "pending", time.Now(), nil))

	stored, err := NewQueryRepository(db).Create(context.Background(), models.QueryInsert{
		StudentID: 11,
		QueryText: "Please recheck page 2",
		ExamID:    &exam,
		Status:    &status,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), stored.ID)
	assert.Equal(t, models.QueryPending, stored.Status)
	assert.False(t, stored.ResponseText.Valid)
}

func TestQueryRepositoryCreateConstraintViolation(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO queries")).
		WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

	_, err := NewQueryRepository(db).Create(context.Background(), models.QueryInsert{StudentID: 99, QueryText: "?"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestQueryRepositoryUpdatePartial(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	status := models.QueryAnswered
	text := null.StringFrom("Recounted, grade stands.")
	mock.ExpectExec(regexp.QuoteMeta("UPDATE queries SET response_text = $1, status = $2 WHERE id = $3")).
		WithArgs("Recounted, grade stands.", "answered", int64(21)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := NewQueryRepository(db).Update(context.Background(), 21, models.QueryUpdate{ResponseText: &text, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestQueryRepositoryUpdateNoMatch(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	status := models.QueryAnswered
	mock.ExpectExec(regexp.QuoteMeta("UPDATE queries SET status = $1 WHERE id = $2")).
		WithArgs("answered", int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := NewQueryRepository(db).Update(context.Background(), 404, models.QueryUpdate{Status: &status})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestQueryRepositoryUpdateEmptyPatch(t *testing.T) {
	db, _, cleanup := newRepoMock(t)
	defer cleanup()

	_, err := NewQueryRepository(db).Update(context.Background(), 1, models.QueryUpdate{})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}
