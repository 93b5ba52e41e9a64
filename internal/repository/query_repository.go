package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/examdesk-api/internal/models"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
)

// status is nullable in the backend; a missing status reads as pending.
const queryColumns = `q.id, q.student_id, q.teacher_id, q.exam_id, q.query_text, q.response_text, COALESCE(q.status, 'pending') AS status, q.created_at, q.updated_at`

var (
	queriesStudentJoin = joinOn(models.TableQueries, "q", models.TableStudents, "st")
	queriesExamJoin    = leftJoinOn(models.TableQueries, "q", models.TableExams, "e")
)

// QueryRepository persists student queries and teacher responses.
type QueryRepository struct {
	db *sqlx.DB
}

// NewQueryRepository creates a new repository instance.
func NewQueryRepository(db *sqlx.DB) *QueryRepository {
	return &QueryRepository{db: db}
}

// CountByStatus counts queries in the given state.
func (r *QueryRepository) CountByStatus(ctx context.Context, status models.QueryStatus) (int, error) {
	const query = `SELECT COUNT(*) FROM queries WHERE status = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, status); err != nil {
		return 0, classify(err, "count queries")
	}
	return count, nil
}

// ListWithStudent returns queries with the asking student's username and the exam name when set.
func (r *QueryRepository) ListWithStudent(ctx context.Context) ([]models.TeacherQuery, error) {
	query := `SELECT ` + queryColumns + `, u.username, e.exam_name FROM queries q ` +
		queriesStudentJoin + ` ` + studentsUserJoin + ` ` + queriesExamJoin + ` ORDER BY q.created_at DESC`
	queries := make([]models.TeacherQuery, 0)
	if err := r.db.SelectContext(ctx, &queries, query); err != nil {
		return nil, classify(err, "list queries")
	}
	return queries, nil
}

// ListByStudent returns the queries raised by one student, newest first.
func (r *QueryRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.StudentQuery, error) {
	query := `SELECT ` + queryColumns + `, e.exam_name FROM queries q ` + queriesExamJoin +
		` WHERE q.student_id = $1 ORDER BY q.created_at DESC`
	queries := make([]models.StudentQuery, 0)
	if err := r.db.SelectContext(ctx, &queries, query, studentID); err != nil {
		return nil, classify(err, "list student queries")
	}
	return queries, nil
}

// Create inserts a query and returns the stored row.
func (r *QueryRepository) Create(ctx context.Context, in models.QueryInsert) (*models.Query, error) {
	columns := []string{"student_id", "query_text"}
	args := []interface{}{in.StudentID, in.QueryText}
	add := func(column string, value interface{}) {
		columns = append(columns, column)
		args = append(args, value)
	}
	if in.ID != nil {
		add("id", *in.ID)
	}
	if in.TeacherID != nil {
		add("teacher_id", *in.TeacherID)
	}
	if in.ExamID != nil {
		add("exam_id", *in.ExamID)
	}
	if in.ResponseText != nil {
		add("response_text", *in.ResponseText)
	}
	if in.Status != nil {
		add("status", string(*in.Status))
	}
	if in.CreatedAt != nil {
		add("created_at", *in.CreatedAt)
	}
	if in.UpdatedAt != nil {
		add("updated_at", *in.UpdatedAt)
	}

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(
		"INSERT INTO queries AS q (%s) VALUES (%s) RETURNING %s",
		strings.Join(columns, ", "), strings.Join(placeholders, ", "), queryColumns,
	)

	var stored models.Query
	if err := r.db.GetContext(ctx, &stored, query, args...); err != nil {
		return nil, classify(err, "create query")
	}
	return &stored, nil
}

// Update applies a partial patch to one query and returns the affected row count.
func (r *QueryRepository) Update(ctx context.Context, id int64, patch models.QueryUpdate) (int64, error) {
	if patch.Empty() {
		return 0, appErrors.Clone(appErrors.ErrValidation, "update has no fields")
	}
	var (
		sets []string
		args []interface{}
	)
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.StudentID != nil {
		set("student_id", *patch.StudentID)
	}
	if patch.TeacherID != nil {
		set("teacher_id", *patch.TeacherID)
	}
	if patch.ExamID != nil {
		set("exam_id", *patch.ExamID)
	}
	if patch.QueryText != nil {
		set("query_text", *patch.QueryText)
	}
	if patch.ResponseText != nil {
		set("response_text", *patch.ResponseText)
	}
	if patch.Status != nil {
		set("status", string(*patch.Status))
	}
	if patch.CreatedAt != nil {
		set("created_at", *patch.CreatedAt)
	}
	if patch.UpdatedAt != nil {
		set("updated_at", *patch.UpdatedAt)
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE queries SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classify(err, "update query")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, classify(err, "update query")
	}
	if affected == 0 {
		return 0, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("query %d not found", id))
	}
	return affected, nil
}
