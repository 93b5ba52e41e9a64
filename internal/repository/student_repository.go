package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/examdesk-api/internal/models"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
)

// StudentRepository reads student enrolment rows.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository creates a new repository instance.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListWithUser returns students with their account username and email.
func (r *StudentRepository) ListWithUser(ctx context.Context) ([]models.StudentWithUser, error) {
	query := `SELECT st.id, st.user_id, st.class_id, u.username, u.email FROM students st ` +
		studentsUserJoin + ` ORDER BY st.id`
	students := make([]models.StudentWithUser, 0)
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, classify(err, "list students")
	}
	return students, nil
}

// FindByUserID resolves the student row of a user. Exactly one row must match.
func (r *StudentRepository) FindByUserID(ctx context.Context, userID int64) (*models.StudentRef, error) {
	const query = `SELECT id, class_id FROM students WHERE user_id = $1 LIMIT 2`
	var rows []models.StudentRef
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, classify(err, "find student")
	}
	if len(rows) != 1 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("expected one student for user %d, found %d", userID, len(rows)))
	}
	return &rows[0], nil
}
