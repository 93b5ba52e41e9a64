package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/examdesk-api/internal/models"
)

var usersSchoolJoin = joinOn(models.TableUsers, "u", models.TableSchools, "sc")

// UserRepository reads user accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new repository instance.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// ListWithSchool returns users with their school name, newest first.
func (r *UserRepository) ListWithSchool(ctx context.Context) ([]models.UserWithSchool, error) {
	query := `SELECT u.id, u.username, u.email, u.role, u.school_id, sc.school_name, u.created_at FROM users u ` +
		usersSchoolJoin + ` ORDER BY u.created_at DESC`
	users := make([]models.UserWithSchool, 0)
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, classify(err, "list users")
	}
	return users, nil
}

// FindByAuthID returns the user linked to a managed auth identity.
func (r *UserRepository) FindByAuthID(ctx context.Context, authUserID string) (*models.User, error) {
	const query = `SELECT id, auth_user_id, username, email, role, school_id, created_at FROM users WHERE auth_user_id = $1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, authUserID); err != nil {
		return nil, classify(err, "find user")
	}
	return &user, nil
}
