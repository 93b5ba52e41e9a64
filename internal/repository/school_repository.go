package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/examdesk-api/internal/models"
)

// SchoolRepository reads tenant records.
type SchoolRepository struct {
	db *sqlx.DB
}

// NewSchoolRepository creates a new repository instance.
func NewSchoolRepository(db *sqlx.DB) *SchoolRepository {
	return &SchoolRepository{db: db}
}

// List returns every school visible to the caller, newest first.
func (r *SchoolRepository) List(ctx context.Context) ([]models.School, error) {
	const query = `SELECT id, school_name, address, created_at FROM schools ORDER BY created_at DESC`
	schools := make([]models.School, 0)
	if err := r.db.SelectContext(ctx, &schools, query); err != nil {
		return nil, classify(err, "list schools")
	}
	return schools, nil
}
