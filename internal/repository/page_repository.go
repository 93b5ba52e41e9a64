package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/examdesk-api/internal/models"
)

// PageRepository reads per-school content pages.
type PageRepository struct {
	db *sqlx.DB
}

// NewPageRepository creates a new repository instance.
func NewPageRepository(db *sqlx.DB) *PageRepository {
	return &PageRepository{db: db}
}

// FindBySchool returns the named page of a school.
func (r *PageRepository) FindBySchool(ctx context.Context, schoolID int64, name string) (*models.Page, error) {
	const query = `SELECT id, school_id, page_name, content, updated_at FROM pages WHERE school_id = $1 AND page_name = $2`
	var page models.Page
	if err := r.db.GetContext(ctx, &page, query, schoolID, name); err != nil {
		return nil, classify(err, "find page")
	}
	return &page, nil
}
