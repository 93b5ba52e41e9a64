package models

import "github.com/volatiletech/null/v8"

// Page is a school-specific content page.
type Page struct {
	ID        int64     `db:"id" json:"id"`
	SchoolID  int64     `db:"school_id" json:"school_id"`
	PageName  string    `db:"page_name" json:"page_name"`
	Content   string    `db:"content" json:"content"`
	UpdatedAt null.Time `db:"updated_at" json:"updated_at"`
}

type PageInsert struct {
	ID        *int64     `db:"id" json:"id,omitempty"`
	SchoolID  int64      `db:"school_id" json:"school_id"`
	PageName  string     `db:"page_name" json:"page_name"`
	Content   string     `db:"content" json:"content"`
	UpdatedAt *null.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type PageUpdate struct {
	ID        *int64     `json:"id,omitempty"`
	SchoolID  *int64     `json:"school_id,omitempty"`
	PageName  *string    `json:"page_name,omitempty"`
	Content   *string    `json:"content,omitempty"`
	UpdatedAt *null.Time `json:"updated_at,omitempty"`
}
