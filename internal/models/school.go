package models

import "github.com/volatiletech/null/v8"

// School is a tenant of the platform.
type School struct {
	ID         int64       `db:"id" json:"id"`
	SchoolName string      `db:"school_name" json:"school_name"`
	Address    null.String `db:"address" json:"address"`
	CreatedAt  null.Time   `db:"created_at" json:"created_at"`
}

// SchoolInsert is the insertable shape of a school.
type SchoolInsert struct {
	ID         *int64       `db:"id" json:"id,omitempty"`
	SchoolName string       `db:"school_name" json:"school_name"`
	Address    *null.String `db:"address" json:"address,omitempty"`
	CreatedAt  *null.Time   `db:"created_at" json:"created_at,omitempty"`
}

// SchoolUpdate is a partial patch of a school.
type SchoolUpdate struct {
	ID         *int64       `json:"id,omitempty"`
	SchoolName *string      `json:"school_name,omitempty"`
	Address    *null.String `json:"address,omitempty"`
	CreatedAt  *null.Time   `json:"created_at,omitempty"`
}
