package models

import "github.com/volatiletech/null/v8"

// UserRole is fixed at account creation and selects the dashboard.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// User is an account row. AuthUserID links it to the managed auth identity.
type User struct {
	ID           int64       `db:"id" json:"id"`
	AuthUserID   null.String `db:"auth_user_id" json:"auth_user_id"`
	Username     string      `db:"username" json:"username"`
	Email        string      `db:"email" json:"email"`
	PasswordHash string      `db:"password_hash" json:"-"`
	Role         UserRole    `db:"role" json:"role"`
	SchoolID     int64       `db:"school_id" json:"school_id"`
	CreatedAt    null.Time   `db:"created_at" json:"created_at"`
}

// UserInsert is the insertable shape of a user.
type UserInsert struct {
	ID           *int64       `db:"id" json:"id,omitempty"`
	AuthUserID   *null.String `db:"auth_user_id" json:"auth_user_id,omitempty"`
	Username     string       `db:"username" json:"username"`
	Email        string       `db:"email" json:"email"`
	PasswordHash string       `db:"password_hash" json:"password_hash"`
	Role         UserRole     `db:"role" json:"role"`
	SchoolID     int64        `db:"school_id" json:"school_id"`
	CreatedAt    *null.Time   `db:"created_at" json:"created_at,omitempty"`
}

// UserUpdate is a partial patch of a user.
type UserUpdate struct {
	ID           *int64       `json:"id,omitempty"`
	AuthUserID   *null.String `json:"auth_user_id,omitempty"`
	Username     *string      `json:"username,omitempty"`
	Email        *string      `json:"email,omitempty"`
	PasswordHash *string      `json:"password_hash,omitempty"`
	Role         *UserRole    `json:"role,omitempty"`
	SchoolID     *int64       `json:"school_id,omitempty"`
	CreatedAt    *null.Time   `json:"created_at,omitempty"`
}
