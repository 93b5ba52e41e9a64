package models

// Student links a user account to a class. UserID is unique.
type Student struct {
	ID      int64 `db:"id" json:"id"`
	UserID  int64 `db:"user_id" json:"user_id"`
	ClassID int64 `db:"class_id" json:"class_id"`
}

type StudentInsert struct {
	ID      *int64 `db:"id" json:"id,omitempty"`
	UserID  int64  `db:"user_id" json:"user_id"`
	ClassID int64  `db:"class_id" json:"class_id"`
}

type StudentUpdate struct {
	ID      *int64 `json:"id,omitempty"`
	UserID  *int64 `json:"user_id,omitempty"`
	ClassID *int64 `json:"class_id,omitempty"`
}
