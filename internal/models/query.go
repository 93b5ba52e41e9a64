package models

import "github.com/volatiletech/null/v8"

// QueryStatus tracks a student's question through its single transition.
type QueryStatus string

const (
	QueryPending  QueryStatus = "pending"
	QueryAnswered QueryStatus = "answered"
)

// Query is a student's question about an exam result.
type Query struct {
	ID           int64       `db:"id" json:"id"`
	StudentID    int64       `db:"student_id" json:"student_id"`
	TeacherID    null.Int64  `db:"teacher_id" json:"teacher_id"`
	ExamID       null.Int64  `db:"exam_id" json:"exam_id"`
	QueryText    string      `db:"query_text" json:"query_text"`
	ResponseText null.String `db:"response_text" json:"response_text"`
	Status       QueryStatus `db:"status" json:"status"`
	CreatedAt    null.Time   `db:"created_at" json:"created_at"`
	UpdatedAt    null.Time   `db:"updated_at" json:"updated_at"`
}

// QueryInsert is the insertable shape of a query.
type QueryInsert struct {
	ID           *int64       `db:"id" json:"id,omitempty"`
	StudentID    int64        `db:"student_id" json:"student_id"`
	TeacherID    *null.Int64  `db:"teacher_id" json:"teacher_id,omitempty"`
	ExamID       *null.Int64  `db:"exam_id" json:"exam_id,omitempty"`
	QueryText    string       `db:"query_text" json:"query_text"`
	ResponseText *null.String `db:"response_text" json:"response_text,omitempty"`
	Status       *QueryStatus `db:"status" json:"status,omitempty"`
	CreatedAt    *null.Time   `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt    *null.Time   `db:"updated_at" json:"updated_at,omitempty"`
}

// QueryUpdate is a partial patch; nil fields are left untouched.
type QueryUpdate struct {
	StudentID    *int64       `json:"student_id,omitempty"`
	TeacherID    *null.Int64  `json:"teacher_id,omitempty"`
	ExamID       *null.Int64  `json:"exam_id,omitempty"`
	QueryText    *string      `json:"query_text,omitempty"`
	ResponseText *null.String `json:"response_text,omitempty"`
	Status       *QueryStatus `json:"status,omitempty"`
	CreatedAt    *null.Time   `json:"created_at,omitempty"`
	UpdatedAt    *null.Time   `json:"updated_at,omitempty"`
}

// Empty reports whether the patch touches no column.
func (u QueryUpdate) Empty() bool {
	return u.StudentID == nil && u.TeacherID == nil && u.ExamID == nil && u.QueryText == nil &&
		u.ResponseText == nil && u.Status == nil && u.CreatedAt == nil && u.UpdatedAt == nil
}
