package models

// Class groups students under a teacher within a school.
type Class struct {
	ID        int64  `db:"id" json:"id"`
	ClassName string `db:"class_name" json:"class_name"`
	SchoolID  int64  `db:"school_id" json:"school_id"`
	TeacherID int64  `db:"teacher_id" json:"teacher_id"`
}

type ClassInsert struct {
	ID        *int64 `db:"id" json:"id,omitempty"`
	ClassName string `db:"class_name" json:"class_name"`
	SchoolID  int64  `db:"school_id" json:"school_id"`
	TeacherID int64  `db:"teacher_id" json:"teacher_id"`
}

type ClassUpdate struct {
	ID        *int64  `json:"id,omitempty"`
	ClassName *string `json:"class_name,omitempty"`
	SchoolID  *int64  `json:"school_id,omitempty"`
	TeacherID *int64  `json:"teacher_id,omitempty"`
}
