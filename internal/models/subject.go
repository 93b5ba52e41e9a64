package models

// Subject is taught within a school.
type Subject struct {
	ID          int64  `db:"id" json:"id"`
	SubjectName string `db:"subject_name" json:"subject_name"`
	SchoolID    int64  `db:"school_id" json:"school_id"`
}

type SubjectInsert struct {
	ID          *int64 `db:"id" json:"id,omitempty"`
	SubjectName string `db:"subject_name" json:"subject_name"`
	SchoolID    int64  `db:"school_id" json:"school_id"`
}

type SubjectUpdate struct {
	ID          *int64  `json:"id,omitempty"`
	SubjectName *string `json:"subject_name,omitempty"`
	SchoolID    *int64  `json:"school_id,omitempty"`
}
