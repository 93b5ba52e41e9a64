package models

// Exam is a sitting of a subject. ExamDate is a calendar date (YYYY-MM-DD).
type Exam struct {
	ID        int64  `db:"id" json:"id"`
	ExamName  string `db:"exam_name" json:"exam_name"`
	ExamDate  string `db:"exam_date" json:"exam_date"`
	SubjectID int64  `db:"subject_id" json:"subject_id"`
}

type ExamInsert struct {
	ID        *int64 `db:"id" json:"id,omitempty"`
	ExamName  string `db:"exam_name" json:"exam_name"`
	ExamDate  string `db:"exam_date" json:"exam_date"`
	SubjectID int64  `db:"subject_id" json:"subject_id"`
}

type ExamUpdate struct {
	ID        *int64  `json:"id,omitempty"`
	ExamName  *string `json:"exam_name,omitempty"`
	ExamDate  *string `json:"exam_date,omitempty"`
	SubjectID *int64  `json:"subject_id,omitempty"`
}
