package models

import "github.com/volatiletech/null/v8"

// ExamPaper is a student's uploaded answer script. FileURL is opaque.
type ExamPaper struct {
	ID         int64     `db:"id" json:"id"`
	ExamID     int64     `db:"exam_id" json:"exam_id"`
	StudentID  int64     `db:"student_id" json:"student_id"`
	FileURL    string    `db:"file_url" json:"file_url"`
	UploadedAt null.Time `db:"uploaded_at" json:"uploaded_at"`
}

type ExamPaperInsert struct {
	ID         *int64     `db:"id" json:"id,omitempty"`
	ExamID     int64      `db:"exam_id" json:"exam_id"`
	StudentID  int64      `db:"student_id" json:"student_id"`
	FileURL    string     `db:"file_url" json:"file_url"`
	UploadedAt *null.Time `db:"uploaded_at" json:"uploaded_at,omitempty"`
}

type ExamPaperUpdate struct {
	ID         *int64     `json:"id,omitempty"`
	ExamID     *int64     `json:"exam_id,omitempty"`
	StudentID  *int64     `json:"student_id,omitempty"`
	FileURL    *string    `json:"file_url,omitempty"`
	UploadedAt *null.Time `json:"uploaded_at,omitempty"`
}
