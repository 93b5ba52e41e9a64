package models

import "github.com/volatiletech/null/v8"

// ExamResult is the graded result document for one student and exam.
type ExamResult struct {
	ID            int64      `db:"id" json:"id"`
	ExamID        int64      `db:"exam_id" json:"exam_id"`
	StudentID     int64      `db:"student_id" json:"student_id"`
	ResultPDFURL  string     `db:"result_pdf_url" json:"result_pdf_url"`
	UploadedAt    null.Time  `db:"uploaded_at" json:"uploaded_at"`
	TotalOCRPages null.Int64 `db:"total_ocr_pages" json:"total_ocr_pages"`
}

type ExamResultInsert struct {
	ID            *int64      `db:"id" json:"id,omitempty"`
	ExamID        int64       `db:"exam_id" json:"exam_id"`
	StudentID     int64       `db:"student_id" json:"student_id"`
	ResultPDFURL  string      `db:"result_pdf_url" json:"result_pdf_url"`
	UploadedAt    *null.Time  `db:"uploaded_at" json:"uploaded_at,omitempty"`
	TotalOCRPages *null.Int64 `db:"total_ocr_pages" json:"total_ocr_pages,omitempty"`
}

type ExamResultUpdate struct {
	ID            *int64      `json:"id,omitempty"`
	ExamID        *int64      `json:"exam_id,omitempty"`
	StudentID     *int64      `json:"student_id,omitempty"`
	ResultPDFURL  *string     `json:"result_pdf_url,omitempty"`
	UploadedAt    *null.Time  `json:"uploaded_at,omitempty"`
	TotalOCRPages *null.Int64 `json:"total_ocr_pages,omitempty"`
}
