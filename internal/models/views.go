package models

import "github.com/volatiletech/null/v8"

// UserWithSchool is a user joined with the owning school's name.
type UserWithSchool struct {
	ID         int64     `db:"id" json:"id"`
	Username   string    `db:"username" json:"username"`
	Email      string    `db:"email" json:"email"`
	Role       UserRole  `db:"role" json:"role"`
	SchoolID   int64     `db:"school_id" json:"school_id"`
	SchoolName string    `db:"school_name" json:"school_name"`
	CreatedAt  null.Time `db:"created_at" json:"created_at"`
}

// AdminExamResult is a recent result as listed on the admin dashboard.
type AdminExamResult struct {
	ID           int64     `db:"id" json:"id"`
	ResultPDFURL string    `db:"result_pdf_url" json:"result_pdf_url"`
	UploadedAt   null.Time `db:"uploaded_at" json:"uploaded_at"`
	Username     string    `db:"username" json:"username"`
	ExamName     string    `db:"exam_name" json:"exam_name"`
	SubjectName  string    `db:"subject_name" json:"subject_name"`
}

// TeacherExamResult is a result with its student and exam references.
type TeacherExamResult struct {
	ID           int64     `db:"id" json:"id"`
	StudentID    int64     `db:"student_id" json:"student_id"`
	ExamID       int64     `db:"exam_id" json:"exam_id"`
	ResultPDFURL string    `db:"result_pdf_url" json:"result_pdf_url"`
	UploadedAt   null.Time `db:"uploaded_at" json:"uploaded_at"`
	Username     string    `db:"username" json:"username"`
	ExamName     string    `db:"exam_name" json:"exam_name"`
	SubjectName  string    `db:"subject_name" json:"subject_name"`
}

// StudentExamResult is one of the caller's own results.
type StudentExamResult struct {
	ID            int64      `db:"id" json:"id"`
	ExamID        int64      `db:"exam_id" json:"exam_id"`
	ResultPDFURL  string     `db:"result_pdf_url" json:"result_pdf_url"`
	UploadedAt    null.Time  `db:"uploaded_at" json:"uploaded_at"`
	TotalOCRPages null.Int64 `db:"total_ocr_pages" json:"total_ocr_pages"`
	ExamName      string     `db:"exam_name" json:"exam_name"`
	ExamDate      string     `db:"exam_date" json:"exam_date"`
	SubjectName   string     `db:"subject_name" json:"subject_name"`
}

// StudentWithUser is a student row with the linked account's identity.
type StudentWithUser struct {
	ID       int64  `db:"id" json:"id"`
	UserID   int64  `db:"user_id" json:"user_id"`
	ClassID  int64  `db:"class_id" json:"class_id"`
	Username string `db:"username" json:"username"`
	Email    string `db:"email" json:"email"`
}

// TeacherQuery is a query joined with the asking student and, when set, the exam.
type TeacherQuery struct {
	Query
	Username string      `db:"username" json:"username"`
	ExamName null.String `db:"exam_name" json:"exam_name"`
}

// StudentQuery is one of the caller's own queries with the exam name when set.
type StudentQuery struct {
	Query
	ExamName null.String `db:"exam_name" json:"exam_name"`
}

// StudentRef identifies the student row of the signed-in user.
type StudentRef struct {
	ID      int64 `db:"id" json:"id"`
	ClassID int64 `db:"class_id" json:"class_id"`
}
