package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/examdesk-api/internal/models"
)

var (
	resultsStudentJoin = joinOn(models.TableExamResults, "er", models.TableStudents, "st")
	resultsExamJoin    = joinOn(models.TableExamResults, "er", models.TableExams, "e")
	studentsUserJoin   = joinOn(models.TableStudents, "st", models.TableUsers, "u")
	examsSubjectJoin   = joinOn(models.TableExams, "e", models.TableSubjects, "sub")

	resultRosterFrom = `FROM exam_results er ` + resultsStudentJoin + ` ` + studentsUserJoin + ` ` +
		resultsExamJoin + ` ` + examsSubjectJoin
)

// ExamResultRepository reads graded result documents.
type ExamResultRepository struct {
	db *sqlx.DB
}

// NewExamResultRepository creates a new repository instance.
func NewExamResultRepository(db *sqlx.DB) *ExamResultRepository {
	return &ExamResultRepository{db: db}
}

// ListRecent returns the latest uploaded results with student, exam and subject names.
func (r *ExamResultRepository) ListRecent(ctx context.Context, limit int) ([]models.AdminExamResult, error) {
	query := `SELECT er.id, er.result_pdf_url, er.uploaded_at, u.username, e.exam_name, sub.subject_name ` +
		resultRosterFrom + ` ORDER BY er.uploaded_at DESC LIMIT $1`
	results := make([]models.AdminExamResult, 0)
	if err := r.db.SelectContext(ctx, &results, query, limit); err != nil {
		return nil, classify(err, "list recent results")
	}
	return results, nil
}

// ListDetailed returns every result with its student and exam references.
func (r *ExamResultRepository) ListDetailed(ctx context.Context) ([]models.TeacherExamResult, error) {
	query := `SELECT er.id, er.student_id, er.exam_id, er.result_pdf_url, er.uploaded_at, u.username, e.exam_name, sub.subject_name ` +
		resultRosterFrom + ` ORDER BY er.uploaded_at DESC`
	results := make([]models.TeacherExamResult, 0)
	if err := r.db.SelectContext(ctx, &results, query); err != nil {
		return nil, classify(err, "list results")
	}
	return results, nil
}

// ListByStudent returns the results of one student, newest first.
func (r *ExamResultRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.StudentExamResult, error) {
	query := `SELECT er.id, er.exam_id, er.result_pdf_url, er.uploaded_at, er.total_ocr_pages, e.exam_name, e.exam_date::text AS exam_date, sub.subject_name FROM exam_results er ` +
		resultsExamJoin + ` ` + examsSubjectJoin + ` WHERE er.student_id = $1 ORDER BY er.uploaded_at DESC`
	results := make([]models.StudentExamResult, 0)
	if err := r.db.SelectContext(ctx, &results, query, studentID); err != nil {
		return nil, classify(err, "list student results")
	}
	return results, nil
}
