package dto

import "github.com/noah-isme/examdesk-api/internal/models"

// Dashboard section names, used for stale markers and failure metrics.
const (
	SectionSchools  = "schools"
	SectionUsers    = "users"
	SectionResults  = "results"
	SectionPending  = "pending_queries"
	SectionStudents = "students"
	SectionQueries  = "queries"
	SectionStudent  = "student"
)

// AdminStats aggregates the admin overview counters.
type AdminStats struct {
	TotalSchools   int `json:"totalSchools"`
	TotalUsers     int `json:"totalUsers"`
	TotalStudents  int `json:"totalStudents"`
	TotalTeachers  int `json:"totalTeachers"`
	TotalAdmins    int `json:"totalAdmins"`
	TotalResults   int `json:"totalResults"`
	PendingQueries int `json:"pendingQueries"`
}

// AdminDashboardResponse is the admin dashboard snapshot.
type AdminDashboardResponse struct {
	Stats         AdminStats               `json:"stats"`
	Schools       []models.School          `json:"schools"`
	Users         []models.UserWithSchool  `json:"users"`
	RecentResults []models.AdminExamResult `json:"recentResults"`
	StaleSections []string                 `json:"stale_sections,omitempty"`
}

// TeacherStats aggregates the teacher overview counters.
type TeacherStats struct {
	TotalStudents  int `json:"totalStudents"`
	TotalResults   int `json:"totalResults"`
	PendingQueries int `json:"pendingQueries"`
}

// TeacherDashboardResponse is the teacher dashboard snapshot.
type TeacherDashboardResponse struct {
	Stats         TeacherStats               `json:"stats"`
	Students      []models.StudentWithUser   `json:"students"`
	Results       []models.TeacherExamResult `json:"results"`
	Queries       []models.TeacherQuery      `json:"queries"`
	StaleSections []string                   `json:"stale_sections,omitempty"`
}

// StudentStats aggregates the student overview counters.
type StudentStats struct {
	TotalResults    int `json:"totalResults"`
	PendingQueries  int `json:"pendingQueries"`
	AnsweredQueries int `json:"answeredQueries"`
}

// StudentDashboardResponse is the student dashboard snapshot.
type StudentDashboardResponse struct {
	Student       *models.StudentRef         `json:"student"`
	Stats         StudentStats               `json:"stats"`
	Results       []models.StudentExamResult `json:"results"`
	Queries       []models.StudentQuery      `json:"queries"`
	StaleSections []string                   `json:"stale_sections,omitempty"`
}

// RespondQueryRequest is the teacher's answer to a query.
type RespondQueryRequest struct {
	ResponseText string `json:"response_text" validate:"required,max=5000"`
}

// SubmitQueryRequest is a new query raised by a student.
type SubmitQueryRequest struct {
	QueryText string `json:"query_text" validate:"required,max=5000"`
	ExamID    *int64 `json:"exam_id,omitempty" validate:"omitempty,gt=0"`
}

// Normalize replaces nil lists with empty ones so they encode as [].
func (r *AdminDashboardResponse) Normalize() {
	if r.Schools == nil {
		r.Schools = []models.School{}
	}
	if r.Users == nil {
		r.Users = []models.UserWithSchool{}
	}
	if r.RecentResults == nil {
		r.RecentResults = []models.AdminExamResult{}
	}
}

// Normalize replaces nil lists with empty ones so they encode as [].
func (r *TeacherDashboardResponse) Normalize() {
	if r.Students == nil {
		r.Students = []models.StudentWithUser{}
	}
	if r.Results == nil {
		r.Results = []models.TeacherExamResult{}
	}
	if r.Queries == nil {
		r.Queries = []models.TeacherQuery{}
	}
}

// Normalize replaces nil lists with empty ones so they encode as [].
func (r *StudentDashboardResponse) Normalize() {
	if r.Results == nil {
		r.Results = []models.StudentExamResult{}
	}
	if r.Queries == nil {
		r.Queries = []models.StudentQuery{}
	}
}
