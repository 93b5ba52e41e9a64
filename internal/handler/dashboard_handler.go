package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/examdesk-api/internal/dto"
	"github.com/noah-isme/examdesk-api/internal/models"
	"github.com/noah-isme/examdesk-api/internal/service"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
	"github.com/noah-isme/examdesk-api/pkg/response"
)

type adminDashboard interface {
	Load(ctx context.Context, session *models.Session, notifier service.Notifier) (*dto.AdminDashboardResponse, error)
}

type teacherDashboard interface {
	Load(ctx context.Context, session *models.Session, notifier service.Notifier) (*dto.TeacherDashboardResponse, error)
	Respond(ctx context.Context, session *models.Session, queryID int64, text string, notifier service.Notifier) (*dto.TeacherDashboardResponse, error)
}

type studentDashboard interface {
	Load(ctx context.Context, session *models.Session, notifier service.Notifier) (*dto.StudentDashboardResponse, error)
	SubmitQuery(ctx context.Context, session *models.Session, text string, examID *int64, notifier service.Notifier) (*dto.StudentDashboardResponse, error)
}

// DashboardHandler serves the role dashboards and their write actions.
type DashboardHandler struct {
	admin      adminDashboard
	teacher    teacherDashboard
	student    studentDashboard
	dispatcher *service.NotificationDispatcher
	validator  *validator.Validate
}

// NewDashboardHandler constructs the handler. dispatcher may be nil.
func NewDashboardHandler(admin adminDashboard, teacher teacherDashboard, student studentDashboard, dispatcher *service.NotificationDispatcher) *DashboardHandler {
	return &DashboardHandler{admin: admin, teacher: teacher, student: student, dispatcher: dispatcher, validator: validator.New()}
}

// Dashboard godoc
// @Summary Dashboard for the caller's role
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	session := sessionFromContext(c)
	if session == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	switch session.Role {
	case models.RoleAdmin:
		h.Admin(c)
	case models.RoleTeacher:
		h.Teacher(c)
	case models.RoleStudent:
		h.Student(c)
	default:
		response.Error(c, appErrors.ErrForbidden)
	}
}

// Admin godoc
// @Summary Admin dashboard
// @Description Schools, users, recent results and pending query count. Sections that fail keep their previous values and are listed in stale_sections.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.AdminDashboardResponse}
// @Router /dashboard/admin [get]
func (h *DashboardHandler) Admin(c *gin.Context) {
	recorder := newRecorder(c, h.dispatcher)
	snap, err := h.admin.Load(c.Request.Context(), sessionFromContext(c), recorder)
	respond(c, http.StatusOK, snap, err, recorder)
}

// Teacher godoc
// @Summary Teacher dashboard
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.TeacherDashboardResponse}
// @Router /dashboard/teacher [get]
func (h *DashboardHandler) Teacher(c *gin.Context) {
	recorder := newRecorder(c, h.dispatcher)
	snap, err := h.teacher.Load(c.Request.Context(), sessionFromContext(c), recorder)
	respond(c, http.StatusOK, snap, err, recorder)
}

// Student godoc
// @Summary Student dashboard
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.StudentDashboardResponse}
// @Failure 404 {object} response.Envelope
// @Router /dashboard/student [get]
func (h *DashboardHandler) Student(c *gin.Context) {
	recorder := newRecorder(c, h.dispatcher)
	snap, err := h.student.Load(c.Request.Context(), sessionFromContext(c), recorder)
	respond(c, http.StatusOK, snap, err, recorder)
}

// RespondToQuery godoc
// @Summary Answer a student query
// @Tags Queries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Query ID"
// @Param payload body dto.RespondQueryRequest true "Response"
// @Success 200 {object} response.Envelope{data=dto.TeacherDashboardResponse}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /dashboard/teacher/queries/{id}/response [post]
func (h *DashboardHandler) RespondToQuery(c *gin.Context) {
	queryID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.RespondQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.WrapAs(appErrors.ErrValidation, err, "invalid response payload"))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		response.Error(c, appErrors.WrapAs(appErrors.ErrValidation, err, "response text is required"))
		return
	}

	recorder := newRecorder(c, h.dispatcher)
	snap, err := h.teacher.Respond(c.Request.Context(), sessionFromContext(c), queryID, req.ResponseText, recorder)
	respond(c, http.StatusOK, snap, err, recorder)
}

// SubmitQuery godoc
// @Summary Raise a query about an exam result
// @Tags Queries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SubmitQueryRequest true "Query"
// @Success 201 {object} response.Envelope{data=dto.StudentDashboardResponse}
// @Failure 400 {object} response.Envelope
// @Router /dashboard/student/queries [post]
func (h *DashboardHandler) SubmitQuery(c *gin.Context) {
	var req dto.SubmitQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.WrapAs(appErrors.ErrValidation, err, "invalid query payload"))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		response.Error(c, appErrors.WrapAs(appErrors.ErrValidation, err, "query text is required"))
		return
	}

	recorder := newRecorder(c, h.dispatcher)
	snap, err := h.student.SubmitQuery(c.Request.Context(), sessionFromContext(c), req.QueryText, req.ExamID, recorder)
	respond(c, http.StatusCreated, snap, err, recorder)
}
