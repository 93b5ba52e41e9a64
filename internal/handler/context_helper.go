package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/examdesk-api/internal/middleware"
	"github.com/noah-isme/examdesk-api/internal/models"
	"github.com/noah-isme/examdesk-api/internal/service"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
	"github.com/noah-isme/examdesk-api/pkg/response"
)

func sessionFromContext(c *gin.Context) *models.Session {
	return middleware.SessionFrom(c)
}

func newRecorder(c *gin.Context, dispatcher *service.NotificationDispatcher) *service.NotificationRecorder {
	var userID int64
	if session := sessionFromContext(c); session != nil {
		userID = session.UserID
	}
	return service.NewNotificationRecorder(userID, dispatcher)
}

// respond writes data or err and attaches the recorded notifications to meta.
func respond(c *gin.Context, status int, data interface{}, err error, recorder *service.NotificationRecorder) {
	if notes := recorder.Notifications(); len(notes) > 0 {
		middleware.SetNotifications(c, notes)
	}
	meta := middleware.ExtractMeta(c)
	if err != nil {
		response.Error(c, err, meta)
		return
	}
	response.JSON(c, status, data, meta)
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid "+name)
	}
	return id, nil
}
