package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/examdesk-api/internal/middleware"
	"github.com/noah-isme/examdesk-api/internal/models"
)

type responseEnvelope struct {
	Data  map[string]interface{} `json:"data"`
	Error map[string]interface{} `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func withSession(session *models.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session != nil {
			c.Set(middleware.ContextSessionKey, session)
		}
		c.Next()
	}
}

func testRouter(session *models.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.WithResponseMeta(), withSession(session))
	return r
}
