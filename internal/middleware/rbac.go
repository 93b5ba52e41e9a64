package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/examdesk-api/internal/models"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
	"github.com/noah-isme/examdesk-api/pkg/response"
)

// RequireRoles lets the request through only when the session carries one of roles.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFrom(c)
		if session == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if !session.HasRole(roles...) {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
