package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/examdesk-api/internal/models"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
	"github.com/noah-isme/examdesk-api/pkg/response"
)

// ContextSessionKey is the gin context key storing the resolved *models.Session.
const ContextSessionKey = "session"

type sessionResolver interface {
	Resolve(ctx context.Context, token string) (*models.Session, error)
}

// Session requires a valid bearer token and stores the caller's session.
// Websocket upgrades may pass the token as the access_token query parameter.
func Session(resolver sessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		session, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextSessionKey, session)
		c.Next()
	}
}

// SessionFrom returns the session stored by Session, if any.
func SessionFrom(c *gin.Context) *models.Session {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return nil
	}
	session, _ := value.(*models.Session)
	return session
}

func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if token := c.Query("access_token"); token != "" && strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
			return token, nil
		}
		return "", appErrors.ErrUnauthorized
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}
