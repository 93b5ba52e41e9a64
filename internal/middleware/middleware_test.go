package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/examdesk-api/internal/models"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
)

type stubResolver struct {
	sessions map[string]*models.Session
	lastTok  string
}

func (s *stubResolver) Resolve(_ context.Context, token string) (*models.Session, error) {
	s.lastTok = token
	if session, ok := s.sessions[token]; ok {
		return session, nil
	}
	return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
}

func newRouter(resolver *stubResolver, roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secure", Session(resolver), RequireRoles(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": SessionFrom(c).UserID})
	})
	return r
}

func TestSessionAndRoles(t *testing.T) {
	resolver := &stubResolver{sessions: map[string]*models.Session{
		"teacher-token": {UserID: 7, Role: models.RoleTeacher},
		"student-token": {UserID: 9, Role: models.RoleStudent},
	}}
	router := newRouter(resolver, models.RoleTeacher, models.RoleAdmin)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"unknown token", "Bearer nope", http.StatusUnauthorized},
		{"wrong role", "Bearer student-token", http.StatusForbidden},
		{"allowed", "Bearer teacher-token", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestSessionAcceptsQueryTokenOnUpgrade(t *testing.T) {
	resolver := &stubResolver{sessions: map[string]*models.Session{"ws-token": {UserID: 3, Role: models.RoleStudent}}}
	router := newRouter(resolver, models.RoleStudent)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure?access_token=ws-token", nil)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/secure?access_token=ws-token", nil)
	req.Header.Set("Upgrade", "websocket")
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ws-token", resolver.lastTok)
}

func TestResponseMetaCarriesNotifications(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(WithResponseMeta())
	r.GET("/", func(c *gin.Context) {
		SetNotifications(c, []models.Notification{{Title: "Error"}})
		c.JSON(http.StatusOK, gin.H{"meta": ExtractMeta(c)})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var body struct {
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Meta, "processing_time_ms")
	assert.Len(t, body.Meta["notifications"], 1)
}
