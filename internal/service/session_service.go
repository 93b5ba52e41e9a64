package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/noah-isme/examdesk-api/internal/models"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
)

type sessionUserReader interface {
	FindByAuthID(ctx context.Context, authUserID string) (*models.User, error)
}

// SessionConfig controls access token verification.
type SessionConfig struct {
	JWTSecret string
	Audience  string
	CacheTTL  time.Duration
}

// SessionService turns a managed-auth access token into an application session.
type SessionService struct {
	users  sessionUserReader
	cache  *CacheService
	logger *zap.Logger
	cfg    SessionConfig
}

// NewSessionService constructs a SessionService.
func NewSessionService(users sessionUserReader, cache *CacheService, cfg SessionConfig, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Minute
	}
	return &SessionService{users: users, cache: cache, logger: logger, cfg: cfg}
}

// Resolve validates the token and loads the caller's user row.
func (s *SessionService) Resolve(ctx context.Context, token string) (*models.Session, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	cacheKey := "session:" + claims.Subject
	var cached models.Session
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return &cached, nil
	}

	user, err := s.users.FindByAuthID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, appErrors.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "no account linked to this identity")
		}
		return nil, err
	}
	if !user.Role.Valid() {
		return nil, appErrors.Clone(appErrors.ErrForbidden, fmt.Sprintf("unsupported role %q", user.Role))
	}

	session := &models.Session{
		UserID:     user.ID,
		AuthUserID: claims.Subject,
		Role:       user.Role,
		SchoolID:   user.SchoolID,
		Username:   user.Username,
		Email:      user.Email,
	}
	s.cache.Set(ctx, cacheKey, session, s.cfg.CacheTTL) //nolint:errcheck
	return session, nil
}

func (s *SessionService) parse(tokenString string) (*models.AuthClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(s.cfg.Audience))
	}
	token, err := jwt.ParseWithClaims(tokenString, &models.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, opts...)
	if err != nil {
		return nil, appErrors.WrapAs(appErrors.ErrUnauthorized, err, "invalid token")
	}

	claims, ok := token.Claims.(*models.AuthClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}
	return claims, nil
}
