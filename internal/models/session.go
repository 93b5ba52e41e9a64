package models

import "github.com/golang-jwt/jwt/v5"

// Session is the resolved identity of the caller, passed explicitly to every controller.
type Session struct {
	UserID     int64    `json:"user_id"`
	AuthUserID string   `json:"auth_user_id"`
	Role       UserRole `json:"role"`
	SchoolID   int64    `json:"school_id"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
}

// HasRole reports whether the session carries one of roles.
func (s *Session) HasRole(roles ...UserRole) bool {
	if s == nil {
		return false
	}
	for _, role := range roles {
		if s.Role == role {
			return true
		}
	}
	return false
}

// AuthClaims are the claims of an access token issued by the managed auth backend.
// Subject carries the auth user id.
type AuthClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
