package helpers

import "github.com/golang-jwt/jwt/v5"

// AuthClaims is the request-scoped identity produced by the auth middleware.
// UserID is the organizer's id as a hex ObjectID string; the core services
// treat it as an opaque owner identity.
type AuthClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func (ac *AuthClaims) IsOwner(userID string) bool {
	return ac.UserID == userID
}
