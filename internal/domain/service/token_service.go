package service

import (
	"time"

	"github.com/google/uuid"
)

// AccessClaims is what the API needs to know about the caller.
type AccessClaims struct {
	Subject   uuid.UUID
	Roles     []string
	ExpiresAt time.Time
}

// HasRole reports whether the caller holds role.
func (c *AccessClaims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}

	return false
}

// TokenService issues and validates the bearer tokens used by back-office managers.
type TokenService interface {
	// IssueAccessToken creates a signed access token for a subject.
	IssueAccessToken(subject uuid.UUID, roles []string) (string, error)

	// ValidateAccessToken parses and verifies an access token.
	ValidateAccessToken(token string) (*AccessClaims, error)
}
