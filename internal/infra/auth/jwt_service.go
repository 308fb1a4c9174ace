// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"foodcart/config"
	"foodcart/internal/domain/service"
	"foodcart/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenTypeAccess  = "access"
	defaultAccessTTL = 12 * time.Hour
)

var (
	// ErrInvalidToken is returned for tokens that fail signature, expiry or claim checks.
	ErrInvalidToken = errors.New("invalid access token")
)

// jwtService is a concrete implementation of the TokenService interface using HMAC-signed JWTs.
type jwtService struct {
	accessSecret []byte
	accessTTL    time.Duration
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    defaultAccessTTL,
		now:          time.Now,
	}, nil
}

// IssueAccessToken creates a signed access token carrying the subject and roles.
func (s *jwtService) IssueAccessToken(subject uuid.UUID, roles []string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   subject.String(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.accessTTL).Unix(),
		"type":  tokenTypeAccess,
		"roles": roles,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateAccessToken checks signature, expiry and token type, then extracts the claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.AccessClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	if tokenType, _ := claims["type"].(string); tokenType != tokenTypeAccess {
		return nil, ErrInvalidToken
	}

	subjectStr, _ := claims["sub"].(string)
	subject, err := uuid.Parse(subjectStr)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	expiresAt, err := claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return nil, ErrInvalidToken
	}

	rolesClaim, _ := claims["roles"].([]any)
	roles := make([]string, 0, len(rolesClaim))
	for _, r := range rolesClaim {
		if roleStr, ok := r.(string); ok {
			roles = append(roles, roleStr)
		}
	}

	return &service.AccessClaims{
		Subject:   subject,
		Roles:     roles,
		ExpiresAt: expiresAt.Time,
	}, nil
}
