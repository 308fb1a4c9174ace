package middleware

import (
	"strings"

	"foodcart/internal/delivery/api/response"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const claimsKey = "claims"

// AuthMiddleware validates bearer access tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		c.Set(claimsKey, claims)

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := GetClaims(c)
			if !ok || !claims.HasRole(requiredRole) {
				return response.HandleAppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// GetClaims returns the claims stored by Authenticate.
func GetClaims(c echo.Context) (*service.AccessClaims, bool) {
	claims, ok := c.Get(claimsKey).(*service.AccessClaims)

	return claims, ok && claims != nil
}
