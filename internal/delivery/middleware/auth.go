package middleware

import (
	"strings"

	"userreg/internal/domain/entity"
	domainerrors "userreg/internal/domain/errors"
	"userreg/internal/domain/service"
	"userreg/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyAccountID = "accountID"
	contextKeyUsername  = "username"
	contextKeyRole      = "role"

	bearerPrefix = "Bearer "
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller's identity on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrUnauthorized.WithDetails("token must be a bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
		}

		accountID, err := claims.AccountID()
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthorized, "invalid subject claim")
		}

		role, err := entity.ParseRole(claims.Role)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthorized, "invalid role claim")
		}

		c.Set(contextKeyAccountID, accountID)
		c.Set(contextKeyUsername, claims.Username)
		c.Set(contextKeyRole, role)

		return next(c)
	}
}

// RequireAccountManager admits roles allowed to list and delete other accounts.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAccountManager() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := GetRole(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			if !role.CanManageAccounts() {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// GetAccountUUID returns the authenticated account id.
func GetAccountUUID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(contextKeyAccountID).(uuid.UUID)

	return id, ok
}

// GetAccountID returns the authenticated account id as a string, or "" for anonymous requests.
func GetAccountID(c echo.Context) string {
	if id, ok := GetAccountUUID(c); ok {
		return id.String()
	}

	return ""
}

// GetUsername returns the authenticated username.
func GetUsername(c echo.Context) (string, bool) {
	username, ok := c.Get(contextKeyUsername).(string)

	return username, ok
}

// GetRole returns the authenticated role.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(contextKeyRole).(entity.Role)

	return role, ok
}
