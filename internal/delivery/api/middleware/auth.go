package middleware

import (
	"net/http"
	"slices"
	"strings"

	"slotwise/internal/delivery/api/response"
	deliverycontext "slotwise/internal/delivery/context"
	"slotwise/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	keyShopID = "shopID"
	keyScopes = "scopes"
)

// AuthMiddleware authenticates shop-scoped bearer tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the shop on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(keyShopID, claims.ShopID)
		c.Set(keyScopes, claims.Scopes)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithShopID(c.Request().Context(), claims.ShopID)))

		return next(c)
	}
}

// GetShopID returns the shop authenticated for this request.
func GetShopID(c echo.Context) (string, bool) {
	shopID, ok := c.Get(keyShopID).(string)

	return shopID, ok && shopID != ""
}

// RequireScope rejects tokens that were not granted scope.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireScope(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scopes, _ := c.Get(keyScopes).([]string)
			if !slices.Contains(scopes, scope) {
				return response.Error(c, http.StatusForbidden, "FORBIDDEN", "Permission denied: require '"+scope+"' scope", nil)
			}

			return next(c)
		}
	}
}
