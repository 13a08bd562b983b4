package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/p-chandler/restaurant-loyalty-app/pkg/jwtutil"
	"github.com/p-chandler/restaurant-loyalty-app/pkg/logger"
)

// IdentityKey is the echo context key under which the authenticated caller
// address is stored.
const IdentityKey = "identity"

// JWTAuthMiddleware creates a middleware that validates JWT tokens and makes
// the caller address available to handlers.
func JWTAuthMiddleware(jwtUtil *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("Missing authorization header")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization header"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("Invalid authorization header format")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization header format"})
			}

			claims, err := jwtUtil.ValidateToken(parts[1])
			if err != nil {
				log.Warn("Invalid or expired token", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}
			if claims.Address == "" {
				log.Warn("Token carries no address claim")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set(IdentityKey, claims.Address)
			log.Debug("JWT token validated successfully",
				zap.String("address", claims.Address))

			return next(c)
		}
	}
}

// Identity returns the authenticated caller address set by JWTAuthMiddleware,
// or the empty string when the request is unauthenticated.
func Identity(c echo.Context) string {
	addr, _ := c.Get(IdentityKey).(string)
	return addr
}
