package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/learnly/server/internal/auth"
)

// userIDKey is the echo context key the bearer middleware stores the
// authenticated user id under.
const userIDKey = "userID"

// RequireUser returns middleware that validates the bearer token and
// attaches the resolved user id to the request context.
func RequireUser(secret []byte, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Message: "Authorization header missing",
				})
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Message: "Invalid authorization header",
				})
			}

			claims, err := auth.ValidateToken(secret, parts[1])
			if err != nil {
				logger.Warn("Request rejected: invalid token", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Message: "Invalid or expired token",
				})
			}

			if claims.UserID == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Message: "User ID not found in token",
				})
			}

			c.Set(userIDKey, claims.UserID)
			return next(c)
		}
	}
}
