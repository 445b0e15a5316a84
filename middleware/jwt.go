package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rehanpathan0801/PGFinder/config"
	"github.com/rehanpathan0801/PGFinder/models"
	"github.com/rehanpathan0801/PGFinder/utils"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

// JWTMiddleware validates the bearer token, loads the user it names and
// attaches identity to the request context. Blocked or deleted users are
// rejected even when their token is still valid.
func JWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Authorization header is required",
				})
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Invalid authorization header format",
				})
			}

			claims, err := utils.ValidateJWT(tokenParts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Invalid token",
				})
			}

			var user models.User
			err = config.GetCollection(config.UserCollectionName()).
				FindOne(context.Background(), bson.M{"_id": claims.UserID}).
				Decode(&user)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Invalid token",
				})
			}

			if user.IsBlocked {
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": "Your account has been blocked. Contact admin.",
				})
			}

			c.Set("user_id", user.ID)
			c.Set("user_email", user.Email)
			c.Set("user_role", user.Role)

			return next(c)
		}
	}
}

// RequireRoles gates a route to the given roles. Admin and super-admin are
// interchangeable: listing either one admits both.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRole, _ := c.Get("user_role").(string)
			for _, role := range roles {
				if role == userRole {
					return next(c)
				}
				if models.IsAdminRole(role) && models.IsAdminRole(userRole) {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{
				"error": "Access denied",
			})
		}
	}
}
