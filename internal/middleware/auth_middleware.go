package middleware

import (
	"strings"

	"face-attendance/internal/shared/apperror"
	"face-attendance/internal/shared/response"
	"face-attendance/internal/shared/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards a route group with bearer-token authentication.
// A missing token is 401, an invalid or expired one is 403.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			response.Error(c, token.ErrMissingToken.HTTPStatus, token.ErrMissingToken.Message)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Message)
			c.Abort()
			return
		}

		c.Set("user_id", claims.ID)
		c.Set("email", claims.Email)

		c.Next()
	}
}
