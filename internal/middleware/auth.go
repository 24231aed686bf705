// Package middleware provides HTTP middleware for the user service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GunarsK-portfolio/user-service/internal/models"
	"github.com/GunarsK-portfolio/user-service/internal/service"
)

// userContextKey is the gin context key holding the resolved account.
const userContextKey = "currentUser"

// RequireAuth authenticates the request from its Authorization header and
// stores the resolved account in the gin context. The account is loaded
// from the database on every request, so its role and active flag are
// always current regardless of what the token claims.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := ExtractBearer(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		user, err := authService.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// ExtractBearer returns the token from an Authorization header value.
// The header must consist of exactly two whitespace-separated parts with a
// case-insensitive "Bearer" scheme; anything else reports ok=false.
func ExtractBearer(header string) (token string, ok bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// CurrentUser returns the account stored by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
