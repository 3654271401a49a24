package middleware

import (
	"net/http"
	"strings"

	userRepo "wanderluxe/database/repository/user"
	"wanderluxe/models"
	"wanderluxe/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where authenticated user documents are stored on the
// request context.
const ContextUserKey = "currentUser"

// JWTAuthMiddleware authenticates the bearer token and loads the account
// onto the context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account not found"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireAgent allows only agent or admin accounts through. Must run after
// JWTAuthMiddleware.
func RequireAgent() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || (user.Role != models.RoleAgent && user.Role != models.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "agent access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by JWTAuthMiddleware, or
// nil when the request is unauthenticated.
func CurrentUser(c *gin.Context) *models.User {
	val, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}
