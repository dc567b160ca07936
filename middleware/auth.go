package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"noticeflow/auth"
	"noticeflow/logger"
)

// TokenVerifier is the part of auth.Service the middleware needs.
type TokenVerifier interface {
	VerifyToken(tokenString string) (string, auth.Role, error)
}

// Auth validates the bearer JWT and stores the owner identity in context.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		userID, role, err := verifier.VerifyToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("owner", userID)
		c.Set("role", string(role))

		ctx := context.WithValue(c.Request.Context(), logger.OwnerKey, userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetOwner gets the authenticated owner id from context
func GetOwner(c *gin.Context) string {
	if owner, exists := c.Get("owner"); exists {
		return owner.(string)
	}
	return ""
}

// GetRole gets the authenticated role from context
func GetRole(c *gin.Context) string {
	if role, exists := c.Get("role"); exists {
		return role.(string)
	}
	return ""
}
