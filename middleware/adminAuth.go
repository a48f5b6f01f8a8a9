package middleware

import (
	"net/http"

	userRepo "fitpulse/database/repository/user"
	"fitpulse/models"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware authenticates the account and requires the admin role.
func JWTAuthAdminMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	auth := JWTAuthUserMiddleware(users)
	return func(c *gin.Context) {
		auth(c)
		if c.IsAborted() {
			return
		}
		viewer, ok := ViewerFrom(c)
		if !ok || viewer.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized admin access"})
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
