package middleware

import (
	"net/http"

	"fitpulse/models"

	"github.com/gin-gonic/gin"
)

// RequireRoles aborts unless the authenticated account holds one of the given
// roles. It must run after JWTAuthUserMiddleware.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, ok := ViewerFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		for _, r := range roles {
			if viewer.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
	}
}

// ViewerFrom returns the authenticated viewer set by JWTAuthUserMiddleware.
func ViewerFrom(c *gin.Context) (models.Viewer, bool) {
	v, exists := c.Get("viewer")
	if !exists {
		return models.Viewer{}, false
	}
	viewer, ok := v.(models.Viewer)
	return viewer, ok
}
