package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salonsync/salon_management_app/internal/core/domain"
)

// RequireRole creates a Gin middleware that rejects requests from users
// whose role is not in the allowed set. It must run after AuthMiddleware.
func RequireRole(allowed ...domain.UserRole) gin.HandlerFunc {
	allowedSet := make(map[domain.UserRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		role, ok := GetUserRoleFromContext(c)
		if !ok {
			logger.Warn("User role missing from context")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		if _, permitted := allowedSet[role]; !permitted {
			logger.Warn("User role not permitted for this action", "role", string(role))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Next()
	}
}
