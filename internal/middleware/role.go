package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainUser "asset-tracker/internal/domain/user"
	"asset-tracker/pkg/utils"
)

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.ErrorResponse(c, http.StatusForbidden, "Role not found in context")
			c.Abort()
			return
		}

		userRole := role.(string)

		for _, allowedRole := range allowedRoles {
			if userRole == allowedRole {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
		c.Abort()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RoleMiddleware(domainUser.RoleAdmin)
}

// StaffOnly admits admins too; the admin role is a superset of staff.
func StaffOnly() gin.HandlerFunc {
	return RoleMiddleware(domainUser.RoleStaff, domainUser.RoleAdmin)
}
