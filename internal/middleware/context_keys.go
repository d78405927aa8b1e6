package middleware

import (
	"github.com/andikarp/hris-backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// employeeIDKey is the key used to store the authenticated employee's ID in
// the request context. Using a custom type prevents collisions.
const employeeIDKey = contextKey("employeeID")

const roleKey = contextKey("role")

// GetEmployeeIDFromContext retrieves the authenticated employee ID from the
// request context. It returns the ID and a boolean indicating if it was found.
func GetEmployeeIDFromContext(c *gin.Context) (string, bool) {
	v := c.Request.Context().Value(employeeIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// GetRoleFromContext retrieves the authenticated employee's role from the
// request context.
func GetRoleFromContext(c *gin.Context) (domain.Role, bool) {
	v := c.Request.Context().Value(roleKey)
	if v == nil {
		return "", false
	}
	role, ok := v.(domain.Role)
	return role, ok
}
