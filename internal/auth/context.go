package auth

import "github.com/gin-gonic/gin"

const (
	contextUserID = "userId"
	contextRole   = "role"
)

// SetIdentity stores verified claims on the request
func SetIdentity(c *gin.Context, claims Claims) {
	c.Set(contextUserID, claims.UserID)
	c.Set(contextRole, claims.Role)
}

// UserID returns the verified caller, if any
func UserID(c *gin.Context) (string, bool) {
	id := c.GetString(contextUserID)
	return id, id != ""
}

// IsAdmin reports whether the verified caller carries the admin role
func IsAdmin(c *gin.Context) bool {
	return c.GetString(contextRole) == RoleAdmin
}
