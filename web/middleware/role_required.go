package middleware

import (
	"net/http"

	"github.com/DivyaGovardhan/design-ui/database/model"
	"github.com/DivyaGovardhan/design-ui/web/session"

	"github.com/gin-gonic/gin"
)

// RoleRequired rejects requests whose session user does not hold one of
// the given roles. Lacking the grant must produce an outright rejection,
// never a degraded page.
func RoleRequired(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]bool)
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		user := session.GetLoginUser(c)
		if user == nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if !allowed[user.Role] {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// StaffRequired admits staff and admin accounts only.
func StaffRequired() gin.HandlerFunc {
	return RoleRequired(model.RoleStaff, model.RoleAdmin)
}
