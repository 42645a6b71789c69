package middleware

import (
	"strconv"
	"strings"

	"github.com/DivyaGovardhan/design-ui/logger"
	"github.com/DivyaGovardhan/design-ui/web/service"
	"github.com/DivyaGovardhan/design-ui/web/session"

	"github.com/gin-gonic/gin"
)

// AuditMiddleware records mutating actions of logged-in users.
func AuditMiddleware() gin.HandlerFunc {
	auditService := service.AuditLogService{}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method == "GET" || shouldSkipAudit(path) {
			c.Next()
			return
		}

		// Log after the handler ran, so the status code is final and a
		// fresh login already carries its session user.
		c.Next()

		user := session.GetLoginUser(c)
		if user == nil {
			return
		}

		action, resource, resourceId := extractActionFromPath(c.Request.Method, path, c.Param("id"))

		details := map[string]any{
			"method": c.Request.Method,
			"path":   path,
			"status": c.Writer.Status(),
		}

		if err := auditService.LogAction(
			user.Id,
			user.Username,
			action,
			resource,
			resourceId,
			c.ClientIP(),
			c.GetHeader("User-Agent"),
			details,
		); err != nil {
			logger.Warning("Failed to log audit action:", err)
		}
	}
}

func shouldSkipAudit(path string) bool {
	skipPaths := []string{
		"/uploads/",
		"/assets/",
		"/favicon.ico",
	}
	for _, skipPath := range skipPaths {
		if strings.Contains(path, skipPath) {
			return true
		}
	}
	return false
}

// extractActionFromPath maps a route to an audit action and resource.
func extractActionFromPath(method, path, idParam string) (action, resource string, resourceId int) {
	switch {
	case strings.Contains(path, "/create"):
		action = "CREATE"
	case strings.Contains(path, "/redact"):
		action = "UPDATE"
	case strings.Contains(path, "/delete"):
		action = "DELETE"
	case strings.Contains(path, "/login"):
		action = "LOGIN"
	default:
		action = method
	}

	switch {
	case strings.Contains(path, "/app"):
		resource = "application"
	case strings.Contains(path, "/categ"):
		resource = "category"
	case strings.Contains(path, "/register"), strings.Contains(path, "/login"):
		resource = "user"
	default:
		resource = "unknown"
	}

	resourceId, _ = strconv.Atoi(idParam)
	return action, resource, resourceId
}
