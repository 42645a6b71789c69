package controller

import (
	"net"
	"net/http"

	"github.com/DivyaGovardhan/design-ui/config"
	"github.com/DivyaGovardhan/design-ui/logger"
	"github.com/DivyaGovardhan/design-ui/web/entity"
	"github.com/DivyaGovardhan/design-ui/web/forms"
	"github.com/DivyaGovardhan/design-ui/web/session"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		return value
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// pureJsonMsg sends a pure JSON message response with custom status code.
func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}

// html renders an HTML template with the provided data and title key.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["base_path"] = c.GetString("base_path")
	if _, ok := data["user"]; !ok {
		data["user"] = session.GetLoginUser(c)
	}
	c.HTML(http.StatusOK, name, getContext(data))
}

// htmlWithErrors re-renders a form page with its validation errors.
func htmlWithErrors(c *gin.Context, name string, title string, data gin.H, errs forms.Errors) {
	if data == nil {
		data = gin.H{}
	}
	data["errors"] = errs
	html(c, name, title, data)
}

// getContext adds version and other context data to the provided gin.H.
func getContext(h gin.H) gin.H {
	a := gin.H{
		"cur_ver": config.GetVersion(),
	}
	for key, value := range h {
		a[key] = value
	}
	return a
}

// isAjax checks if the request is an AJAX request.
func isAjax(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

// logFormErrors records failed validations for troubleshooting.
func logFormErrors(form string, errs forms.Errors) {
	if errs.HasAny() {
		logger.Debugf("%s validation failed: %v", form, errs)
	}
}
