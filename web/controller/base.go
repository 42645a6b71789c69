// Package controller provides HTTP request handlers for the design-ui
// panel: registration, login, application submission and redaction, and
// category management.
package controller

import (
	"net/http"

	"github.com/DivyaGovardhan/design-ui/logger"
	"github.com/DivyaGovardhan/design-ui/web/locale"
	"github.com/DivyaGovardhan/design-ui/web/session"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// BaseController provides common functionality for all controllers, including authentication checks.
type BaseController struct{}

// checkLogin is a middleware that verifies user authentication and handles unauthorized access.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, I18nWeb(c, "pages.login.title"))
		} else {
			c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login")
		}
		c.Abort()
	} else {
		c.Next()
	}
}

// I18nWeb retrieves an internationalized message using the localizer
// negotiated for this request.
func I18nWeb(c *gin.Context, name string, params ...string) string {
	if obj, exists := c.Get("localizer"); exists {
		if localizer, ok := obj.(*i18n.Localizer); ok {
			return locale.Localize(localizer, name, params...)
		}
	}
	logger.Warning("localizer not found in gin context!")
	return locale.I18n(locale.Web, name, params...)
}
