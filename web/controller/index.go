package controller

import (
	"net/http"
	"sync"
	"text/template"

	"github.com/DivyaGovardhan/design-ui/database/model"
	"github.com/DivyaGovardhan/design-ui/logger"
	"github.com/DivyaGovardhan/design-ui/web/forms"
	"github.com/DivyaGovardhan/design-ui/web/global"
	"github.com/DivyaGovardhan/design-ui/web/service"
	"github.com/DivyaGovardhan/design-ui/web/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// IndexController handles the homepage, login, logout and registration routes.
type IndexController struct {
	BaseController

	settingService     service.SettingService
	userService        service.UserService
	applicationService service.ApplicationService

	// Cached homepage showcase, refreshed on the server scheduler.
	showcaseMu      sync.Mutex
	latestDone      []model.DesignApplication
	inProgressCount int64
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	a.startTask()
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
}

// refreshShowcase updates the cached homepage data.
func (a *IndexController) refreshShowcase() {
	latest, err := a.applicationService.LatestDone(4)
	if err != nil {
		logger.Warning("load latest done applications:", err)
		return
	}
	count, err := a.applicationService.CountInProgress()
	if err != nil {
		logger.Warning("count in-progress applications:", err)
		return
	}

	a.showcaseMu.Lock()
	a.latestDone = latest
	a.inProgressCount = count
	a.showcaseMu.Unlock()
}

// startTask keeps the homepage showcase fresh on the server scheduler.
func (a *IndexController) startTask() {
	webServer := global.GetWebServer()
	if webServer == nil {
		return
	}
	a.refreshShowcase()
	webServer.GetCron().AddFunc("@every 1m", func() {
		if webServer.GetCtx().Err() != nil {
			return
		}
		a.refreshShowcase()
	})
}

// index shows the homepage: the latest finished applications plus the
// count of applications currently in progress.
func (a *IndexController) index(c *gin.Context) {
	a.showcaseMu.Lock()
	latest := a.latestDone
	count := a.inProgressCount
	a.showcaseMu.Unlock()

	html(c, "index.html", "pages.index.title", gin.H{
		"latestDone":      latest,
		"inProgressCount": count,
	})
}

func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path"))
		return
	}
	html(c, "login.html", "pages.login.title", nil)
}

// login handles user authentication and session creation.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil || form.Username == "" || form.Password == "" {
		errs := forms.Errors{}
		errs.Add(forms.FormLevel, "pages.login.invalidFormData")
		htmlWithErrors(c, "login.html", "pages.login.title", gin.H{"form": form}, errs)
		return
	}

	user := a.userService.CheckUser(form.Username, form.Password)
	safeUser := template.HTMLEscapeString(form.Username)

	if user == nil {
		// One neutral message for both unknown user and wrong password.
		logger.Warningf("failed login for %q, IP: %q", safeUser, getRemoteIp(c))
		errs := forms.Errors{}
		errs.Add(forms.FormLevel, "pages.login.wrongUsernameOrPassword")
		htmlWithErrors(c, "login.html", "pages.login.title", gin.H{"form": form}, errs)
		return
	}

	sessionMaxAge, err := a.settingService.GetSessionMaxAge()
	if err != nil {
		logger.Warning("Unable to get session's max age from DB")
	}

	session.SetMaxAge(c, sessionMaxAge*60)
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("Unable to save session:", err)
	}
	if err := sessions.Default(c).Save(); err != nil {
		logger.Warning("Unable to save session:", err)
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", safeUser, getRemoteIp(c))
	c.Redirect(http.StatusFound, c.GetString("base_path"))
}

// logout clears the session and redirects to the homepage.
func (a *IndexController) logout(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user != nil {
		logger.Infof("%s logged out successfully", user.Username)
	}
	session.ClearSession(c)
	if err := sessions.Default(c).Save(); err != nil {
		logger.Warning("Unable to save session after clearing:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path"))
}

func (a *IndexController) registerPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path"))
		return
	}
	html(c, "register.html", "pages.register.title", gin.H{"form": forms.RegistrationForm{}})
}

// register validates and creates an account, then sends the user to the
// login page. No partial writes: the record is created only when every
// check passed.
func (a *IndexController) register(c *gin.Context) {
	var form forms.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		errs := forms.Errors{}
		errs.Add(forms.FormLevel, "pages.login.invalidFormData")
		htmlWithErrors(c, "register.html", "pages.register.title", gin.H{"form": form}, errs)
		return
	}

	user, errs, err := a.userService.Register(&form)
	if err != nil {
		logger.Error("register user:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if errs.HasAny() {
		logFormErrors("registration", errs)
		htmlWithErrors(c, "register.html", "pages.register.title", gin.H{"form": form}, errs)
		return
	}

	logger.Infof("user %s registered", user.Username)
	c.Redirect(http.StatusFound, c.GetString("base_path")+"login")
}
