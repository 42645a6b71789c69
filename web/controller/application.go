package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DivyaGovardhan/design-ui/database"
	"github.com/DivyaGovardhan/design-ui/database/model"
	"github.com/DivyaGovardhan/design-ui/logger"
	"github.com/DivyaGovardhan/design-ui/web/forms"
	"github.com/DivyaGovardhan/design-ui/web/middleware"
	"github.com/DivyaGovardhan/design-ui/web/service"
	"github.com/DivyaGovardhan/design-ui/web/session"

	"github.com/gin-gonic/gin"
)

// ApplicationController handles submission, listing, redaction and
// deletion of design applications.
type ApplicationController struct {
	BaseController

	applicationService service.ApplicationService
	categoryService    service.CategoryService
	storageService     service.StorageService
}

// NewApplicationController creates the controller and registers its routes.
func NewApplicationController(g *gin.RouterGroup) *ApplicationController {
	a := &ApplicationController{}
	a.initRouter(g)
	return a
}

func (a *ApplicationController) initRouter(g *gin.RouterGroup) {
	auth := g.Group("")
	auth.Use(a.checkLogin)
	{
		auth.GET("/account", a.account)
		auth.GET("/create-app", a.createPage)
		auth.POST("/create-app", a.create)
		auth.POST("/app/:id/delete", a.delete)
	}

	staff := g.Group("")
	staff.Use(a.checkLogin, middleware.StaffRequired())
	{
		staff.GET("/apps-list", a.appsList)
		staff.GET("/app/:id/redact", a.redactPage)
		staff.POST("/app/:id/redact", a.redact)
	}
}

// account lists the current user's applications, newest first, with an
// optional status filter.
func (a *ApplicationController) account(c *gin.Context) {
	user := session.GetLoginUser(c)
	status, ok := forms.ParseStatusFilter(c.Query("status"))
	if !ok {
		status = ""
	}

	apps, err := a.applicationService.ListByCreator(user.Id, status)
	if err != nil {
		logger.Warning("list applications:", err)
	}
	html(c, "account.html", "pages.account.title", gin.H{
		"apps":         apps,
		"statusFilter": c.Query("status"),
	})
}

// appsList is the staff view of every application. The permission gate
// rejects non-staff outright before this handler runs.
func (a *ApplicationController) appsList(c *gin.Context) {
	status, ok := forms.ParseStatusFilter(c.Query("status"))
	if !ok {
		status = ""
	}

	apps, err := a.applicationService.ListAll(status)
	if err != nil {
		logger.Warning("list all applications:", err)
	}
	html(c, "apps_list.html", "pages.appsList.title", gin.H{
		"apps":         apps,
		"statusFilter": c.Query("status"),
	})
}

func (a *ApplicationController) createPage(c *gin.Context) {
	categories, err := a.categoryService.GetAll()
	if err != nil {
		logger.Warning("load categories:", err)
	}
	html(c, "create_app.html", "pages.createApp.title", gin.H{
		"form":       forms.ApplicationForm{},
		"categories": categories,
	})
}

// create validates the submission and persists the application with
// status "new" owned by the current user. The photo is stored only after
// validation passed, and the row plus its category links are written in
// one transaction.
func (a *ApplicationController) create(c *gin.Context) {
	user := session.GetLoginUser(c)

	var form forms.ApplicationForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Debug("bind application form:", err)
	}
	photo, err := c.FormFile("photo")
	if err != nil {
		photo = nil
	}

	errs := form.Validate(photo, time.Now())
	if errs.HasAny() {
		logFormErrors("application", errs)
		categories, _ := a.categoryService.GetAll()
		htmlWithErrors(c, "create_app.html", "pages.createApp.title", gin.H{
			"form":       form,
			"categories": categories,
		}, errs)
		return
	}

	stored, err := a.storageService.SavePhoto(photo)
	if err != nil {
		logger.Error("store photo:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	app := &model.DesignApplication{
		CreatorId:      &user.Id,
		Title:          form.Title,
		Description:    form.Description,
		Photo:          stored,
		Status:         model.StatusNew,
		CompletionDate: form.CompletionDate,
		CompletionTime: form.CompletionTime,
	}
	if err := a.applicationService.Create(app, form.CategoryIds); err != nil {
		logger.Error("create application:", err)
		a.storageService.RemovePhoto(stored)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	logger.Infof("application %d created by %s", app.Id, user.Username)
	c.Redirect(http.StatusFound, c.GetString("base_path")+"account")
}

func (a *ApplicationController) redactPage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	app, err := a.applicationService.Get(id)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	categories, _ := a.categoryService.GetAll()
	html(c, "redact_app.html", "pages.redactApp.title", gin.H{
		"app":          app,
		"form":         forms.RedactForm{Status: string(app.Status), DesignComment: app.DesignComment},
		"categories":   categories,
		"statusLocked": app.Status != model.StatusNew,
	})
}

// redact applies the staff edit: target status plus whichever resolution
// artifact the target requires.
func (a *ApplicationController) redact(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	app, err := a.applicationService.Get(id)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var form forms.RedactForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Debug("bind redact form:", err)
	}
	photo, err := c.FormFile("designPhoto")
	if err != nil {
		photo = nil
	}

	errs := form.Validate(app.Status, photo, app.DesignPhoto != "")
	if errs.HasAny() {
		logFormErrors("redact", errs)
		categories, _ := a.categoryService.GetAll()
		htmlWithErrors(c, "redact_app.html", "pages.redactApp.title", gin.H{
			"app":          app,
			"form":         form,
			"categories":   categories,
			"statusLocked": app.Status != model.StatusNew,
		}, errs)
		return
	}

	stored := ""
	if photo != nil {
		stored, err = a.storageService.SavePhoto(photo)
		if err != nil {
			logger.Error("store design photo:", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
	}

	// Status stays frozen once it has left "new"; the form validation
	// already rejected any attempt to move it.
	target := model.AppStatus(form.Status)
	if err := a.applicationService.Redact(id, target, form.DesignComment, stored, form.CategoryIds); err != nil {
		logger.Error("redact application:", err)
		a.storageService.RemovePhoto(stored)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	logger.Infof("application %d redacted to %s", id, target)
	c.Redirect(http.StatusFound, c.GetString("base_path")+"apps-list")
}

// delete removes an application. Owners delete their own; admins delete
// any; everyone else is rejected.
func (a *ApplicationController) delete(c *gin.Context) {
	user := session.GetLoginUser(c)
	id, _ := strconv.Atoi(c.Param("id"))

	app, err := a.applicationService.Get(id)
	if err != nil {
		if database.IsNotFound(err) {
			c.AbortWithStatus(http.StatusNotFound)
		} else {
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	isOwner := app.CreatorId != nil && *app.CreatorId == user.Id
	if !isOwner && !user.IsAdmin() {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	if err := a.applicationService.Delete(id); err != nil {
		logger.Error("delete application:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	logger.Infof("application %d deleted by %s", id, user.Username)
	c.Redirect(http.StatusFound, c.GetString("base_path")+"account")
}
