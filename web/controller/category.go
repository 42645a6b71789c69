package controller

import (
	"net/http"
	"strconv"

	"github.com/DivyaGovardhan/design-ui/database/model"
	"github.com/DivyaGovardhan/design-ui/logger"
	"github.com/DivyaGovardhan/design-ui/web/forms"
	"github.com/DivyaGovardhan/design-ui/web/middleware"
	"github.com/DivyaGovardhan/design-ui/web/service"

	"github.com/gin-gonic/gin"
)

// CategoryController handles the staff-only category taxonomy CRUD.
type CategoryController struct {
	BaseController

	categoryService service.CategoryService
}

// NewCategoryController creates the controller and registers its routes.
func NewCategoryController(g *gin.RouterGroup) *CategoryController {
	a := &CategoryController{}
	a.initRouter(g)
	return a
}

func (a *CategoryController) initRouter(g *gin.RouterGroup) {
	staff := g.Group("")
	staff.Use(a.checkLogin, middleware.StaffRequired())
	{
		staff.GET("/categ-list", a.list)
		staff.GET("/category/create", a.createPage)
		staff.POST("/category/create", a.create)
		staff.GET("/category/:id/redact", a.redactPage)
		staff.POST("/category/:id/redact", a.redact)
		staff.POST("/category/:id/delete", a.delete)
	}
}

func (a *CategoryController) list(c *gin.Context) {
	categories, err := a.categoryService.GetAll()
	if err != nil {
		logger.Warning("list categories:", err)
	}
	html(c, "categories.html", "pages.categories.title", gin.H{
		"categories": categories,
	})
}

func (a *CategoryController) createPage(c *gin.Context) {
	html(c, "category_form.html", "pages.categoryCreate.title", gin.H{
		"category": model.Category{},
	})
}

func (a *CategoryController) create(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		errs := forms.Errors{}
		errs.Add("title", "form.required")
		htmlWithErrors(c, "category_form.html", "pages.categoryCreate.title", gin.H{
			"category": model.Category{},
		}, errs)
		return
	}

	category := &model.Category{Title: title}
	if err := a.categoryService.Create(category); err != nil {
		// Title carries a unique index, so a create failure is almost
		// always a duplicate.
		logger.Warning("create category:", err)
		errs := forms.Errors{}
		errs.Add("title", "form.titleTaken")
		htmlWithErrors(c, "category_form.html", "pages.categoryCreate.title", gin.H{
			"category": category,
		}, errs)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"categ-list")
}

func (a *CategoryController) redactPage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	category, err := a.categoryService.Get(id)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	html(c, "category_form.html", "pages.categoryRedact.title", gin.H{
		"category": category,
	})
}

func (a *CategoryController) redact(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	category, err := a.categoryService.Get(id)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	title := c.PostForm("title")
	if title == "" {
		errs := forms.Errors{}
		errs.Add("title", "form.required")
		htmlWithErrors(c, "category_form.html", "pages.categoryRedact.title", gin.H{
			"category": category,
		}, errs)
		return
	}

	category.Title = title
	if err := a.categoryService.Update(category); err != nil {
		logger.Warning("update category:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"categ-list")
}

// delete is unconditional: join-table references are cleared together
// with the row.
func (a *CategoryController) delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := a.categoryService.Delete(id); err != nil {
		logger.Warning("delete category:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"categ-list")
}
