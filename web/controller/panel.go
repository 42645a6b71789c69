package controller

import (
	"strconv"

	"github.com/DivyaGovardhan/design-ui/logger"
	"github.com/DivyaGovardhan/design-ui/web/middleware"
	"github.com/DivyaGovardhan/design-ui/web/service"

	"github.com/gin-gonic/gin"
)

// PanelController serves the staff maintenance pages: the audit trail and
// the recent server log.
type PanelController struct {
	BaseController

	auditService   service.AuditLogService
	settingService service.SettingService
}

// NewPanelController creates the controller and registers its routes.
func NewPanelController(g *gin.RouterGroup) *PanelController {
	a := &PanelController{}
	a.initRouter(g)
	return a
}

func (a *PanelController) initRouter(g *gin.RouterGroup) {
	staff := g.Group("/panel")
	staff.Use(a.checkLogin, middleware.StaffRequired())
	{
		staff.GET("/audit", a.audit)
		staff.GET("/logs", a.logs)
	}
}

func (a *PanelController) audit(c *gin.Context) {
	pageSize, err := a.settingService.GetPageSize()
	if err != nil || pageSize <= 0 {
		pageSize = 50
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	entries, total, err := a.auditService.GetAuditLogs(
		0, pageSize, (page-1)*pageSize,
		c.Query("action"), c.Query("resource"),
	)
	if err != nil {
		logger.Warning("load audit logs:", err)
	}

	html(c, "audit.html", "pages.audit.title", gin.H{
		"entries": entries,
		"total":   total,
		"page":    page,
	})
}

func (a *PanelController) logs(c *gin.Context) {
	count, _ := strconv.Atoi(c.DefaultQuery("count", "100"))
	level := c.DefaultQuery("level", "INFO")

	html(c, "logs.html", "pages.logs.title", gin.H{
		"logs": logger.GetLogs(count, level),
	})
}
