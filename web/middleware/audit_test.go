package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/DivyaGovardhan/design-ui/database"
	"github.com/DivyaGovardhan/design-ui/database/model"
	"github.com/DivyaGovardhan/design-ui/web/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAuditMiddlewareRecordsLogin(t *testing.T) {
	os.Remove("test.db")
	assert.NoError(t, database.InitDB("test.db"))
	defer func() {
		db, _ := database.GetDB().DB()
		db.Close()
		os.Remove("test.db")
	}()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(sessions.Sessions("design-ui", cookie.NewStore([]byte("test-secret"))))
	engine.Use(AuditMiddleware())
	engine.POST("/design/login", func(c *gin.Context) {
		// The session user appears only inside the handler, the way a
		// real login does.
		session.SetLoginUser(c, &model.User{Id: 1, Username: "admin", Role: model.RoleAdmin})
		c.Status(http.StatusFound)
	})
	engine.POST("/design/register", func(c *gin.Context) {
		c.Status(http.StatusFound)
	})

	form := url.Values{"username": {"admin"}, "password": {"admin"}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/design/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	engine.ServeHTTP(w, req)

	var entries []model.AuditLog
	assert.NoError(t, database.GetDB().Find(&entries).Error)
	assert.Len(t, entries, 1)
	assert.Equal(t, "LOGIN", entries[0].Action)
	assert.Equal(t, "user", entries[0].Resource)
	assert.Equal(t, "admin", entries[0].Username)
	assert.Contains(t, entries[0].Details, `"status":302`)

	// An anonymous mutating request leaves no entry.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/design/register", nil)
	engine.ServeHTTP(w, req)

	assert.NoError(t, database.GetDB().Find(&entries).Error)
	assert.Len(t, entries, 1)
}
