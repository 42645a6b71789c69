package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DivyaGovardhan/design-ui/database/model"
	"github.com/DivyaGovardhan/design-ui/web/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func testEngine(loginAs *model.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(sessions.Sessions("design-ui", cookie.NewStore([]byte("test-secret"))))
	if loginAs != nil {
		engine.Use(func(c *gin.Context) {
			session.SetLoginUser(c, loginAs)
		})
	}
	engine.GET("/staff", StaffRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return engine
}

func TestStaffRequired(t *testing.T) {
	tests := []struct {
		name     string
		user     *model.User
		wantCode int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"plain user", &model.User{Id: 2, Username: "ivan", Role: model.RoleUser}, http.StatusForbidden},
		{"staff", &model.User{Id: 3, Username: "olga", Role: model.RoleStaff}, http.StatusOK},
		{"admin", &model.User{Id: 1, Username: "admin", Role: model.RoleAdmin}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := testEngine(tt.user)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/staff", nil)
			engine.ServeHTTP(w, req)
			if w.Code != tt.wantCode {
				t.Errorf("status = %d, expected %d", w.Code, tt.wantCode)
			}
		})
	}
}

func TestRoleRequiredAdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(sessions.Sessions("design-ui", cookie.NewStore([]byte("test-secret"))))
	engine.Use(func(c *gin.Context) {
		session.SetLoginUser(c, &model.User{Id: 3, Username: "olga", Role: model.RoleStaff})
	})
	engine.GET("/admin", RoleRequired(model.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusForbidden)
	}
}
