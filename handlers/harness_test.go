package handlers_test

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Liyana-shirin/hospital-management-system-frontent/config"
	"github.com/Liyana-shirin/hospital-management-system-frontent/routes"
	"github.com/Liyana-shirin/hospital-management-system-frontent/services"
	"github.com/Liyana-shirin/hospital-management-system-frontent/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newPortal wires the full router against a fake hospital backend, the same
// way main does, minus the global middleware.
func newPortal(t *testing.T, backend http.Handler) (*gin.Engine, *session.CookieStore) {
	t.Helper()

	upstream := httptest.NewServer(backend)
	t.Cleanup(upstream.Close)

	api := services.NewClient(upstream.URL)
	store := session.NewCookieStore("test-secret", "hms_session", false)
	cfg := &config.Config{
		SessionCookieName:       "hms_session",
		DashboardRefreshSeconds: 30,
	}

	router := gin.New()
	router.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
	})
	router.LoadHTMLGlob("../templates/*.html")
	routes.SetupRoutes(router, api, store, services.NewMonitor(api), cfg)
	return router, store
}

// sessionCookie signs a session the way a successful login would.
func sessionCookie(t *testing.T, store *session.CookieStore, s session.Session) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := store.Login(c, s); err != nil {
		t.Fatalf("signing session cookie: %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("store.Login set %d cookies, want 1", len(cookies))
	}
	return cookies[0]
}

func testPatientSession() session.Session {
	return session.Session{Token: "jwt123", Role: "patient", UserID: "u1", Name: "Jane Doe", Email: "jane@example.test"}
}

func jsonResponse(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(body))
}
