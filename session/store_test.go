package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// loginRecorder runs Login through a real gin context and returns the cookie
// it set.
func loginRecorder(t *testing.T, store *CookieStore, s Session) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)

	if err := store.Login(c, s); err != nil {
		t.Fatalf("Login() error: %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Login() set %d cookies, want 1", len(cookies))
	}
	return cookies[0]
}

func currentWithCookie(store *CookieStore, cookie *http.Cookie) (Session, bool) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/patient/dashboard", nil)
	c.Request.AddCookie(cookie)
	return store.Current(c)
}

func TestCookieRoundTrip(t *testing.T) {
	store := NewCookieStore("test-secret", "hms_session", false)
	in := Session{
		Token:  "backend-jwt",
		Role:   "patient",
		UserID: "u1",
		Name:   "Jane Doe",
		Email:  "jane@example.test",
	}

	cookie := loginRecorder(t, store, in)
	if cookie.Name != "hms_session" {
		t.Errorf("cookie name = %q, want hms_session", cookie.Name)
	}
	if !cookie.HttpOnly {
		t.Error("cookie is not HttpOnly")
	}

	got, ok := currentWithCookie(store, cookie)
	if !ok {
		t.Fatal("Current() = false after Login")
	}
	if got != in {
		t.Errorf("Current() = %+v, want %+v", got, in)
	}
	if !got.IsAuthenticated() {
		t.Error("IsAuthenticated() = false for a session with a token")
	}
}

func TestTamperedCookieRejected(t *testing.T) {
	store := NewCookieStore("test-secret", "hms_session", false)
	cookie := loginRecorder(t, store, Session{Token: "backend-jwt", Role: "patient"})

	// Flip the payload; the signature no longer matches.
	parts := strings.Split(cookie.Value, ".")
	if len(parts) != 3 {
		t.Fatalf("cookie is not a JWT: %q", cookie.Value)
	}
	tampered := &http.Cookie{Name: cookie.Name, Value: parts[0] + ".eyJyb2xlIjoiYWRtaW4ifQ." + parts[2]}

	if _, ok := currentWithCookie(store, tampered); ok {
		t.Error("Current() accepted a tampered cookie")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	signer := NewCookieStore("secret-a", "hms_session", false)
	verifier := NewCookieStore("secret-b", "hms_session", false)

	cookie := loginRecorder(t, signer, Session{Token: "backend-jwt", Role: "doctor"})
	if _, ok := currentWithCookie(verifier, cookie); ok {
		t.Error("Current() accepted a cookie signed with a different secret")
	}
}

func TestNoCookie(t *testing.T) {
	store := NewCookieStore("test-secret", "hms_session", false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if _, ok := store.Current(c); ok {
		t.Error("Current() = true with no cookie present")
	}
}

func TestLogoutIdempotent(t *testing.T) {
	store := NewCookieStore("test-secret", "hms_session", false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/logout", nil)

	store.Logout(c)
	store.Logout(c)

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Logout set no cookie")
	}
	for _, ck := range cookies {
		if ck.Value != "" {
			t.Errorf("Logout cookie value = %q, want empty", ck.Value)
		}
		if ck.MaxAge >= 0 {
			t.Errorf("Logout cookie MaxAge = %d, want negative", ck.MaxAge)
		}
	}
}

func TestIsAuthenticated(t *testing.T) {
	if (Session{}).IsAuthenticated() {
		t.Error("empty session reports authenticated")
	}
	if !(Session{Token: "tok"}).IsAuthenticated() {
		t.Error("session with token reports unauthenticated")
	}
}
