package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	RegisterRoutes(r)
	return r
}

func TestMiddleware_AssignsCookie(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatalf("no %s cookie set", CookieName)
	}
	if sessionCookie.Value == "" {
		t.Fatalf("empty session id")
	}
	if !sessionCookie.HttpOnly {
		t.Fatalf("session cookie should be http-only")
	}
}

func TestMiddleware_KeepsExistingID(t *testing.T) {
	r := newTestRouter()

	var captured string
	r.GET("/whoami", func(c *gin.Context) {
		captured = ID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "sess-fixed"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if captured != "sess-fixed" {
		t.Fatalf("expected existing id to be kept, got %q", captured)
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			t.Fatalf("middleware must not reissue the cookie, but set %q", c.Value)
		}
	}
}
