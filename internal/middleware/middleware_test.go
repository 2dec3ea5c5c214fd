package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/recipe-nest/internal/auth"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	handlers = append(handlers, func(c *gin.Context) {
		actor, _ := ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"id": actor.UserID, "role": actor.Role})
	})
	r.GET("/x", handlers...)
	return r
}

func do(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	chefToken, _ := tokens.Issue(5, user.RoleChef)
	r := newEngine(AuthMiddleware(tokens))

	cases := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing", header: "", status: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + chefToken, status: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + chefToken, status: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, tc.header)
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tc.status, w.Body.String())
			}
			if w.Header().Get(RequestIDHeader) == "" {
				t.Fatal("request id header missing")
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	lover, _ := tokens.Issue(1, user.RoleFoodLover)
	admin, _ := tokens.Issue(2, user.RoleAdmin)
	r := newEngine(AuthMiddleware(tokens), RequireRoles(user.RoleChef, user.RoleAdmin))

	if w := do(r, "Bearer "+lover); w.Code != http.StatusForbidden {
		t.Fatalf("food lover: %d", w.Code)
	}
	if w := do(r, "Bearer "+admin); w.Code != http.StatusOK {
		t.Fatalf("admin: %d", w.Code)
	}
	if w := do(newEngine(RequireRoles(user.RoleAdmin)), ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no auth: %d", w.Code)
	}
}

func TestOptionalAuth(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	tok, _ := tokens.Issue(9, user.RoleFoodLover)
	r := newEngine(OptionalAuth(tokens))

	for _, h := range []string{"", "Bearer broken", "Token x"} {
		if w := do(r, h); w.Code != http.StatusOK || w.Body.String() != `{"id":0,"role":""}` {
			t.Fatalf("anonymous %q: %d %s", h, w.Code, w.Body.String())
		}
	}
	if w := do(r, "Bearer "+tok); w.Body.String() != `{"id":9,"role":"FoodLover"}` {
		t.Fatalf("authenticated: %s", w.Body.String())
	}
}

type stubLimiter struct {
	allow bool
	err   error
}

func (s stubLimiter) Allow(context.Context, string) (bool, error) { return s.allow, s.err }

func TestRateLimit(t *testing.T) {
	if w := do(newEngine(RateLimit(stubLimiter{allow: false}, "login")), ""); w.Code != http.StatusTooManyRequests {
		t.Fatalf("blocked: %d", w.Code)
	}
	if w := do(newEngine(RateLimit(stubLimiter{err: errors.New("redis down")}, "login")), ""); w.Code != http.StatusOK {
		t.Fatalf("fail open: %d", w.Code)
	}
	if w := do(newEngine(RateLimit(nil, "login")), ""); w.Code != http.StatusOK {
		t.Fatalf("disabled: %d", w.Code)
	}
}

func TestRequestIDPropagates(t *testing.T) {
	r := newEngine(SecurityHeaders())
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("request id = %q", got)
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatal("security headers missing")
	}
}
