package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIdentityFromHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity())

	var got string
	r.GET("/probe", func(c *gin.Context) {
		got = ClientIDFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Client-Id", "client-abc")
	r.ServeHTTP(httptest.NewRecorder(), req)

	if got != "client-abc" {
		t.Fatalf("expected client-abc, got %q", got)
	}
}

func TestIdentityFallsBackToClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity())

	var got string
	r.GET("/probe", func(c *gin.Context) {
		got = ClientIDFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.RemoteAddr = "203.0.113.9:4242"
	r.ServeHTTP(httptest.NewRecorder(), req)

	if got != "203.0.113.9" {
		t.Fatalf("expected fallback to client ip, got %q", got)
	}
}

func TestClientIDFromContextWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if got := ClientIDFromContext(c); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}
