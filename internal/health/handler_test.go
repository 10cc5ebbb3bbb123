package health_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tdat2209/Read-Track-Backend/internal/health"
	"github.com/tdat2209/Read-Track-Backend/internal/store"
)

func TestHealthz_AlwaysReturnsOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := health.NewHandler(store.NewMemoryStore())

	router := gin.New()
	router.GET("/health", handler.Healthz)

	req := httptest.NewRequest("GET", "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != 200 {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != `{"status":"alive"}` {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestReadyz_WithStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := health.NewHandler(store.NewMemoryStore())

	router := gin.New()
	router.GET("/ready", handler.Readyz)

	req := httptest.NewRequest("GET", "/ready", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestReadyz_NoStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := health.NewHandler(nil)

	router := gin.New()
	router.GET("/ready", handler.Readyz)

	req := httptest.NewRequest("GET", "/ready", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != 503 {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}
