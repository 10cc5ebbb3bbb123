package items_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tdat2209/Read-Track-Backend/internal/items"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := items.NewHandler()

	router := gin.New()
	router.GET("/items", handler.ListItems)
	router.GET("/items/:id", handler.GetItem)
	router.POST("/items", handler.CreateItem)
	router.PATCH("/items/:id", handler.UpdateItem)
	router.DELETE("/items/:id", handler.DeleteItem)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestItemLifecycle(t *testing.T) {
	router := setupRouter()

	created := doJSON(t, router, "POST", "/items", `{"name":"Test item"}`)
	if created.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", created.Code)
	}
	var item map[string]interface{}
	json.Unmarshal(created.Body.Bytes(), &item)
	id := int64(item["id"].(float64))

	got := doJSON(t, router, "GET", fmt.Sprintf("/items/%d", id), "")
	if got.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", got.Code)
	}

	patched := doJSON(t, router, "PATCH", fmt.Sprintf("/items/%d", id), `{"name":"Renamed"}`)
	if patched.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", patched.Code)
	}
	var renamed map[string]interface{}
	json.Unmarshal(patched.Body.Bytes(), &renamed)
	if renamed["name"] != "Renamed" {
		t.Fatalf("expected renamed item, got %v", renamed["name"])
	}

	// Absent name keeps the current one.
	kept := doJSON(t, router, "PATCH", fmt.Sprintf("/items/%d", id), `{}`)
	var keptItem map[string]interface{}
	json.Unmarshal(kept.Body.Bytes(), &keptItem)
	if keptItem["name"] != "Renamed" {
		t.Fatalf("absent name was not kept: %v", keptItem["name"])
	}

	deleted := doJSON(t, router, "DELETE", fmt.Sprintf("/items/%d", id), "")
	if deleted.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", deleted.Code)
	}

	gone := doJSON(t, router, "GET", fmt.Sprintf("/items/%d", id), "")
	if gone.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", gone.Code)
	}
}

func TestDeleteItem_AbsentStillNoContent(t *testing.T) {
	router := setupRouter()

	resp := doJSON(t, router, "DELETE", "/items/12345", "")
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestGetItem_NotFound(t *testing.T) {
	router := setupRouter()

	resp := doJSON(t, router, "GET", "/items/12345", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	if body["error"] != "Not found" {
		t.Fatalf("unexpected error body: %s", resp.Body.String())
	}
}

func TestListItems_Empty(t *testing.T) {
	router := setupRouter()

	resp := doJSON(t, router, "GET", "/items", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if strings.TrimSpace(resp.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", resp.Body.String())
	}
}
