package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/response"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCategoryApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&models.Category{}, &models.Item{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	handler := NewCategoryHandler(services.NewCategoryService(db))

	app := fiber.New()
	g := app.Group("/categories")
	g.Post("/", handler.Create)
	g.Get("/", handler.FindAll)
	g.Get("/slug/:slug", handler.FindBySlug)
	g.Get("/:id", handler.FindOne)
	g.Patch("/:id", handler.Update)
	g.Delete("/:id", handler.Remove)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, response.Envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	var envelope response.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp, envelope
}

func TestCategoryEndpointEnvelope(t *testing.T) {
	app := newCategoryApp(t)

	resp, envelope := doJSON(t, app, fiber.MethodPost, "/categories/", map[string]string{
		"name": "Electronics",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if !envelope.Success {
		t.Error("expected success envelope")
	}
	if envelope.Message != "Category created successfully" {
		t.Errorf("unexpected message %q", envelope.Message)
	}
	if envelope.Metadata.Version != "v1" {
		t.Errorf("expected metadata version v1, got %q", envelope.Metadata.Version)
	}
	if envelope.Metadata.Timestamp == "" {
		t.Error("expected metadata timestamp")
	}

	data, ok := envelope.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected object data, got %T", envelope.Data)
	}
	if data["slug"] != "electronics" {
		t.Errorf("expected slug electronics, got %v", data["slug"])
	}
}

func TestCategoryEndpointValidation(t *testing.T) {
	app := newCategoryApp(t)

	resp, envelope := doJSON(t, app, fiber.MethodPost, "/categories/", map[string]string{})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if envelope.Success {
		t.Error("expected failure envelope")
	}
	if envelope.Error == nil || envelope.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR code, got %+v", envelope.Error)
	}
	if _, ok := envelope.Error.Details["name"]; !ok {
		t.Errorf("expected name detail, got %v", envelope.Error.Details)
	}
}

func TestCategoryEndpointConflict(t *testing.T) {
	app := newCategoryApp(t)

	payload := map[string]string{"name": "Books", "slug": "books"}
	if resp, _ := doJSON(t, app, fiber.MethodPost, "/categories/", payload); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	resp, envelope := doJSON(t, app, fiber.MethodPost, "/categories/", payload)
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
	if envelope.Error == nil || envelope.Error.Code != "CONFLICT" {
		t.Errorf("expected CONFLICT code, got %+v", envelope.Error)
	}
}

func TestCategoryEndpointNotFound(t *testing.T) {
	app := newCategoryApp(t)

	resp, envelope := doJSON(t, app, fiber.MethodGet, "/categories/slug/missing", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if envelope.Error == nil || envelope.Error.Code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND code, got %+v", envelope.Error)
	}
}

func TestCategoryEndpointBadID(t *testing.T) {
	app := newCategoryApp(t)

	resp, envelope := doJSON(t, app, fiber.MethodGet, "/categories/not-a-uuid", nil)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if envelope.Error == nil || envelope.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR code, got %+v", envelope.Error)
	}
}
