package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/shift-schedule/internal/handlers"
	"github.com/localnerve/shift-schedule/internal/models"
	"github.com/localnerve/shift-schedule/internal/testutil"
	"github.com/localnerve/shift-schedule/internal/types"
)

type fakeStore struct {
	doc        models.Document
	loadErr    error
	replaceErr error
	replaced   []models.Document
}

func (f *fakeStore) Load(context.Context) (models.Document, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.doc, nil
}

func (f *fakeStore) ReplaceAll(_ context.Context, doc models.Document) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaced = append(f.replaced, doc)
	f.doc = doc
	return nil
}

func newApp(store handlers.ScheduleStore) *fiber.App {
	app := fiber.New()
	handler := &handlers.ScheduleHandler{Store: store}
	app.Get("/api/schedule", handler.GetSchedule)
	app.Put("/api/schedule", handler.PutSchedule)
	app.Get("/api/health", handlers.GetHealth)
	return app
}

// TestGetSchedule tests the GET /api/schedule endpoint
func TestGetSchedule(t *testing.T) {
	store := &fakeStore{doc: models.Document{"2024-01-01": {"morning": {"Alice"}}}}
	app := newApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/schedule", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var result models.Document
	testutil.ParseJSON(t, resp, &result)
	if got := result["2024-01-01"]["morning"]; len(got) != 1 || got[0] != "Alice" {
		t.Errorf("Expected Alice on the morning shift, got %v", got)
	}
}

// TestGetEmptySchedule checks an empty store answers {}
func TestGetEmptySchedule(t *testing.T) {
	app := newApp(&fakeStore{doc: models.Document{}})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/schedule", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var result map[string]interface{}
	testutil.ParseJSON(t, resp, &result)
	if result == nil || len(result) != 0 {
		t.Errorf("Expected an empty object, got %v", result)
	}
}

// TestPutSchedule tests the PUT /api/schedule endpoint
func TestPutSchedule(t *testing.T) {
	store := &fakeStore{}
	app := newApp(store)

	req := httptest.NewRequest("PUT", "/api/schedule",
		strings.NewReader(`{"2024-01-01": {"morning": ["Alice", "Bob"], "afternoon": []}}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var result map[string]interface{}
	testutil.ParseJSON(t, resp, &result)
	if result["ok"] != true {
		t.Error("Expected ok=true in response")
	}

	if len(store.replaced) != 1 {
		t.Fatalf("Expected one replace, got %d", len(store.replaced))
	}
	if got := store.replaced[0]["2024-01-01"]["morning"]; len(got) != 2 || got[0] != "Alice" || got[1] != "Bob" {
		t.Errorf("Unexpected stored morning shift: %v", got)
	}
}

// TestPutScheduleRejectsNonObjects checks malformed bodies never reach the store
func TestPutScheduleRejectsNonObjects(t *testing.T) {
	bodies := []string{`[]`, `["2024-01-01"]`, `"schedule"`, `null`, ``, `12`}

	for _, body := range bodies {
		t.Run(fmt.Sprintf("body %q", body), func(t *testing.T) {
			store := &fakeStore{doc: models.Document{"2024-01-01": {"morning": {"Alice"}}}}
			app := newApp(store)

			req := httptest.NewRequest("PUT", "/api/schedule", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("Failed to execute request: %v", err)
			}
			testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

			var result map[string]string
			testutil.ParseJSON(t, resp, &result)
			if result["error"] != "Request body must be a JSON object." {
				t.Errorf("Unexpected error message: %q", result["error"])
			}
			if len(store.replaced) != 0 {
				t.Error("Store must not be written for a rejected body")
			}
		})
	}
}

// TestPutScheduleRejectsWrongShapes checks nested shape validation
func TestPutScheduleRejectsWrongShapes(t *testing.T) {
	bodies := []string{
		`{"2024-01-01": ["Alice"]}`,
		`{"2024-01-01": {"morning": "Alice"}}`,
		`{"2024-01-01": {"morning": [1, 2]}}`,
		`{"2024-01-01": {"morning": ["Alice", null]}}`,
	}

	for _, body := range bodies {
		store := &fakeStore{}
		app := newApp(store)

		req := httptest.NewRequest("PUT", "/api/schedule", strings.NewReader(body))
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Failed to execute request: %v", err)
		}
		testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

		var result map[string]string
		testutil.ParseJSON(t, resp, &result)
		if !strings.HasPrefix(result["error"], "Invalid schedule:") {
			t.Errorf("Unexpected error message for %s: %q", body, result["error"])
		}
		if len(store.replaced) != 0 {
			t.Errorf("Store must not be written for %s", body)
		}
	}
}

// TestStoreErrors checks store failures map to 5xx responses
func TestStoreErrors(t *testing.T) {
	tests := []struct {
		name   string
		store  *fakeStore
		method string
		body   string
		status int
	}{
		{
			name:   "load unavailable",
			store:  &fakeStore{loadErr: fmt.Errorf("%w: disk gone", types.ErrStorageUnavailable)},
			method: "GET",
			status: fiber.StatusServiceUnavailable,
		},
		{
			name:   "load other",
			store:  &fakeStore{loadErr: errors.New("boom")},
			method: "GET",
			status: fiber.StatusInternalServerError,
		},
		{
			name:   "write failed",
			store:  &fakeStore{replaceErr: fmt.Errorf("%w: rolled back", types.ErrWriteFailed)},
			method: "PUT",
			body:   `{}`,
			status: fiber.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(tt.store)

			req := httptest.NewRequest(tt.method, "/api/schedule", strings.NewReader(tt.body))
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("Failed to execute request: %v", err)
			}
			testutil.AssertStatus(t, resp, tt.status)

			var result map[string]string
			testutil.ParseJSON(t, resp, &result)
			if result["error"] == "" {
				t.Error("Expected an error message")
			}
		})
	}
}

// TestGetHealth tests the GET /api/health endpoint
func TestGetHealth(t *testing.T) {
	app := newApp(&fakeStore{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var result map[string]string
	testutil.ParseJSON(t, resp, &result)
	if result["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", result["status"])
	}
}
