package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/selflog-dev/selflog/internal/models"
	"github.com/selflog-dev/selflog/internal/services"
)

type memoryDocumentStore struct {
	values map[string]string
}

func (store *memoryDocumentStore) Load(key string) (string, bool, error) {
	value, found := store.values[key]
	return value, found, nil
}

func (store *memoryDocumentStore) Save(key string, value string) error {
	store.values[key] = value
	return nil
}

func newTestApp(t *testing.T, persisted string) (*fiber.App, *services.StoreService) {
	t.Helper()

	documents := &memoryDocumentStore{values: map[string]string{}}
	if persisted != "" {
		documents.values[models.StorageKey] = persisted
	}

	store := services.NewStoreService(documents)
	handler := NewHandler(store, time.UTC)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, store
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		serialized, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(serialized)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func performJSONRaw(t *testing.T, app *fiber.App, method string, path string, body []byte) *http.Response {
	t.Helper()

	request := httptest.NewRequest(method, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func decodeJSONBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()

	decoded := map[string]any{}
	if err := json.NewDecoder(body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	decoded := decodeJSONBody(t, body)
	message, _ := decoded["error"].(string)
	return message
}
