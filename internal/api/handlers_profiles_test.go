package api

import (
	"net/http"
	"testing"

	"github.com/selflog-dev/selflog/internal/models"
)

func TestCreateProfileActivatesNewProfile(t *testing.T) {
	t.Parallel()

	app, store := newTestApp(t, "")

	response := performJSON(t, app, http.MethodPost, "/api/profiles", map[string]any{
		"name":  "Night Job",
		"color": "red",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	decoded := decodeJSONBody(t, response.Body)
	profile, _ := decoded["profile"].(map[string]any)
	if profile["name"] != "Night Job" {
		t.Fatalf("expected created profile in response, got %v", profile)
	}

	data := store.Snapshot()
	if len(data.Profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(data.Profiles))
	}
	if data.ActiveProfileID == models.DefaultProfileID {
		t.Fatal("expected new profile to become active")
	}
}

func TestCreateProfileRejectsBlankName(t *testing.T) {
	t.Parallel()

	app, store := newTestApp(t, "")

	response := performJSON(t, app, http.MethodPost, "/api/profiles", map[string]any{"name": "   "})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
	if message := readAPIError(t, response.Body); message != "profile name is required" {
		t.Fatalf("expected name validation error, got %q", message)
	}
	if len(store.Snapshot().Profiles) != 1 {
		t.Fatal("expected no profile added on rejection")
	}
}

func TestActivateProfile(t *testing.T) {
	t.Parallel()

	persisted := `{
		"profiles":[{"id":"a","name":"A","color":"blue"},{"id":"b","name":"B","color":"red"}],
		"activeProfileId":"a",
		"records":{"a":{},"b":{}}
	}`
	app, store := newTestApp(t, persisted)

	response := performJSON(t, app, http.MethodPost, "/api/profiles/b/activate", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if store.Snapshot().ActiveProfileID != "b" {
		t.Fatalf("expected profile b active, got %q", store.Snapshot().ActiveProfileID)
	}

	missing := performJSON(t, app, http.MethodPost, "/api/profiles/ghost/activate", nil)
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown profile, got %d", missing.StatusCode)
	}
}

func TestDeleteLastProfileIsRejected(t *testing.T) {
	t.Parallel()

	app, store := newTestApp(t, "")
	before := store.Snapshot()

	response := performJSON(t, app, http.MethodDelete, "/api/profiles/"+models.DefaultProfileID, nil)
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", response.StatusCode)
	}
	if message := readAPIError(t, response.Body); message != "cannot delete the only profile" {
		t.Fatalf("expected last-profile error, got %q", message)
	}

	after := store.Snapshot()
	if len(after.Profiles) != len(before.Profiles) || after.ActiveProfileID != before.ActiveProfileID {
		t.Fatal("expected data unchanged after rejected delete")
	}
}

func TestDeleteActiveProfileReassignsActive(t *testing.T) {
	t.Parallel()

	persisted := `{
		"profiles":[{"id":"a","name":"A","color":"blue"},{"id":"b","name":"B","color":"red"}],
		"activeProfileId":"b",
		"records":{"a":{},"b":{"2024-09-01":{"date":"2024-09-01","status":"PRESENT","shift":"GENERAL","overtimeMinutes":0}}}
	}`
	app, store := newTestApp(t, persisted)

	response := performJSON(t, app, http.MethodDelete, "/api/profiles/b", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	data := store.Snapshot()
	if data.ActiveProfileID != "a" {
		t.Fatalf("expected active reassigned to a, got %q", data.ActiveProfileID)
	}
	if _, gone := data.Records["b"]; gone {
		t.Fatal("expected deleted profile's records removed")
	}
}
