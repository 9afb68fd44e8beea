package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/selflog-dev/selflog/internal/models"
)

func TestExportJSONSendsDatedAttachment(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, statsFixtureDocument())

	response := performJSON(t, app, http.MethodGet, "/api/export/json", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	disposition := response.Header.Get("Content-Disposition")
	if !strings.Contains(disposition, "attachment") || !strings.Contains(disposition, "attendance_pro_backup_") {
		t.Fatalf("expected dated attachment disposition, got %q", disposition)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read export body: %v", err)
	}

	var exported models.AppData
	if err := json.Unmarshal(body, &exported); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if len(exported.Profiles) != 1 || exported.Profiles[0].ID != "default" {
		t.Fatalf("expected full document exported, got %#v", exported.Profiles)
	}
	if len(exported.Records["default"]) != 3 {
		t.Fatalf("expected 3 records exported, got %d", len(exported.Records["default"]))
	}
}

func TestImportReplacesDocument(t *testing.T) {
	t.Parallel()

	app, store := newTestApp(t, "")

	exportApp, _ := newTestApp(t, statsFixtureDocument())
	exportResponse := performJSON(t, exportApp, http.MethodGet, "/api/export/json", nil)
	backup, err := io.ReadAll(exportResponse.Body)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}

	request := performJSONRaw(t, app, http.MethodPost, "/api/import", backup)
	if request.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", request.StatusCode)
	}

	data := store.Snapshot()
	if len(data.Records["default"]) != 3 {
		t.Fatalf("expected imported records, got %d", len(data.Records["default"]))
	}
}

func TestImportRejectsInvalidBackupAndKeepsData(t *testing.T) {
	t.Parallel()

	app, store := newTestApp(t, statsFixtureDocument())
	before := store.Snapshot()

	tests := []struct {
		name string
		body string
	}{
		{name: "unparseable", body: "not json"},
		{name: "profiles missing", body: `{"records":{}}`},
		{name: "profiles not array", body: `{"profiles":"default"}`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			response := performJSONRaw(t, app, http.MethodPost, "/api/import", []byte(testCase.body))
			if response.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", response.StatusCode)
			}
			if message := readAPIError(t, response.Body); message != "invalid backup format" {
				t.Fatalf("expected invalid format error, got %q", message)
			}
		})
	}

	after := store.Snapshot()
	if len(after.Records["default"]) != len(before.Records["default"]) {
		t.Fatal("expected data untouched after rejected imports")
	}
}
