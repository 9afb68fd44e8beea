package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/selflog-dev/selflog/internal/models"
)

var ErrInvalidImport = errors.New("invalid backup format")

const backupFilenamePrefix = "attendance_pro_backup_"

// BuildBackup serializes the full document the same way it is persisted, so
// a backup restores byte-compatibly through ImportAppData.
func BuildBackup(data models.AppData) ([]byte, error) {
	serialized, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize backup: %w", err)
	}
	return serialized, nil
}

func BackupFilename(now time.Time) string {
	return backupFilenamePrefix + now.Format(models.DateLayout) + ".json"
}

// ImportAppData accepts a backup only when its profiles field is present and
// array-shaped, then runs the repair routine so the result satisfies every
// document invariant. The caller's current data is untouched on rejection.
func ImportAppData(raw []byte) (models.AppData, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.AppData{}, ErrInvalidImport
	}

	profilesRaw, hasProfiles := fields["profiles"]
	if !hasProfiles {
		return models.AppData{}, ErrInvalidImport
	}
	var profiles []json.RawMessage
	if err := json.Unmarshal(profilesRaw, &profiles); err != nil {
		return models.AppData{}, ErrInvalidImport
	}

	return RepairAppData(raw), nil
}
