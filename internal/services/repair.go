package services

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/selflog-dev/selflog/internal/models"
)

// RepairAppData turns an arbitrary persisted blob into a structurally valid
// AppData. It never fails: anything that cannot be salvaged collapses to the
// built-in default. The caller owns reading and writing the storage medium.
func RepairAppData(raw []byte) models.AppData {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return models.DefaultAppData()
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return models.DefaultAppData()
	}

	data := models.AppData{
		Profiles:               repairProfiles(fields["profiles"]),
		ActiveProfileID:        repairString(fields["activeProfileId"]),
		Theme:                  repairTheme(fields["theme"]),
		HasCompletedOnboarding: repairBool(fields["hasCompletedOnboarding"]),
	}

	if !data.HasProfile(data.ActiveProfileID) {
		data.ActiveProfileID = data.Profiles[0].ID
	}

	data.Records = repairRecords(fields["records"], data)
	return data
}

func repairProfiles(raw json.RawMessage) []models.WorkProfile {
	var decoded []models.WorkProfile
	if len(raw) > 0 {
		// Decode failures leave decoded empty and fall through to the default.
		_ = json.Unmarshal(raw, &decoded)
	}

	profiles := make([]models.WorkProfile, 0, len(decoded))
	seen := make(map[string]struct{}, len(decoded))
	for _, profile := range decoded {
		profile.ID = strings.TrimSpace(profile.ID)
		if profile.ID == "" {
			continue
		}
		if _, duplicate := seen[profile.ID]; duplicate {
			continue
		}
		seen[profile.ID] = struct{}{}
		profiles = append(profiles, profile)
	}

	if len(profiles) == 0 {
		return []models.WorkProfile{models.DefaultProfile()}
	}
	return profiles
}

func repairRecords(raw json.RawMessage, data models.AppData) map[string]map[string]models.DayRecord {
	var decoded map[string]map[string]models.DayRecord
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	if decoded == nil {
		decoded = map[string]map[string]models.DayRecord{}
	}

	records := make(map[string]map[string]models.DayRecord, len(data.Profiles))
	for _, profile := range data.Profiles {
		records[profile.ID] = repairProfileRecords(decoded[profile.ID])
	}
	return records
}

func repairProfileRecords(decoded map[string]models.DayRecord) map[string]models.DayRecord {
	repaired := make(map[string]models.DayRecord, len(decoded))
	for date, record := range decoded {
		if strings.TrimSpace(date) == "" {
			continue
		}
		if !models.IsPersistableStatus(record.Status) {
			continue
		}
		// The map key is authoritative for the calendar date.
		record.Date = date
		repaired[date] = record.Normalized()
	}
	return repaired
}

func repairString(raw json.RawMessage) string {
	var value string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &value)
	}
	return value
}

func repairBool(raw json.RawMessage) bool {
	var value bool
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &value)
	}
	return value
}

func repairTheme(raw json.RawMessage) string {
	theme := repairString(raw)
	if theme != models.ThemeLight && theme != models.ThemeDark {
		return models.ThemeLight
	}
	return theme
}
