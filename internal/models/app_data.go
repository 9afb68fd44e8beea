package models

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// StorageKey identifies the single persisted document. The value is kept
// from the original web client so its exported backups import cleanly.
const StorageKey = "attendance_pro_v1"

// AppData is the root aggregate: everything the application persists lives
// in this one document, rewritten wholesale on every mutation.
type AppData struct {
	Profiles               []WorkProfile                   `json:"profiles"`
	Records                map[string]map[string]DayRecord `json:"records"`
	ActiveProfileID        string                          `json:"activeProfileId"`
	HasCompletedOnboarding bool                            `json:"hasCompletedOnboarding"`
	Theme                  string                          `json:"theme"`
}

func DefaultAppData() AppData {
	return AppData{
		Profiles:        []WorkProfile{DefaultProfile()},
		Records:         map[string]map[string]DayRecord{DefaultProfileID: {}},
		ActiveProfileID: DefaultProfileID,
		Theme:           ThemeLight,
	}
}

func (data AppData) HasProfile(id string) bool {
	for _, profile := range data.Profiles {
		if profile.ID == id {
			return true
		}
	}
	return false
}

// ActiveProfile falls back to the first profile when the active id dangles;
// callers holding a repaired AppData never hit the fallback.
func (data AppData) ActiveProfile() WorkProfile {
	for _, profile := range data.Profiles {
		if profile.ID == data.ActiveProfileID {
			return profile
		}
	}
	return data.Profiles[0]
}

// RecordsForProfile never returns nil so lookups stay safe on profiles that
// have logged nothing yet.
func (data AppData) RecordsForProfile(profileID string) map[string]DayRecord {
	if records, ok := data.Records[profileID]; ok && records != nil {
		return records
	}
	return map[string]DayRecord{}
}
