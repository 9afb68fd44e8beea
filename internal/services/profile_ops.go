package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/selflog-dev/selflog/internal/models"
)

var (
	ErrEmptyProfileName = errors.New("profile name is empty")
	ErrUnknownProfile   = errors.New("profile not found")
	ErrLastProfile      = errors.New("cannot delete the only profile")
)

// AddProfile appends a profile with a fresh id, gives it an empty record
// map, and makes it active. The input AppData is left untouched.
func AddProfile(data models.AppData, name string, color string) (models.AppData, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return data, ErrEmptyProfileName
	}
	if strings.TrimSpace(color) == "" {
		color = models.DefaultProfileColor
	}

	profile := models.WorkProfile{
		ID:    uuid.NewString(),
		Name:  name,
		Color: color,
	}

	next := data
	next.Profiles = append(append([]models.WorkProfile{}, data.Profiles...), profile)
	next.Records = cloneRecordsShallow(data.Records)
	next.Records[profile.ID] = map[string]models.DayRecord{}
	next.ActiveProfileID = profile.ID
	return next, nil
}

func SwitchProfile(data models.AppData, profileID string) (models.AppData, error) {
	if !data.HasProfile(profileID) {
		return data, ErrUnknownProfile
	}
	next := data
	next.ActiveProfileID = profileID
	return next, nil
}

// DeleteProfile removes a profile together with its records. Deleting the
// last remaining profile is rejected; deleting the active profile hands the
// active slot to the first remaining profile in list order.
func DeleteProfile(data models.AppData, profileID string) (models.AppData, error) {
	if !data.HasProfile(profileID) {
		return data, ErrUnknownProfile
	}
	if len(data.Profiles) <= 1 {
		return data, ErrLastProfile
	}

	remaining := make([]models.WorkProfile, 0, len(data.Profiles)-1)
	for _, profile := range data.Profiles {
		if profile.ID != profileID {
			remaining = append(remaining, profile)
		}
	}

	next := data
	next.Profiles = remaining
	next.Records = cloneRecordsShallow(data.Records)
	delete(next.Records, profileID)
	if next.ActiveProfileID == profileID {
		next.ActiveProfileID = remaining[0].ID
	}
	return next, nil
}

// cloneRecordsShallow copies the outer profile map only; per-profile day
// maps stay shared until a mutation touches them.
func cloneRecordsShallow(records map[string]map[string]models.DayRecord) map[string]map[string]models.DayRecord {
	cloned := make(map[string]map[string]models.DayRecord, len(records)+1)
	for profileID, dayMap := range records {
		cloned[profileID] = dayMap
	}
	return cloned
}
