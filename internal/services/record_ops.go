package services

import (
	"errors"

	"github.com/selflog-dev/selflog/internal/models"
)

var ErrInvalidRecord = errors.New("invalid day record")

// UpsertRecord replaces the record for (profile, date) wholesale. Records
// for other dates and other profiles are shared with the input untouched:
// only the mutated profile's day map is copied.
func UpsertRecord(data models.AppData, profileID string, record models.DayRecord) (models.AppData, error) {
	if !data.HasProfile(profileID) {
		return data, ErrUnknownProfile
	}
	record = record.Normalized()
	if record.Date == "" || !models.IsPersistableStatus(record.Status) {
		return data, ErrInvalidRecord
	}

	next := data
	next.Records = cloneRecordsShallow(data.Records)
	profileRecords := cloneDayMap(data.Records[profileID])
	profileRecords[record.Date] = record
	next.Records[profileID] = profileRecords
	return next, nil
}

// DeleteRecord returns the date to the unmarked state. Deleting a date that
// has no record is a no-op, not an error.
func DeleteRecord(data models.AppData, profileID string, date string) (models.AppData, error) {
	if !data.HasProfile(profileID) {
		return data, ErrUnknownProfile
	}
	if _, exists := data.Records[profileID][date]; !exists {
		return data, nil
	}

	next := data
	next.Records = cloneRecordsShallow(data.Records)
	profileRecords := cloneDayMap(data.Records[profileID])
	delete(profileRecords, date)
	next.Records[profileID] = profileRecords
	return next, nil
}

func LookupRecord(data models.AppData, profileID string, date string) (models.DayRecord, bool) {
	record, found := data.Records[profileID][date]
	return record, found
}

func cloneDayMap(dayMap map[string]models.DayRecord) map[string]models.DayRecord {
	cloned := make(map[string]models.DayRecord, len(dayMap)+1)
	for date, record := range dayMap {
		cloned[date] = record
	}
	return cloned
}
