package api

import (
	"errors"
	"strings"
	"time"

	"github.com/selflog-dev/selflog/internal/models"
)

var (
	errInvalidDateParam  = errors.New("invalid date parameter")
	errInvalidMonthParam = errors.New("invalid month parameter")
	errInvalidStatus     = errors.New("invalid status value")
)

const monthLayout = "2006-01"

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(models.DateLayout, strings.TrimSpace(raw), location)
	if err != nil {
		return time.Time{}, errInvalidDateParam
	}
	return day, nil
}

func parseMonthParam(raw string, now time.Time, location *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, location), nil
	}
	month, err := time.ParseInLocation(monthLayout, trimmed, location)
	if err != nil {
		return time.Time{}, errInvalidMonthParam
	}
	return month, nil
}

type dayPayload struct {
	Status          string   `json:"status"`
	Shift           string   `json:"shift"`
	OvertimeMinutes int      `json:"overtimeMinutes"`
	LeaveType       string   `json:"leaveType"`
	Notes           string   `json:"notes"`
	Tags            []string `json:"tags"`
}

// buildDayRecord maps a request payload onto a persistable record. UNMARKED
// is not accepted here: the client clears a day via DELETE instead.
func buildDayRecord(date time.Time, payload dayPayload) (models.DayRecord, error) {
	status := strings.ToUpper(strings.TrimSpace(payload.Status))
	if !models.IsPersistableStatus(status) {
		return models.DayRecord{}, errInvalidStatus
	}

	record := models.DayRecord{
		Date:            date.Format(models.DateLayout),
		Status:          status,
		Shift:           strings.ToUpper(strings.TrimSpace(payload.Shift)),
		OvertimeMinutes: payload.OvertimeMinutes,
		LeaveType:       strings.ToUpper(strings.TrimSpace(payload.LeaveType)),
		Notes:           payload.Notes,
		Tags:            payload.Tags,
	}
	return record.Normalized(), nil
}
