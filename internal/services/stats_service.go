package services

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/selflog-dev/selflog/internal/models"
)

// Stats is the aggregation over one profile and one contiguous date range.
// WorkingDays counts only days attendance is judged on: holidays and weekly
// offs stay out of the denominator.
type Stats struct {
	Present         int     `json:"present"`
	Absent          int     `json:"absent"`
	HalfDay         int     `json:"halfDay"`
	Holiday         int     `json:"holiday"`
	WeeklyOff       int     `json:"weeklyOff"`
	Unmarked        int     `json:"unmarked"`
	WorkingDays     int     `json:"workingDays"`
	Score           float64 `json:"score"`
	Percentage      float64 `json:"percentage"`
	OvertimeMinutes int     `json:"overtimeMinutes"`
}

// Aggregate walks every calendar date from from to to inclusive and buckets
// the profile's records by status. It is a pure function of its inputs; an
// empty or inverted range yields zero stats with percentage 0.
func Aggregate(records map[string]models.DayRecord, from time.Time, to time.Time) Stats {
	stats := Stats{}
	from = dayStart(from)
	to = dayStart(to)

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		record, found := records[day.Format(models.DateLayout)]
		if !found || !models.IsPersistableStatus(record.Status) {
			stats.Unmarked++
			continue
		}

		stats.OvertimeMinutes += record.OvertimeMinutes
		switch record.Status {
		case models.StatusPresent:
			stats.Present++
		case models.StatusAbsent:
			stats.Absent++
		case models.StatusHalfDay:
			stats.HalfDay++
		case models.StatusHoliday:
			stats.Holiday++
		case models.StatusWeeklyOff:
			stats.WeeklyOff++
		}
	}

	stats.WorkingDays = stats.Present + stats.Absent + stats.HalfDay
	stats.Score = float64(stats.Present) + 0.5*float64(stats.HalfDay)
	if stats.WorkingDays > 0 {
		stats.Percentage = math.Round(stats.Score/float64(stats.WorkingDays)*1000) / 10
	}
	return stats
}

// MonthRange returns the first and last calendar day of a month.
func MonthRange(year int, month time.Month, location *time.Location) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, location)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// FormatOvertime renders a minute total the way the client displays it,
// e.g. 125 -> "2h 5m".
func FormatOvertime(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}

// FormatPercentage always carries one decimal place, e.g. "50.0".
func FormatPercentage(percentage float64) string {
	return strconv.FormatFloat(percentage, 'f', 1, 64)
}

func dayStart(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}
