package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/selflog-dev/selflog/internal/services"
)

// GetStatsOverview aggregates the active profile over one month
// (?month=YYYY-MM, defaulting to the current month) or over an explicit
// inclusive range (?from=YYYY-MM-DD&to=YYYY-MM-DD).
func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	from, to, err := handler.statsRange(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	data := handler.store.Snapshot()
	stats := services.Aggregate(data.RecordsForProfile(data.ActiveProfileID), from, to)

	return c.JSON(fiber.Map{
		"profileId":       data.ActiveProfileID,
		"from":            from.Format("2006-01-02"),
		"to":              to.Format("2006-01-02"),
		"stats":           stats,
		"percentageLabel": services.FormatPercentage(stats.Percentage),
		"overtimeLabel":   services.FormatOvertime(stats.OvertimeMinutes),
	})
}

func (handler *Handler) statsRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	fromRaw := c.Query("from")
	toRaw := c.Query("to")
	if fromRaw != "" || toRaw != "" {
		from, err := parseDayParam(fromRaw, handler.location)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to, err := parseDayParam(toRaw, handler.location)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return from, to, nil
	}

	month, err := parseMonthParam(c.Query("month"), handler.now(), handler.location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	from, to := services.MonthRange(month.Year(), month.Month(), handler.location)
	return from, to, nil
}
