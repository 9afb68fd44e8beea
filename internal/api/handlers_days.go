package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/selflog-dev/selflog/internal/models"
	"github.com/selflog-dev/selflog/internal/services"
)

// GetDays returns the active profile's records for one month, keyed by date.
func (handler *Handler) GetDays(c *fiber.Ctx) error {
	data := handler.store.Snapshot()

	month, err := parseMonthParam(c.Query("month"), handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	prefix := month.Format(monthLayout) + "-"
	records := map[string]models.DayRecord{}
	for date, record := range data.RecordsForProfile(data.ActiveProfileID) {
		if strings.HasPrefix(date, prefix) {
			records[date] = record
		}
	}

	return c.JSON(fiber.Map{
		"profileId": data.ActiveProfileID,
		"month":     month.Format(monthLayout),
		"records":   records,
	})
}

// GetDay returns the stored record, or a transient UNMARKED default when the
// date has no entry.
func (handler *Handler) GetDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	data := handler.store.Snapshot()
	record, found := services.LookupRecord(data, data.ActiveProfileID, day.Format(models.DateLayout))
	if !found {
		record = models.DayRecord{
			Date:   day.Format(models.DateLayout),
			Status: models.StatusUnmarked,
			Shift:  models.ShiftGeneral,
		}
	}

	return c.JSON(fiber.Map{
		"record": record,
		"marked": found,
	})
}

func (handler *Handler) UpsertDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	payload := dayPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	record, err := buildDayRecord(day, payload)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid status value")
	}

	data, err := handler.store.Mutate(func(data models.AppData) (models.AppData, error) {
		return services.UpsertRecord(data, data.ActiveProfileID, record)
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidRecord) {
			return apiError(c, fiber.StatusBadRequest, "invalid day record")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save day")
	}

	saved, _ := services.LookupRecord(data, data.ActiveProfileID, record.Date)
	return c.JSON(fiber.Map{"record": saved})
}

func (handler *Handler) DeleteDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	_, err = handler.store.Mutate(func(data models.AppData) (models.AppData, error) {
		return services.DeleteRecord(data, data.ActiveProfileID, day.Format(models.DateLayout))
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete day")
	}

	return c.JSON(fiber.Map{"ok": true})
}
