package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/selflog-dev/selflog/internal/models"
)

type themeInput struct {
	Theme string `json:"theme"`
}

func (handler *Handler) UpdateTheme(c *fiber.Ctx) error {
	input := themeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	theme := strings.ToLower(strings.TrimSpace(input.Theme))
	if theme != models.ThemeLight && theme != models.ThemeDark {
		return apiError(c, fiber.StatusBadRequest, "invalid theme")
	}

	data, err := handler.store.Mutate(func(data models.AppData) (models.AppData, error) {
		data.Theme = theme
		return data, nil
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update theme")
	}

	return c.JSON(fiber.Map{"theme": data.Theme})
}

func (handler *Handler) CompleteOnboarding(c *fiber.Ctx) error {
	_, err := handler.store.Mutate(func(data models.AppData) (models.AppData, error) {
		data.HasCompletedOnboarding = true
		return data, nil
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to complete onboarding")
	}

	return c.JSON(fiber.Map{"ok": true})
}

// ClearAllData wipes the document back to the built-in default. The result
// is always a valid state: one "Main Job" profile with no records.
func (handler *Handler) ClearAllData(c *fiber.Ctx) error {
	handler.store.Replace(models.DefaultAppData())
	return c.JSON(fiber.Map{"ok": true})
}
