package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/selflog-dev/selflog/internal/models"
	"github.com/selflog-dev/selflog/internal/services"
)

type createProfileInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (handler *Handler) GetProfiles(c *fiber.Ctx) error {
	data := handler.store.Snapshot()
	return c.JSON(fiber.Map{
		"profiles":        data.Profiles,
		"activeProfileId": data.ActiveProfileID,
	})
}

func (handler *Handler) CreateProfile(c *fiber.Ctx) error {
	input := createProfileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	data, err := handler.store.Mutate(func(data models.AppData) (models.AppData, error) {
		return services.AddProfile(data, input.Name, input.Color)
	})
	if err != nil {
		if errors.Is(err, services.ErrEmptyProfileName) {
			return apiError(c, fiber.StatusBadRequest, "profile name is required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to add profile")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"profile":         data.ActiveProfile(),
		"activeProfileId": data.ActiveProfileID,
	})
}

func (handler *Handler) ActivateProfile(c *fiber.Ctx) error {
	profileID := c.Params("id")

	data, err := handler.store.Mutate(func(data models.AppData) (models.AppData, error) {
		return services.SwitchProfile(data, profileID)
	})
	if err != nil {
		if errors.Is(err, services.ErrUnknownProfile) {
			return apiError(c, fiber.StatusNotFound, "profile not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to switch profile")
	}

	return c.JSON(fiber.Map{"activeProfileId": data.ActiveProfileID})
}

func (handler *Handler) DeleteProfile(c *fiber.Ctx) error {
	profileID := c.Params("id")

	data, err := handler.store.Mutate(func(data models.AppData) (models.AppData, error) {
		return services.DeleteProfile(data, profileID)
	})
	if err != nil {
		if errors.Is(err, services.ErrUnknownProfile) {
			return apiError(c, fiber.StatusNotFound, "profile not found")
		}
		if errors.Is(err, services.ErrLastProfile) {
			return apiError(c, fiber.StatusConflict, "cannot delete the only profile")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete profile")
	}

	return c.JSON(fiber.Map{
		"profiles":        data.Profiles,
		"activeProfileId": data.ActiveProfileID,
	})
}
