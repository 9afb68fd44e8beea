package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// GetData hands the client its full repaired document in one call, the same
// bootstrap the original client did from local storage on startup.
func (handler *Handler) GetData(c *fiber.Ctx) error {
	return c.JSON(handler.store.Snapshot())
}
