package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/selflog-dev/selflog/internal/services"
)

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	data := handler.store.Snapshot()

	serialized, err := services.BuildBackup(data)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, services.BackupFilename(handler.now()))
	return c.Send(serialized)
}

// ImportJSON replaces the whole document from a backup. A rejected backup
// leaves the current data untouched.
func (handler *Handler) ImportJSON(c *fiber.Ctx) error {
	imported, err := services.ImportAppData(c.Body())
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid backup format")
	}

	data := handler.store.Replace(imported)
	return c.JSON(data)
}
