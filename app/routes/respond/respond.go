// Package respond maps engine errors onto JSON responses so every route
// package reports failures the same way.
package respond

import (
	"errors"

	"github.com/alishbasheba1-droid/SMS/app/engine"
	"github.com/gofiber/fiber/v2"
)

// Error writes the JSON error response matching the engine's taxonomy.
// Only storage failures surface as 500; everything else is the caller's
// input to correct.
func Error(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, engine.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, engine.ErrDuplicateKey),
		errors.Is(err, engine.ErrConflict),
		errors.Is(err, engine.ErrOutOfStock):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

// BadRequest reports a malformed request body or parameter.
func BadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}
