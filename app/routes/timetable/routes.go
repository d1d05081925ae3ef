package timetable

import (
	"github.com/alishbasheba1-droid/SMS/app/engine"
	"github.com/gofiber/fiber/v2"
)

// SetupTimetableRoutes registers the timetable API.
func SetupTimetableRoutes(app *fiber.App, eng *engine.Engine) {
	api := app.Group("/api/timetable")
	api.Post("/", func(c *fiber.Ctx) error { return SetSlotAPI(c, eng.Timetable) })
	api.Get("/:class", func(c *fiber.Ctx) error { return GetGridAPI(c, eng.Timetable) })
}
