package attendance

import (
	"github.com/alishbasheba1-droid/SMS/app/engine"
	"github.com/gofiber/fiber/v2"
)

// SetupAttendanceRoutes registers the attendance ledger API.
func SetupAttendanceRoutes(app *fiber.App, eng *engine.Engine) {
	api := app.Group("/api/attendance")
	api.Post("/", func(c *fiber.Ctx) error { return MarkAttendanceAPI(c, eng.Attendance) })
	api.Get("/date/:date", func(c *fiber.Ctx) error { return GetAttendanceByDateAPI(c, eng.Attendance) })
	api.Get("/present-count/:date", func(c *fiber.Ctx) error { return GetPresentCountAPI(c, eng.Attendance) })
	api.Get("/student/:studentId", func(c *fiber.Ctx) error { return GetStudentHistoryAPI(c, eng.Attendance) })
}
