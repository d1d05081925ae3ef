package exams

import (
	"github.com/alishbasheba1-droid/SMS/app/engine"
	"github.com/gofiber/fiber/v2"
)

// SetupExamRoutes registers the exam and result API.
func SetupExamRoutes(app *fiber.App, eng *engine.Engine) {
	api := app.Group("/api/exams")
	api.Post("/", func(c *fiber.Ctx) error { return CreateExamAPI(c, eng.Exams) })
	api.Get("/", func(c *fiber.Ctx) error { return GetExamsAPI(c, eng.Exams) })
	api.Post("/:examId/results", func(c *fiber.Ctx) error { return RecordResultAPI(c, eng.Exams) })
	api.Put("/:examId/results/:studentId", func(c *fiber.Ctx) error { return UpdateResultAPI(c, eng.Exams) })
	api.Get("/:examId/results", func(c *fiber.Ctx) error { return GetExamResultsAPI(c, eng.Exams) })

	// Result history hangs off the student resource.
	app.Get("/api/students/:studentId/results", func(c *fiber.Ctx) error {
		return GetStudentResultsAPI(c, eng.Exams)
	})
}
