package students

import (
	"github.com/alishbasheba1-droid/SMS/app/engine"
	"github.com/gofiber/fiber/v2"
)

// SetupStudentsRoutes registers the student registry API.
func SetupStudentsRoutes(app *fiber.App, eng *engine.Engine) {
	api := app.Group("/api/students")
	api.Post("/", func(c *fiber.Ctx) error { return RegisterStudentAPI(c, eng.Students) })
	api.Get("/", func(c *fiber.Ctx) error { return GetStudentsAPI(c, eng.Students) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetStudentAPI(c, eng.Students) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteStudentAPI(c, eng.Students) })
}
