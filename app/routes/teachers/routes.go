package teachers

import (
	"github.com/alishbasheba1-droid/SMS/app/engine"
	"github.com/gofiber/fiber/v2"
)

// SetupTeachersRoutes registers the teacher registry API.
func SetupTeachersRoutes(app *fiber.App, eng *engine.Engine) {
	api := app.Group("/api/teachers")
	api.Post("/", func(c *fiber.Ctx) error { return RegisterTeacherAPI(c, eng.Teachers) })
	api.Get("/", func(c *fiber.Ctx) error { return GetTeachersAPI(c, eng.Teachers) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteTeacherAPI(c, eng.Teachers) })
}
