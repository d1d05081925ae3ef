package fees

import (
	"github.com/alishbasheba1-droid/SMS/app/engine"
	"github.com/gofiber/fiber/v2"
)

// SetupFeesRoutes registers the fee ledger API.
func SetupFeesRoutes(app *fiber.App, eng *engine.Engine) {
	api := app.Group("/api/fees")
	api.Post("/", func(c *fiber.Ctx) error { return RecordPaymentAPI(c, eng.Fees) })
	api.Get("/outstanding", func(c *fiber.Ctx) error { return GetOutstandingDuesAPI(c, eng.Fees) })
	api.Get("/student/:studentId", func(c *fiber.Ctx) error { return GetStudentPaymentsAPI(c, eng.Fees) })
}
