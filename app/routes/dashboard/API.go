package dashboard

import (
	"time"

	"github.com/alishbasheba1-droid/SMS/app/engine"
	"github.com/alishbasheba1-droid/SMS/app/routes/respond"
	"github.com/gofiber/fiber/v2"
)

// GetDashboardAPI returns the overview figures, computed fresh per call.
func GetDashboardAPI(c *fiber.Ctx, d *engine.Dashboard) error {
	stats, err := d.Stats(c.UserContext(), time.Now())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}

// SetupDashboardRoutes registers the overview endpoint.
func SetupDashboardRoutes(app *fiber.App, eng *engine.Engine) {
	app.Get("/api/dashboard", func(c *fiber.Ctx) error { return GetDashboardAPI(c, eng.Dashboard) })
}
