package timetable

import (
	"github.com/alishbasheba1-droid/SMS/app/engine"
	"github.com/alishbasheba1-droid/SMS/app/models"
	"github.com/alishbasheba1-droid/SMS/app/routes/respond"
	"github.com/gofiber/fiber/v2"
)

// SetSlotAPI assigns a subject and teacher to one period; last write wins.
func SetSlotAPI(c *fiber.Ctx, tt *engine.Timetable) error {
	var slot models.TimetableSlot
	if err := c.BodyParser(&slot); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}

	if err := tt.SetSlot(c.UserContext(), slot); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetGridAPI returns a class's week as day/period rows.
func GetGridAPI(c *fiber.Ctx, tt *engine.Timetable) error {
	grid, err := tt.Grid(c.UserContext(), c.Params("class"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"class": c.Params("class"),
		"grid":  grid,
		"count": len(grid),
	})
}
