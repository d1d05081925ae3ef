package attendance

import (
	"time"

	"github.com/alishbasheba1-droid/SMS/app/engine"
	"github.com/alishbasheba1-droid/SMS/app/models"
	"github.com/alishbasheba1-droid/SMS/app/routes/respond"
	"github.com/gofiber/fiber/v2"
)

// MarkAttendanceAPI commits a whole day's register in one batch. Either
// every entry lands or the call fails as a unit.
func MarkAttendanceAPI(c *fiber.Ctx, ledger *engine.AttendanceLedger) error {
	type request struct {
		Date    string                   `json:"date"`
		Entries []models.AttendanceEntry `json:"entries"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return respond.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
	}

	if err := ledger.Mark(c.UserContext(), date, req.Entries); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"date":    req.Date,
		"count":   len(req.Entries),
	})
}

// GetAttendanceByDateAPI returns the register for one date.
func GetAttendanceByDateAPI(c *fiber.Ctx, ledger *engine.AttendanceLedger) error {
	date, err := time.Parse("2006-01-02", c.Params("date"))
	if err != nil {
		return respond.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
	}

	register, err := ledger.ByDate(c.UserContext(), date)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"attendance": register,
		"count":      len(register),
		"date":       c.Params("date"),
	})
}

// GetPresentCountAPI returns how many students were present on a date.
func GetPresentCountAPI(c *fiber.Ctx, ledger *engine.AttendanceLedger) error {
	date, err := time.Parse("2006-01-02", c.Params("date"))
	if err != nil {
		return respond.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
	}

	count, err := ledger.PresentCount(c.UserContext(), date)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"date":          c.Params("date"),
		"present_count": count,
	})
}

// GetStudentHistoryAPI returns a student's marks in date order.
func GetStudentHistoryAPI(c *fiber.Ctx, ledger *engine.AttendanceLedger) error {
	history, err := ledger.History(c.UserContext(), c.Params("studentId"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"student_id": c.Params("studentId"),
		"history":    history,
		"count":      len(history),
	})
}
