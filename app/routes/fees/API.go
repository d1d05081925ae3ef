package fees

import (
	"time"

	"github.com/alishbasheba1-droid/SMS/app/engine"
	"github.com/alishbasheba1-droid/SMS/app/routes/respond"
	"github.com/gofiber/fiber/v2"
)

// RecordPaymentAPI appends one payment to a student's fee ledger.
func RecordPaymentAPI(c *fiber.Ctx, ledger *engine.FeeLedger) error {
	type request struct {
		StudentID  string  `json:"student_id"`
		AmountDue  float64 `json:"amount_due"`
		AmountPaid float64 `json:"amount_paid"`
		Date       string  `json:"date"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}

	date := time.Now()
	if req.Date != "" {
		var err error
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return respond.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		}
	}

	id, err := ledger.RecordPayment(c.UserContext(), req.StudentID, req.AmountDue, req.AmountPaid, date)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      id,
	})
}

// GetOutstandingDuesAPI returns the dues report, most owed first.
func GetOutstandingDuesAPI(c *fiber.Ctx, ledger *engine.FeeLedger) error {
	dues, err := ledger.OutstandingDues(c.UserContext())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"dues":  dues,
		"count": len(dues),
	})
}

// GetStudentPaymentsAPI returns one student's ledger entries.
func GetStudentPaymentsAPI(c *fiber.Ctx, ledger *engine.FeeLedger) error {
	payments, err := ledger.PaymentsForStudent(c.UserContext(), c.Params("studentId"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"payments": payments,
		"count":    len(payments),
	})
}
