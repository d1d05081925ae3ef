package exams

import (
	"github.com/alishbasheba1-droid/SMS/app/engine"
	"github.com/alishbasheba1-droid/SMS/app/models"
	"github.com/alishbasheba1-droid/SMS/app/routes/respond"
	"github.com/gofiber/fiber/v2"
)

// CreateExamAPI defines a new exam.
func CreateExamAPI(c *fiber.Ctx, gb *engine.Gradebook) error {
	type request struct {
		ExamName string `json:"exam_name"`
		Class    string `json:"class"`
		Subject  string `json:"subject"`
		MaxMarks int    `json:"max_marks"`
		Date     string `json:"date"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}

	exam := &models.Exam{
		ExamName: req.ExamName,
		Class:    req.Class,
		Subject:  req.Subject,
		MaxMarks: req.MaxMarks,
		Date:     req.Date,
	}
	id, err := gb.CreateExam(c.UserContext(), exam)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      id,
		"exam":    exam,
	})
}

// GetExamsAPI lists exam definitions.
func GetExamsAPI(c *fiber.Ctx, gb *engine.Gradebook) error {
	exams, err := gb.ListExams(c.UserContext())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"exams": exams,
		"count": len(exams),
	})
}

// RecordResultAPI enters a student's marks for an exam.
func RecordResultAPI(c *fiber.Ctx, gb *engine.Gradebook) error {
	type request struct {
		StudentID string `json:"student_id"`
		Marks     int    `json:"marks"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}

	if err := gb.RecordResult(c.UserContext(), req.StudentID, c.Params("examId"), req.Marks); err != nil {
		return respond.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

// UpdateResultAPI replaces an existing result's marks.
func UpdateResultAPI(c *fiber.Ctx, gb *engine.Gradebook) error {
	type request struct {
		Marks int `json:"marks"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}

	if err := gb.UpdateResult(c.UserContext(), c.Params("studentId"), c.Params("examId"), req.Marks); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetExamResultsAPI returns an exam's ranked result sheet.
func GetExamResultsAPI(c *fiber.Ctx, gb *engine.Gradebook) error {
	sheet, err := gb.ResultsForExam(c.UserContext(), c.Params("examId"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"results": sheet,
		"count":   len(sheet),
	})
}

// GetStudentResultsAPI returns one student's results across exams.
func GetStudentResultsAPI(c *fiber.Ctx, gb *engine.Gradebook) error {
	results, err := gb.ResultsForStudent(c.UserContext(), c.Params("studentId"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"results": results,
		"count":   len(results),
	})
}
