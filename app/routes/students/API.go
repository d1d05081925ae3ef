package students

import (
	"github.com/alishbasheba1-droid/SMS/app/engine"
	"github.com/alishbasheba1-droid/SMS/app/models"
	"github.com/alishbasheba1-droid/SMS/app/routes/respond"
	"github.com/gofiber/fiber/v2"
)

// RegisterStudentAPI enrolls a new student.
func RegisterStudentAPI(c *fiber.Ctx, reg *engine.StudentRegistry) error {
	type request struct {
		Name    string `json:"name"`
		RollNo  string `json:"roll_no"`
		Class   string `json:"class"`
		Section string `json:"section"`
		Age     int    `json:"age"`
		Phone   string `json:"phone"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}

	student := &models.Student{
		Name:    req.Name,
		RollNo:  req.RollNo,
		Class:   req.Class,
		Section: req.Section,
		Age:     req.Age,
		Phone:   req.Phone,
	}
	id, err := reg.Register(c.UserContext(), student)
	if err != nil {
		return respond.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      id,
		"student": student,
	})
}

// GetStudentsAPI lists students, optionally filtered by ?search= over name
// and roll number.
func GetStudentsAPI(c *fiber.Ctx, reg *engine.StudentRegistry) error {
	students, err := reg.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

// GetStudentAPI fetches one student by id.
func GetStudentAPI(c *fiber.Ctx, reg *engine.StudentRegistry) error {
	student, err := reg.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{"student": student})
}

// DeleteStudentAPI removes a student and all their dependent records.
func DeleteStudentAPI(c *fiber.Ctx, reg *engine.StudentRegistry) error {
	if err := reg.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
