package teachers

import (
	"github.com/alishbasheba1-droid/SMS/app/engine"
	"github.com/alishbasheba1-droid/SMS/app/models"
	"github.com/alishbasheba1-droid/SMS/app/routes/respond"
	"github.com/gofiber/fiber/v2"
)

// RegisterTeacherAPI adds a new teacher.
func RegisterTeacherAPI(c *fiber.Ctx, reg *engine.TeacherRegistry) error {
	type request struct {
		Name      string `json:"name"`
		TeacherID string `json:"teacher_id"`
		Subject   string `json:"subject"`
		Phone     string `json:"phone"`
		Email     string `json:"email"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}

	teacher := &models.Teacher{
		Name:      req.Name,
		TeacherID: req.TeacherID,
		Subject:   req.Subject,
		Phone:     req.Phone,
		Email:     req.Email,
	}
	id, err := reg.Register(c.UserContext(), teacher)
	if err != nil {
		return respond.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      id,
		"teacher": teacher,
	})
}

// GetTeachersAPI lists teachers, optionally filtered by ?search=.
func GetTeachersAPI(c *fiber.Ctx, reg *engine.TeacherRegistry) error {
	teachers, err := reg.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"teachers": teachers,
		"count":    len(teachers),
	})
}

// DeleteTeacherAPI removes a teacher unless the timetable still names them.
func DeleteTeacherAPI(c *fiber.Ctx, reg *engine.TeacherRegistry) error {
	if err := reg.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
