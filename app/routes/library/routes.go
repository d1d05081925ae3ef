package library

import (
	"github.com/alishbasheba1-droid/SMS/app/engine"
	"github.com/gofiber/fiber/v2"
)

// SetupLibraryRoutes registers the circulation API.
func SetupLibraryRoutes(app *fiber.App, eng *engine.Engine) {
	api := app.Group("/api/library")
	api.Post("/books", func(c *fiber.Ctx) error { return AddBookAPI(c, eng.Library) })
	api.Get("/books", func(c *fiber.Ctx) error { return GetBooksAPI(c, eng.Library) })
	api.Post("/issue", func(c *fiber.Ctx) error { return IssueBookAPI(c, eng.Library) })
	api.Post("/return/:loanId", func(c *fiber.Ctx) error { return ReturnBookAPI(c, eng.Library) })
	api.Get("/student/:studentId", func(c *fiber.Ctx) error { return GetStudentLoansAPI(c, eng.Library) })
}
