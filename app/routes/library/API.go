package library

import (
	"time"

	"github.com/alishbasheba1-droid/SMS/app/engine"
	"github.com/alishbasheba1-droid/SMS/app/models"
	"github.com/alishbasheba1-droid/SMS/app/routes/respond"
	"github.com/gofiber/fiber/v2"
)

// AddBookAPI adds a book to the catalog with all copies available.
func AddBookAPI(c *fiber.Ctx, lib *engine.Library) error {
	type request struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		ISBN   string `json:"isbn"`
		Copies int    `json:"copies"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}

	book := &models.Book{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		TotalCopies: req.Copies,
	}
	id, err := lib.AddBook(c.UserContext(), book)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      id,
		"book":    book,
	})
}

// GetBooksAPI lists the catalog with availability.
func GetBooksAPI(c *fiber.Ctx, lib *engine.Library) error {
	books, err := lib.ListBooks(c.UserContext())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"books": books,
		"count": len(books),
	})
}

// IssueBookAPI lends one copy of a book to a student.
func IssueBookAPI(c *fiber.Ctx, lib *engine.Library) error {
	type request struct {
		BookID    string `json:"book_id"`
		StudentID string `json:"student_id"`
		Date      string `json:"date"`
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

	loanID, err := lib.Issue(c.UserContext(), req.BookID, req.StudentID, date)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"loan_id": loanID,
	})
}

// ReturnBookAPI closes a loan and restores the copy.
func ReturnBookAPI(c *fiber.Ctx, lib *engine.Library) error {
	type request struct {
		Date string `json:"date"`
	}

	var req request
	// Body is optional; the return date defaults to today.
	_ = c.BodyParser(&req)

	date := time.Now()
	if req.Date != "" {
		var err error
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return respond.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		}
	}

	if err := lib.Return(c.UserContext(), c.Params("loanId"), date); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetStudentLoansAPI lists a student's loans, newest first.
func GetStudentLoansAPI(c *fiber.Ctx, lib *engine.Library) error {
	loans, err := lib.LoansForStudent(c.UserContext(), c.Params("studentId"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"loans": loans,
		"count": len(loans),
	})
}
