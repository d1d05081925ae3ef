package models

import "time"

// Book is a catalog entry. AvailableCopies always equals TotalCopies minus
// the number of currently issued loans for the book.
type Book struct {
	ID              string    `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Author          string    `json:"author" db:"author"`
	ISBN            string    `json:"isbn" db:"isbn"`
	TotalCopies     int       `json:"total_copies" db:"total_copies"`
	AvailableCopies int       `json:"available_copies" db:"available_copies"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// LoanRecord tracks one copy of a book out on loan to a student.
// Its lifecycle is issued -> returned, with returned terminal.
type LoanRecord struct {
	ID         string     `json:"id" db:"id"`
	BookID     string     `json:"book_id" db:"book_id"`
	StudentID  string     `json:"student_id" db:"student_id"`
	IssueDate  string     `json:"issue_date" db:"issue_date"`
	ReturnDate *string    `json:"return_date,omitempty" db:"return_date"`
	Status     LoanStatus `json:"status" db:"status"`
}
