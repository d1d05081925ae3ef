package engine

import (
	"context"
	"sync"
	"testing"

	"github.com/alishbasheba1-droid/SMS/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBookValidation(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	_, err := eng.Library.AddBook(ctx, &models.Book{ISBN: "I1", TotalCopies: 1})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = eng.Library.AddBook(ctx, &models.Book{Title: "Go", TotalCopies: 1})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = eng.Library.AddBook(ctx, &models.Book{Title: "Go", ISBN: "I1", TotalCopies: 0})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddBookDuplicateISBN(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	mustAddBook(t, eng, "Go Basics", "ISBN-1", 2)
	_, err := eng.Library.AddBook(ctx, &models.Book{Title: "Another", ISBN: "ISBN-1", TotalCopies: 1})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestIssueReturnRestoresCopies(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	studentID := mustRegisterStudent(t, eng, "Asha", "R100")
	bookID := mustAddBook(t, eng, "Go Basics", "ISBN-1", 3)

	loanID, err := eng.Library.Issue(ctx, bookID, studentID, day("2025-03-10"))
	require.NoError(t, err)

	books, err := eng.Library.ListBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, books[0].AvailableCopies)

	require.NoError(t, eng.Library.Return(ctx, loanID, day("2025-03-15")))

	books, err = eng.Library.ListBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, books[0].AvailableCopies)

	loans, err := eng.Library.LoansForStudent(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, models.LoanReturned, loans[0].Status)
	require.NotNil(t, loans[0].ReturnDate)
	assert.Equal(t, "2025-03-15", *loans[0].ReturnDate)
}

func TestIssueOutOfStock(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	studentID := mustRegisterStudent(t, eng, "Asha", "R100")
	bookID := mustAddBook(t, eng, "Go Basics", "ISBN-1", 1)

	_, err := eng.Library.Issue(ctx, bookID, studentID, day("2025-03-10"))
	require.NoError(t, err)

	_, err = eng.Library.Issue(ctx, bookID, studentID, day("2025-03-11"))
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestIssueUnknownBookOrStudent(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	studentID := mustRegisterStudent(t, eng, "Asha", "R100")
	bookID := mustAddBook(t, eng, "Go Basics", "ISBN-1", 1)

	_, err := eng.Library.Issue(ctx, "no-such-book", studentID, day("2025-03-10"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = eng.Library.Issue(ctx, bookID, "no-such-student", day("2025-03-10"))
	assert.ErrorIs(t, err, ErrNotFound)

	// The failed issue rolled back; the copy is still available.
	books, err := eng.Library.ListBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, books[0].AvailableCopies)
}

func TestReturnTwice(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	studentID := mustRegisterStudent(t, eng, "Asha", "R100")
	bookID := mustAddBook(t, eng, "Go Basics", "ISBN-1", 1)

	loanID, err := eng.Library.Issue(ctx, bookID, studentID, day("2025-03-10"))
	require.NoError(t, err)
	require.NoError(t, eng.Library.Return(ctx, loanID, day("2025-03-15")))

	err = eng.Library.Return(ctx, loanID, day("2025-03-16"))
	assert.ErrorIs(t, err, ErrConflict)

	err = eng.Library.Return(ctx, "no-such-loan", day("2025-03-16"))
	assert.ErrorIs(t, err, ErrNotFound)

	// The double return did not inflate availability.
	books, err := eng.Library.ListBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, books[0].AvailableCopies)
}

func TestConcurrentIssueLastCopy(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	asha := mustRegisterStudent(t, eng, "Asha", "R100")
	binta := mustRegisterStudent(t, eng, "Binta", "R200")
	bookID := mustAddBook(t, eng, "Go Basics", "ISBN-1", 1)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, student := range []string{asha, binta} {
		wg.Add(1)
		go func(i int, student string) {
			defer wg.Done()
			_, errs[i] = eng.Library.Issue(ctx, bookID, student, day("2025-03-10"))
		}(i, student)
	}
	wg.Wait()

	var successes, outOfStock int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrOutOfStock):
			outOfStock++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, outOfStock)

	books, err := eng.Library.ListBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, books[0].AvailableCopies)
}
