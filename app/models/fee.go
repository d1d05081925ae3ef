package models

import "time"

// FeePayment is one immutable ledger entry: an amount that fell due and the
// amount actually paid against it. Balances are derived by summing entries,
// never stored.
type FeePayment struct {
	ID          string    `json:"id" db:"id"`
	StudentID   string    `json:"student_id" db:"student_id"`
	AmountDue   float64   `json:"amount_due" db:"amount_due"`
	AmountPaid  float64   `json:"amount_paid" db:"amount_paid"`
	PaymentDate string    `json:"payment_date" db:"payment_date"`
	Status      FeeStatus `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// OutstandingDue is one row of the dues report: a student and the total
// they still owe across all their payment records.
type OutstandingDue struct {
	StudentID string  `json:"student_id"`
	Name      string  `json:"name"`
	RollNo    string  `json:"roll_no"`
	TotalDue  float64 `json:"total_due"`
}
