package models

// AttendanceStatus defines the possible status values for a daily attendance mark.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
)

// Valid reports whether the status is one of the accepted marks.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case Present, Absent, Late:
		return true
	}
	return false
}

// FeeStatus defines the derived state of a fee payment record.
type FeeStatus string

const (
	FeePaid    FeeStatus = "paid"
	FeePending FeeStatus = "pending"
)

// LoanStatus defines the state of a library loan.
type LoanStatus string

const (
	LoanIssued   LoanStatus = "issued"
	LoanReturned LoanStatus = "returned"
)
