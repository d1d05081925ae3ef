package models

import "time"

// Student represents an enrolled student. RollNo is the external identity;
// ID is the internal surrogate key.
type Student struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	RollNo    string    `json:"roll_no" db:"roll_no"`
	Class     string    `json:"class" db:"class"`
	Section   string    `json:"section" db:"section"`
	Age       int       `json:"age" db:"age"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
