package models

import "time"

// Teacher represents a member of the teaching staff. TeacherID is the
// external identity printed on staff cards; ID is the surrogate key.
type Teacher struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	TeacherID string    `json:"teacher_id" db:"teacher_id"`
	Subject   string    `json:"subject" db:"subject"`
	Phone     string    `json:"phone" db:"phone"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
