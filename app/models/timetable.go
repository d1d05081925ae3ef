package models

// TimetableSlot assigns a subject and teacher to one period of a class's
// week. Unique per (class, day, period); setting a slot again replaces the
// assignment.
type TimetableSlot struct {
	Class   string `json:"class" db:"class"`
	Day     string `json:"day" db:"day"`
	Period  int    `json:"period" db:"period"`
	Subject string `json:"subject" db:"subject"`
	Teacher string `json:"teacher" db:"teacher"`
}
