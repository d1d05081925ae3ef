package models

// AttendanceEntry is one row of a daily attendance batch as submitted by the
// caller: which student, and their status for the batch's date.
type AttendanceEntry struct {
	StudentID string           `json:"student_id"`
	Status    AttendanceStatus `json:"status"`
}

// AttendanceRecord is a committed per-student, per-date mark. At most one
// record exists per (student, date); re-marking replaces the status.
type AttendanceRecord struct {
	ID        string           `json:"id" db:"id"`
	StudentID string           `json:"student_id" db:"student_id"`
	Date      string           `json:"date" db:"date"`
	Status    AttendanceStatus `json:"status" db:"status"`
}

// AttendanceMark is one entry of a student's attendance history.
type AttendanceMark struct {
	Date   string           `json:"date"`
	Status AttendanceStatus `json:"status"`
}

// DayAttendance is the register view for a date: the student's display
// fields joined onto their mark.
type DayAttendance struct {
	StudentID string           `json:"student_id"`
	Name      string           `json:"name"`
	RollNo    string           `json:"roll_no"`
	Status    AttendanceStatus `json:"status"`
}
