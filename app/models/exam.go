package models

import "time"

// Exam represents a scheduled examination for a class and subject.
type Exam struct {
	ID        string    `json:"id" db:"id"`
	ExamName  string    `json:"exam_name" db:"exam_name"`
	Class     string    `json:"class" db:"class"`
	Subject   string    `json:"subject" db:"subject"`
	MaxMarks  int       `json:"max_marks" db:"max_marks"`
	Date      string    `json:"date" db:"date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Result is a student's marks for one exam. At most one result exists per
// (student, exam); changing it goes through an explicit update.
type Result struct {
	ID            string `json:"id" db:"id"`
	StudentID     string `json:"student_id" db:"student_id"`
	ExamID        string `json:"exam_id" db:"exam_id"`
	MarksObtained int    `json:"marks_obtained" db:"marks_obtained"`
}

// ExamResult is one row of an exam's ranked result sheet.
type ExamResult struct {
	StudentID     string `json:"student_id"`
	Name          string `json:"name"`
	RollNo        string `json:"roll_no"`
	MarksObtained int    `json:"marks_obtained"`
}

// StudentResult is one row of a student's result history across exams.
type StudentResult struct {
	ExamID        string `json:"exam_id"`
	ExamName      string `json:"exam_name"`
	Subject       string `json:"subject"`
	MarksObtained int    `json:"marks_obtained"`
	MaxMarks      int    `json:"max_marks"`
}
