package models

// DashboardStats holds the overview figures. Every field is computed fresh
// from the store on each request; nothing here is cached.
type DashboardStats struct {
	TotalStudents   int     `json:"total_students"`
	TotalTeachers   int     `json:"total_teachers"`
	TotalBooks      int     `json:"total_books"`
	OutstandingDues float64 `json:"outstanding_dues"`
	PresentToday    int     `json:"present_today"`
}
