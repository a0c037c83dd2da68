package models

// Student is a student record. Courses is derived from the enrollments table
// and is only ever replaced by a full recomputation.
type Student struct {
	StudentID string   `json:"studentId" example:"S1"`
	FirstName string   `json:"firstName" example:"Alice"`
	LastName  string   `json:"lastName" example:"Anderson"`
	Program   string   `json:"program" example:"CPE"`
	Courses   []string `json:"courses"`
}

// Clone returns a deep copy so callers never alias table storage
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}
	c := *s
	c.Courses = append(make([]string, 0, len(s.Courses)), s.Courses...)
	return &c
}
