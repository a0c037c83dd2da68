package models

// Enrollment is a (studentId, courseId) membership record. The pair is unique.
type Enrollment struct {
	StudentID string `json:"studentId" example:"S1"`
	CourseID  string `json:"courseId" example:"CS101"`
}

// Matches reports whether e is the enrollment for the given pair
func (e Enrollment) Matches(studentID, courseID string) bool {
	return e.StudentID == studentID && e.CourseID == courseID
}
