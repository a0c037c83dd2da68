package models

// Course is read-only reference data.
type Course struct {
	CourseID    string `json:"courseId" example:"CS101"`
	CourseTitle string `json:"courseTitle" example:"Introduction to Programming"`
	Instructor  string `json:"instructor,omitempty" example:"Dr. Smith"`
	Credits     int    `json:"credits" example:"3"`
}
