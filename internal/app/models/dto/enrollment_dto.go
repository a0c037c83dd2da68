package dto

import "github.com/yigit/enrollhub/internal/app/models"

// EnrollmentRequest is the body of add and drop requests
type EnrollmentRequest struct {
	StudentID string `json:"studentId" binding:"required,studentid" example:"S1"`
	CourseID  string `json:"courseId" binding:"required,courseid" example:"CS101"`
}

// ToModel converts the request into an enrollment record
func (r EnrollmentRequest) ToModel() models.Enrollment {
	return models.Enrollment{StudentID: r.StudentID, CourseID: r.CourseID}
}

// CourseRef identifies a course inside an enrollment summary
type CourseRef struct {
	CourseID string `json:"courseId" example:"CS101"`
}

// StudentEnrollments is one row of the admin enrollment listing
type StudentEnrollments struct {
	StudentID string      `json:"studentId" example:"S1"`
	Courses   []CourseRef `json:"courses"`
}
