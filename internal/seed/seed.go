package seed

import (
	"fmt"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/db"
	"github.com/yigit/enrollhub/internal/pkg/auth"
)

func strPtr(s string) *string { return &s }

// DefaultData returns the initial data set with plaintext passwords.
// Student course lists are derived from the enrollments.
func DefaultData() *db.Tables {
	t := &db.Tables{
		Users: []models.User{
			{Username: "admin", Password: "adminpw", RoleType: models.RoleAdmin},
			{Username: "alice", Password: "pw1", RoleType: models.RoleStudent, StudentID: strPtr("S1")},
			{Username: "bob", Password: "pw2", RoleType: models.RoleStudent, StudentID: strPtr("S2")},
			{Username: "carol", Password: "pw3", RoleType: models.RoleStudent, StudentID: strPtr("S3")},
		},
		Students: []models.Student{
			{StudentID: "S1", FirstName: "Alice", LastName: "Anderson", Program: "CPE"},
			{StudentID: "S2", FirstName: "Bob", LastName: "Brown", Program: "ISNE"},
			{StudentID: "S3", FirstName: "Carol", LastName: "Chen", Program: "CPE"},
		},
		Courses: []models.Course{
			{CourseID: "CS101", CourseTitle: "Introduction to Programming", Instructor: "Dr. Smith", Credits: 3},
			{CourseID: "CS102", CourseTitle: "Data Structures", Instructor: "Dr. Jones", Credits: 3},
			{CourseID: "MA101", CourseTitle: "Calculus I", Instructor: "Dr. Lee", Credits: 3},
			{CourseID: "PH101", CourseTitle: "Physics I", Instructor: "Dr. Park", Credits: 4},
		},
		Enrollments: []models.Enrollment{
			{StudentID: "S2", CourseID: "CS102"},
			{StudentID: "S3", CourseID: "CS101"},
			{StudentID: "S3", CourseID: "MA101"},
		},
	}
	DeriveCourses(t)
	return t
}

// DeriveCourses recomputes every student's course list from the enrollments.
func DeriveCourses(t *db.Tables) {
	for i := range t.Students {
		t.Students[i].Courses = CourseIDsFor(t.Enrollments, t.Students[i].StudentID)
	}
}

// CourseIDsFor lists, in enrollment order, the courses studentID is enrolled in.
func CourseIDsFor(enrollments []models.Enrollment, studentID string) []string {
	courses := make([]string, 0)
	for _, e := range enrollments {
		if e.StudentID == studentID {
			courses = append(courses, e.CourseID)
		}
	}
	return courses
}

// Snapshot prepares the default data once, storing passwords in the form the
// matcher expects, and returns a SeedFunc handing out deep copies of it.
func Snapshot(matcher auth.PasswordMatcher) (db.SeedFunc, error) {
	base := DefaultData()
	for i := range base.Users {
		stored, err := matcher.Prepare(base.Users[i].Password)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare password for %s: %w", base.Users[i].Username, err)
		}
		base.Users[i].Password = stored
	}

	return func() (*db.Tables, error) {
		return base.Clone(), nil
	}, nil
}
