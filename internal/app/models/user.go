package models

// User is the identity of record used for login and authorization.
type User struct {
	Username  string   `json:"username" example:"alice"`
	Password  string   `json:"-"` // plaintext or bcrypt hash depending on auth.password_mode
	RoleType  RoleType `json:"role" example:"STUDENT" enums:"ADMIN,STUDENT"`
	StudentID *string  `json:"studentId,omitempty" example:"S1"` // nil for ADMIN
}

// OwnsStudent reports whether the user is the student identified by studentID.
func (u *User) OwnsStudent(studentID string) bool {
	return u != nil && u.StudentID != nil && *u.StudentID == studentID
}
