package repositories

import (
	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/db"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
)

// StudentRepository handles the students table
type StudentRepository struct {
	tx *db.Tx
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(tx *db.Tx) *StudentRepository {
	return &StudentRepository{tx: tx}
}

// List returns deep copies of every student
func (r *StudentRepository) List() []models.Student {
	out := make([]models.Student, len(r.tx.Students))
	for i := range r.tx.Students {
		out[i] = *r.tx.Students[i].Clone()
	}
	return out
}

// GetByID returns a copy of the student with the given id
func (r *StudentRepository) GetByID(studentID string) (*models.Student, error) {
	idx := r.indexOf(studentID)
	if idx < 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	return r.tx.Students[idx].Clone(), nil
}

// Exists reports whether a student with the given id exists
func (r *StudentRepository) Exists(studentID string) bool {
	return r.indexOf(studentID) >= 0
}

// ReplaceCourses overwrites the derived course list of a student. Every other
// field of the record is left as it was.
func (r *StudentRepository) ReplaceCourses(studentID string, courses []string) error {
	if !r.tx.Writable() {
		return db.ErrReadOnly
	}
	idx := r.indexOf(studentID)
	if idx < 0 {
		return apperrors.ErrStudentNotFound
	}
	r.tx.Students[idx].Courses = append(make([]string, 0, len(courses)), courses...)
	return nil
}

func (r *StudentRepository) indexOf(studentID string) int {
	for i := range r.tx.Students {
		if r.tx.Students[i].StudentID == studentID {
			return i
		}
	}
	return -1
}
