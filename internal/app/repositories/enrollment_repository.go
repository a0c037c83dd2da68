package repositories

import (
	"fmt"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/db"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
	"github.com/yigit/enrollhub/internal/seed"
)

// EnrollmentRepository handles the enrollments table
type EnrollmentRepository struct {
	tx *db.Tx
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(tx *db.Tx) *EnrollmentRepository {
	return &EnrollmentRepository{tx: tx}
}

// List returns a copy of every enrollment
func (r *EnrollmentRepository) List() []models.Enrollment {
	return append(make([]models.Enrollment, 0, len(r.tx.Enrollments)), r.tx.Enrollments...)
}

// CourseIDsByStudent lists the course ids studentID is enrolled in
func (r *EnrollmentRepository) CourseIDsByStudent(studentID string) []string {
	return seed.CourseIDsFor(r.tx.Enrollments, studentID)
}

// Exists reports whether the (studentID, courseID) pair is enrolled
func (r *EnrollmentRepository) Exists(studentID, courseID string) bool {
	return r.indexOf(studentID, courseID) >= 0
}

// Insert appends an enrollment, refusing duplicates
func (r *EnrollmentRepository) Insert(e models.Enrollment) error {
	if !r.tx.Writable() {
		return db.ErrReadOnly
	}
	if r.Exists(e.StudentID, e.CourseID) {
		return apperrors.ErrEnrollmentExists
	}
	r.tx.Enrollments = append(r.tx.Enrollments, e)
	return nil
}

// Delete removes the single enrollment matching the pair
func (r *EnrollmentRepository) Delete(studentID, courseID string) error {
	if !r.tx.Writable() {
		return db.ErrReadOnly
	}
	idx := r.indexOf(studentID, courseID)
	if idx < 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	r.tx.Enrollments = append(r.tx.Enrollments[:idx], r.tx.Enrollments[idx+1:]...)
	return nil
}

// ResetToSeed replaces the enrollments table with the seed data
func (r *EnrollmentRepository) ResetToSeed() error {
	if !r.tx.Writable() {
		return db.ErrReadOnly
	}
	fresh, err := r.tx.Seed()
	if err != nil {
		return fmt.Errorf("failed to load enrollment seed: %w", err)
	}
	r.tx.Enrollments = fresh.Enrollments
	return nil
}

func (r *EnrollmentRepository) indexOf(studentID, courseID string) int {
	for i := range r.tx.Enrollments {
		if r.tx.Enrollments[i].Matches(studentID, courseID) {
			return i
		}
	}
	return -1
}
