package repositories

import (
	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/db"
)

// CourseRepository reads the course catalogue
type CourseRepository struct {
	tx *db.Tx
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(tx *db.Tx) *CourseRepository {
	return &CourseRepository{tx: tx}
}

// List returns every course
func (r *CourseRepository) List() []models.Course {
	return append(make([]models.Course, 0, len(r.tx.Courses)), r.tx.Courses...)
}
