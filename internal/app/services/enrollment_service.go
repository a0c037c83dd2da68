package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appAuth "github.com/yigit/enrollhub/internal/app/auth"
	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/app/models/dto"
	"github.com/yigit/enrollhub/internal/app/repositories"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
)

// EnrollmentService defines the enrollment workflow
type EnrollmentService interface {
	ListEnrollments(ctx context.Context) ([]dto.StudentEnrollments, error)
	ResetEnrollments(ctx context.Context) error
	GetStudent(ctx context.Context, caller appAuth.Identity, studentID string) (*models.Student, error)
	AddEnrollment(ctx context.Context, caller appAuth.Identity, studentID string, req dto.EnrollmentRequest) (*models.Enrollment, error)
	DropEnrollment(ctx context.Context, caller appAuth.Identity, studentID string, req dto.EnrollmentRequest) ([]models.Enrollment, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
}

type enrollmentServiceImpl struct {
	store  repositories.Store
	authz  *appAuth.AuthorizationService
	logger zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(store repositories.Store, authz *appAuth.AuthorizationService, logger zerolog.Logger) EnrollmentService {
	return &enrollmentServiceImpl{
		store:  store,
		authz:  authz,
		logger: logger.With().Str("component", "enrollment_service").Logger(),
	}
}

// ListEnrollments groups the enrollments table by student
func (s *enrollmentServiceImpl) ListEnrollments(ctx context.Context) ([]dto.StudentEnrollments, error) {
	var out []dto.StudentEnrollments
	err := s.store.View(ctx, func(_ context.Context, r *repositories.Repositories) error {
		students := r.Students.List()
		out = make([]dto.StudentEnrollments, 0, len(students))
		for _, st := range students {
			courseIDs := r.Enrollments.CourseIDsByStudent(st.StudentID)
			refs := make([]dto.CourseRef, 0, len(courseIDs))
			for _, id := range courseIDs {
				refs = append(refs, dto.CourseRef{CourseID: id})
			}
			out = append(out, dto.StudentEnrollments{StudentID: st.StudentID, Courses: refs})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return out, nil
}

// ResetEnrollments restores the seed enrollments and re-derives every
// student's course list in the same transaction.
func (s *enrollmentServiceImpl) ResetEnrollments(ctx context.Context) error {
	err := s.store.Update(ctx, func(_ context.Context, r *repositories.Repositories) error {
		if err := r.Enrollments.ResetToSeed(); err != nil {
			return err
		}
		for _, st := range r.Students.List() {
			if err := syncStudentCourses(r, st.StudentID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to reset enrollments")
		return fmt.Errorf("failed to reset enrollments: %w", err)
	}
	s.logger.Info().Msg("Enrollments reset to seed data")
	return nil
}

// GetStudent returns a student record to an admin or to the student itself
func (s *enrollmentServiceImpl) GetStudent(ctx context.Context, caller appAuth.Identity, studentID string) (*models.Student, error) {
	var student *models.Student
	err := s.store.View(ctx, func(_ context.Context, r *repositories.Repositories) error {
		var err error
		if student, err = r.Students.GetByID(studentID); err != nil {
			return err
		}
		return s.authz.CanViewStudent(r, caller, studentID)
	})
	if err != nil {
		return nil, err
	}
	return student, nil
}

// AddEnrollment enrolls the calling student in a course
func (s *enrollmentServiceImpl) AddEnrollment(ctx context.Context, caller appAuth.Identity, studentID string, req dto.EnrollmentRequest) (*models.Enrollment, error) {
	enrollment := req.ToModel()

	err := s.store.Update(ctx, func(_ context.Context, r *repositories.Repositories) error {
		if err := s.checkStudentAndCaller(r, caller, studentID, req.StudentID); err != nil {
			return err
		}
		if r.Enrollments.Exists(enrollment.StudentID, enrollment.CourseID) {
			return apperrors.ErrEnrollmentExists
		}
		if err := r.Enrollments.Insert(enrollment); err != nil {
			return err
		}
		return syncStudentCourses(r, studentID)
	})
	if err != nil {
		s.logFailure(err, "add", studentID, req.CourseID)
		return nil, err
	}

	s.logger.Info().Str("studentId", studentID).Str("courseId", req.CourseID).Msg("Enrollment added")
	return &enrollment, nil
}

// DropEnrollment removes one of the calling student's enrollments and
// returns the enrollments remaining in the table.
func (s *enrollmentServiceImpl) DropEnrollment(ctx context.Context, caller appAuth.Identity, studentID string, req dto.EnrollmentRequest) ([]models.Enrollment, error) {
	var remaining []models.Enrollment

	err := s.store.Update(ctx, func(_ context.Context, r *repositories.Repositories) error {
		if err := s.checkStudentAndCaller(r, caller, studentID, req.StudentID); err != nil {
			return err
		}
		if err := r.Enrollments.Delete(studentID, req.CourseID); err != nil {
			return err
		}
		if err := syncStudentCourses(r, studentID); err != nil {
			return err
		}
		remaining = r.Enrollments.List()
		return nil
	})
	if err != nil {
		s.logFailure(err, "drop", studentID, req.CourseID)
		return nil, err
	}

	s.logger.Info().Str("studentId", studentID).Str("courseId", req.CourseID).Msg("Enrollment dropped")
	return remaining, nil
}

// ListCourses returns the course catalogue
func (s *enrollmentServiceImpl) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := s.store.View(ctx, func(_ context.Context, r *repositories.Repositories) error {
		courses = r.Courses.List()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// checkStudentAndCaller runs the existence check (404) before authorization (403)
func (s *enrollmentServiceImpl) checkStudentAndCaller(r *repositories.Repositories, caller appAuth.Identity, pathID, bodyID string) error {
	if !r.Students.Exists(pathID) {
		return apperrors.ErrStudentNotFound
	}
	return s.authz.CanModifyEnrollment(r, caller, pathID, bodyID)
}

func (s *enrollmentServiceImpl) logFailure(err error, op, studentID, courseID string) {
	if apperrors.Is(err, apperrors.ErrStudentNotFound, apperrors.ErrEnrollmentNotFound,
		apperrors.ErrEnrollmentExists, apperrors.ErrPermissionDenied) {
		s.logger.Warn().Err(err).Str("op", op).Str("studentId", studentID).Str("courseId", courseID).Msg("Enrollment change rejected")
		return
	}
	if errors.Is(err, context.Canceled) {
		return
	}
	s.logger.Error().Err(err).Str("op", op).Str("studentId", studentID).Str("courseId", courseID).Msg("Enrollment change failed")
}

// syncStudentCourses re-derives a student's course list from the full
// enrollments table. It never patches the existing list.
func syncStudentCourses(r *repositories.Repositories, studentID string) error {
	return r.Students.ReplaceCourses(studentID, r.Enrollments.CourseIDsByStudent(studentID))
}
