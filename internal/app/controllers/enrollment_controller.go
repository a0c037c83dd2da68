// Package controllers handles HTTP request handling
package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	appAuth "github.com/yigit/enrollhub/internal/app/auth"
	"github.com/yigit/enrollhub/internal/app/models/dto"
	"github.com/yigit/enrollhub/internal/app/services"
	"github.com/yigit/enrollhub/internal/middleware"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
	"github.com/yigit/enrollhub/internal/pkg/validation"
)

// EnrollmentController handles enrollment related operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
	logger            zerolog.Logger
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService, logger zerolog.Logger) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

// ListEnrollments returns every student with the courses they are enrolled in
// @Summary List enrollments
// @Description Groups the enrollments table by student. Admin only.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentEnrollments} "Enrollments Information"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Forbidden access"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /enrollments [get]
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	data, err := c.enrollmentService.ListEnrollments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(data, "Enrollments Information"))
}

// ResetEnrollments restores the seed enrollments
// @Summary Reset enrollments
// @Description Restores the enrollments table to its seed state and re-derives every student's courses. Admin only.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "enrollments database has been reset"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Forbidden access"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /enrollments/reset [post]
func (c *EnrollmentController) ResetEnrollments(ctx *gin.Context) {
	if err := c.enrollmentService.ResetEnrollments(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "enrollments database has been reset"))
}

// GetStudent returns a student record
// @Summary Get student
// @Description Returns a student and the courses they are enrolled in. Admins may read any student, students only themselves.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student information"
// @Failure 400 {object} dto.APIResponse "Invalid student id"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Forbidden access"
// @Failure 404 {object} dto.APIResponse "StudentId does not exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /enrollments/{studentId} [get]
func (c *EnrollmentController) GetStudent(ctx *gin.Context) {
	studentID, ok := c.pathStudentID(ctx)
	if !ok {
		return
	}
	caller, ok := middleware.CurrentIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	student, err := c.enrollmentService.GetStudent(ctx.Request.Context(), caller, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student information"))
}

// AddEnrollment enrolls the calling student in a course
// @Summary Add enrollment
// @Description Enrolls the calling student in a course. Path, body and token student ids must agree.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param request body dto.EnrollmentRequest true "Enrollment"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Enrollment added"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Forbidden access"
// @Failure 404 {object} dto.APIResponse "StudentId does not exists"
// @Failure 409 {object} dto.APIResponse "Enrollment is already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /enrollments/{studentId} [post]
func (c *EnrollmentController) AddEnrollment(ctx *gin.Context) {
	studentID, req, caller, ok := c.bindChange(ctx)
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.AddEnrollment(ctx.Request.Context(), caller, studentID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := fmt.Sprintf("Student %s && Course %s has been added successfully", enrollment.StudentID, enrollment.CourseID)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollment, message))
}

// DropEnrollment removes one of the calling student's enrollments
// @Summary Drop enrollment
// @Description Removes an enrollment of the calling student and returns the remaining enrollments table.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param request body dto.EnrollmentRequest true "Enrollment"
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollment deleted"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Forbidden access"
// @Failure 404 {object} dto.APIResponse "StudentId or enrollment does not exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /enrollments/{studentId} [delete]
func (c *EnrollmentController) DropEnrollment(ctx *gin.Context) {
	studentID, req, caller, ok := c.bindChange(ctx)
	if !ok {
		return
	}

	remaining, err := c.enrollmentService.DropEnrollment(ctx.Request.Context(), caller, studentID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := fmt.Sprintf("Student %s && Course %s has been deleted successfully", req.StudentID, req.CourseID)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(remaining, message))
}

// pathStudentID validates the :studentId path parameter, answering 400 on failure
func (c *EnrollmentController) pathStudentID(ctx *gin.Context) (string, bool) {
	studentID := ctx.Param("studentId")
	if err := validation.ValidateStudentID(studentID); err != nil {
		c.logger.Debug().Err(err).Str("studentId", studentID).Msg("Invalid student id in path")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err).WithField("studentId")))
		return "", false
	}
	return studentID, true
}

// bindChange runs path validation before body validation
func (c *EnrollmentController) bindChange(ctx *gin.Context) (string, dto.EnrollmentRequest, appAuth.Identity, bool) {
	var req dto.EnrollmentRequest

	studentID, ok := c.pathStudentID(ctx)
	if !ok {
		return "", req, appAuth.Identity{}, false
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Debug().Err(err).Msg("Invalid enrollment request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return "", req, appAuth.Identity{}, false
	}

	caller, ok := middleware.CurrentIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return "", req, appAuth.Identity{}, false
	}
	return studentID, req, caller, true
}
