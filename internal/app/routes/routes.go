package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollhub/internal/app/controllers"
	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/middleware"
)

// APIPrefix is the versioned prefix every route is also served under
const APIPrefix = "/api/v2"

// SetupRouter configures all application routes at the root and under APIPrefix
func SetupRouter(
	router *gin.Engine,
	enrollmentController *controllers.EnrollmentController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	for _, prefix := range []string{"", APIPrefix} {
		registerRoutes(router.Group(prefix), enrollmentController, userController, courseController, authMiddleware)
	}
}

func registerRoutes(
	group *gin.RouterGroup,
	enrollmentController *controllers.EnrollmentController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	adminOnly := authMiddleware.RoleRequired(string(models.RoleAdmin))
	studentOnly := authMiddleware.RoleRequired(string(models.RoleStudent))

	// --- Enrollment routes (JWT required) ---
	enrollments := group.Group("/enrollments")
	enrollments.Use(authMiddleware.JWTAuth())
	{
		enrollments.GET("", adminOnly, enrollmentController.ListEnrollments)
		enrollments.POST("/reset", adminOnly, enrollmentController.ResetEnrollments)
		// ADMIN or the student itself, checked against the users table
		enrollments.GET("/:studentId", enrollmentController.GetStudent)
		enrollments.POST("/:studentId", studentOnly, enrollmentController.AddEnrollment)
		enrollments.DELETE("/:studentId", studentOnly, enrollmentController.DropEnrollment)
	}

	// --- User routes ---
	// Listing checks the Authorization header itself.
	users := group.Group("/users")
	{
		users.GET("", userController.ListUsers)
		users.POST("/login", userController.Login)
		users.POST("/logout", userController.Logout)
		users.POST("/reset", userController.ResetUsers)
	}

	// --- Course catalogue (JWT required) ---
	courses := group.Group("/courses")
	courses.Use(authMiddleware.JWTAuth())
	{
		courses.GET("", courseController.ListCourses)
	}
}
