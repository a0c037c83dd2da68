package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/enrollhub/internal/app/models/dto"
	"github.com/yigit/enrollhub/internal/app/services"
	"github.com/yigit/enrollhub/internal/middleware"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
)

// UserController handles the users endpoints
type UserController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(authService services.AuthService, logger zerolog.Logger) *UserController {
	return &UserController{
		authService: authService,
		logger:      logger,
	}
}

// ListUsers returns every user
// @Summary List users
// @Description Returns all users without their passwords. Requires a well-formed, valid Bearer token.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.User} "Users"
// @Failure 401 {object} dto.APIResponse "authorization not found"
// @Failure 403 {object} dto.APIResponse "Invalid or expired token"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	if _, err := c.authService.Authenticate(ctx.GetHeader("Authorization")); err != nil {
		c.logger.Debug().Err(err).Msg("Users listing rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	users, err := c.authService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(users, ""))
}

// Login handles user login
// @Summary User login
// @Description Authenticates a user and returns an access token valid for five minutes
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "login successful"
// @Failure 401 {object} dto.APIResponse "invalid user or password"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /users/login [post]
func (c *UserController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		// an incomplete body can never match a user
		c.logger.Debug().Err(err).Msg("Invalid login request payload")
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidCredentials)
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Str("username", req.Username).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewLoginResponse(token))
}

// Logout is not implemented
// @Summary User logout
// @Description Not implemented. Tokens expire on their own.
// @Tags users
// @Produce json
// @Failure 500 {object} dto.APIResponse "not implemented"
// @Router /users/logout [post]
func (c *UserController) Logout(ctx *gin.Context) {
	if err := c.authService.Logout(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, &apperrors.CustomError{
			Err:     err,
			Message: "POST " + ctx.FullPath() + " has not been implemented yet",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "logout successful"))
}

// ResetUsers restores the seed users
// @Summary Reset users
// @Description Restores the users table to its seed state
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse "User database has been reset"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /users/reset [post]
func (c *UserController) ResetUsers(ctx *gin.Context) {
	if err := c.authService.ResetUsers(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "User database has been reset"))
}
