package auth

import (
	"errors"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/app/repositories"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
	pkgAuth "github.com/yigit/enrollhub/internal/pkg/auth"
)

// Identity is the caller as established by a verified token
type Identity struct {
	Username  string
	StudentID string
	Role      models.RoleType
}

// IdentityFromClaims converts verified token claims into an Identity
func IdentityFromClaims(claims *pkgAuth.Claims) Identity {
	return Identity{
		Username:  claims.Username,
		StudentID: claims.StudentIDValue(),
		Role:      models.RoleType(claims.Role),
	}
}

// AuthorizationService decides whether a caller may touch a student's data.
// Decisions are made against the user record of the caller, looked up by the
// username carried in the token, inside the caller's unit of work.
type AuthorizationService struct{}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// ResolveCaller loads the user record behind an identity
func (s *AuthorizationService) ResolveCaller(r *repositories.Repositories, id Identity) (*models.User, error) {
	user, err := r.Users.GetByUsername(id.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// CanViewStudent allows admins, and students looking at their own record.
// A caller without a user record is unauthenticated.
func (s *AuthorizationService) CanViewStudent(r *repositories.Repositories, id Identity, studentID string) error {
	user, err := s.ResolveCaller(r, id)
	if err != nil {
		return err
	}
	switch {
	case user.RoleType == models.RoleAdmin:
		return nil
	case user.RoleType == models.RoleStudent && user.OwnsStudent(studentID):
		return nil
	default:
		return apperrors.NewForbiddenError("Forbidden access")
	}
}

// CanModifyEnrollment requires the path id, the body id and the caller's own
// student id to be the same value.
func (s *AuthorizationService) CanModifyEnrollment(r *repositories.Repositories, id Identity, pathStudentID, bodyStudentID string) error {
	if pathStudentID != bodyStudentID {
		return apperrors.NewForbiddenError("Forbidden access")
	}
	user, err := r.Users.GetByUsername(id.Username)
	if err != nil || !user.OwnsStudent(pathStudentID) {
		return apperrors.NewForbiddenError("Forbidden access")
	}
	return nil
}
