package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/app/models/dto"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
	"github.com/yigit/enrollhub/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newJWT(secret string, ttl time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{SecretKey: secret, AccessTokenExp: ttl, TokenIssuer: "test"})
}

func tokenFor(t *testing.T, svc *auth.JWTService, user *models.User) string {
	t.Helper()
	token, _, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func decode(t *testing.T, w *httptest.ResponseRecorder) dto.APIResponse {
	t.Helper()
	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestJWTAuthAndRoleRequired(t *testing.T) {
	jwtService := newJWT("secret", 5*time.Minute)
	m := NewAuthMiddleware(jwtService)

	s1 := "S1"
	student := tokenFor(t, jwtService, &models.User{Username: "alice", RoleType: models.RoleStudent, StudentID: &s1})
	admin := tokenFor(t, jwtService, &models.User{Username: "admin", RoleType: models.RoleAdmin})
	foreign := tokenFor(t, newJWT("other", 5*time.Minute), &models.User{Username: "admin", RoleType: models.RoleAdmin})
	expired := tokenFor(t, newJWT("secret", -time.Minute), &models.User{Username: "admin", RoleType: models.RoleAdmin})

	router := gin.New()
	router.GET("/admin", m.JWTAuth(), m.RoleRequired(string(models.RoleAdmin)), func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.String(http.StatusOK, id.Username)
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"basic scheme", "Basic YWRtaW46YWRtaW5wdw==", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusForbidden},
		{"foreign signature", "Bearer " + foreign, http.StatusForbidden},
		{"expired", "Bearer " + expired, http.StatusForbidden},
		{"wrong role", "Bearer " + student, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
			if tt.want == http.StatusOK {
				if w.Body.String() != "admin" {
					t.Errorf("identity = %q", w.Body.String())
				}
				return
			}
			if resp := decode(t, w); resp.Success || resp.Error == nil {
				t.Errorf("expected error envelope, got %+v", resp)
			}
		})
	}
}

func TestRoleRequiredWithoutClaims(t *testing.T) {
	m := NewAuthMiddleware(newJWT("secret", time.Minute))
	router := gin.New()
	router.GET("/", m.RoleRequired("ADMIN"), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{apperrors.NewValidationError("Student Id is required"), http.StatusBadRequest, "Validation failed"},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "invalid user or password"},
		{apperrors.ErrUnauthorized, http.StatusUnauthorized, "Authentication required"},
		{apperrors.ErrTokenMissing, http.StatusUnauthorized, "Token is required"},
		{fmt.Errorf("wrapped: %w", apperrors.ErrTokenInvalid), http.StatusForbidden, "Invalid token"},
		{apperrors.NewForbiddenError("Forbidden access"), http.StatusForbidden, "Forbidden access"},
		{apperrors.ErrStudentNotFound, http.StatusNotFound, "StudentId does not exists"},
		{apperrors.ErrEnrollmentNotFound, http.StatusNotFound, "Enrollment does not exists"},
		{apperrors.ErrEnrollmentExists, http.StatusConflict, "Enrollment is already exists"},
		{&apperrors.CustomError{Err: apperrors.ErrNotImplemented, Message: "POST /users/logout has not been implemented yet"},
			http.StatusInternalServerError, "POST /users/logout has not been implemented yet"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "Something is wrong, please try again"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			resp := decode(t, w)
			if resp.Error == nil || resp.Error.Message != tt.message {
				t.Errorf("error = %+v, want message %q", resp.Error, tt.message)
			}
		})
	}
}

func TestHandleAPIErrorEchoesInternalError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, errors.New("disk on fire"))

	resp := decode(t, w)
	if resp.Error == nil || resp.Error.Details != "disk on fire" {
		t.Errorf("details = %+v, want echoed error", resp.Error)
	}
}

func TestRecoveryAndRequestLogger(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger(zerolog.Nop()), Recovery(zerolog.Nop()))
	router.GET("/boom", func(*gin.Context) { panic("boom") })
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if resp := decode(t, w); resp.Error == nil || resp.Error.Details != "boom" {
		t.Errorf("unexpected panic envelope: %+v", resp.Error)
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("request id header not set")
	}

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc" {
		t.Errorf("request id = %q, want propagated abc", got)
	}
}
