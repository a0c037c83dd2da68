package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/app/repositories"
	"github.com/yigit/enrollhub/internal/db"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
	pkgAuth "github.com/yigit/enrollhub/internal/pkg/auth"
	"github.com/yigit/enrollhub/internal/seed"
)

func withRepos(t *testing.T, fn func(r *repositories.Repositories)) {
	t.Helper()
	matcher, _ := pkgAuth.NewPasswordMatcher("plain")
	seedFn, err := seed.Snapshot(matcher)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	mdb, err := db.NewMemoryDB(seedFn)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	err = repositories.NewStore(mdb).View(context.Background(), func(_ context.Context, r *repositories.Repositories) error {
		fn(r)
		return nil
	})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
}

var (
	admin = Identity{Username: "admin", Role: models.RoleAdmin}
	alice = Identity{Username: "alice", StudentID: "S1", Role: models.RoleStudent}
	ghost = Identity{Username: "ghost", StudentID: "S9", Role: models.RoleStudent}
)

func TestCanViewStudent(t *testing.T) {
	svc := NewAuthorizationService()
	withRepos(t, func(r *repositories.Repositories) {
		tests := []struct {
			name    string
			id      Identity
			student string
			wantErr error
		}{
			{"admin any student", admin, "S2", nil},
			{"student self", alice, "S1", nil},
			{"student other", alice, "S2", apperrors.ErrPermissionDenied},
			{"unknown user", ghost, "S9", apperrors.ErrUnauthorized},
		}
		for _, tt := range tests {
			err := svc.CanViewStudent(r, tt.id, tt.student)
			if tt.wantErr == nil && err != nil || tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("%s: err = %v, want %v", tt.name, err, tt.wantErr)
			}
		}
	})
}

func TestCanModifyEnrollment(t *testing.T) {
	svc := NewAuthorizationService()
	withRepos(t, func(r *repositories.Repositories) {
		tests := []struct {
			name      string
			id        Identity
			path      string
			body      string
			wantAllow bool
		}{
			{"self", alice, "S1", "S1", true},
			{"body disagrees with path", alice, "S1", "S2", false},
			{"path is someone else", alice, "S2", "S2", false},
			{"admin has no student id", admin, "S1", "S1", false},
			{"unknown user", ghost, "S9", "S9", false},
		}
		for _, tt := range tests {
			err := svc.CanModifyEnrollment(r, tt.id, tt.path, tt.body)
			if tt.wantAllow && err != nil {
				t.Errorf("%s: unexpected error %v", tt.name, err)
			}
			if !tt.wantAllow && !errors.Is(err, apperrors.ErrPermissionDenied) {
				t.Errorf("%s: err = %v, want permission denied", tt.name, err)
			}
		}
	})
}

func TestIdentityFromClaims(t *testing.T) {
	sid := "S1"
	id := IdentityFromClaims(&pkgAuth.Claims{Username: "alice", StudentID: &sid, Role: "STUDENT"})
	if id != alice {
		t.Errorf("identity = %+v, want %+v", id, alice)
	}
}
