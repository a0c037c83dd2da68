package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	appAuth "github.com/yigit/enrollhub/internal/app/auth"
	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/app/models/dto"
	"github.com/yigit/enrollhub/internal/app/repositories"
	"github.com/yigit/enrollhub/internal/db"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
	"github.com/yigit/enrollhub/internal/pkg/auth"
	"github.com/yigit/enrollhub/internal/seed"
)

var (
	adminID = appAuth.Identity{Username: "admin", Role: models.RoleAdmin}
	aliceID = appAuth.Identity{Username: "alice", StudentID: "S1", Role: models.RoleStudent}
	bobID   = appAuth.Identity{Username: "bob", StudentID: "S2", Role: models.RoleStudent}
)

type fixture struct {
	store       repositories.Store
	enrollments EnrollmentService
	auth        AuthService
}

func newFixture(t *testing.T, mode string) *fixture {
	t.Helper()
	matcher, err := auth.NewPasswordMatcher(mode)
	if err != nil {
		t.Fatalf("matcher: %v", err)
	}
	seedFn, err := seed.Snapshot(matcher)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	mdb, err := db.NewMemoryDB(seedFn)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	store := repositories.NewStore(mdb)
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test", AccessTokenExp: 5 * time.Minute, TokenIssuer: "test"})
	return &fixture{
		store:       store,
		enrollments: NewEnrollmentService(store, appAuth.NewAuthorizationService(), zerolog.Nop()),
		auth:        NewAuthService(store, jwtService, matcher, zerolog.Nop()),
	}
}

func req(studentID, courseID string) dto.EnrollmentRequest {
	return dto.EnrollmentRequest{StudentID: studentID, CourseID: courseID}
}

// assertDerivedCourses checks that every student's course list equals the
// recomputation over the enrollments table.
func assertDerivedCourses(t *testing.T, store repositories.Store) {
	t.Helper()
	err := store.View(context.Background(), func(_ context.Context, r *repositories.Repositories) error {
		for _, st := range r.Students.List() {
			want := r.Enrollments.CourseIDsByStudent(st.StudentID)
			if !reflect.DeepEqual(st.Courses, want) {
				t.Errorf("student %s courses = %v, enrollments say %v", st.StudentID, st.Courses, want)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
}

func snapshot(t *testing.T, store repositories.Store) ([]models.Enrollment, []models.Student) {
	t.Helper()
	var e []models.Enrollment
	var s []models.Student
	_ = store.View(context.Background(), func(_ context.Context, r *repositories.Repositories) error {
		e, s = r.Enrollments.List(), r.Students.List()
		return nil
	})
	return e, s
}

func TestAddThenGetListsCourse(t *testing.T) {
	f := newFixture(t, "plain")
	ctx := context.Background()

	got, err := f.enrollments.AddEnrollment(ctx, aliceID, "S1", req("S1", "CS101"))
	if err != nil {
		t.Fatalf("AddEnrollment: %v", err)
	}
	if *got != (models.Enrollment{StudentID: "S1", CourseID: "CS101"}) {
		t.Errorf("echoed enrollment = %+v", got)
	}

	student, err := f.enrollments.GetStudent(ctx, aliceID, "S1")
	if err != nil {
		t.Fatalf("GetStudent: %v", err)
	}
	if !reflect.DeepEqual(student.Courses, []string{"CS101"}) {
		t.Errorf("courses = %v, want [CS101]", student.Courses)
	}
	if student.FirstName != "Alice" {
		t.Errorf("recomputation clobbered other fields: %+v", student)
	}
	assertDerivedCourses(t, f.store)
}

func TestDuplicateAddConflicts(t *testing.T) {
	f := newFixture(t, "plain")
	ctx := context.Background()

	if _, err := f.enrollments.AddEnrollment(ctx, aliceID, "S1", req("S1", "CS101")); err != nil {
		t.Fatalf("first add: %v", err)
	}
	_, err := f.enrollments.AddEnrollment(ctx, aliceID, "S1", req("S1", "CS101"))
	if !errors.Is(err, apperrors.ErrEnrollmentExists) {
		t.Fatalf("second add err = %v, want ErrEnrollmentExists", err)
	}

	enrollments, _ := snapshot(t, f.store)
	n := 0
	for _, e := range enrollments {
		if e.Matches("S1", "CS101") {
			n++
		}
	}
	if n != 1 {
		t.Errorf("found %d S1/CS101 enrollments, want 1", n)
	}
	assertDerivedCourses(t, f.store)
}

func TestDropIsInverseOfAdd(t *testing.T) {
	f := newFixture(t, "plain")
	ctx := context.Background()
	beforeE, beforeS := snapshot(t, f.store)

	if _, err := f.enrollments.AddEnrollment(ctx, bobID, "S2", req("S2", "MA101")); err != nil {
		t.Fatalf("add: %v", err)
	}
	remaining, err := f.enrollments.DropEnrollment(ctx, bobID, "S2", req("S2", "MA101"))
	if err != nil {
		t.Fatalf("drop: %v", err)
	}

	afterE, afterS := snapshot(t, f.store)
	if !reflect.DeepEqual(beforeE, afterE) {
		t.Errorf("enrollments = %v, want %v", afterE, beforeE)
	}
	if !reflect.DeepEqual(beforeS, afterS) {
		t.Errorf("students = %v, want %v", afterS, beforeS)
	}
	if !reflect.DeepEqual(remaining, afterE) {
		t.Errorf("drop returned %v, want full table %v", remaining, afterE)
	}
}

func TestEnrollmentChangeErrors(t *testing.T) {
	tests := []struct {
		name    string
		drop    bool
		caller  appAuth.Identity
		path    string
		body    dto.EnrollmentRequest
		wantErr error
	}{
		{"add unknown student", false, aliceID, "S9", req("S9", "CS101"), apperrors.ErrStudentNotFound},
		{"add for another student", false, aliceID, "S1", req("S2", "CS101"), apperrors.ErrPermissionDenied},
		{"add for unknown body student", false, aliceID, "S1", req("S7", "CS101"), apperrors.ErrPermissionDenied},
		{"add on another path", false, aliceID, "S2", req("S2", "CS101"), apperrors.ErrPermissionDenied},
		{"add as admin", false, adminID, "S1", req("S1", "CS101"), apperrors.ErrPermissionDenied},
		{"drop unknown student", true, aliceID, "S9", req("S9", "CS101"), apperrors.ErrStudentNotFound},
		{"drop for another student", true, aliceID, "S2", req("S2", "CS102"), apperrors.ErrPermissionDenied},
		{"drop missing enrollment", true, aliceID, "S1", req("S1", "CS101"), apperrors.ErrEnrollmentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "plain")
			beforeE, _ := snapshot(t, f.store)

			var err error
			if tt.drop {
				_, err = f.enrollments.DropEnrollment(context.Background(), tt.caller, tt.path, tt.body)
			} else {
				_, err = f.enrollments.AddEnrollment(context.Background(), tt.caller, tt.path, tt.body)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}

			afterE, _ := snapshot(t, f.store)
			if !reflect.DeepEqual(beforeE, afterE) {
				t.Errorf("rejected change mutated enrollments: %v", afterE)
			}
		})
	}
}

func TestGetStudentAuthorization(t *testing.T) {
	f := newFixture(t, "plain")
	ctx := context.Background()

	if _, err := f.enrollments.GetStudent(ctx, adminID, "S3"); err != nil {
		t.Errorf("admin lookup: %v", err)
	}
	if _, err := f.enrollments.GetStudent(ctx, aliceID, "S3"); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("foreign lookup err = %v", err)
	}
	if _, err := f.enrollments.GetStudent(ctx, aliceID, "S9"); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("missing student err = %v", err)
	}
	ghost := appAuth.Identity{Username: "ghost", Role: models.RoleAdmin}
	if _, err := f.enrollments.GetStudent(ctx, ghost, "S1"); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("unknown caller err = %v", err)
	}
}

func TestResetRestoresSeedAndDerivedCourses(t *testing.T) {
	f := newFixture(t, "plain")
	ctx := context.Background()
	seedList, err := f.enrollments.ListEnrollments(ctx)
	if err != nil {
		t.Fatalf("ListEnrollments: %v", err)
	}

	if _, err := f.enrollments.AddEnrollment(ctx, aliceID, "S1", req("S1", "CS101")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := f.enrollments.DropEnrollment(ctx, bobID, "S2", req("S2", "CS102")); err != nil {
		t.Fatalf("drop: %v", err)
	}

	if err := f.enrollments.ResetEnrollments(ctx); err != nil {
		t.Fatalf("ResetEnrollments: %v", err)
	}

	got, err := f.enrollments.ListEnrollments(ctx)
	if err != nil {
		t.Fatalf("ListEnrollments: %v", err)
	}
	if !reflect.DeepEqual(got, seedList) {
		t.Errorf("after reset = %+v, want %+v", got, seedList)
	}
	assertDerivedCourses(t, f.store)

	student, err := f.enrollments.GetStudent(ctx, aliceID, "S1")
	if err != nil {
		t.Fatalf("GetStudent: %v", err)
	}
	if len(student.Courses) != 0 {
		t.Errorf("S1 courses after reset = %v, want none", student.Courses)
	}
}

func TestListEnrollmentsShape(t *testing.T) {
	f := newFixture(t, "plain")
	got, err := f.enrollments.ListEnrollments(context.Background())
	if err != nil {
		t.Fatalf("ListEnrollments: %v", err)
	}
	want := []dto.StudentEnrollments{
		{StudentID: "S1", Courses: []dto.CourseRef{}},
		{StudentID: "S2", Courses: []dto.CourseRef{{CourseID: "CS102"}}},
		{StudentID: "S3", Courses: []dto.CourseRef{{CourseID: "CS101"}, {CourseID: "MA101"}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListEnrollments = %+v, want %+v", got, want)
	}
}

func TestConcurrentChangesKeepDerivedCoursesConsistent(t *testing.T) {
	f := newFixture(t, "plain")
	ctx := context.Background()
	courses := []string{"CS101", "MA101", "PH101", "X1", "X2", "X3", "X4", "X5"}

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := map[string]int{}

	for round := 0; round < 4; round++ {
		for _, c := range courses {
			wg.Add(1)
			go func(courseID string) {
				defer wg.Done()
				if _, err := f.enrollments.AddEnrollment(ctx, aliceID, "S1", req("S1", courseID)); err == nil {
					mu.Lock()
					successes[courseID]++
					mu.Unlock()
				}
			}(c)
		}
	}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := fmt.Sprintf("B%d", i)
			if _, err := f.enrollments.AddEnrollment(ctx, bobID, "S2", req("S2", c)); err == nil {
				_, _ = f.enrollments.DropEnrollment(ctx, bobID, "S2", req("S2", c))
			}
		}(i)
	}
	wg.Wait()

	for _, c := range courses {
		if successes[c] != 1 {
			t.Errorf("course %s added %d times, want exactly 1", c, successes[c])
		}
	}
	assertDerivedCourses(t, f.store)
}

func TestLogin(t *testing.T) {
	for _, mode := range []string{"plain", "bcrypt"} {
		t.Run(mode, func(t *testing.T) {
			f := newFixture(t, mode)
			ctx := context.Background()

			token, err := f.auth.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "pw1"})
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if token.AccessToken == "" || token.TokenType != "Bearer" || token.ExpiresIn != 300 {
				t.Errorf("unexpected token response: %+v", token)
			}

			claims, err := f.auth.Authenticate("Bearer " + token.AccessToken)
			if err != nil {
				t.Fatalf("Authenticate: %v", err)
			}
			if claims.Username != "alice" || claims.StudentIDValue() != "S1" || claims.Role != "STUDENT" {
				t.Errorf("claims = %+v", claims)
			}

			for _, bad := range []dto.LoginRequest{
				{Username: "alice", Password: "wrong"},
				{Username: "nobody", Password: "pw1"},
			} {
				if _, err := f.auth.Login(ctx, &bad); !errors.Is(err, apperrors.ErrInvalidCredentials) {
					t.Errorf("Login(%+v) err = %v", bad, err)
				}
			}
		})
	}
}

func TestUsersListAndReset(t *testing.T) {
	f := newFixture(t, "plain")
	ctx := context.Background()

	users, err := f.auth.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 4 {
		t.Fatalf("users = %d, want 4", len(users))
	}
	if err := f.auth.ResetUsers(ctx); err != nil {
		t.Fatalf("ResetUsers: %v", err)
	}
	again, _ := f.auth.ListUsers(ctx)
	if !reflect.DeepEqual(users, again) {
		t.Errorf("users after reset = %+v, want %+v", again, users)
	}
	if err := f.auth.Logout(ctx); !errors.Is(err, apperrors.ErrNotImplemented) {
		t.Errorf("Logout err = %v", err)
	}
}
