package repositories

import (
	"context"

	"github.com/yigit/enrollhub/internal/db"
)

// Repositories holds the repository instances bound to one transaction
type Repositories struct {
	Users       *UserRepository
	Students    *StudentRepository
	Enrollments *EnrollmentRepository
	Courses     *CourseRepository
}

// NewRepositories binds all repositories to tx
func NewRepositories(tx *db.Tx) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(tx),
		Students:    NewStudentRepository(tx),
		Enrollments: NewEnrollmentRepository(tx),
		Courses:     NewCourseRepository(tx),
	}
}

// UnitOfWork is a function run against a consistent set of repositories
type UnitOfWork func(ctx context.Context, r *Repositories) error

// Store is the injected data access capability. View runs read-only work;
// Update runs work atomically, discarding every change if it fails.
type Store interface {
	View(ctx context.Context, fn UnitOfWork) error
	Update(ctx context.Context, fn UnitOfWork) error
}

type memoryStore struct {
	db *db.MemoryDB
}

// NewStore returns a Store backed by the in-memory database
func NewStore(mdb *db.MemoryDB) Store {
	return &memoryStore{db: mdb}
}

func (s *memoryStore) View(ctx context.Context, fn UnitOfWork) error {
	return s.db.WithReadTransaction(ctx, func(ctx context.Context, tx *db.Tx) error {
		return fn(ctx, NewRepositories(tx))
	})
}

func (s *memoryStore) Update(ctx context.Context, fn UnitOfWork) error {
	return s.db.WithTransaction(ctx, func(ctx context.Context, tx *db.Tx) error {
		return fn(ctx, NewRepositories(tx))
	})
}
