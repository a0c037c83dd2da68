package db

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/pkg/logger"
)

// ErrReadOnly is returned when a write is attempted inside a read transaction
var ErrReadOnly = errors.New("write attempted in read-only transaction")

// Tables holds every collection of the in-memory database
type Tables struct {
	Users       []models.User
	Students    []models.Student
	Enrollments []models.Enrollment
	Courses     []models.Course
}

// Clone returns a deep copy of the tables
func (t *Tables) Clone() *Tables {
	if t == nil {
		return &Tables{}
	}
	out := &Tables{
		Users:       make([]models.User, len(t.Users)),
		Students:    make([]models.Student, len(t.Students)),
		Enrollments: append([]models.Enrollment(nil), t.Enrollments...),
		Courses:     append([]models.Course(nil), t.Courses...),
	}
	for i, u := range t.Users {
		if u.StudentID != nil {
			id := *u.StudentID
			u.StudentID = &id
		}
		out.Users[i] = u
	}
	for i := range t.Students {
		out.Students[i] = *t.Students[i].Clone()
	}
	return out
}

// SeedFunc produces a fresh copy of the initial data set
type SeedFunc func() (*Tables, error)

// Tx is the view of the tables handed to a transaction function
type Tx struct {
	*Tables
	seed     SeedFunc
	writable bool
}

// Writable reports whether the transaction may mutate the tables
func (tx *Tx) Writable() bool {
	return tx.writable
}

// Seed returns a fresh copy of the initial data set
func (tx *Tx) Seed() (*Tables, error) {
	return tx.seed()
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx *Tx) error

// MemoryDB is the process-wide store. One RWMutex covers every table so a
// write transaction sees and leaves all collections consistent.
type MemoryDB struct {
	mu   sync.RWMutex
	data *Tables
	seed SeedFunc
}

// NewMemoryDB creates a database populated from seed
func NewMemoryDB(seed SeedFunc) (*MemoryDB, error) {
	if seed == nil {
		return nil, errors.New("seed function is required")
	}
	data, err := seed()
	if err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}
	return &MemoryDB{data: data, seed: seed}, nil
}

// WithReadTransaction runs fn under the shared lock
func (db *MemoryDB) WithReadTransaction(ctx context.Context, fn TransactionFn) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mu.RLock()
	defer db.mu.RUnlock()

	return fn(ctx, &Tx{Tables: db.data, seed: db.seed})
}

// WithTransaction runs fn under the exclusive lock. If fn returns an error
// or panics, every table is restored to its state before the call.
func (db *MemoryDB) WithTransaction(ctx context.Context, fn TransactionFn) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	snapshot := db.data.Clone()

	defer func() {
		if r := recover(); r != nil {
			db.data = snapshot
			panic(r)
		}
	}()

	if err = fn(ctx, &Tx{Tables: db.data, seed: db.seed, writable: true}); err != nil {
		db.data = snapshot
		logger.Debug().Err(err).Msg("Transaction rolled back")
		return err
	}
	return nil
}
