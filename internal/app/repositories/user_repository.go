package repositories

import (
	"fmt"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/db"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
)

// UserRepository reads and resets the users table
type UserRepository struct {
	tx *db.Tx
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(tx *db.Tx) *UserRepository {
	return &UserRepository{tx: tx}
}

// List returns a copy of every user
func (r *UserRepository) List() []models.User {
	return append([]models.User(nil), r.tx.Users...)
}

// GetByUsername returns the user with the given username
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	for i := range r.tx.Users {
		if r.tx.Users[i].Username == username {
			u := r.tx.Users[i]
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// ResetToSeed replaces the users table with the seed data
func (r *UserRepository) ResetToSeed() error {
	if !r.tx.Writable() {
		return db.ErrReadOnly
	}
	fresh, err := r.tx.Seed()
	if err != nil {
		return fmt.Errorf("failed to load user seed: %w", err)
	}
	r.tx.Users = fresh.Users
	return nil
}
