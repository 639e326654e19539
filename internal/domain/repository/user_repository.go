package repository

import "github.com/glanzwerk/rechnung-api/internal/domain/entity"

// UserRepository is the persistence port for staff accounts.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrConflict if the email
	// is already registered.
	Create(user *entity.User) error

	// FindByEmail returns the user or nil if absent.
	FindByEmail(email string) (*entity.User, error)
}
