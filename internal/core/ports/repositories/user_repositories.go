package repositories

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByEmail retrieves a user by login email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
