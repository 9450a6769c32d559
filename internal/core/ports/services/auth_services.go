package services

import (
	"context"

	"github.com/SscSPs/bizledger/internal/dto"
)

// AuthSvcFacade defines password login and token issuance.
type AuthSvcFacade interface {
	// Login checks the credentials and issues an access token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// EnsureAdmin creates the bootstrap admin user if no user has that email yet.
	EnsureAdmin(ctx context.Context, email, name, password string) error
}
