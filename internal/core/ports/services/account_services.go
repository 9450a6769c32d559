package services

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, session domain.Session, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts.
	ListAccounts(ctx context.Context, session domain.Session, params dto.ListAccountsParams) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account. Admin only.
	CreateAccount(ctx context.Context, session domain.Session, req dto.CreateAccountRequest) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
