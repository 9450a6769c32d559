package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, session domain.Session, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := s.AuthorizeWrite(ctx, session, "create account"); err != nil {
		return nil, err
	}
	if !req.CategoryType.IsValid() {
		return nil, fmt.Errorf("%w: unknown category type %q", apperrors.ErrValidation, req.CategoryType)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		Code:         req.Code,
		Name:         req.Name,
		CategoryType: req.CategoryType,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.UserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID),
			slog.String("code", account.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("code", account.Code),
		slog.String("category_type", string(account.CategoryType)))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, session domain.Session, accountID string) (*domain.Account, error) {
	if err := s.AuthorizeRead(ctx, session); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, session domain.Session, params dto.ListAccountsParams) ([]domain.Account, error) {
	if err := s.AuthorizeRead(ctx, session); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, params.ActiveOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	s.LogDebug(ctx, "Accounts listed", slog.Int("count", len(accounts)))
	return accounts, nil
}
