package dto

import (
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to add an account to the chart of accounts.
type CreateAccountRequest struct {
	Code         string              `json:"code" binding:"required,max=20"`
	Name         string              `json:"name" binding:"required,max=255"`
	CategoryType domain.CategoryType `json:"categoryType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE COST_OF_GOODS_SOLD OTHER_INCOME OTHER_EXPENSE"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string              `json:"accountID"`
	Code          string              `json:"code"`
	Name          string              `json:"name"`
	CategoryType  domain.CategoryType `json:"categoryType"`
	IsActive      bool                `json:"isActive"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy string              `json:"lastUpdatedBy"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	ActiveOnly bool `form:"activeOnly"`
}

// ListAccountsResponse wraps the chart of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Code:          acc.Code,
		Name:          acc.Name,
		CategoryType:  acc.CategoryType,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to ListAccountsResponse DTO
func ToListAccountResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: res}
}
