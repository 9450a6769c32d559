package domain

// CategoryType classifies an account and determines its normal balance side.
type CategoryType string

const (
	Asset           CategoryType = "ASSET"
	Liability       CategoryType = "LIABILITY"
	Equity          CategoryType = "EQUITY"
	Revenue         CategoryType = "REVENUE"
	Expense         CategoryType = "EXPENSE"
	CostOfGoodsSold CategoryType = "COST_OF_GOODS_SOLD"
	OtherIncome     CategoryType = "OTHER_INCOME"
	OtherExpense    CategoryType = "OTHER_EXPENSE"
)

// CategoryTypes lists every known category in chart-of-accounts order.
var CategoryTypes = []CategoryType{
	Asset, Liability, Equity, Revenue, Expense, CostOfGoodsSold, OtherIncome, OtherExpense,
}

// IsValid reports whether c is one of the known categories.
func (c CategoryType) IsValid() bool {
	for _, known := range CategoryTypes {
		if c == known {
			return true
		}
	}
	return false
}

// Account represents an entry in the chart of accounts.
// Accounts are reference data: reports read them, never change them.
type Account struct {
	AccountID    string       `json:"accountID"`
	Code         string       `json:"code"`
	Name         string       `json:"name"`
	CategoryType CategoryType `json:"categoryType"`
	IsActive     bool         `json:"isActive"`
	AuditFields
}
