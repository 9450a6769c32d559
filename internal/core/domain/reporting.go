package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AggregationMode selects how journal lines are grouped into a report.
type AggregationMode string

const (
	// ModeDetailed produces a single IncomeStatement with COGS broken out.
	ModeDetailed AggregationMode = "detailed"
	// ModeMonthly produces twelve month-of-year buckets with COGS folded into expense.
	ModeMonthly AggregationMode = "monthly"
)

// IncomeStatement is the detailed profit and loss summary for a period.
type IncomeStatement struct {
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	Revenue      decimal.Decimal `json:"revenue"`
	COGS         decimal.Decimal `json:"cogs"`
	GrossProfit  decimal.Decimal `json:"grossProfit"`
	Expense      decimal.Decimal `json:"expense"`
	OtherIncome  decimal.Decimal `json:"otherIncome"`
	OtherExpense decimal.Decimal `json:"otherExpense"`
	NetProfit    decimal.Decimal `json:"netProfit"`
}

// MonthlyProfit is one bar of the monthly trend chart. Month is 0-based.
type MonthlyProfit struct {
	Month     int             `json:"month"`
	Revenue   decimal.Decimal `json:"revenue"`
	Expense   decimal.Decimal `json:"expense"`
	NetProfit decimal.Decimal `json:"netProfit"`
}

// UnresolvedAccountWarning describes a journal line that was left out of a
// report because its account could not be resolved.
type UnresolvedAccountWarning struct {
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount"`
	IsDebit   bool            `json:"isDebit"`
}

// PeriodAggregate is the result of aggregating journal entries.
// Exactly one of Statement or Monthly is set, depending on Mode.
type PeriodAggregate struct {
	Mode      AggregationMode            `json:"mode"`
	Statement *IncomeStatement           `json:"statement,omitempty"`
	Monthly   []MonthlyProfit            `json:"monthly,omitempty"`
	Warnings  []UnresolvedAccountWarning `json:"warnings,omitempty"`
}

// ProjectReport bundles the all-time statement and one year of trend for a project.
type ProjectReport struct {
	ProjectID       string          `json:"projectID"`
	Statement       IncomeStatement `json:"statement"`
	Monthly         []MonthlyProfit `json:"monthly"`
	Year            int             `json:"year"`
	EntryCount      int             `json:"entryCount"`
	UnresolvedLines int             `json:"unresolvedLines"`
}

// IncomeStatementReport is a detailed statement served to API callers.
type IncomeStatementReport struct {
	Statement       IncomeStatement `json:"statement"`
	ProjectID       *string         `json:"projectID,omitempty"`
	InvoiceID       *string         `json:"invoiceID,omitempty"`
	UnresolvedLines int             `json:"unresolvedLines"`
}

// MonthlyTrendReport is one calendar year of monthly profit.
type MonthlyTrendReport struct {
	Year            int             `json:"year"`
	ProjectID       *string         `json:"projectID,omitempty"`
	Months          []MonthlyProfit `json:"months"`
	UnresolvedLines int             `json:"unresolvedLines"`
}
