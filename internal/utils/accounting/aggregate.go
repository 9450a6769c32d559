package accounting

import (
	"fmt"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthsPerYear is the fixed length of a monthly trend.
const MonthsPerYear = 12

type statementTotals struct {
	revenue      decimal.Decimal
	cogs         decimal.Decimal
	expense      decimal.Decimal
	otherIncome  decimal.Decimal
	otherExpense decimal.Decimal
}

func (t *statementTotals) add(line StatementLine, amount decimal.Decimal) {
	switch line {
	case LineRevenue:
		t.revenue = t.revenue.Add(amount)
	case LineCOGS:
		t.cogs = t.cogs.Add(amount)
	case LineExpense:
		t.expense = t.expense.Add(amount)
	case LineOtherIncome:
		t.otherIncome = t.otherIncome.Add(amount)
	case LineOtherExpense:
		t.otherExpense = t.otherExpense.Add(amount)
	}
}

func (t *statementTotals) statement(period domain.Period) *domain.IncomeStatement {
	grossProfit := t.revenue.Sub(t.cogs)
	income := t.revenue.Add(t.otherIncome)
	costs := t.cogs.Add(t.expense).Add(t.otherExpense)
	return &domain.IncomeStatement{
		StartDate:    period.Start,
		EndDate:      period.End,
		Revenue:      t.revenue,
		COGS:         t.cogs,
		GrossProfit:  grossProfit,
		Expense:      t.expense,
		OtherIncome:  t.otherIncome,
		OtherExpense: t.otherExpense,
		NetProfit:    income.Sub(costs),
	}
}

func newMonthlyBuckets() []domain.MonthlyProfit {
	buckets := make([]domain.MonthlyProfit, MonthsPerYear)
	for i := range buckets {
		buckets[i] = domain.MonthlyProfit{
			Month:     i,
			Revenue:   decimal.Zero,
			Expense:   decimal.Zero,
			NetProfit: decimal.Zero,
		}
	}
	return buckets
}

// addMonthly charts revenue against expense. COGS is folded into expense and
// the OTHER_* lines are not charted.
func addMonthly(bucket *domain.MonthlyProfit, line StatementLine, amount decimal.Decimal) {
	switch line {
	case LineRevenue:
		bucket.Revenue = bucket.Revenue.Add(amount)
	case LineExpense, LineCOGS:
		bucket.Expense = bucket.Expense.Add(amount)
	default:
		return
	}
	bucket.NetProfit = bucket.Revenue.Sub(bucket.Expense)
}

func indexAccounts(accounts []domain.Account) map[string]domain.Account {
	catalogue := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		catalogue[acc.AccountID] = acc
	}
	return catalogue
}

// AggregatePeriod folds the lines of every entry dated inside period into an
// income statement (ModeDetailed) or a twelve-bucket monthly trend
// (ModeMonthly). Monthly buckets are keyed by month of year only, so entries
// from different years in the same month share a bucket.
//
// Lines whose account is missing from accounts, or whose category has no rule,
// are skipped and returned as warnings. A nil rules map uses
// DefaultCategoryRules.
func AggregatePeriod(
	entries []domain.JournalEntry,
	accounts []domain.Account,
	rules CategoryRules,
	mode domain.AggregationMode,
	period domain.Period,
) (*domain.PeriodAggregate, error) {
	if mode != domain.ModeDetailed && mode != domain.ModeMonthly {
		return nil, fmt.Errorf("%w: unknown aggregation mode %q", apperrors.ErrValidation, mode)
	}
	if rules == nil {
		rules = DefaultCategoryRules()
	}

	catalogue := indexAccounts(accounts)
	var totals statementTotals
	var monthly []domain.MonthlyProfit
	if mode == domain.ModeMonthly {
		monthly = newMonthlyBuckets()
	}
	var warnings []domain.UnresolvedAccountWarning

	for _, entry := range entries {
		if !period.Contains(entry.EntryDate) {
			continue
		}
		for _, line := range entry.Lines {
			account, found := catalogue[line.AccountID]
			var rule CategoryRule
			if found {
				rule, found = rules[account.CategoryType]
			}
			if !found {
				warnings = append(warnings, domain.UnresolvedAccountWarning{
					EntryID:   entry.EntryID,
					AccountID: line.AccountID,
					Amount:    line.Amount,
					IsDebit:   line.IsDebit,
				})
				continue
			}
			if rule.Line == LineNone {
				continue
			}

			amount := SignedAmount(line, rule)
			if mode == domain.ModeMonthly {
				addMonthly(&monthly[int(entry.EntryDate.Month())-1], rule.Line, amount)
			} else {
				totals.add(rule.Line, amount)
			}
		}
	}

	result := &domain.PeriodAggregate{Mode: mode, Warnings: warnings}
	if mode == domain.ModeMonthly {
		result.Monthly = monthly
	} else {
		result.Statement = totals.statement(period)
	}
	return result, nil
}

// IncomeStatementFor is AggregatePeriod in detailed mode with the default rules.
func IncomeStatementFor(entries []domain.JournalEntry, accounts []domain.Account, period domain.Period) (domain.IncomeStatement, []domain.UnresolvedAccountWarning) {
	agg, _ := AggregatePeriod(entries, accounts, nil, domain.ModeDetailed, period)
	return *agg.Statement, agg.Warnings
}

// MonthlyTrendFor is AggregatePeriod in monthly mode with the default rules.
func MonthlyTrendFor(entries []domain.JournalEntry, accounts []domain.Account, period domain.Period) ([]domain.MonthlyProfit, []domain.UnresolvedAccountWarning) {
	agg, _ := AggregatePeriod(entries, accounts, nil, domain.ModeMonthly, period)
	return agg.Monthly, agg.Warnings
}

// FilterByProject returns the entries associated with projectID.
func FilterByProject(entries []domain.JournalEntry, projectID string) []domain.JournalEntry {
	filtered := make([]domain.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.BelongsToProject(projectID) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// FilterByInvoice returns the entries associated with invoiceID.
func FilterByInvoice(entries []domain.JournalEntry, invoiceID string) []domain.JournalEntry {
	filtered := make([]domain.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.BelongsToInvoice(invoiceID) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
