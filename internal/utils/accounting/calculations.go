package accounting

import (
	"errors"
	"fmt"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places a journal line amount is
// stored with (journal_lines.amount NUMERIC(20, 4)).
const AmountScale = 4

var (
	ErrImbalancedEntry = errors.New("journal entry debits do not equal credits")
	ErrZeroAmountEntry = errors.New("journal entry total must be greater than zero")
	ErrAmountPrecision = errors.New("journal line amount has more decimal places than the ledger stores")
)

// ImbalancedEntryError is returned by ValidateEntry when the debit and credit
// sides of an entry differ. It matches ErrImbalancedEntry and
// apperrors.ErrValidation with errors.Is.
type ImbalancedEntryError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func (e *ImbalancedEntryError) Error() string {
	return fmt.Sprintf("%s: debits sum is %s and credits sum is %s",
		ErrImbalancedEntry, e.TotalDebit.String(), e.TotalCredit.String())
}

func (e *ImbalancedEntryError) Is(target error) bool {
	return target == ErrImbalancedEntry || target == apperrors.ErrValidation
}

// ZeroAmountEntryError is returned by ValidateEntry when both sides of an
// entry sum to zero.
type ZeroAmountEntryError struct{}

func (e *ZeroAmountEntryError) Error() string {
	return ErrZeroAmountEntry.Error()
}

func (e *ZeroAmountEntryError) Is(target error) bool {
	return target == ErrZeroAmountEntry || target == apperrors.ErrValidation
}

// NormalBalance is the side on which an account category increases.
type NormalBalance string

const (
	NormalDebit  NormalBalance = "DEBIT"
	NormalCredit NormalBalance = "CREDIT"
)

// StatementLine is the income statement bucket a category feeds.
type StatementLine string

const (
	LineNone         StatementLine = ""
	LineRevenue      StatementLine = "REVENUE"
	LineCOGS         StatementLine = "COGS"
	LineExpense      StatementLine = "EXPENSE"
	LineOtherIncome  StatementLine = "OTHER_INCOME"
	LineOtherExpense StatementLine = "OTHER_EXPENSE"
)

// CategoryRule describes how lines against one category are signed and where
// they land on the income statement.
type CategoryRule struct {
	NormalBalance NormalBalance
	Line          StatementLine
}

// CategoryRules maps every category to its rule.
type CategoryRules map[domain.CategoryType]CategoryRule

// DefaultCategoryRules returns the standard trial-balance conventions.
// Balance sheet categories are signed but feed no statement line.
func DefaultCategoryRules() CategoryRules {
	return CategoryRules{
		domain.Asset:           {NormalBalance: NormalDebit, Line: LineNone},
		domain.Liability:       {NormalBalance: NormalCredit, Line: LineNone},
		domain.Equity:          {NormalBalance: NormalCredit, Line: LineNone},
		domain.Revenue:         {NormalBalance: NormalCredit, Line: LineRevenue},
		domain.OtherIncome:     {NormalBalance: NormalCredit, Line: LineOtherIncome},
		domain.Expense:         {NormalBalance: NormalDebit, Line: LineExpense},
		domain.CostOfGoodsSold: {NormalBalance: NormalDebit, Line: LineCOGS},
		domain.OtherExpense:    {NormalBalance: NormalDebit, Line: LineOtherExpense},
	}
}

// SignedAmount applies the rule's sign convention to a line amount.
// DEBIT to a debit-normal category -> Positive (+)
// CREDIT to a debit-normal category -> Negative (-)
// DEBIT to a credit-normal category -> Negative (-)
// CREDIT to a credit-normal category -> Positive (+)
func SignedAmount(line domain.JournalLine, rule CategoryRule) decimal.Decimal {
	increases := line.IsDebit == (rule.NormalBalance == NormalDebit)
	if increases {
		return line.Amount
	}
	return line.Amount.Neg()
}

// EntryTotals sums the debit and credit sides of an entry.
func EntryTotals(lines []domain.JournalLine) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit, totalCredit = decimal.Zero, decimal.Zero
	for _, line := range lines {
		if line.IsDebit {
			totalDebit = totalDebit.Add(line.Amount)
		} else {
			totalCredit = totalCredit.Add(line.Amount)
		}
	}
	return totalDebit, totalCredit
}

// ValidateEntry checks that an entry is postable: debits equal credits and the
// common total is greater than zero. Amounts must fit AmountScale so the
// stored lines balance exactly as validated.
func ValidateEntry(lines []domain.JournalLine) error {
	for i, line := range lines {
		if line.Amount.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative amount %s", apperrors.ErrValidation, i, line.Amount.String())
		}
		if !line.Amount.Equal(line.Amount.Truncate(AmountScale)) {
			return fmt.Errorf("%w: %w: line %d amount %s exceeds %d decimal places",
				apperrors.ErrValidation, ErrAmountPrecision, i, line.Amount.String(), AmountScale)
		}
	}

	totalDebit, totalCredit := EntryTotals(lines)
	if !totalDebit.Equal(totalCredit) {
		return &ImbalancedEntryError{TotalDebit: totalDebit, TotalCredit: totalCredit}
	}
	if totalDebit.IsZero() {
		return &ZeroAmountEntryError{}
	}
	return nil
}
