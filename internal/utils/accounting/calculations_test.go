package accounting_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debit(accountID, amount string) domain.JournalLine {
	return domain.JournalLine{AccountID: accountID, Amount: decimal.RequireFromString(amount), IsDebit: true}
}

func credit(accountID, amount string) domain.JournalLine {
	return domain.JournalLine{AccountID: accountID, Amount: decimal.RequireFromString(amount), IsDebit: false}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "%s: want %s, got %s", field, want, got.String())
}

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name      string
		lines     []domain.JournalLine
		wantErr   error
		wantValid bool
	}{
		{
			name:      "balanced two lines",
			lines:     []domain.JournalLine{debit("kas", "1000000"), credit("rev", "1000000")},
			wantValid: true,
		},
		{
			name:      "balanced split credit",
			lines:     []domain.JournalLine{debit("kas", "300.50"), credit("rev", "200.25"), credit("tax", "100.25")},
			wantValid: true,
		},
		{
			name:      "decimal fractions that drift in binary floating point",
			lines:     []domain.JournalLine{debit("kas", "0.1"), debit("kas", "0.2"), credit("rev", "0.3")},
			wantValid: true,
		},
		{
			name:    "imbalanced",
			lines:   []domain.JournalLine{debit("kas", "700000"), credit("rev", "650000")},
			wantErr: accounting.ErrImbalancedEntry,
		},
		{
			name:    "all zero amounts",
			lines:   []domain.JournalLine{debit("kas", "0"), credit("rev", "0")},
			wantErr: accounting.ErrZeroAmountEntry,
		},
		{
			name:    "no lines",
			lines:   nil,
			wantErr: accounting.ErrZeroAmountEntry,
		},
		{
			name:    "only debits",
			lines:   []domain.JournalLine{debit("kas", "10"), debit("exp", "10")},
			wantErr: accounting.ErrImbalancedEntry,
		},
		{
			name:      "four decimal places",
			lines:     []domain.JournalLine{debit("kas", "0.0001"), debit("kas", "1.2500"), credit("rev", "1.2501")},
			wantValid: true,
		},
		{
			name:    "halves of the smallest stored unit",
			lines:   []domain.JournalLine{debit("kas", "0.00005"), debit("kas", "0.00005"), credit("rev", "0.0001")},
			wantErr: accounting.ErrAmountPrecision,
		},
		{
			name:    "negative amount",
			lines:   []domain.JournalLine{debit("kas", "-10"), credit("rev", "-10")},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := accounting.ValidateEntry(tt.lines)
			if tt.wantValid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestValidateEntry_ImbalanceCarriesTotals(t *testing.T) {
	err := accounting.ValidateEntry([]domain.JournalLine{debit("kas", "700000"), credit("rev", "650000")})

	var imbalanced *accounting.ImbalancedEntryError
	require.True(t, errors.As(err, &imbalanced))
	assertDecimal(t, "700000", imbalanced.TotalDebit, "TotalDebit")
	assertDecimal(t, "650000", imbalanced.TotalCredit, "TotalCredit")
	assert.Contains(t, err.Error(), "debits sum is 700000 and credits sum is 650000")
	assert.False(t, errors.Is(err, accounting.ErrZeroAmountEntry))
}

func TestEntryTotals(t *testing.T) {
	totalDebit, totalCredit := accounting.EntryTotals([]domain.JournalLine{
		debit("a", "1.10"), debit("b", "2.20"), credit("c", "3.30"), credit("d", "0"),
	})
	assertDecimal(t, "3.30", totalDebit, "debit")
	assertDecimal(t, "3.30", totalCredit, "credit")
}

func TestSignedAmount(t *testing.T) {
	rules := accounting.DefaultCategoryRules()

	tests := []struct {
		category domain.CategoryType
		line     domain.JournalLine
		want     string
	}{
		{domain.Revenue, credit("x", "100"), "100"},
		{domain.Revenue, debit("x", "100"), "-100"},
		{domain.OtherIncome, credit("x", "5"), "5"},
		{domain.OtherIncome, debit("x", "5"), "-5"},
		{domain.Expense, debit("x", "40"), "40"},
		{domain.Expense, credit("x", "40"), "-40"},
		{domain.CostOfGoodsSold, debit("x", "7"), "7"},
		{domain.CostOfGoodsSold, credit("x", "7"), "-7"},
		{domain.OtherExpense, debit("x", "3"), "3"},
		{domain.OtherExpense, credit("x", "3"), "-3"},
		{domain.Asset, debit("x", "9"), "9"},
		{domain.Asset, credit("x", "9"), "-9"},
		{domain.Liability, credit("x", "9"), "9"},
		{domain.Equity, debit("x", "9"), "-9"},
	}

	for _, tt := range tests {
		side := "credit"
		if tt.line.IsDebit {
			side = "debit"
		}
		t.Run(string(tt.category)+"/"+side, func(t *testing.T) {
			rule, ok := rules[tt.category]
			require.True(t, ok)
			assertDecimal(t, tt.want, accounting.SignedAmount(tt.line, rule), "signed")
		})
	}
}

func TestDefaultCategoryRules_CoverEveryCategory(t *testing.T) {
	rules := accounting.DefaultCategoryRules()
	for _, c := range domain.CategoryTypes {
		_, ok := rules[c]
		assert.True(t, ok, "missing rule for %s", c)
	}
	assert.Len(t, rules, len(domain.CategoryTypes))
}
