package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLine is one debit or credit against a single account.
type JournalLine struct {
	LineID    string          `json:"lineID"`
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount"` // Non-negative
	IsDebit   bool            `json:"isDebit"`
}

// JournalEntry is a balanced transaction record made of two or more lines.
type JournalEntry struct {
	EntryID          string        `json:"entryID"`
	EntryDate        time.Time     `json:"entryDate"`
	Description      string        `json:"description"`
	ReferenceNumber  string        `json:"referenceNumber"` // Unique per entry
	ProjectID        *string       `json:"projectID,omitempty"`
	InvoiceID        *string       `json:"invoiceID,omitempty"`
	RecordedByUserID string        `json:"recordedByUserID"`
	Lines            []JournalLine `json:"lines"`
	AuditFields
}

// BelongsToProject reports whether the entry is associated with projectID.
func (e JournalEntry) BelongsToProject(projectID string) bool {
	return e.ProjectID != nil && *e.ProjectID == projectID
}

// BelongsToInvoice reports whether the entry is associated with invoiceID.
func (e JournalEntry) BelongsToInvoice(invoiceID string) bool {
	return e.InvoiceID != nil && *e.InvoiceID == invoiceID
}

// JournalFilter narrows a journal entry listing. Nil and zero fields are
// not applied.
type JournalFilter struct {
	ProjectID *string
	InvoiceID *string
	Period    Period
}
