package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	EntryID          string         `db:"entry_id"`
	EntryDate        time.Time      `db:"entry_date"`
	Description      string         `db:"description"`
	ReferenceNumber  string         `db:"reference_number"`
	ProjectID        sql.NullString `db:"project_id"`
	InvoiceID        sql.NullString `db:"invoice_id"`
	RecordedByUserID string         `db:"recorded_by_user_id"`
	AuditFields
}

// JournalLine is a row of the journal_lines table.
type JournalLine struct {
	LineID    string          `db:"line_id"`
	EntryID   string          `db:"entry_id"`
	LineNo    int             `db:"line_no"`
	AccountID string          `db:"account_id"`
	Amount    decimal.Decimal `db:"amount"`
	IsDebit   bool            `db:"is_debit"`
}
