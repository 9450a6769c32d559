package dto

import (
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one debit or credit in a create or validate request.
type JournalLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"1000000" binding:"decimal_nonneg,decimal_scale=4"`
	IsDebit   bool            `json:"isDebit"`
}

// CreateJournalEntryRequest defines the data needed to post a journal entry.
// EntryDate is a calendar date. Only its year, month and day in the offset it
// was sent with are kept; the stored value is midnight UTC of that date.
type CreateJournalEntryRequest struct {
	EntryDate       time.Time            `json:"entryDate" binding:"required"`
	Description     string               `json:"description" binding:"max=500"`
	ReferenceNumber string               `json:"referenceNumber" binding:"required,max=50"`
	ProjectID       *string              `json:"projectID"`
	InvoiceID       *string              `json:"invoiceID"`
	Lines           []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ValidateJournalEntryRequest carries the lines of a draft entry.
type ValidateJournalEntryRequest struct {
	Lines []JournalLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ValidateJournalEntryResponse reports whether a draft entry can be posted.
type ValidateJournalEntryResponse struct {
	Valid       bool            `json:"valid"`
	TotalDebit  decimal.Decimal `json:"totalDebit" swaggertype:"string"`
	TotalCredit decimal.Decimal `json:"totalCredit" swaggertype:"string"`
	Error       string          `json:"error,omitempty"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string"`
	IsDebit   bool            `json:"isDebit"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID          string                `json:"entryID"`
	EntryDate        time.Time             `json:"entryDate"`
	Description      string                `json:"description"`
	ReferenceNumber  string                `json:"referenceNumber"`
	ProjectID        *string               `json:"projectID,omitempty"`
	InvoiceID        *string               `json:"invoiceID,omitempty"`
	RecordedByUserID string                `json:"recordedByUserID"`
	Lines            []JournalLineResponse `json:"lines"`
	CreatedAt        time.Time             `json:"createdAt"`
}

// ListJournalEntriesParams defines query parameters for listing journal entries.
type ListJournalEntriesParams struct {
	ProjectID *string    `form:"projectId"`
	InvoiceID *string    `form:"invoiceId"`
	FromDate  *time.Time `form:"fromDate" time_format:"2006-01-02" time_utc:"1"`
	ToDate    *time.Time `form:"toDate" time_format:"2006-01-02" time_utc:"1"`
	Limit     int        `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string    `form:"nextToken"`
}

// ListJournalEntriesResponse wraps one page of journal entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToDomainLines converts request lines to domain lines.
func ToDomainLines(lines []JournalLineRequest) []domain.JournalLine {
	out := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		out[i] = domain.JournalLine{
			AccountID: l.AccountID,
			Amount:    l.Amount,
			IsDebit:   l.IsDebit,
		}
	}
	return out
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			LineID:    l.LineID,
			AccountID: l.AccountID,
			Amount:    l.Amount,
			IsDebit:   l.IsDebit,
		}
	}
	return JournalEntryResponse{
		EntryID:          e.EntryID,
		EntryDate:        e.EntryDate,
		Description:      e.Description,
		ReferenceNumber:  e.ReferenceNumber,
		ProjectID:        e.ProjectID,
		InvoiceID:        e.InvoiceID,
		RecordedByUserID: e.RecordedByUserID,
		Lines:            lines,
		CreatedAt:        e.CreatedAt,
	}
}

// ToListJournalEntriesResponse converts a page of entries to its DTO.
func ToListJournalEntriesResponse(entries []domain.JournalEntry, nextToken *string) ListJournalEntriesResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToJournalEntryResponse(&entries[i])
	}
	return ListJournalEntriesResponse{Entries: res, NextToken: nextToken}
}
