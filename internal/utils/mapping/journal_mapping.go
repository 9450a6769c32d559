package mapping

import (
	"database/sql"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/models"
)

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// ToModelJournalEntry converts a domain JournalEntry to its row and line rows.
// Line numbers follow the order of e.Lines.
func ToModelJournalEntry(e domain.JournalEntry) (models.JournalEntry, []models.JournalLine) {
	entry := models.JournalEntry{
		EntryID:          e.EntryID,
		EntryDate:        e.EntryDate,
		Description:      e.Description,
		ReferenceNumber:  e.ReferenceNumber,
		ProjectID:        toNullString(e.ProjectID),
		InvoiceID:        toNullString(e.InvoiceID),
		RecordedByUserID: e.RecordedByUserID,
		AuditFields:      ToModelAuditFields(e.AuditFields),
	}
	lines := make([]models.JournalLine, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = models.JournalLine{
			LineID:    l.LineID,
			EntryID:   e.EntryID,
			LineNo:    i + 1,
			AccountID: l.AccountID,
			Amount:    l.Amount,
			IsDebit:   l.IsDebit,
		}
	}
	return entry, lines
}

// ToDomainJournalEntry converts an entry row and its line rows to a domain JournalEntry.
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalLine) domain.JournalEntry {
	entry := domain.JournalEntry{
		EntryID:          m.EntryID,
		EntryDate:        m.EntryDate.UTC(),
		Description:      m.Description,
		ReferenceNumber:  m.ReferenceNumber,
		ProjectID:        fromNullString(m.ProjectID),
		InvoiceID:        fromNullString(m.InvoiceID),
		RecordedByUserID: m.RecordedByUserID,
		Lines:            make([]domain.JournalLine, len(lines)),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
	for i, l := range lines {
		entry.Lines[i] = ToDomainJournalLine(l)
	}
	return entry
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:    m.LineID,
		EntryID:   m.EntryID,
		AccountID: m.AccountID,
		Amount:    m.Amount,
		IsDebit:   m.IsDebit,
	}
}
