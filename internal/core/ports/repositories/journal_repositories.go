package repositories

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalEntryByID retrieves a journal entry together with its lines.
	FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves one page of entries, newest first, using token-based pagination.
	// It returns the entries with their lines, a token for the next page, and an error.
	ListJournalEntries(ctx context.Context, filter domain.JournalFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// ListJournalEntriesInRange retrieves every entry dated inside period, with lines, for reporting.
	ListJournalEntriesInRange(ctx context.Context, period domain.Period) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournalEntry persists an entry and all of its lines atomically.
	// A reused reference number yields apperrors.ErrDuplicate.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
