package services

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalEntryByID retrieves a specific entry with its lines.
	GetJournalEntryByID(ctx context.Context, session domain.Session, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves a paginated list of entries.
	ListJournalEntries(ctx context.Context, session domain.Session, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// CreateJournalEntry validates and persists a new entry. Admin only.
	CreateJournalEntry(ctx context.Context, session domain.Session, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)
}

// JournalValidatorSvc checks draft entries without persisting them.
type JournalValidatorSvc interface {
	// ValidateJournalEntry runs the double-entry checks on draft lines.
	ValidateJournalEntry(ctx context.Context, req dto.ValidateJournalEntryRequest) dto.ValidateJournalEntryResponse
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	JournalValidatorSvc
}
