package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/core/ports"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/utils/accounting"
	"github.com/SscSPs/bizledger/internal/utils/pagination"
)

var (
	ErrJournalMinLines     = fmt.Errorf("%w: journal entry must have at least two lines", apperrors.ErrValidation)
	ErrAccountNotFound     = fmt.Errorf("%w: account not found", apperrors.ErrValidation)
	ErrAccountInactive     = fmt.Errorf("%w: account is inactive", apperrors.ErrValidation)
	ErrReferenceMissing    = fmt.Errorf("%w: reference number is required", apperrors.ErrValidation)
	ErrInvalidDateRange    = fmt.Errorf("%w: fromDate must not be after toDate", apperrors.ErrValidation)
	ErrDuplicateReference  = fmt.Errorf("%w: reference number already used", apperrors.ErrDuplicate)
	ErrJournalEntryMissing = fmt.Errorf("%w: journal entry not found", apperrors.ErrNotFound)
)

// journalService provides journal entry posting and lookup.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
	cache       ports.ReportCache
	publisher   ports.JournalPublisher
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithJournalReportCache sets the cache that is invalidated after every posting.
func WithJournalReportCache(cache ports.ReportCache) JournalServiceOption {
	return func(s *journalService) {
		if cache != nil {
			s.cache = cache
		}
	}
}

// WithJournalPublisher sets the publisher notified after every posting.
func WithJournalPublisher(publisher ports.JournalPublisher) JournalServiceOption {
	return func(s *journalService) {
		if publisher != nil {
			s.publisher = publisher
		}
	}
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		cache:       noopReportCache{},
		publisher:   noopJournalPublisher{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// checkAccounts verifies that every line posts to a known, active account.
func (s *journalService) checkAccounts(ctx context.Context, lines []domain.JournalLine) error {
	seen := make(map[string]struct{}, len(lines))
	accountIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; ok {
			continue
		}
		seen[line.AccountID] = struct{}{}
		accountIDs = append(accountIDs, line.AccountID)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	for _, id := range accountIDs {
		acc, ok := accounts[id]
		if !ok {
			return fmt.Errorf("%w: %s", ErrAccountNotFound, id)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: %s (%s)", ErrAccountInactive, acc.Code, id)
		}
	}
	return nil
}

// CreateJournalEntry validates and persists a new entry with its lines.
func (s *journalService) CreateJournalEntry(ctx context.Context, session domain.Session, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	if err := s.AuthorizeWrite(ctx, session, "post journal entry"); err != nil {
		return nil, err
	}

	if len(req.Lines) < 2 {
		return nil, ErrJournalMinLines
	}
	reference := strings.TrimSpace(req.ReferenceNumber)
	if reference == "" {
		return nil, ErrReferenceMissing
	}

	lines := dto.ToDomainLines(req.Lines)
	if err := accounting.ValidateEntry(lines); err != nil {
		s.LogWarn(ctx, "Rejected unbalanced journal entry",
			slog.String("reference", reference),
			slog.String("error", err.Error()))
		return nil, err
	}
	if err := s.checkAccounts(ctx, lines); err != nil {
		s.LogWarn(ctx, "Rejected journal entry with invalid accounts",
			slog.String("reference", reference),
			slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()
	for i := range lines {
		lines[i].LineID = uuid.NewString()
		lines[i].EntryID = entryID
	}

	entry := domain.JournalEntry{
		EntryID:          entryID,
		EntryDate:        entryDay(req.EntryDate),
		Description:      strings.TrimSpace(req.Description),
		ReferenceNumber:  reference,
		ProjectID:        normalizeOptionalID(req.ProjectID),
		InvoiceID:        normalizeOptionalID(req.InvoiceID),
		RecordedByUserID: session.UserID,
		Lines:            lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.UserID,
		},
	}

	if err := s.journalRepo.SaveJournalEntry(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateReference, reference)
		}
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("entry_id", entryID))
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.LogError(ctx, err, "Failed to invalidate report cache", slog.String("entry_id", entryID))
	}
	if err := s.publisher.PublishJournalPosted(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to publish journal posted event", slog.String("entry_id", entryID))
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", entryID),
		slog.String("reference", reference),
		slog.Int("line_count", len(lines)))
	return &entry, nil
}

// GetJournalEntryByID retrieves a specific entry with its lines.
func (s *journalService) GetJournalEntryByID(ctx context.Context, session domain.Session, entryID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeRead(ctx, session); err != nil {
		return nil, err
	}
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrJournalEntryMissing
		}
		s.LogError(ctx, err, "Failed to find journal entry", slog.String("entry_id", entryID))
		return nil, err
	}
	return entry, nil
}

// ListJournalEntries retrieves one page of entries, newest first.
func (s *journalService) ListJournalEntries(ctx context.Context, session domain.Session, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	if err := s.AuthorizeRead(ctx, session); err != nil {
		return nil, err
	}
	period, err := periodFromDates(params.FromDate, params.ToDate)
	if err != nil {
		return nil, err
	}

	filter := domain.JournalFilter{
		ProjectID: normalizeOptionalID(params.ProjectID),
		InvoiceID: normalizeOptionalID(params.InvoiceID),
		Period:    period,
	}
	limit := pagination.NormalizeLimit(params.Limit)

	entries, nextToken, err := s.journalRepo.ListJournalEntries(ctx, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.Int("limit", limit))
		return nil, err
	}

	resp := dto.ToListJournalEntriesResponse(entries, nextToken)
	return &resp, nil
}

// ValidateJournalEntry runs the double-entry checks on a draft without persisting it.
func (s *journalService) ValidateJournalEntry(ctx context.Context, req dto.ValidateJournalEntryRequest) dto.ValidateJournalEntryResponse {
	lines := dto.ToDomainLines(req.Lines)
	totalDebit, totalCredit := accounting.EntryTotals(lines)
	resp := dto.ValidateJournalEntryResponse{
		Valid:       true,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
	}
	if err := accounting.ValidateEntry(lines); err != nil {
		resp.Valid = false
		resp.Error = err.Error()
		s.LogDebug(ctx, "Draft journal entry is not postable", slog.String("error", err.Error()))
	}
	return resp
}
