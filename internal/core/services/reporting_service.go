package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/core/ports"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/utils/accounting"
)

const (
	reportKindIncomeStatement = "income-statement"
	reportKindMonthlyTrend    = "monthly-trend"
	reportKindProject         = "project-report"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	journalRepo portsrepo.JournalReader
	accountRepo portsrepo.AccountReader
	cache       ports.ReportCache
	rules       accounting.CategoryRules
	now         func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportCache sets the cache consulted before aggregating.
func WithReportCache(cache ports.ReportCache) ReportingServiceOption {
	return func(s *reportingService) {
		if cache != nil {
			s.cache = cache
		}
	}
}

// WithCategoryRules overrides the default category rule table.
func WithCategoryRules(rules accounting.CategoryRules) ReportingServiceOption {
	return func(s *reportingService) {
		s.rules = rules
	}
}

// WithClock overrides the clock used to pick the default report year.
func WithClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(journalRepo portsrepo.JournalReader, accountRepo portsrepo.AccountReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		cache:       noopReportCache{},
		rules:       accounting.DefaultCategoryRules(),
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// cacheParams renders report parameters as a stable cache key suffix.
func cacheParams(parts ...string) string {
	return strings.Join(parts, "|")
}

func optionalParam(name string, value *string) string {
	if value == nil {
		return name + "="
	}
	return name + "=" + *value
}

func timeParam(name string, t time.Time) string {
	if t.IsZero() {
		return name + "="
	}
	return name + "=" + t.UTC().Format(time.RFC3339Nano)
}

// cacheSlot pins a report to the cache generation observed before its data
// was loaded.
type cacheSlot struct {
	gen    int64
	kind   string
	params string
	usable bool
}

func (s *reportingService) cached(ctx context.Context, kind, params string, dest any) (cacheSlot, bool) {
	gen, err := s.cache.Generation(ctx)
	if err != nil {
		s.LogError(ctx, err, "Report cache generation read failed", slog.String("kind", kind))
		return cacheSlot{}, false
	}
	slot := cacheSlot{gen: gen, kind: kind, params: params, usable: true}
	hit, err := s.cache.Get(ctx, gen, kind, params, dest)
	if err != nil {
		s.LogError(ctx, err, "Report cache read failed", slog.String("kind", kind))
		return slot, false
	}
	if hit {
		s.LogDebug(ctx, "Report served from cache", slog.String("kind", kind))
	}
	return slot, hit
}

func (s *reportingService) store(ctx context.Context, slot cacheSlot, value any) {
	if !slot.usable {
		return
	}
	if err := s.cache.Set(ctx, slot.gen, slot.kind, slot.params, value); err != nil {
		s.LogError(ctx, err, "Report cache write failed", slog.String("kind", slot.kind))
	}
}

// load fetches the catalogue and all entries in period.
func (s *reportingService) load(ctx context.Context, period domain.Period) ([]domain.JournalEntry, []domain.Account, error) {
	entries, err := s.journalRepo.ListJournalEntriesInRange(ctx, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to load journal entries for report")
		return nil, nil, fmt.Errorf("failed to load journal entries: %w", err)
	}
	// Inactive accounts still carry historical postings.
	accounts, err := s.accountRepo.ListAccounts(ctx, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for report")
		return nil, nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	return entries, accounts, nil
}

func (s *reportingService) aggregate(ctx context.Context, entries []domain.JournalEntry, accounts []domain.Account, mode domain.AggregationMode, period domain.Period) (*domain.PeriodAggregate, error) {
	agg, err := accounting.AggregatePeriod(entries, accounts, s.rules, mode, period)
	if err != nil {
		return nil, err
	}
	for _, w := range agg.Warnings {
		s.LogWarn(ctx, "Skipping journal line with unresolved account",
			slog.String("entry_id", w.EntryID),
			slog.String("account_id", w.AccountID),
			slog.String("amount", w.Amount.String()),
			slog.Bool("is_debit", w.IsDebit))
	}
	return agg, nil
}

func (s *reportingService) reportYear(year int) int {
	if year == 0 {
		return s.now().UTC().Year()
	}
	return year
}

// IncomeStatement generates a detailed statement for a date range.
func (s *reportingService) IncomeStatement(ctx context.Context, session domain.Session, params dto.IncomeStatementParams) (*domain.IncomeStatementReport, error) {
	if err := s.AuthorizeRead(ctx, session); err != nil {
		return nil, err
	}
	period, err := periodFromDates(params.FromDate, params.ToDate)
	if err != nil {
		return nil, err
	}
	projectID := normalizeOptionalID(params.ProjectID)
	invoiceID := normalizeOptionalID(params.InvoiceID)

	key := cacheParams(
		timeParam("from", period.Start),
		timeParam("to", period.End),
		optionalParam("project", projectID),
		optionalParam("invoice", invoiceID),
	)
	var report domain.IncomeStatementReport
	slot, hit := s.cached(ctx, reportKindIncomeStatement, key, &report)
	if hit {
		return &report, nil
	}

	entries, accounts, err := s.load(ctx, period)
	if err != nil {
		return nil, err
	}
	if projectID != nil {
		entries = accounting.FilterByProject(entries, *projectID)
	}
	if invoiceID != nil {
		entries = accounting.FilterByInvoice(entries, *invoiceID)
	}

	agg, err := s.aggregate(ctx, entries, accounts, domain.ModeDetailed, period)
	if err != nil {
		return nil, err
	}

	report = domain.IncomeStatementReport{
		Statement:       *agg.Statement,
		ProjectID:       projectID,
		InvoiceID:       invoiceID,
		UnresolvedLines: len(agg.Warnings),
	}
	s.store(ctx, slot, report)

	s.LogInfo(ctx, "Income statement generated",
		slog.Int("entry_count", len(entries)),
		slog.String("net_profit", report.Statement.NetProfit.String()))
	return &report, nil
}

// MonthlyTrend generates twelve monthly buckets for one calendar year.
func (s *reportingService) MonthlyTrend(ctx context.Context, session domain.Session, params dto.MonthlyTrendParams) (*domain.MonthlyTrendReport, error) {
	if err := s.AuthorizeRead(ctx, session); err != nil {
		return nil, err
	}
	year := s.reportYear(params.Year)
	projectID := normalizeOptionalID(params.ProjectID)

	key := cacheParams("year="+strconv.Itoa(year), optionalParam("project", projectID))
	var report domain.MonthlyTrendReport
	slot, hit := s.cached(ctx, reportKindMonthlyTrend, key, &report)
	if hit {
		return &report, nil
	}

	period := domain.CalendarYear(year, time.UTC)
	entries, accounts, err := s.load(ctx, period)
	if err != nil {
		return nil, err
	}
	if projectID != nil {
		entries = accounting.FilterByProject(entries, *projectID)
	}

	agg, err := s.aggregate(ctx, entries, accounts, domain.ModeMonthly, period)
	if err != nil {
		return nil, err
	}

	report = domain.MonthlyTrendReport{
		Year:            year,
		ProjectID:       projectID,
		Months:          agg.Monthly,
		UnresolvedLines: len(agg.Warnings),
	}
	s.store(ctx, slot, report)

	s.LogInfo(ctx, "Monthly trend generated", slog.Int("year", year), slog.Int("entry_count", len(entries)))
	return &report, nil
}

// ProjectReport generates the all-time statement and one year of trend for a project.
func (s *reportingService) ProjectReport(ctx context.Context, session domain.Session, projectID string, params dto.ProjectReportParams) (*domain.ProjectReport, error) {
	if err := s.AuthorizeRead(ctx, session); err != nil {
		return nil, err
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, fmt.Errorf("%w: project ID is required", apperrors.ErrValidation)
	}
	year := s.reportYear(params.Year)

	key := cacheParams("project="+projectID, "year="+strconv.Itoa(year))
	var report domain.ProjectReport
	slot, hit := s.cached(ctx, reportKindProject, key, &report)
	if hit {
		return &report, nil
	}

	entries, accounts, err := s.load(ctx, domain.Period{})
	if err != nil {
		return nil, err
	}
	entries = accounting.FilterByProject(entries, projectID)

	detailed, err := s.aggregate(ctx, entries, accounts, domain.ModeDetailed, domain.Period{})
	if err != nil {
		return nil, err
	}
	// Unresolved lines are already logged by the detailed pass.
	monthly, err := accounting.AggregatePeriod(entries, accounts, s.rules, domain.ModeMonthly, domain.CalendarYear(year, time.UTC))
	if err != nil {
		return nil, err
	}

	report = domain.ProjectReport{
		ProjectID:       projectID,
		Statement:       *detailed.Statement,
		Monthly:         monthly.Monthly,
		Year:            year,
		EntryCount:      len(entries),
		UnresolvedLines: len(detailed.Warnings),
	}
	s.store(ctx, slot, report)

	s.LogInfo(ctx, "Project report generated",
		slog.String("project_id", projectID),
		slog.Int("entry_count", len(entries)))
	return &report, nil
}
