package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/core/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var reportAccounts = []domain.Account{
	{AccountID: "kas", CategoryType: domain.Asset, IsActive: true},
	{AccountID: "rev", CategoryType: domain.Revenue, IsActive: true},
	{AccountID: "cogs", CategoryType: domain.CostOfGoodsSold, IsActive: true},
	{AccountID: "exp", CategoryType: domain.Expense, IsActive: false},
}

func jl(accountID, amount string, isDebit bool) domain.JournalLine {
	return domain.JournalLine{AccountID: accountID, Amount: decimal.RequireFromString(amount), IsDebit: isDebit}
}

func ptr(s string) *string {
	return &s
}

type ReportingServiceTestSuite struct {
	suite.Suite
	journalRepo *MockJournalRepository
	accountRepo *MockAccountRepository
	cache       *memoryReportCache
	service     portssvc.ReportingService
	entries     []domain.JournalEntry
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.journalRepo = new(MockJournalRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.cache = newMemoryReportCache()
	suite.service = services.NewReportingService(
		suite.journalRepo,
		suite.accountRepo,
		services.WithReportCache(suite.cache),
		services.WithClock(func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }),
	)
	suite.entries = []domain.JournalEntry{
		{
			EntryID: "sale", EntryDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), ProjectID: ptr("p1"), InvoiceID: ptr("inv-1"),
			Lines: []domain.JournalLine{jl("kas", "1000000", true), jl("rev", "1000000", false)},
		},
		{
			EntryID: "cost", EntryDate: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), ProjectID: ptr("p1"),
			Lines: []domain.JournalLine{jl("cogs", "300000", true), jl("kas", "300000", false)},
		},
		{
			EntryID: "rent", EntryDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			Lines: []domain.JournalLine{jl("exp", "500000", true), jl("kas", "500000", false)},
		},
		{
			EntryID: "old", EntryDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), ProjectID: ptr("p1"),
			Lines: []domain.JournalLine{jl("kas", "50", true), jl("ghost", "50", false)},
		},
	}
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_WholeBook() {
	ctx := context.Background()
	suite.journalRepo.On("ListJournalEntriesInRange", ctx, domain.Period{}).Return(suite.entries, nil).Once()
	suite.accountRepo.On("ListAccounts", ctx, false).Return(reportAccounts, nil).Once()

	report, err := suite.service.IncomeStatement(ctx, clientSession, dto.IncomeStatementParams{})

	suite.Require().NoError(err)
	stmt := report.Statement
	suite.True(decimal.NewFromInt(1000000).Equal(stmt.Revenue))
	suite.True(decimal.NewFromInt(300000).Equal(stmt.COGS))
	suite.True(decimal.NewFromInt(700000).Equal(stmt.GrossProfit))
	suite.True(decimal.NewFromInt(500000).Equal(stmt.Expense), "inactive accounts still report")
	suite.True(decimal.NewFromInt(200000).Equal(stmt.NetProfit))
	suite.Equal(1, report.UnresolvedLines)
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_ProjectAndInvoiceScopes() {
	ctx := context.Background()
	suite.journalRepo.On("ListJournalEntriesInRange", ctx, domain.Period{}).Return(suite.entries, nil).Twice()
	suite.accountRepo.On("ListAccounts", ctx, false).Return(reportAccounts, nil).Twice()

	byProject, err := suite.service.IncomeStatement(ctx, clientSession, dto.IncomeStatementParams{ProjectID: ptr("p1")})
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(700000).Equal(byProject.Statement.NetProfit))
	suite.Equal("p1", *byProject.ProjectID)

	byInvoice, err := suite.service.IncomeStatement(ctx, clientSession, dto.IncomeStatementParams{InvoiceID: ptr("inv-1")})
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1000000).Equal(byInvoice.Statement.NetProfit))
	suite.Equal(0, byInvoice.UnresolvedLines)
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_ServedFromCache() {
	ctx := context.Background()
	suite.journalRepo.On("ListJournalEntriesInRange", ctx, domain.Period{}).Return(suite.entries, nil).Once()
	suite.accountRepo.On("ListAccounts", ctx, false).Return(reportAccounts, nil).Once()

	first, err := suite.service.IncomeStatement(ctx, clientSession, dto.IncomeStatementParams{})
	suite.Require().NoError(err)
	second, err := suite.service.IncomeStatement(ctx, adminSession, dto.IncomeStatementParams{})
	suite.Require().NoError(err)

	suite.Equal(1, suite.cache.hits)
	suite.True(first.Statement.NetProfit.Equal(second.Statement.NetProfit))
	suite.journalRepo.AssertNumberOfCalls(suite.T(), "ListJournalEntriesInRange", 1)
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_PostingDuringLoadIsNotMasked() {
	ctx := context.Background()
	suite.journalRepo.On("ListJournalEntriesInRange", ctx, domain.Period{}).
		Run(func(mock.Arguments) { _ = suite.cache.Invalidate(ctx) }).
		Return(suite.entries, nil).Once()
	suite.journalRepo.On("ListJournalEntriesInRange", ctx, domain.Period{}).Return(suite.entries, nil).Once()
	suite.accountRepo.On("ListAccounts", ctx, false).Return(reportAccounts, nil).Twice()

	_, err := suite.service.IncomeStatement(ctx, clientSession, dto.IncomeStatementParams{})
	suite.Require().NoError(err)
	_, err = suite.service.IncomeStatement(ctx, clientSession, dto.IncomeStatementParams{})
	suite.Require().NoError(err)

	suite.Equal(0, suite.cache.hits)
	suite.journalRepo.AssertNumberOfCalls(suite.T(), "ListJournalEntriesInRange", 2)
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_DateRange() {
	ctx := context.Background()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.journalRepo.On("ListJournalEntriesInRange", ctx, mock.MatchedBy(func(p domain.Period) bool {
		return p.Start.Equal(from) && p.End.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond))
	})).Return(suite.entries, nil).Once()
	suite.accountRepo.On("ListAccounts", ctx, false).Return(reportAccounts, nil).Once()

	report, err := suite.service.IncomeStatement(ctx, clientSession, dto.IncomeStatementParams{FromDate: &from, ToDate: &to})

	suite.Require().NoError(err)
	// The aggregator drops the April rent and the 2023 entry on its own.
	suite.True(decimal.NewFromInt(700000).Equal(report.Statement.NetProfit))
	suite.True(report.Statement.StartDate.Equal(from))
}

func (suite *ReportingServiceTestSuite) TestMonthlyTrend_DefaultsToCurrentYear() {
	ctx := context.Background()
	year2024 := domain.CalendarYear(2024, time.UTC)
	suite.journalRepo.On("ListJournalEntriesInRange", ctx, year2024).Return(suite.entries, nil).Once()
	suite.accountRepo.On("ListAccounts", ctx, false).Return(reportAccounts, nil).Once()

	report, err := suite.service.MonthlyTrend(ctx, clientSession, dto.MonthlyTrendParams{})

	suite.Require().NoError(err)
	suite.Equal(2024, report.Year)
	suite.Require().Len(report.Months, 12)
	march := report.Months[2]
	suite.True(decimal.NewFromInt(1000000).Equal(march.Revenue))
	suite.True(decimal.NewFromInt(300000).Equal(march.Expense), "COGS folds into expense")
	suite.True(decimal.NewFromInt(700000).Equal(march.NetProfit), "2023 entry is outside the year")
	suite.True(decimal.NewFromInt(-500000).Equal(report.Months[3].NetProfit))
}

func (suite *ReportingServiceTestSuite) TestProjectReport() {
	ctx := context.Background()
	suite.journalRepo.On("ListJournalEntriesInRange", ctx, domain.Period{}).Return(suite.entries, nil).Once()
	suite.accountRepo.On("ListAccounts", ctx, false).Return(reportAccounts, nil).Once()

	report, err := suite.service.ProjectReport(ctx, clientSession, "p1", dto.ProjectReportParams{Year: 2024})

	suite.Require().NoError(err)
	suite.Equal("p1", report.ProjectID)
	suite.Equal(3, report.EntryCount)
	suite.Equal(1, report.UnresolvedLines)
	suite.True(decimal.NewFromInt(700000).Equal(report.Statement.NetProfit))
	suite.True(decimal.NewFromInt(700000).Equal(report.Monthly[2].NetProfit))
}

func (suite *ReportingServiceTestSuite) TestProjectReport_MissingProject() {
	_, err := suite.service.ProjectReport(context.Background(), clientSession, "  ", dto.ProjectReportParams{})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestRepositoryFailure() {
	ctx := context.Background()
	suite.journalRepo.On("ListJournalEntriesInRange", ctx, mock.Anything).Return(nil, assert.AnError).Once()

	_, err := suite.service.MonthlyTrend(ctx, clientSession, dto.MonthlyTrendParams{Year: 2022})

	suite.ErrorIs(err, assert.AnError)
}

func (suite *ReportingServiceTestSuite) TestRequiresSession() {
	_, err := suite.service.IncomeStatement(context.Background(), domain.Session{}, dto.IncomeStatementParams{})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
