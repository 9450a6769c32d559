package services

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/dto"
)

// ReportingService defines operations for generating income reports
type ReportingService interface {
	// IncomeStatement generates a detailed statement for a date range, optionally scoped to a project or invoice.
	IncomeStatement(ctx context.Context, session domain.Session, params dto.IncomeStatementParams) (*domain.IncomeStatementReport, error)

	// MonthlyTrend generates twelve monthly buckets for one calendar year.
	MonthlyTrend(ctx context.Context, session domain.Session, params dto.MonthlyTrendParams) (*domain.MonthlyTrendReport, error)

	// ProjectReport generates the all-time statement and one year of trend for a project.
	ProjectReport(ctx context.Context, session domain.Session, projectID string, params dto.ProjectReportParams) (*domain.ProjectReport, error)
}
