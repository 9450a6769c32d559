package dto

import (
	"time"
)

// IncomeStatementParams defines query parameters for the income statement report.
type IncomeStatementParams struct {
	FromDate  *time.Time `form:"fromDate" time_format:"2006-01-02" time_utc:"1"`
	ToDate    *time.Time `form:"toDate" time_format:"2006-01-02" time_utc:"1"`
	ProjectID *string    `form:"projectId"`
	InvoiceID *string    `form:"invoiceId"`
}

// MonthlyTrendParams defines query parameters for the monthly trend report.
// A zero Year means the current year.
type MonthlyTrendParams struct {
	Year      int     `form:"year" binding:"omitempty,min=1900,max=9999"`
	ProjectID *string `form:"projectId"`
}

// ProjectReportParams defines query parameters for the per-project report.
type ProjectReportParams struct {
	Year int `form:"year" binding:"omitempty,min=1900,max=9999"`
}
