package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves income statement reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/income-statement", h.incomeStatement)
		reports.GET("/monthly-trend", h.monthlyTrend)
	}
	rg.GET("/projects/:projectID/report", h.projectReport)
}

// incomeStatement godoc
// @Summary Income statement
// @Description Detailed income statement for a date range, optionally scoped to a project or an invoice.
// @Tags reports
// @Produce json
// @Param fromDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param toDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Param projectId query string false "Project filter"
// @Param invoiceId query string false "Invoice filter"
// @Success 200 {object} domain.IncomeStatementReport
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) incomeStatement(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var params dto.IncomeStatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid income statement params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), session, params)
	if err != nil {
		respondError(c, err, "Failed to generate income statement")
		return
	}
	c.JSON(http.StatusOK, report)
}

// monthlyTrend godoc
// @Summary Monthly profit trend
// @Description Twelve monthly revenue, expense and net profit buckets for one calendar year.
// @Tags reports
// @Produce json
// @Param year query int false "Calendar year, defaults to the current year"
// @Param projectId query string false "Project filter"
// @Success 200 {object} domain.MonthlyTrendReport
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly-trend [get]
func (h *reportingHandler) monthlyTrend(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var params dto.MonthlyTrendParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.MonthlyTrend(c.Request.Context(), session, params)
	if err != nil {
		respondError(c, err, "Failed to generate monthly trend")
		return
	}
	c.JSON(http.StatusOK, report)
}

// projectReport godoc
// @Summary Project profitability
// @Description All-time income statement of one project plus its monthly trend for the given year.
// @Tags reports
// @Produce json
// @Param projectID path string true "Project ID"
// @Param year query int false "Calendar year of the trend, defaults to the current year"
// @Success 200 {object} domain.ProjectReport
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{projectID}/report [get]
func (h *reportingHandler) projectReport(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var params dto.ProjectReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.ProjectReport(c.Request.Context(), session, c.Param("projectID"), params)
	if err != nil {
		respondError(c, err, "Failed to generate project report")
		return
	}
	c.JSON(http.StatusOK, report)
}
