package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests for journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, adminOnly gin.HandlerFunc) {
	h := &journalHandler{journalService: journalService}

	journals := rg.Group("/journals")
	{
		journals.POST("", adminOnly, h.createJournalEntry)
		journals.POST("/validate", h.validateJournalEntry)
		journals.GET("", h.listJournalEntries)
		journals.GET("/:entryID", h.getJournalEntry)
	}
}

// createJournalEntry godoc
// @Summary Post a journal entry
// @Description Validates double-entry balance and persists the entry with its lines. Admin only.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} ErrorResponse "Unbalanced, zero-amount or otherwise invalid entry"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Reference number already used"
// @Failure 500 {object} ErrorResponse "Failed to post journal entry"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.journalService.CreateJournalEntry(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err, "Failed to post journal entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// validateJournalEntry godoc
// @Summary Check a draft journal entry
// @Description Runs the balance checks without persisting anything and returns both totals.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   draft body dto.ValidateJournalEntryRequest true "Draft lines"
// @Success 200 {object} dto.ValidateJournalEntryResponse
// @Failure 400 {object} ErrorResponse "Malformed request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /journals/validate [post]
func (h *journalHandler) validateJournalEntry(c *gin.Context) {
	var req dto.ValidateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.journalService.ValidateJournalEntry(c.Request.Context(), req))
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Tags journals
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Journal entry not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve journal entry"
// @Security BearerAuth
// @Router /journals/{entryID} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	entry, err := h.journalService.GetJournalEntryByID(c.Request.Context(), session, c.Param("entryID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Lists entries newest first using token pagination.
// @Tags journals
// @Produce  json
// @Param   projectId query string false "Project filter"
// @Param   invoiceId query string false "Invoice filter"
// @Param   fromDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   toDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list journal entries"
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListJournalEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.journalService.ListJournalEntries(c.Request.Context(), session, params)
	if err != nil {
		respondError(c, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}
