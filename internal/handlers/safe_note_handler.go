package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "captable/internal/errors"
	"captable/internal/models"
	"captable/internal/pagination"
	"captable/internal/services"
)

// SafeNoteHandler handles SAFE note requests.
type SafeNoteHandler struct {
	safeNoteService services.SafeNoteServicer
	scenarioService services.ScenarioServicer
}

// NewSafeNoteHandler creates a new SafeNoteHandler.
func NewSafeNoteHandler(safeNoteService services.SafeNoteServicer, scenarioService services.ScenarioServicer) *SafeNoteHandler {
	return &SafeNoteHandler{safeNoteService: safeNoteService, scenarioService: scenarioService}
}

// CreateSafeNoteRequest represents the request payload for recording a SAFE.
type CreateSafeNoteRequest struct {
	ShareholderID    string              `json:"shareholder_id" binding:"required,uuid"`
	InvestmentAmount decimal.Decimal     `json:"investment_amount" binding:"required"`
	ValuationCap     decimal.NullDecimal `json:"valuation_cap,omitempty"`
	DiscountRate     decimal.NullDecimal `json:"discount_rate,omitempty"`
	Type             models.SafeType     `json:"type" binding:"required,safe_type"`
	HasProRataRights bool                `json:"has_pro_rata_rights"`
	SignedDate       *time.Time          `json:"signed_date,omitempty"`
}

// UpdateSafeNoteRequest represents the request payload for amending SAFE terms.
type UpdateSafeNoteRequest struct {
	ValuationCap     decimal.NullDecimal `json:"valuation_cap,omitempty"`
	DiscountRate     decimal.NullDecimal `json:"discount_rate,omitempty"`
	HasProRataRights *bool               `json:"has_pro_rata_rights,omitempty"`
}

// ResolveConversionsRequest represents the request payload for projecting
// SAFE conversions at a round price.
type ResolveConversionsRequest struct {
	RoundPricePerShare decimal.Decimal `json:"round_price_per_share" binding:"required"`
}

// CreateSafeNote handles recording a new SAFE note.
// @Summary     Create SAFE note
// @Description Record a new SAFE note against the company
// @Tags        safes
// @Accept      json
// @Produce     json
// @Param       request body CreateSafeNoteRequest true "SAFE details"
// @Success     201 {object} models.SafeNote "SAFE note created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Shareholder not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /safes [post]
func (h *SafeNoteHandler) CreateSafeNote(c *gin.Context) {
	var req CreateSafeNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	note, err := h.safeNoteService.CreateSafeNote(
		req.ShareholderID, req.InvestmentAmount, req.ValuationCap, req.DiscountRate,
		req.Type, req.HasProRataRights, req.SignedDate,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"safe_note": note})
}

// GetSafeNotes handles listing SAFE notes.
// @Summary     List SAFE notes
// @Description List SAFE notes, optionally filtered by status
// @Tags        safes
// @Produce     json
// @Param       status query string false "Status filter" Enums(outstanding, converted, cancelled)
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.SafeNote] "SAFE notes"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /safes [get]
func (h *SafeNoteHandler) GetSafeNotes(c *gin.Context) {
	var query struct {
		pagination.PageRequest
		Status *models.SafeStatus `form:"status" binding:"omitempty,safe_status"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	resp, err := h.safeNoteService.GetSafeNotes(query.PageRequest, query.Status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSafeNoteByID handles fetching a single SAFE note.
// @Summary     Get SAFE note
// @Description Get a SAFE note with its shareholder
// @Tags        safes
// @Produce     json
// @Param       id path string true "SAFE note ID"
// @Success     200 {object} models.SafeNote "SAFE note"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /safes/{id} [get]
func (h *SafeNoteHandler) GetSafeNoteByID(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	note, err := h.safeNoteService.GetSafeNoteByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"safe_note": note})
}

// UpdateSafeNote handles amending the terms of an outstanding SAFE.
// @Summary     Update SAFE note
// @Description Amend the cap, discount, or pro-rata rights of an outstanding SAFE
// @Tags        safes
// @Accept      json
// @Produce     json
// @Param       id path string true "SAFE note ID"
// @Param       request body UpdateSafeNoteRequest true "Terms to update"
// @Success     200 {object} models.SafeNote "SAFE note updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     409 {object} ErrorResponse "SAFE no longer outstanding"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /safes/{id} [put]
func (h *SafeNoteHandler) UpdateSafeNote(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSafeNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	note, err := h.safeNoteService.UpdateSafeNote(id, req.ValuationCap, req.DiscountRate, req.HasProRataRights)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"safe_note": note})
}

// CancelSafeNote handles cancelling an outstanding SAFE.
// @Summary     Cancel SAFE note
// @Description Terminate an outstanding SAFE without conversion
// @Tags        safes
// @Produce     json
// @Param       id path string true "SAFE note ID"
// @Success     200 {object} models.SafeNote "SAFE note cancelled"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     409 {object} ErrorResponse "SAFE no longer outstanding"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /safes/{id}/cancel [post]
func (h *SafeNoteHandler) CancelSafeNote(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	note, err := h.safeNoteService.CancelSafeNote(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"safe_note": note})
}

// DeleteSafeNote handles removing a SAFE note record.
// @Summary     Delete SAFE note
// @Description Remove a SAFE note record
// @Tags        safes
// @Produce     json
// @Param       id path string true "SAFE note ID"
// @Success     204 "SAFE note deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /safes/{id} [delete]
func (h *SafeNoteHandler) DeleteSafeNote(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.safeNoteService.DeleteSafeNote(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ResolveConversions handles projecting SAFE conversions at a round price.
// @Summary     Resolve SAFE conversions
// @Description Project the best-for-investor conversion of every outstanding SAFE at a round price
// @Tags        safes
// @Accept      json
// @Produce     json
// @Param       request body ResolveConversionsRequest true "Round price"
// @Success     200 {object} modeling.SafeConversionSummary "Projected conversions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     422 {object} ErrorResponse "No outstanding SAFE notes"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /safes/conversions [post]
func (h *SafeNoteHandler) ResolveConversions(c *gin.Context) {
	var req ResolveConversionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	summary, err := h.scenarioService.ResolveConversions(req.RoundPricePerShare)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
