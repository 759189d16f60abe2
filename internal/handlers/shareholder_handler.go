package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "captable/internal/errors"
	"captable/internal/models"
	"captable/internal/pagination"
	"captable/internal/services"
)

// ShareholderHandler handles shareholder and holding requests.
type ShareholderHandler struct {
	shareholderService services.ShareholderServicer
}

// NewShareholderHandler creates a new ShareholderHandler.
func NewShareholderHandler(shareholderService services.ShareholderServicer) *ShareholderHandler {
	return &ShareholderHandler{shareholderService: shareholderService}
}

// CreateShareholderRequest represents the request payload for registering a shareholder.
type CreateShareholderRequest struct {
	Name  string            `json:"name" binding:"required,min=1,max=200"`
	Email string            `json:"email" binding:"omitempty,email"`
	Type  models.HolderType `json:"type" binding:"required,holder_type"`
}

// UpdateShareholderRequest represents the request payload for updating a shareholder.
type UpdateShareholderRequest struct {
	Name  string            `json:"name" binding:"omitempty,min=1,max=200"`
	Email string            `json:"email" binding:"omitempty,email"`
	Type  models.HolderType `json:"type" binding:"omitempty,holder_type"`
}

// AddHoldingRequest represents the request payload for issuing shares.
type AddHoldingRequest struct {
	ShareClass        models.ShareClass `json:"share_class" binding:"required,share_class"`
	ShareCount        int64             `json:"share_count" binding:"gte=0"`
	IssueDate         *time.Time        `json:"issue_date,omitempty"`
	CertificateNumber string            `json:"certificate_number" binding:"max=50"`
}

// UpdateHoldingRequest represents the request payload for correcting a holding.
type UpdateHoldingRequest struct {
	ShareClass models.ShareClass `json:"share_class" binding:"omitempty,share_class"`
	ShareCount int64             `json:"share_count" binding:"gte=0"`
}

// CreateShareholder handles registering a new shareholder.
// @Summary     Create shareholder
// @Description Register a new shareholder on the cap table
// @Tags        shareholders
// @Accept      json
// @Produce     json
// @Param       request body CreateShareholderRequest true "Shareholder details"
// @Success     201 {object} models.Shareholder "Shareholder created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /shareholders [post]
func (h *ShareholderHandler) CreateShareholder(c *gin.Context) {
	var req CreateShareholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	shareholder, err := h.shareholderService.CreateShareholder(req.Name, req.Email, req.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"shareholder": shareholder})
}

// GetShareholders handles listing shareholders.
// @Summary     List shareholders
// @Description List shareholders, most recently created first
// @Tags        shareholders
// @Produce     json
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Shareholder] "Shareholders"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /shareholders [get]
func (h *ShareholderHandler) GetShareholders(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	resp, err := h.shareholderService.GetShareholders(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetShareholderByID handles fetching a single shareholder.
// @Summary     Get shareholder
// @Description Get a shareholder with holdings and SAFE notes
// @Tags        shareholders
// @Produce     json
// @Param       id path string true "Shareholder ID"
// @Success     200 {object} models.Shareholder "Shareholder"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /shareholders/{id} [get]
func (h *ShareholderHandler) GetShareholderByID(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	shareholder, err := h.shareholderService.GetShareholderByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shareholder": shareholder})
}

// UpdateShareholder handles updating shareholder display fields.
// @Summary     Update shareholder
// @Description Update a shareholder's name, email, or type
// @Tags        shareholders
// @Accept      json
// @Produce     json
// @Param       id path string true "Shareholder ID"
// @Param       request body UpdateShareholderRequest true "Fields to update"
// @Success     200 {object} models.Shareholder "Shareholder updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /shareholders/{id} [put]
func (h *ShareholderHandler) UpdateShareholder(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateShareholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	shareholder, err := h.shareholderService.UpdateShareholder(id, req.Name, req.Email, req.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shareholder": shareholder})
}

// DeleteShareholder handles removing a shareholder without equity.
// @Summary     Delete shareholder
// @Description Delete a shareholder that holds no shares or SAFE notes
// @Tags        shareholders
// @Produce     json
// @Param       id path string true "Shareholder ID"
// @Success     204 "Shareholder deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     409 {object} ErrorResponse "Shareholder holds equity"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /shareholders/{id} [delete]
func (h *ShareholderHandler) DeleteShareholder(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.shareholderService.DeleteShareholder(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddHolding handles issuing a block of shares.
// @Summary     Add holding
// @Description Issue a block of shares to a shareholder
// @Tags        shareholders
// @Accept      json
// @Produce     json
// @Param       id path string true "Shareholder ID"
// @Param       request body AddHoldingRequest true "Holding details"
// @Success     201 {object} models.Holding "Holding created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Shareholder not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /shareholders/{id}/holdings [post]
func (h *ShareholderHandler) AddHolding(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	holding, err := h.shareholderService.AddHolding(id, req.ShareClass, req.ShareCount, req.IssueDate, req.CertificateNumber)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"holding": holding})
}

// GetShareholderHoldings handles listing one shareholder's holdings.
// @Summary     List holdings
// @Description List a shareholder's holdings
// @Tags        shareholders
// @Produce     json
// @Param       id path string true "Shareholder ID"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Holding] "Holdings"
// @Failure     404 {object} ErrorResponse "Shareholder not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /shareholders/{id}/holdings [get]
func (h *ShareholderHandler) GetShareholderHoldings(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	resp, err := h.shareholderService.GetShareholderHoldings(id, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateHolding handles correcting a holding.
// @Summary     Update holding
// @Description Correct a holding's share class or count
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       id path string true "Holding ID"
// @Param       request body UpdateHoldingRequest true "Fields to update"
// @Success     200 {object} models.Holding "Holding updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/{id} [put]
func (h *ShareholderHandler) UpdateHolding(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	holding, err := h.shareholderService.UpdateHolding(id, req.ShareClass, req.ShareCount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holding": holding})
}

// DeleteHolding handles removing a holding.
// @Summary     Delete holding
// @Description Remove an issued block of shares
// @Tags        holdings
// @Produce     json
// @Param       id path string true "Holding ID"
// @Success     204 "Holding deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/{id} [delete]
func (h *ShareholderHandler) DeleteHolding(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.shareholderService.DeleteHolding(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
