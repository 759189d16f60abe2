package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "captable/internal/errors"
	"captable/internal/services"
)

// CapTableHandler handles company and cap table summary requests.
type CapTableHandler struct {
	capTableService services.CapTableServicer
}

// NewCapTableHandler creates a new CapTableHandler.
func NewCapTableHandler(capTableService services.CapTableServicer) *CapTableHandler {
	return &CapTableHandler{capTableService: capTableService}
}

// UpdateCompanyRequest represents the request payload for updating the
// company record.
type UpdateCompanyRequest struct {
	Name              string          `json:"name" binding:"required,min=1,max=255"`
	PricePerShare     decimal.Decimal `json:"price_per_share" binding:"required"`
	OptionPoolTotal   int64           `json:"option_pool_total" binding:"gte=0"`
	OptionPoolGranted int64           `json:"option_pool_granted" binding:"gte=0"`
	IncorporationDate *time.Time      `json:"incorporation_date,omitempty"`
}

// GetCompany handles fetching the company record.
// @Summary     Get company
// @Description Get the company record backing the cap table
// @Tags        captable
// @Produce     json
// @Success     200 {object} models.Company "Company"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /captable/company [get]
func (h *CapTableHandler) GetCompany(c *gin.Context) {
	company, err := h.capTableService.GetCompany()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": company})
}

// UpdateCompany handles updating the company record.
// @Summary     Update company
// @Description Update the company name, reference price and option pool
// @Tags        captable
// @Accept      json
// @Produce     json
// @Param       request body UpdateCompanyRequest true "Company details"
// @Success     200 {object} models.Company "Company updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /captable/company [put]
func (h *CapTableHandler) UpdateCompany(c *gin.Context) {
	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	company, err := h.capTableService.UpdateCompany(
		req.Name, req.PricePerShare, req.OptionPoolTotal, req.OptionPoolGranted, req.IncorporationDate,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": company})
}

// GetSummary handles deriving the current cap table summary.
// @Summary     Get cap table summary
// @Description Derive the current cap table summary from stored records
// @Tags        captable
// @Produce     json
// @Success     200 {object} modeling.CapTableSummary "Cap table summary"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /captable/summary [get]
func (h *CapTableHandler) GetSummary(c *gin.Context) {
	summary, err := h.capTableService.GetCapTableSummary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
