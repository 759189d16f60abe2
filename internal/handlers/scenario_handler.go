package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "captable/internal/errors"
	"captable/internal/models"
	"captable/internal/pagination"
	"captable/internal/services"
)

// ScenarioHandler handles scenario requests.
type ScenarioHandler struct {
	scenarioService services.ScenarioServicer
}

// NewScenarioHandler creates a new ScenarioHandler.
func NewScenarioHandler(scenarioService services.ScenarioServicer) *ScenarioHandler {
	return &ScenarioHandler{scenarioService: scenarioService}
}

// CreateScenarioRequest represents the request payload for saving a scenario.
type CreateScenarioRequest struct {
	Name                 string              `json:"name" binding:"required,min=1,max=255"`
	Description          string              `json:"description,omitempty" binding:"max=1000"`
	Type                 models.ScenarioType `json:"type" binding:"required,scenario_type"`
	FundingAmount        decimal.NullDecimal `json:"funding_amount,omitempty"`
	PreMoneyValuation    decimal.NullDecimal `json:"pre_money_valuation,omitempty"`
	ExitValue            decimal.NullDecimal `json:"exit_value,omitempty"`
	ExitType             models.ExitType     `json:"exit_type,omitempty" binding:"omitempty,exit_type"`
	OptionPoolPercentage decimal.NullDecimal `json:"option_pool_percentage,omitempty"`
}

// UpdateScenarioRequest represents the request payload for updating a
// saved scenario. The scenario type is fixed at creation.
type UpdateScenarioRequest struct {
	Name                 string              `json:"name" binding:"required,min=1,max=255"`
	Description          string              `json:"description,omitempty" binding:"max=1000"`
	FundingAmount        decimal.NullDecimal `json:"funding_amount,omitempty"`
	PreMoneyValuation    decimal.NullDecimal `json:"pre_money_valuation,omitempty"`
	ExitValue            decimal.NullDecimal `json:"exit_value,omitempty"`
	ExitType             models.ExitType     `json:"exit_type,omitempty" binding:"omitempty,exit_type"`
	OptionPoolPercentage decimal.NullDecimal `json:"option_pool_percentage,omitempty"`
}

// EvaluateScenarioRequest represents the request payload for running an
// ad hoc scenario without saving it first.
type EvaluateScenarioRequest struct {
	Type                 models.ScenarioType `json:"type" binding:"required,scenario_type"`
	FundingAmount        decimal.NullDecimal `json:"funding_amount,omitempty"`
	PreMoneyValuation    decimal.NullDecimal `json:"pre_money_valuation,omitempty"`
	ExitValue            decimal.NullDecimal `json:"exit_value,omitempty"`
	ExitType             models.ExitType     `json:"exit_type,omitempty" binding:"omitempty,exit_type"`
	OptionPoolPercentage decimal.NullDecimal `json:"option_pool_percentage,omitempty"`
}

// CreateScenario handles saving a new scenario.
// @Summary     Create scenario
// @Description Save a what-if scenario for later evaluation
// @Tags        scenarios
// @Accept      json
// @Produce     json
// @Param       request body CreateScenarioRequest true "Scenario details"
// @Success     201 {object} models.Scenario "Scenario created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios [post]
func (h *ScenarioHandler) CreateScenario(c *gin.Context) {
	var req CreateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	scenario, err := h.scenarioService.CreateScenario(req.Name, req.Description, req.Type, services.ScenarioParams{
		FundingAmount:        req.FundingAmount,
		PreMoneyValuation:    req.PreMoneyValuation,
		ExitValue:            req.ExitValue,
		ExitType:             req.ExitType,
		OptionPoolPercentage: req.OptionPoolPercentage,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"scenario": scenario})
}

// GetScenarios handles listing saved scenarios.
// @Summary     List scenarios
// @Description List saved scenarios
// @Tags        scenarios
// @Produce     json
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Scenario] "Scenarios"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios [get]
func (h *ScenarioHandler) GetScenarios(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	resp, err := h.scenarioService.GetScenarios(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetScenarioByID handles fetching a single scenario.
// @Summary     Get scenario
// @Description Get a saved scenario
// @Tags        scenarios
// @Produce     json
// @Param       id path string true "Scenario ID"
// @Success     200 {object} models.Scenario "Scenario"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios/{id} [get]
func (h *ScenarioHandler) GetScenarioByID(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	scenario, err := h.scenarioService.GetScenarioByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scenario": scenario})
}

// UpdateScenario handles updating a saved scenario.
// @Summary     Update scenario
// @Description Update the name, description, or parameters of a saved scenario
// @Tags        scenarios
// @Accept      json
// @Produce     json
// @Param       id path string true "Scenario ID"
// @Param       request body UpdateScenarioRequest true "Scenario details"
// @Success     200 {object} models.Scenario "Scenario updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios/{id} [put]
func (h *ScenarioHandler) UpdateScenario(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	scenario, err := h.scenarioService.UpdateScenario(id, req.Name, req.Description, services.ScenarioParams{
		FundingAmount:        req.FundingAmount,
		PreMoneyValuation:    req.PreMoneyValuation,
		ExitValue:            req.ExitValue,
		ExitType:             req.ExitType,
		OptionPoolPercentage: req.OptionPoolPercentage,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scenario": scenario})
}

// DeleteScenario handles deleting a saved scenario.
// @Summary     Delete scenario
// @Description Delete a saved scenario
// @Tags        scenarios
// @Produce     json
// @Param       id path string true "Scenario ID"
// @Success     204 "Scenario deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios/{id} [delete]
func (h *ScenarioHandler) DeleteScenario(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.scenarioService.DeleteScenario(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// EvaluateScenarioByID handles evaluating a saved scenario.
// @Summary     Evaluate saved scenario
// @Description Evaluate a saved scenario against the current cap table
// @Tags        scenarios
// @Produce     json
// @Param       id path string true "Scenario ID"
// @Success     200 {object} modeling.ScenarioResult "Scenario result"
// @Failure     400 {object} ErrorResponse "Invalid scenario parameters"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     422 {object} ErrorResponse "Cap table is empty"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios/{id}/evaluate [post]
func (h *ScenarioHandler) EvaluateScenarioByID(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.scenarioService.EvaluateScenario(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// EvaluateScenario handles evaluating an ad hoc scenario.
// @Summary     Evaluate ad hoc scenario
// @Description Evaluate a scenario against the current cap table without saving it
// @Tags        scenarios
// @Accept      json
// @Produce     json
// @Param       request body EvaluateScenarioRequest true "Scenario parameters"
// @Success     200 {object} modeling.ScenarioResult "Scenario result"
// @Failure     400 {object} ErrorResponse "Invalid scenario parameters"
// @Failure     422 {object} ErrorResponse "Cap table is empty"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios/evaluate [post]
func (h *ScenarioHandler) EvaluateScenario(c *gin.Context) {
	var req EvaluateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.scenarioService.Evaluate(req.Type, services.ScenarioParams{
		FundingAmount:        req.FundingAmount,
		PreMoneyValuation:    req.PreMoneyValuation,
		ExitValue:            req.ExitValue,
		ExitType:             req.ExitType,
		OptionPoolPercentage: req.OptionPoolPercentage,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
