package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "captable/internal/errors"
	"captable/internal/modeling"
	"captable/internal/models"
	"captable/internal/pagination"
)

// scenarioService persists scenario parameter records and evaluates them
// on demand against a fresh snapshot. Results are never stored.
type scenarioService struct {
	db       *gorm.DB
	capTable CapTableServicer
}

// NewScenarioService creates a new ScenarioServicer.
func NewScenarioService(db *gorm.DB, capTable CapTableServicer) ScenarioServicer {
	return &scenarioService{db: db, capTable: capTable}
}

// validateScenario rejects unknown types and missing required parameters
// before anything is stored or computed.
func validateScenario(scenarioType models.ScenarioType, params ScenarioParams) error {
	switch scenarioType {
	case models.ScenarioTypeFundingRound:
		if !params.FundingAmount.Valid || !params.PreMoneyValuation.Valid {
			return apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "Funding round requires funding_amount and pre_money_valuation")
		}
	case models.ScenarioTypeExit:
		if !params.ExitValue.Valid {
			return apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "Exit scenario requires exit_value")
		}
	case models.ScenarioTypeOptionPoolExpansion, models.ScenarioTypeCustom:
		if !params.OptionPoolPercentage.Valid {
			return apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "Pool adjustment requires option_pool_percentage")
		}
	default:
		return apperrors.WithMessage(apperrors.ErrUnsupportedScenarioType, "Unsupported scenario type: "+string(scenarioType))
	}
	return nil
}

// CreateScenario saves a named scenario parameter record.
func (s *scenarioService) CreateScenario(name, description string, scenarioType models.ScenarioType, params ScenarioParams) (*models.Scenario, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Scenario name is required")
	}
	if err := validateScenario(scenarioType, params); err != nil {
		return nil, err
	}

	scenario := &models.Scenario{
		Name:                 name,
		Description:          description,
		Type:                 scenarioType,
		FundingAmount:        params.FundingAmount,
		PreMoneyValuation:    params.PreMoneyValuation,
		ExitValue:            params.ExitValue,
		ExitType:             params.ExitType,
		OptionPoolPercentage: params.OptionPoolPercentage,
	}
	if err := s.db.Create(scenario).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return scenario, nil
}

// GetScenarios lists saved scenarios, most recently created first.
func (s *scenarioService) GetScenarios(page pagination.PageRequest) (*pagination.PageResponse[models.Scenario], error) {
	page.Defaults()

	var total int64
	if err := s.db.Model(&models.Scenario{}).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var scenarios []models.Scenario
	if err := s.db.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&scenarios).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(scenarios, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetScenarioByID returns a saved scenario.
func (s *scenarioService) GetScenarioByID(scenarioID string) (*models.Scenario, error) {
	var scenario models.Scenario
	if err := s.db.First(&scenario, "id = ?", scenarioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScenarioNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &scenario, nil
}

// UpdateScenario replaces a scenario's parameters, keeping its type.
func (s *scenarioService) UpdateScenario(scenarioID, name, description string, params ScenarioParams) (*models.Scenario, error) {
	scenario, err := s.GetScenarioByID(scenarioID)
	if err != nil {
		return nil, err
	}
	if err := validateScenario(scenario.Type, params); err != nil {
		return nil, err
	}

	if name != "" {
		scenario.Name = name
	}
	if description != "" {
		scenario.Description = description
	}
	scenario.FundingAmount = params.FundingAmount
	scenario.PreMoneyValuation = params.PreMoneyValuation
	scenario.ExitValue = params.ExitValue
	scenario.ExitType = params.ExitType
	scenario.OptionPoolPercentage = params.OptionPoolPercentage

	if err := s.db.Save(scenario).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return scenario, nil
}

// DeleteScenario removes a saved scenario. Nothing else references it.
func (s *scenarioService) DeleteScenario(scenarioID string) error {
	scenario, err := s.GetScenarioByID(scenarioID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(scenario).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// EvaluateScenario runs a saved scenario against the current cap table.
func (s *scenarioService) EvaluateScenario(scenarioID string) (*modeling.ScenarioResult, error) {
	scenario, err := s.GetScenarioByID(scenarioID)
	if err != nil {
		return nil, err
	}
	return s.Evaluate(scenario.Type, ScenarioParams{
		FundingAmount:        scenario.FundingAmount,
		PreMoneyValuation:    scenario.PreMoneyValuation,
		ExitValue:            scenario.ExitValue,
		ExitType:             scenario.ExitType,
		OptionPoolPercentage: scenario.OptionPoolPercentage,
	})
}

// Evaluate runs an ad-hoc scenario against a fresh snapshot. Calculator
// errors pass through unchanged so the boundary can render them faithfully.
func (s *scenarioService) Evaluate(scenarioType models.ScenarioType, params ScenarioParams) (*modeling.ScenarioResult, error) {
	snapshot, err := s.capTable.GetCapTableSummary()
	if err != nil {
		return nil, err
	}

	return modeling.RunScenario(snapshot, modeling.ScenarioRequest{
		Type:                 modeling.ScenarioType(scenarioType),
		FundingAmount:        params.FundingAmount,
		PreMoneyValuation:    params.PreMoneyValuation,
		ExitValue:            params.ExitValue,
		ExitType:             string(params.ExitType),
		OptionPoolPercentage: params.OptionPoolPercentage,
	})
}

// ResolveConversions projects every outstanding SAFE at the given round
// price. The fully diluted base excludes the notes being converted so their
// projected ownership is measured against the pre-conversion share count.
func (s *scenarioService) ResolveConversions(roundPricePerShare decimal.Decimal) (*modeling.SafeConversionSummary, error) {
	snapshot, err := s.capTable.GetCapTableSummary()
	if err != nil {
		return nil, err
	}

	fullyDiluted := snapshot.TotalOutstandingShares
	if company, err := s.capTable.GetCompany(); err == nil {
		fullyDiluted += company.OptionPoolTotal
	} else if !errors.Is(err, apperrors.ErrCompanyNotFound) {
		return nil, err
	}

	notes, err := s.capTable.ListOutstandingSafes()
	if err != nil {
		return nil, err
	}

	return modeling.ResolveSafeConversions(roundPricePerShare, fullyDiluted, notes)
}
