package services

import (
	"time"

	"github.com/shopspring/decimal"

	"captable/internal/modeling"
	"captable/internal/models"
	"captable/internal/pagination"
)

// ShareholderServicer defines the contract for shareholder and holding
// administration.
type ShareholderServicer interface {
	CreateShareholder(name, email string, holderType models.HolderType) (*models.Shareholder, error)
	GetShareholders(page pagination.PageRequest) (*pagination.PageResponse[models.Shareholder], error)
	GetShareholderByID(shareholderID string) (*models.Shareholder, error)
	UpdateShareholder(shareholderID, name, email string, holderType models.HolderType) (*models.Shareholder, error)
	DeleteShareholder(shareholderID string) error
	AddHolding(shareholderID string, shareClass models.ShareClass, shareCount int64, issueDate *time.Time, certificateNumber string) (*models.Holding, error)
	GetShareholderHoldings(shareholderID string, page pagination.PageRequest) (*pagination.PageResponse[models.Holding], error)
	UpdateHolding(holdingID string, shareClass models.ShareClass, shareCount int64) (*models.Holding, error)
	DeleteHolding(holdingID string) error
}

// SafeNoteServicer defines the contract for SAFE note administration.
type SafeNoteServicer interface {
	CreateSafeNote(shareholderID string, investmentAmount decimal.Decimal, valuationCap, discountRate decimal.NullDecimal, safeType models.SafeType, hasProRataRights bool, signedDate *time.Time) (*models.SafeNote, error)
	GetSafeNotes(page pagination.PageRequest, status *models.SafeStatus) (*pagination.PageResponse[models.SafeNote], error)
	GetSafeNoteByID(safeNoteID string) (*models.SafeNote, error)
	UpdateSafeNote(safeNoteID string, valuationCap, discountRate decimal.NullDecimal, hasProRataRights *bool) (*models.SafeNote, error)
	CancelSafeNote(safeNoteID string) (*models.SafeNote, error)
	DeleteSafeNote(safeNoteID string) error
}

// CapTableServicer is the snapshot provider for the modeling core: it derives
// the current cap table summary and the outstanding SAFE set from stored
// records. Calculators only ever see the immutable snapshot it returns.
type CapTableServicer interface {
	GetCompany() (*models.Company, error)
	UpdateCompany(name string, pricePerShare decimal.Decimal, optionPoolTotal, optionPoolGranted int64, incorporationDate *time.Time) (*models.Company, error)
	GetCapTableSummary() (modeling.CapTableSummary, error)
	ListOutstandingSafes() ([]modeling.SafeTerms, error)
}

// ScenarioParams holds the optional, type-specific parameters of a scenario.
type ScenarioParams struct {
	FundingAmount        decimal.NullDecimal
	PreMoneyValuation    decimal.NullDecimal
	ExitValue            decimal.NullDecimal
	ExitType             models.ExitType
	OptionPoolPercentage decimal.NullDecimal
}

// ScenarioServicer defines the contract for saved scenarios and their
// on-demand evaluation against a fresh cap table snapshot.
type ScenarioServicer interface {
	CreateScenario(name, description string, scenarioType models.ScenarioType, params ScenarioParams) (*models.Scenario, error)
	GetScenarios(page pagination.PageRequest) (*pagination.PageResponse[models.Scenario], error)
	GetScenarioByID(scenarioID string) (*models.Scenario, error)
	UpdateScenario(scenarioID, name, description string, params ScenarioParams) (*models.Scenario, error)
	DeleteScenario(scenarioID string) error
	EvaluateScenario(scenarioID string) (*modeling.ScenarioResult, error)
	Evaluate(scenarioType models.ScenarioType, params ScenarioParams) (*modeling.ScenarioResult, error)
	ResolveConversions(roundPricePerShare decimal.Decimal) (*modeling.SafeConversionSummary, error)
}
