package models

import "github.com/shopspring/decimal"

// ScenarioType identifies which calculator a saved scenario drives.
type ScenarioType string

const (
	ScenarioTypeFundingRound        ScenarioType = "funding_round"
	ScenarioTypeExit                ScenarioType = "exit"
	ScenarioTypeOptionPoolExpansion ScenarioType = "option_pool_expansion"
	ScenarioTypeCustom              ScenarioType = "custom"
)

// ExitType qualifies an exit scenario for presentation purposes.
type ExitType string

const (
	ExitTypeAcquisition ExitType = "acquisition"
	ExitTypeIPO         ExitType = "ipo"
	ExitTypeSecondary   ExitType = "secondary"
)

// Scenario is a saved set of modeling parameters. It carries no computed
// state: results are produced on demand by re-running the calculators against
// a fresh cap table snapshot and are never persisted.
type Scenario struct {
	Base
	Name                 string              `gorm:"not null" json:"name"`
	Description          string              `json:"description,omitempty"`
	Type                 ScenarioType        `gorm:"not null" json:"type"`
	FundingAmount        decimal.NullDecimal `gorm:"type:decimal(20,2)" json:"funding_amount,omitempty"`
	PreMoneyValuation    decimal.NullDecimal `gorm:"type:decimal(20,2)" json:"pre_money_valuation,omitempty"`
	ExitValue            decimal.NullDecimal `gorm:"type:decimal(20,2)" json:"exit_value,omitempty"`
	ExitType             ExitType            `json:"exit_type,omitempty"`
	OptionPoolPercentage decimal.NullDecimal `gorm:"type:decimal(7,6)" json:"option_pool_percentage,omitempty"`
}
