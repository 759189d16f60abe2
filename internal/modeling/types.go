// Package modeling is the cap-table computation core: dilution, SAFE
// conversion, pro-rata participation, and exit distribution. Every function
// is a pure, deterministic computation over an immutable snapshot — no
// storage, no transport, no shared state. All money and rate arithmetic uses
// fixed-precision decimals; share counts are integers.
package modeling

import "github.com/shopspring/decimal"

// SafeType identifies the flavor of a SAFE instrument.
type SafeType string

const (
	SafeTypePostMoney SafeType = "post_money"
	SafeTypePreMoney  SafeType = "pre_money"
	SafeTypeMFN       SafeType = "mfn"
	SafeTypeUncapped  SafeType = "uncapped"
)

// ConversionMethod identifies which pricing method a SAFE converts under.
type ConversionMethod string

const (
	MethodRoundPrice ConversionMethod = "round_price"
	MethodCap        ConversionMethod = "cap"
	MethodDiscount   ConversionMethod = "discount"
)

// ScenarioType identifies which calculator a scenario request drives.
type ScenarioType string

const (
	ScenarioFundingRound        ScenarioType = "funding_round"
	ScenarioExit                ScenarioType = "exit"
	ScenarioOptionPoolExpansion ScenarioType = "option_pool_expansion"
	ScenarioCustom              ScenarioType = "custom"
)

// ShareholderPosition is one row of the cap table breakdown.
type ShareholderPosition struct {
	ShareholderID   string `json:"shareholder_id"`
	ShareholderName string `json:"shareholder_name"`
	Shares          int64  `json:"shares"`
}

// CapTableSummary is the immutable snapshot the calculators read. The
// provider guarantees that the breakdown sums to TotalOutstandingShares.
type CapTableSummary struct {
	TotalOutstandingShares   int64                 `json:"total_outstanding_shares"`
	TotalFullyDilutedShares  int64                 `json:"total_fully_diluted_shares"`
	TotalOptionPoolAvailable int64                 `json:"total_option_pool_available"`
	PricePerShare            decimal.Decimal       `json:"price_per_share"`
	Shareholders             []ShareholderPosition `json:"shareholders"`
}

// SafeTerms carries the conversion-relevant terms of one outstanding SAFE.
// ValuationCap and DiscountRate are optional; absence means the corresponding
// candidate method is not applicable, never that the value is zero.
type SafeTerms struct {
	ID               string              `json:"id"`
	ShareholderID    string              `json:"shareholder_id"`
	ShareholderName  string              `json:"shareholder_name,omitempty"`
	InvestmentAmount decimal.Decimal     `json:"investment_amount"`
	ValuationCap     decimal.NullDecimal `json:"valuation_cap,omitempty"`
	DiscountRate     decimal.NullDecimal `json:"discount_rate,omitempty"`
	Type             SafeType            `json:"type"`
	HasProRataRights bool                `json:"has_pro_rata_rights"`
}
