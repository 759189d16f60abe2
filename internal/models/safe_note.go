package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SafeType identifies the flavor of a SAFE instrument.
type SafeType string

const (
	SafeTypePostMoney SafeType = "post_money"
	SafeTypePreMoney  SafeType = "pre_money"
	SafeTypeMFN       SafeType = "mfn"
	SafeTypeUncapped  SafeType = "uncapped"
)

// SafeStatus tracks the lifecycle of a SAFE note. Scenario evaluation never
// changes status; conversion here is a projection, not a state transition.
type SafeStatus string

const (
	SafeStatusOutstanding SafeStatus = "outstanding"
	SafeStatusConverted   SafeStatus = "converted"
	SafeStatusCancelled   SafeStatus = "cancelled"
)

// SafeNote represents a Simple Agreement for Future Equity held against the
// company. ValuationCap and DiscountRate are optional terms; a note may carry
// either, both, or neither.
type SafeNote struct {
	Base
	ShareholderID    string              `gorm:"type:uuid;not null;index" json:"shareholder_id"`
	InvestmentAmount decimal.Decimal     `gorm:"type:decimal(20,2);not null" json:"investment_amount"`
	ValuationCap     decimal.NullDecimal `gorm:"type:decimal(20,2)" json:"valuation_cap,omitempty"`
	DiscountRate     decimal.NullDecimal `gorm:"type:decimal(7,6)" json:"discount_rate,omitempty"`
	Type             SafeType            `gorm:"not null;default:'post_money'" json:"type"`
	HasProRataRights bool                `gorm:"not null;default:false" json:"has_pro_rata_rights"`
	Status           SafeStatus          `gorm:"not null;default:'outstanding'" json:"status"`
	SignedDate       *time.Time          `json:"signed_date,omitempty"`

	// Relationships
	Shareholder Shareholder `gorm:"foreignKey:ShareholderID" json:"shareholder,omitempty"`
}
