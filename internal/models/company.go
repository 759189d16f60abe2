package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company is the single administrative profile for the cap table. It carries
// the reference price per share used to express outstanding SAFE notes on an
// as-converted basis, and the size of the option pool.
type Company struct {
	Base
	Name              string          `gorm:"not null" json:"name"`
	IncorporationDate *time.Time      `json:"incorporation_date,omitempty"`
	PricePerShare     decimal.Decimal `gorm:"type:decimal(20,6);not null" json:"price_per_share"`
	OptionPoolTotal   int64           `gorm:"type:bigint;not null;default:0" json:"option_pool_total"`
	OptionPoolGranted int64           `gorm:"type:bigint;not null;default:0" json:"option_pool_granted"`
}
