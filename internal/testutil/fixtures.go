package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"captable/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Dec parses a decimal literal, failing the test on malformed input.
func Dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal literal %q: %v", s, err)
	}
	return d
}

// NullDec wraps a decimal literal in a valid NullDecimal.
func NullDec(t *testing.T, s string) decimal.NullDecimal {
	t.Helper()
	return decimal.NullDecimal{Decimal: Dec(t, s), Valid: true}
}

// CreateTestCompany creates the company profile with the given reference
// price and option pool size.
func CreateTestCompany(t *testing.T, db *gorm.DB, pricePerShare string, poolTotal int64) *models.Company {
	t.Helper()

	company := &models.Company{
		Name:            fmt.Sprintf("Test Company %d", nextID()),
		PricePerShare:   Dec(t, pricePerShare),
		OptionPoolTotal: poolTotal,
	}
	if err := db.Create(company).Error; err != nil {
		t.Fatalf("failed to create test company: %v", err)
	}
	return company
}

// CreateTestShareholder creates a shareholder with a unique name.
func CreateTestShareholder(t *testing.T, db *gorm.DB) *models.Shareholder {
	t.Helper()
	return CreateTestShareholderWithName(t, db, fmt.Sprintf("Shareholder %d", nextID()))
}

// CreateTestShareholderWithName creates a shareholder with the given name.
func CreateTestShareholderWithName(t *testing.T, db *gorm.DB, name string) *models.Shareholder {
	t.Helper()

	shareholder := &models.Shareholder{
		Name:  name,
		Email: fmt.Sprintf("holder%d@test.com", nextID()),
		Type:  models.HolderTypeInvestor,
	}
	if err := db.Create(shareholder).Error; err != nil {
		t.Fatalf("failed to create test shareholder: %v", err)
	}
	return shareholder
}

// CreateTestHolding issues shares to a shareholder.
func CreateTestHolding(t *testing.T, db *gorm.DB, shareholderID string, shareCount int64) *models.Holding {
	t.Helper()

	holding := &models.Holding{
		ShareholderID: shareholderID,
		ShareClass:    models.ShareClassCommon,
		ShareCount:    shareCount,
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return holding
}

// CreateTestSafeNote creates an outstanding SAFE note. Pass empty strings to
// omit the cap or discount.
func CreateTestSafeNote(t *testing.T, db *gorm.DB, shareholderID, investment, cap, discount string) *models.SafeNote {
	t.Helper()

	note := &models.SafeNote{
		ShareholderID:    shareholderID,
		InvestmentAmount: Dec(t, investment),
		Type:             models.SafeTypePostMoney,
		Status:           models.SafeStatusOutstanding,
	}
	if cap != "" {
		note.ValuationCap = NullDec(t, cap)
	}
	if discount != "" {
		note.DiscountRate = NullDec(t, discount)
	}
	if err := db.Create(note).Error; err != nil {
		t.Fatalf("failed to create test SAFE note: %v", err)
	}
	return note
}

// CreateTestScenario creates a saved funding round scenario.
func CreateTestScenario(t *testing.T, db *gorm.DB, funding, preMoney string) *models.Scenario {
	t.Helper()

	scenario := &models.Scenario{
		Name:              fmt.Sprintf("Scenario %d", nextID()),
		Type:              models.ScenarioTypeFundingRound,
		FundingAmount:     NullDec(t, funding),
		PreMoneyValuation: NullDec(t, preMoney),
	}
	if err := db.Create(scenario).Error; err != nil {
		t.Fatalf("failed to create test scenario: %v", err)
	}
	return scenario
}
