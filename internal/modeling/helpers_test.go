package modeling

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "captable/internal/errors"
)

// snapshot builds a CapTableSummary from (name, shares) pairs.
func snapshot(positions ...ShareholderPosition) CapTableSummary {
	var total int64
	for _, p := range positions {
		total += p.Shares
	}
	return CapTableSummary{
		TotalOutstandingShares:  total,
		TotalFullyDilutedShares: total,
		Shareholders:            positions,
	}
}

func position(id, name string, shares int64) ShareholderPosition {
	return ShareholderPosition{ShareholderID: id, ShareholderName: name, Shares: shares}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

// assertSentinel fails unless err matches the given AppError sentinel.
func assertSentinel(t *testing.T, err error, sentinel *apperrors.AppError) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %q, got nil", sentinel.Code)
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected error code %q, got %v", sentinel.Code, err)
	}
}

// assertDecimalEqual fails unless got equals want exactly.
func assertDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("expected %s, got %s", want, got.String())
	}
}
