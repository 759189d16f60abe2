package modeling

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "captable/internal/errors"
)

func TestResolveSafeConversions(t *testing.T) {
	t.Run("cap_beats_round_and_discount", func(t *testing.T) {
		// cap price 5,000,000 / 10,000,000 = 0.50 -> 200,000 shares
		// round price 1.00               -> 100,000 shares
		// discount price 0.80            -> 125,000 shares
		note := SafeTerms{
			ID:               "safe-1",
			ShareholderID:    "sh-1",
			InvestmentAmount: dec("100000"),
			ValuationCap:     nullDec("5000000"),
			DiscountRate:     nullDec("0.20"),
			Type:             SafeTypePostMoney,
		}

		summary, err := ResolveSafeConversions(dec("1.00"), 10_000_000, []SafeTerms{note})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		conv := summary.Conversions[0]
		if conv.Method != MethodCap {
			t.Errorf("expected method cap, got %s", conv.Method)
		}
		if conv.Shares != 200_000 {
			t.Errorf("expected 200000 shares, got %d", conv.Shares)
		}
		assertDecimalEqual(t, "0.5", conv.EffectivePrice)
	})

	t.Run("discount_wins_exact_tie_with_cap", func(t *testing.T) {
		// cap price 8,000,000 / 10,000,000 = 0.80 = discount price 1.00 * (1 - 0.20):
		// both candidates yield exactly 125,000 shares. The discount candidate is
		// evaluated last and must win the tie, reproducibly.
		note := SafeTerms{
			ID:               "safe-1",
			ShareholderID:    "sh-1",
			InvestmentAmount: dec("100000"),
			ValuationCap:     nullDec("8000000"),
			DiscountRate:     nullDec("0.20"),
			Type:             SafeTypePostMoney,
		}

		for i := 0; i < 5; i++ {
			summary, err := ResolveSafeConversions(dec("1.00"), 10_000_000, []SafeTerms{note})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			conv := summary.Conversions[0]
			if conv.Method != MethodDiscount {
				t.Fatalf("run %d: expected method discount on tie, got %s", i, conv.Method)
			}
			if conv.Shares != 125_000 {
				t.Fatalf("run %d: expected 125000 shares, got %d", i, conv.Shares)
			}
		}
	})

	t.Run("uncapped_note_converts_at_round_price", func(t *testing.T) {
		note := SafeTerms{
			ID:               "safe-1",
			ShareholderID:    "sh-1",
			InvestmentAmount: dec("250000"),
			Type:             SafeTypeUncapped,
		}

		summary, err := ResolveSafeConversions(dec("2.50"), 8_000_000, []SafeTerms{note})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		conv := summary.Conversions[0]
		if conv.Method != MethodRoundPrice {
			t.Errorf("expected method round_price, got %s", conv.Method)
		}
		if conv.Shares != 100_000 {
			t.Errorf("expected 100000 shares, got %d", conv.Shares)
		}
		assertDecimalEqual(t, "2.5", conv.EffectivePrice)
	})

	t.Run("discount_only_note", func(t *testing.T) {
		note := SafeTerms{
			ID:               "safe-1",
			ShareholderID:    "sh-1",
			InvestmentAmount: dec("90000"),
			DiscountRate:     nullDec("0.10"),
			Type:             SafeTypePreMoney,
		}

		summary, err := ResolveSafeConversions(dec("1.00"), 5_000_000, []SafeTerms{note})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		conv := summary.Conversions[0]
		if conv.Method != MethodDiscount {
			t.Errorf("expected method discount, got %s", conv.Method)
		}
		if conv.Shares != 100_000 {
			t.Errorf("expected 100000 shares, got %d", conv.Shares)
		}
	})

	t.Run("aggregates_across_notes", func(t *testing.T) {
		notes := []SafeTerms{
			{ID: "safe-1", ShareholderID: "sh-1", InvestmentAmount: dec("100000"), ValuationCap: nullDec("5000000")},
			{ID: "safe-2", ShareholderID: "sh-2", InvestmentAmount: dec("50000")},
		}

		summary, err := ResolveSafeConversions(dec("1.00"), 10_000_000, notes)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 200,000 (cap at 0.50) + 50,000 (round price)
		if summary.TotalShares != 250_000 {
			t.Errorf("expected 250000 total shares, got %d", summary.TotalShares)
		}
		assertDecimalEqual(t, "150000", summary.TotalInvestment)
		assertDecimalEqual(t, "0.6", summary.AverageEffectivePrice)

		// 250,000 / 10,250,000 * 100
		expected := decimal.NewFromInt(250_000).
			Div(decimal.NewFromInt(10_250_000)).
			Mul(decimal.NewFromInt(100))
		if !summary.TotalOwnershipPercent.Equal(expected) {
			t.Errorf("expected ownership %s, got %s", expected, summary.TotalOwnershipPercent)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		notes := []SafeTerms{
			{ID: "safe-1", ShareholderID: "sh-1", InvestmentAmount: dec("123456.78"), ValuationCap: nullDec("7000000"), DiscountRate: nullDec("0.15")},
		}

		first, err := ResolveSafeConversions(dec("1.37"), 9_876_543, notes)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := ResolveSafeConversions(dec("1.37"), 9_876_543, notes)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Error("identical inputs produced different conversions")
		}
	})

	t.Run("rejects_non_positive_round_price", func(t *testing.T) {
		notes := []SafeTerms{{ID: "safe-1", InvestmentAmount: dec("100000")}}
		_, err := ResolveSafeConversions(dec("0"), 10_000_000, notes)
		assertSentinel(t, err, apperrors.ErrInvalidScenarioInput)
	})

	t.Run("rejects_empty_note_set", func(t *testing.T) {
		_, err := ResolveSafeConversions(dec("1.00"), 10_000_000, nil)
		assertSentinel(t, err, apperrors.ErrEmptyInputSet)
	})

	t.Run("rejects_non_positive_investment", func(t *testing.T) {
		notes := []SafeTerms{{ID: "safe-1", InvestmentAmount: dec("0")}}
		_, err := ResolveSafeConversions(dec("1.00"), 10_000_000, notes)
		assertSentinel(t, err, apperrors.ErrInvalidScenarioInput)
	})

	t.Run("rejects_discount_of_one_or_more", func(t *testing.T) {
		notes := []SafeTerms{{ID: "safe-1", InvestmentAmount: dec("100000"), DiscountRate: nullDec("1")}}
		_, err := ResolveSafeConversions(dec("1.00"), 10_000_000, notes)
		assertSentinel(t, err, apperrors.ErrInvalidScenarioInput)
	})
}
