package modeling

import (
	"testing"

	"github.com/shopspring/decimal"

	apperrors "captable/internal/errors"
)

func TestDistributeExitProceeds(t *testing.T) {
	t.Run("proportional_split", func(t *testing.T) {
		snap := snapshot(
			position("sh-1", "Founder", 7_500_000),
			position("sh-2", "Angel", 2_500_000),
		)

		dist, err := DistributeExitProceeds(snap, dec("50000000"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimalEqual(t, "0.75", dist.Shareholders[0].OwnershipPercent)
		assertDecimalEqual(t, "37500000", dist.Shareholders[0].ProceedsAmount)
		assertDecimalEqual(t, "12500000", dist.Shareholders[1].ProceedsAmount)
	})

	t.Run("proceeds_conserve_exit_value", func(t *testing.T) {
		// Share counts that do not divide evenly, to exercise rounding.
		snap := snapshot(
			position("sh-1", "Founder A", 3_333_333),
			position("sh-2", "Founder B", 3_333_333),
			position("sh-3", "Angel", 3_333_334),
		)
		exitValue := dec("50000000")

		dist, err := DistributeExitProceeds(snap, exitValue)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		total := decimal.Zero
		for _, row := range dist.Shareholders {
			total = total.Add(row.ProceedsAmount)
		}

		epsilon := dec("0.01")
		if total.Sub(exitValue).Abs().GreaterThan(epsilon) {
			t.Errorf("proceeds sum %s deviates from exit value %s by more than %s",
				total, exitValue, epsilon)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		snap := snapshot(position("sh-1", "Founder", 1_234_567), position("sh-2", "Angel", 890_123))

		first, err := DistributeExitProceeds(snap, dec("98765432.10"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := DistributeExitProceeds(snap, dec("98765432.10"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range first.Shareholders {
			if !first.Shareholders[i].ProceedsAmount.Equal(second.Shareholders[i].ProceedsAmount) {
				t.Fatal("identical inputs produced different proceeds")
			}
		}
	})

	t.Run("rejects_non_positive_exit_value", func(t *testing.T) {
		snap := snapshot(position("sh-1", "Founder", 1_000_000))

		_, err := DistributeExitProceeds(snap, dec("0"))
		assertSentinel(t, err, apperrors.ErrInvalidScenarioInput)

		_, err = DistributeExitProceeds(snap, dec("-1000"))
		assertSentinel(t, err, apperrors.ErrInvalidScenarioInput)
	})

	t.Run("rejects_empty_cap_table", func(t *testing.T) {
		_, err := DistributeExitProceeds(CapTableSummary{}, dec("1000000"))
		assertSentinel(t, err, apperrors.ErrInvalidScenarioInput)
	})
}
