package modeling

import (
	"github.com/shopspring/decimal"

	apperrors "captable/internal/errors"
)

// ProceedsRow is one shareholder's slice of exit proceeds.
type ProceedsRow struct {
	ShareholderID    string          `json:"shareholder_id"`
	ShareholderName  string          `json:"shareholder_name"`
	Shares           int64           `json:"shares"`
	OwnershipPercent decimal.Decimal `json:"ownership_percent"`
	ProceedsAmount   decimal.Decimal `json:"proceeds_amount"`
}

// ExitDistribution is the outcome of distributing an exit value across the
// cap table.
type ExitDistribution struct {
	ExitValue    decimal.Decimal `json:"exit_value"`
	Shareholders []ProceedsRow   `json:"shareholders"`
}

// DistributeExitProceeds splits an exit value across shareholders in
// proportion to ownership. The distribution is plain pro-rata: liquidation
// preference tiers are not modeled. The sum of all proceeds equals the exit
// value to within rounding.
func DistributeExitProceeds(snap CapTableSummary, exitValue decimal.Decimal) (*ExitDistribution, error) {
	if !exitValue.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "Exit value must be positive")
	}
	if snap.TotalOutstandingShares <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "Cap table has no outstanding shares")
	}

	outstanding := decimal.NewFromInt(snap.TotalOutstandingShares)
	rows := make([]ProceedsRow, 0, len(snap.Shareholders))
	for _, pos := range snap.Shareholders {
		ownership := decimal.NewFromInt(pos.Shares).Div(outstanding)
		rows = append(rows, ProceedsRow{
			ShareholderID:    pos.ShareholderID,
			ShareholderName:  pos.ShareholderName,
			Shares:           pos.Shares,
			OwnershipPercent: ownership,
			ProceedsAmount:   ownership.Mul(exitValue),
		})
	}

	return &ExitDistribution{ExitValue: exitValue, Shareholders: rows}, nil
}
