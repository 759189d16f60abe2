package modeling

import (
	"sort"

	"github.com/shopspring/decimal"

	apperrors "captable/internal/errors"
)

// ProRataRow is one shareholder's pro-rata participation entitlement for a
// proposed round.
type ProRataRow struct {
	ShareholderID              string          `json:"shareholder_id"`
	ShareholderName            string          `json:"shareholder_name"`
	Shares                     int64           `json:"shares"`
	CurrentOwnership           decimal.Decimal `json:"current_ownership"`
	ProRataAmount              decimal.Decimal `json:"pro_rata_amount"`
	NewSharesAtProRata         int64           `json:"new_shares_at_pro_rata"`
	OwnershipIfNoParticipation decimal.Decimal `json:"ownership_if_no_participation"`
	DilutionWithoutProRata     decimal.Decimal `json:"dilution_without_pro_rata"`
}

// ProRataProjection lists each holder's required investment to keep their
// ownership flat through a round, largest holders first.
type ProRataProjection struct {
	RoundSize          decimal.Decimal `json:"round_size"`
	PostMoneyValuation decimal.Decimal `json:"post_money_valuation"`
	PricePerShare      decimal.Decimal `json:"price_per_share"`
	NewShares          int64           `json:"new_shares"`
	NewTotalShares     int64           `json:"new_total_shares"`
	TotalProRataAmount decimal.Decimal `json:"total_pro_rata_amount"`
	Shareholders       []ProRataRow    `json:"shareholders"`
}

// CalculateProRata computes, for each existing shareholder, the dollar amount
// they must invest in the proposed round to hold their ownership flat, and
// what they dilute to if they invest nothing.
//
// The aggregate TotalProRataAmount equals the round size only when existing
// holders cover 100% of outstanding shares; with an unallocated option pool
// it comes out below the round size. That is expected, not an error: each
// entitlement is computed independently against total ownership.
func CalculateProRata(snap CapTableSummary, terms RoundTerms) (*ProRataProjection, error) {
	if !terms.FundingAmount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "Round size must be positive")
	}
	if !terms.PreMoneyValuation.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "Pre-money valuation must be positive")
	}
	if snap.TotalOutstandingShares <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "Cap table has no outstanding shares")
	}

	outstanding := decimal.NewFromInt(snap.TotalOutstandingShares)
	postMoney := terms.PreMoneyValuation.Add(terms.FundingAmount)
	pricePerShare := terms.PreMoneyValuation.Div(outstanding)
	newShares := terms.FundingAmount.Div(pricePerShare).Floor().IntPart()
	newTotal := snap.TotalOutstandingShares + newShares
	newTotalDec := decimal.NewFromInt(newTotal)

	rows := make([]ProRataRow, 0, len(snap.Shareholders))
	totalProRata := decimal.Zero
	for _, pos := range snap.Shareholders {
		shares := decimal.NewFromInt(pos.Shares)
		current := shares.Div(outstanding)
		proRataAmount := current.Mul(terms.FundingAmount)
		passive := shares.Div(newTotalDec)
		rows = append(rows, ProRataRow{
			ShareholderID:              pos.ShareholderID,
			ShareholderName:            pos.ShareholderName,
			Shares:                     pos.Shares,
			CurrentOwnership:           current,
			ProRataAmount:              proRataAmount,
			NewSharesAtProRata:         proRataAmount.Div(pricePerShare).Floor().IntPart(),
			OwnershipIfNoParticipation: passive,
			DilutionWithoutProRata:     current.Sub(passive),
		})
		totalProRata = totalProRata.Add(proRataAmount)
	}

	// Largest holders first; stable so equal stakes keep snapshot order.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CurrentOwnership.GreaterThan(rows[j].CurrentOwnership)
	})

	return &ProRataProjection{
		RoundSize:          terms.FundingAmount,
		PostMoneyValuation: postMoney,
		PricePerShare:      pricePerShare,
		NewShares:          newShares,
		NewTotalShares:     newTotal,
		TotalProRataAmount: totalProRata,
		Shareholders:       rows,
	}, nil
}
