package modeling

import (
	"github.com/shopspring/decimal"

	apperrors "captable/internal/errors"
)

// RoundTerms are the cash parameters of a proposed priced round.
type RoundTerms struct {
	FundingAmount     decimal.Decimal `json:"funding_amount"`
	PreMoneyValuation decimal.Decimal `json:"pre_money_valuation"`
}

// DilutionRow is the per-shareholder outcome of a funding round.
type DilutionRow struct {
	ShareholderID    string          `json:"shareholder_id"`
	ShareholderName  string          `json:"shareholder_name"`
	Shares           int64           `json:"shares"`
	CurrentOwnership decimal.Decimal `json:"current_ownership"`
	NewOwnership     decimal.Decimal `json:"new_ownership"`
	DilutionPercent  decimal.Decimal `json:"dilution_percent"`
	ValueAtPostMoney decimal.Decimal `json:"value_at_post_money"`
}

// RoundProjection is the outcome of modeling a priced funding round.
type RoundProjection struct {
	PostMoneyValuation decimal.Decimal `json:"post_money_valuation"`
	PricePerShare      decimal.Decimal `json:"price_per_share"`
	NewInvestorShares  int64           `json:"new_investor_shares"`
	NewTotalShares     int64           `json:"new_total_shares"`
	InvestorOwnership  decimal.Decimal `json:"investor_ownership"`
	Shareholders       []DilutionRow   `json:"shareholders"`
}

// ProjectFundingRound computes the post-money price per share, the new
// investor's stake, and the resulting dilution of every existing shareholder.
// Existing holders are never issued shares here, so dilution is monotonic:
// every holder's new ownership is strictly below their current ownership
// whenever the funding amount is positive.
func ProjectFundingRound(snap CapTableSummary, terms RoundTerms) (*RoundProjection, error) {
	if !terms.FundingAmount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "Funding amount must be positive")
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

	newInvestorShares := terms.FundingAmount.Div(pricePerShare).Floor().IntPart()
	newTotal := snap.TotalOutstandingShares + newInvestorShares
	newTotalDec := decimal.NewFromInt(newTotal)
	investorOwnership := decimal.NewFromInt(newInvestorShares).Div(newTotalDec)

	rows := make([]DilutionRow, 0, len(snap.Shareholders))
	for _, pos := range snap.Shareholders {
		shares := decimal.NewFromInt(pos.Shares)
		current := shares.Div(outstanding)
		updated := shares.Div(newTotalDec)
		rows = append(rows, DilutionRow{
			ShareholderID:    pos.ShareholderID,
			ShareholderName:  pos.ShareholderName,
			Shares:           pos.Shares,
			CurrentOwnership: current,
			NewOwnership:     updated,
			DilutionPercent:  current.Sub(updated),
			ValueAtPostMoney: updated.Mul(postMoney),
		})
	}

	return &RoundProjection{
		PostMoneyValuation: postMoney,
		PricePerShare:      pricePerShare,
		NewInvestorShares:  newInvestorShares,
		NewTotalShares:     newTotal,
		InvestorOwnership:  investorOwnership,
		Shareholders:       rows,
	}, nil
}
