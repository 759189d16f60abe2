package modeling

import (
	"github.com/shopspring/decimal"

	apperrors "captable/internal/errors"
)

// ScenarioRequest carries a scenario type and its parameters. Only the
// parameters relevant to the type are consulted; required ones are checked
// before any calculator runs.
type ScenarioRequest struct {
	Type                 ScenarioType        `json:"type"`
	FundingAmount        decimal.NullDecimal `json:"funding_amount,omitempty"`
	PreMoneyValuation    decimal.NullDecimal `json:"pre_money_valuation,omitempty"`
	ExitValue            decimal.NullDecimal `json:"exit_value,omitempty"`
	ExitType             string              `json:"exit_type,omitempty"`
	OptionPoolPercentage decimal.NullDecimal `json:"option_pool_percentage,omitempty"`
}

// ProjectedState carries the headline numbers of a scenario outcome. Fields
// are populated only when the scenario type produces them.
type ProjectedState struct {
	PostMoneyValuation *decimal.Decimal `json:"post_money_valuation,omitempty"`
	PricePerShare      *decimal.Decimal `json:"price_per_share,omitempty"`
	NewInvestorShares  *int64           `json:"new_investor_shares,omitempty"`
	NewTotalShares     *int64           `json:"new_total_shares,omitempty"`
	InvestorOwnership  *decimal.Decimal `json:"investor_ownership,omitempty"`
	TotalProRataAmount *decimal.Decimal `json:"total_pro_rata_amount,omitempty"`
	ExitValue          *decimal.Decimal `json:"exit_value,omitempty"`
	ExitType           string           `json:"exit_type,omitempty"`
	PoolShares         *int64           `json:"pool_shares,omitempty"`
	PoolPercentage     *decimal.Decimal `json:"pool_percentage,omitempty"`
}

// ShareholderImpact is the uniform per-shareholder result row shared by all
// scenario types. Optional fields are nil when the type does not produce them.
type ShareholderImpact struct {
	ShareholderID    string           `json:"shareholder_id"`
	ShareholderName  string           `json:"shareholder_name"`
	Shares           int64            `json:"shares"`
	CurrentOwnership *decimal.Decimal `json:"current_ownership,omitempty"`
	NewOwnership     *decimal.Decimal `json:"new_ownership,omitempty"`
	DilutionPercent  *decimal.Decimal `json:"dilution_percent,omitempty"`
	ProRataAmount    *decimal.Decimal `json:"pro_rata_amount,omitempty"`
	ValueAtPostMoney *decimal.Decimal `json:"value_at_post_money,omitempty"`
	ProceedsAmount   *decimal.Decimal `json:"proceeds_amount,omitempty"`
}

// ScenarioResult is the unified shape returned for every scenario type.
type ScenarioResult struct {
	Type              ScenarioType        `json:"type"`
	Projected         ProjectedState      `json:"projected_state"`
	ShareholderImpact []ShareholderImpact `json:"shareholder_impact"`
}

// RunScenario dispatches a scenario request to the matching calculator and
// assembles the unified result shape. Required parameters are validated up
// front so a request never produces partial results, and calculator errors
// pass through unchanged.
func RunScenario(snap CapTableSummary, req ScenarioRequest) (*ScenarioResult, error) {
	switch req.Type {
	case ScenarioFundingRound:
		if !req.FundingAmount.Valid || !req.PreMoneyValuation.Valid {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "Funding round requires funding_amount and pre_money_valuation")
		}
		return runFundingRound(snap, RoundTerms{
			FundingAmount:     req.FundingAmount.Decimal,
			PreMoneyValuation: req.PreMoneyValuation.Decimal,
		})

	case ScenarioExit:
		if !req.ExitValue.Valid {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "Exit scenario requires exit_value")
		}
		return runExit(snap, req.ExitValue.Decimal, req.ExitType)

	case ScenarioOptionPoolExpansion, ScenarioCustom:
		if !req.OptionPoolPercentage.Valid {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "Pool adjustment requires option_pool_percentage")
		}
		return runPoolExpansion(snap, req.Type, req.OptionPoolPercentage.Decimal)

	default:
		return nil, apperrors.WithMessage(apperrors.ErrUnsupportedScenarioType, "Unsupported scenario type: "+string(req.Type))
	}
}

func runFundingRound(snap CapTableSummary, terms RoundTerms) (*ScenarioResult, error) {
	round, err := ProjectFundingRound(snap, terms)
	if err != nil {
		return nil, err
	}
	proRata, err := CalculateProRata(snap, terms)
	if err != nil {
		return nil, err
	}

	entitlements := make(map[string]decimal.Decimal, len(proRata.Shareholders))
	for _, row := range proRata.Shareholders {
		entitlements[row.ShareholderID] = row.ProRataAmount
	}

	impact := make([]ShareholderImpact, 0, len(round.Shareholders))
	for _, row := range round.Shareholders {
		item := ShareholderImpact{
			ShareholderID:    row.ShareholderID,
			ShareholderName:  row.ShareholderName,
			Shares:           row.Shares,
			CurrentOwnership: decPtr(row.CurrentOwnership),
			NewOwnership:     decPtr(row.NewOwnership),
			DilutionPercent:  decPtr(row.DilutionPercent),
			ValueAtPostMoney: decPtr(row.ValueAtPostMoney),
		}
		if amount, ok := entitlements[row.ShareholderID]; ok {
			item.ProRataAmount = decPtr(amount)
		}
		impact = append(impact, item)
	}

	return &ScenarioResult{
		Type: ScenarioFundingRound,
		Projected: ProjectedState{
			PostMoneyValuation: decPtr(round.PostMoneyValuation),
			PricePerShare:      decPtr(round.PricePerShare),
			NewInvestorShares:  int64Ptr(round.NewInvestorShares),
			NewTotalShares:     int64Ptr(round.NewTotalShares),
			InvestorOwnership:  decPtr(round.InvestorOwnership),
			TotalProRataAmount: decPtr(proRata.TotalProRataAmount),
		},
		ShareholderImpact: impact,
	}, nil
}

func runExit(snap CapTableSummary, exitValue decimal.Decimal, exitType string) (*ScenarioResult, error) {
	dist, err := DistributeExitProceeds(snap, exitValue)
	if err != nil {
		return nil, err
	}

	impact := make([]ShareholderImpact, 0, len(dist.Shareholders))
	for _, row := range dist.Shareholders {
		impact = append(impact, ShareholderImpact{
			ShareholderID:    row.ShareholderID,
			ShareholderName:  row.ShareholderName,
			Shares:           row.Shares,
			CurrentOwnership: decPtr(row.OwnershipPercent),
			ProceedsAmount:   decPtr(row.ProceedsAmount),
		})
	}

	return &ScenarioResult{
		Type: ScenarioExit,
		Projected: ProjectedState{
			ExitValue: decPtr(dist.ExitValue),
			ExitType:  exitType,
		},
		ShareholderImpact: impact,
	}, nil
}

// runPoolExpansion recomputes ownership after growing the option pool so the
// new pool is pct of the post-expansion total. The dilution shape matches a
// funding round with the pool allocation in place of a cash investment.
func runPoolExpansion(snap CapTableSummary, typ ScenarioType, pct decimal.Decimal) (*ScenarioResult, error) {
	if !pct.IsPositive() || pct.GreaterThanOrEqual(one) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "Option pool percentage must be above 0 and below 1")
	}
	if snap.TotalOutstandingShares <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "Cap table has no outstanding shares")
	}

	outstanding := decimal.NewFromInt(snap.TotalOutstandingShares)
	poolShares := outstanding.Mul(pct).Div(one.Sub(pct)).Floor().IntPart()
	newTotal := snap.TotalOutstandingShares + poolShares
	newTotalDec := decimal.NewFromInt(newTotal)

	impact := make([]ShareholderImpact, 0, len(snap.Shareholders))
	for _, pos := range snap.Shareholders {
		shares := decimal.NewFromInt(pos.Shares)
		current := shares.Div(outstanding)
		updated := shares.Div(newTotalDec)
		impact = append(impact, ShareholderImpact{
			ShareholderID:    pos.ShareholderID,
			ShareholderName:  pos.ShareholderName,
			Shares:           pos.Shares,
			CurrentOwnership: decPtr(current),
			NewOwnership:     decPtr(updated),
			DilutionPercent:  decPtr(current.Sub(updated)),
		})
	}

	return &ScenarioResult{
		Type: typ,
		Projected: ProjectedState{
			NewTotalShares: int64Ptr(newTotal),
			PoolShares:     int64Ptr(poolShares),
			PoolPercentage: decPtr(pct),
		},
		ShareholderImpact: impact,
	}, nil
}

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func int64Ptr(n int64) *int64 { return &n }
