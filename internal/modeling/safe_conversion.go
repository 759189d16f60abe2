package modeling

import (
	"github.com/shopspring/decimal"

	apperrors "captable/internal/errors"
)

var one = decimal.NewFromInt(1)

// SafeConversion is the projected outcome for a single SAFE note.
type SafeConversion struct {
	SafeID           string           `json:"safe_id"`
	ShareholderID    string           `json:"shareholder_id"`
	ShareholderName  string           `json:"shareholder_name,omitempty"`
	InvestmentAmount decimal.Decimal  `json:"investment_amount"`
	Method           ConversionMethod `json:"method"`
	Shares           int64            `json:"shares"`
	EffectivePrice   decimal.Decimal  `json:"effective_price"`
	OwnershipPercent decimal.Decimal  `json:"ownership_percent"`
}

// SafeConversionSummary aggregates the projected conversions of all
// outstanding SAFE notes at a given round price.
type SafeConversionSummary struct {
	RoundPricePerShare    decimal.Decimal  `json:"round_price_per_share"`
	Conversions           []SafeConversion `json:"conversions"`
	TotalShares           int64            `json:"total_shares"`
	TotalInvestment       decimal.Decimal  `json:"total_investment"`
	AverageEffectivePrice decimal.Decimal  `json:"average_effective_price"`
	TotalOwnershipPercent decimal.Decimal  `json:"total_ownership_percent"`
}

// ResolveSafeConversions computes, for each outstanding SAFE, the shares
// issued under every applicable pricing method and keeps the best-for-investor
// outcome (maximum shares). The round price candidate is always computed; the
// cap and discount candidates only when the note carries those terms.
//
// Candidates are compared sequentially: round price, then cap (replacing on a
// strictly greater share count), then discount (replacing on greater-or-equal).
// An exact cap/discount tie therefore resolves to the discount method; this
// ordering is load-bearing for compatibility and covered by tests.
func ResolveSafeConversions(roundPrice decimal.Decimal, fullyDilutedShares int64, notes []SafeTerms) (*SafeConversionSummary, error) {
	if !roundPrice.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "Round price per share must be positive")
	}
	if fullyDilutedShares <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "Fully diluted share count must be positive")
	}
	if len(notes) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrEmptyInputSet, "No outstanding SAFE notes to convert")
	}

	fdShares := decimal.NewFromInt(fullyDilutedShares)

	conversions := make([]SafeConversion, 0, len(notes))
	var totalShares int64
	totalInvestment := decimal.Zero

	for _, note := range notes {
		if !note.InvestmentAmount.IsPositive() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "SAFE investment amount must be positive")
		}
		if note.DiscountRate.Valid &&
			(note.DiscountRate.Decimal.IsNegative() || note.DiscountRate.Decimal.GreaterThanOrEqual(one)) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "SAFE discount rate must be at least 0 and below 1")
		}
		if note.ValuationCap.Valid && !note.ValuationCap.Decimal.IsPositive() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "SAFE valuation cap must be positive")
		}

		bestMethod := MethodRoundPrice
		bestShares := note.InvestmentAmount.Div(roundPrice).Floor().IntPart()

		if note.ValuationCap.Valid {
			capPrice := note.ValuationCap.Decimal.Div(fdShares)
			capShares := note.InvestmentAmount.Div(capPrice).Floor().IntPart()
			if capShares > bestShares {
				bestMethod = MethodCap
				bestShares = capShares
			}
		}

		if note.DiscountRate.Valid {
			discountPrice := roundPrice.Mul(one.Sub(note.DiscountRate.Decimal))
			discountShares := note.InvestmentAmount.Div(discountPrice).Floor().IntPart()
			// >= so discount takes an exact tie with the cap candidate.
			if discountShares >= bestShares {
				bestMethod = MethodDiscount
				bestShares = discountShares
			}
		}

		if bestShares <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidScenarioInput, "SAFE investment is below the price of a single share")
		}

		sharesDec := decimal.NewFromInt(bestShares)
		conversions = append(conversions, SafeConversion{
			SafeID:           note.ID,
			ShareholderID:    note.ShareholderID,
			ShareholderName:  note.ShareholderName,
			InvestmentAmount: note.InvestmentAmount,
			Method:           bestMethod,
			Shares:           bestShares,
			EffectivePrice:   note.InvestmentAmount.Div(sharesDec),
			OwnershipPercent: sharesDec.Div(fdShares.Add(sharesDec)).Mul(decimal.NewFromInt(100)),
		})

		totalShares += bestShares
		totalInvestment = totalInvestment.Add(note.InvestmentAmount)
	}

	totalSharesDec := decimal.NewFromInt(totalShares)
	return &SafeConversionSummary{
		RoundPricePerShare:    roundPrice,
		Conversions:           conversions,
		TotalShares:           totalShares,
		TotalInvestment:       totalInvestment,
		AverageEffectivePrice: totalInvestment.Div(totalSharesDec),
		TotalOwnershipPercent: totalSharesDec.Div(fdShares.Add(totalSharesDec)).Mul(decimal.NewFromInt(100)),
	}, nil
}
