package dilution

import "runway-engine/internal/model"

// Calculate adjusts the nominal raise for the option pool refresh and the bridge tranche,
// then derives post-money valuation and the fraction of the company sold.
//
// The option pool is sized against the post-money valuation of the unadjusted raise
// (pre-money + nominal raise), not against the final post-money valuation.
func Calculate(in model.ModelInputs) model.DilutionResult {
	adjusted := in.RaiseAmount

	if in.OptionPoolRefreshPct > 0 {
		reference := in.PreMoneyValuation + in.RaiseAmount
		adjusted += float64(in.OptionPoolRefreshPct) / 100 * reference
	}

	if in.IncludeBridge {
		adjusted += model.BridgeTranche
	}

	postMoney := in.PreMoneyValuation + adjusted

	return model.DilutionResult{
		AdjustedRaise:         adjusted,
		PostMoneyValuation:    postMoney,
		OwnershipSoldFraction: OwnershipSold(adjusted, postMoney),
	}
}

// OwnershipSold returns adjusted/postMoney, or 0 for a zero valuation.
func OwnershipSold(adjusted, postMoney float64) float64 {
	if postMoney <= 0 {
		return 0
	}
	return adjusted / postMoney
}
