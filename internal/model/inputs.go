package model

const (
	// HeadcountStartMonth is the first month that carries the added headcount burn.
	HeadcountStartMonth = 6
	// BridgeTranche is the flat amount a bridge round adds to the raise.
	BridgeTranche = 1_000_000.0
	// MaxOptionPoolPct is the largest option pool refresh accepted, in percent.
	MaxOptionPoolPct = 30
	// MaxAmount bounds every currency input so that sums over the longest horizon stay finite.
	MaxAmount = 1e15

	HorizonShort = 18
	HorizonLong  = 24
)

// ModelInputs is the full set of assumptions for one computation.
type ModelInputs struct {
	CurrentMonthlyBurn   float64 `json:"current_monthly_burn" yaml:"current_monthly_burn"`
	AddedHeadcountBurn   float64 `json:"added_headcount_burn" yaml:"added_headcount_burn"`
	MonthlyRevenueRamp   float64 `json:"monthly_revenue_ramp" yaml:"monthly_revenue_ramp"`
	HorizonMonths        int     `json:"horizon_months" yaml:"horizon_months"`
	OptionPoolRefreshPct int     `json:"option_pool_refresh_pct" yaml:"option_pool_refresh_pct"`
	RaiseAmount          float64 `json:"raise_amount" yaml:"raise_amount"`
	PreMoneyValuation    float64 `json:"pre_money_valuation" yaml:"pre_money_valuation"`
	IncludeBridge        bool    `json:"include_bridge" yaml:"include_bridge"`
}

// DefaultInputs returns the assumptions a fresh session starts from.
func DefaultInputs() ModelInputs {
	return ModelInputs{
		CurrentMonthlyBurn:   75_000,
		AddedHeadcountBurn:   30_000,
		MonthlyRevenueRamp:   10_000,
		HorizonMonths:        HorizonLong,
		OptionPoolRefreshPct: 10,
		RaiseAmount:          3_000_000,
		PreMoneyValuation:    10_000_000,
		IncludeBridge:        false,
	}
}

// SupportedHorizon reports whether months is one of the projection lengths the model runs over.
func SupportedHorizon(months int) bool {
	return months == HorizonShort || months == HorizonLong
}

// Scenario is a named set of inputs, as read from a scenario file or a batch request.
type Scenario struct {
	Name   string      `json:"name" yaml:"name"`
	Inputs ModelInputs `json:"inputs" yaml:"inputs"`
}
