package model

// Status is the three-tier runway classification.
type Status string

const (
	StatusHealthy Status = "Healthy"
	StatusCaution Status = "Caution"
	StatusRisky   Status = "Risky"
)

const (
	// HealthyFromMonth is the first exhaustion month classified as Healthy.
	HealthyFromMonth = 20
	// CautionFromMonth is the first exhaustion month classified as Caution.
	CautionFromMonth = 12
)

type DilutionResult struct {
	AdjustedRaise         float64 `json:"adjusted_raise"`
	PostMoneyValuation    float64 `json:"post_money_valuation"`
	OwnershipSoldFraction float64 `json:"ownership_sold_fraction"`
}

// RunwayRow is one month of the projection. Month numbering starts at 1.
type RunwayRow struct {
	Month             int     `json:"month"`
	Burn              float64 `json:"burn"`
	Revenue           float64 `json:"revenue"`
	NetBurn           float64 `json:"net_burn"`
	CumulativeNetBurn float64 `json:"cumulative_net_burn"`
}

type RunwaySummary struct {
	ExhaustionMonth int     `json:"exhaustion_month"`
	HealthScore     float64 `json:"health_score"`
	Status          Status  `json:"status"`
}

// Projection is everything one computation produces for a set of inputs.
type Projection struct {
	Inputs   ModelInputs    `json:"inputs"`
	Dilution DilutionResult `json:"dilution"`
	Rows     []RunwayRow    `json:"rows"`
	Summary  RunwaySummary  `json:"summary"`
}
