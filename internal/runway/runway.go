package runway

import "runway-engine/internal/model"

// Params are the inputs the projector needs; AdjustedRaise comes from the dilution step.
type Params struct {
	CurrentMonthlyBurn float64
	AddedHeadcountBurn float64
	MonthlyRevenueRamp float64
	HorizonMonths      int
	AdjustedRaise      float64
}

// ParamsFor builds projector params from model inputs and the adjusted raise.
func ParamsFor(in model.ModelInputs, adjustedRaise float64) Params {
	return Params{
		CurrentMonthlyBurn: in.CurrentMonthlyBurn,
		AddedHeadcountBurn: in.AddedHeadcountBurn,
		MonthlyRevenueRamp: in.MonthlyRevenueRamp,
		HorizonMonths:      in.HorizonMonths,
		AdjustedRaise:      adjustedRaise,
	}
}

type Result struct {
	Rows            []model.RunwayRow
	ExhaustionMonth int
	// Exhausted is false when the cumulative net burn never passed the raise,
	// in which case ExhaustionMonth is the horizon.
	Exhausted bool
}

// Project builds the monthly series and finds the first month whose cumulative net burn
// strictly exceeds the adjusted raise.
func Project(p Params) Result {
	rows := make([]model.RunwayRow, 0, p.HorizonMonths)
	res := Result{ExhaustionMonth: p.HorizonMonths}

	var cumulative float64
	for month := 1; month <= p.HorizonMonths; month++ {
		burn := MonthlyBurn(p.CurrentMonthlyBurn, p.AddedHeadcountBurn, month)
		revenue := p.MonthlyRevenueRamp * float64(month)
		net := burn - revenue
		cumulative += net

		rows = append(rows, model.RunwayRow{
			Month:             month,
			Burn:              burn,
			Revenue:           revenue,
			NetBurn:           net,
			CumulativeNetBurn: cumulative,
		})

		if !res.Exhausted && cumulative > p.AdjustedRaise {
			res.Exhausted = true
			res.ExhaustionMonth = month
		}
	}

	res.Rows = rows
	return res
}

// MonthlyBurn is the outflow for a month: the current burn plus headcount from month 6 on.
func MonthlyBurn(current, headcount float64, month int) float64 {
	if month >= model.HeadcountStartMonth {
		return current + headcount
	}
	return current
}
