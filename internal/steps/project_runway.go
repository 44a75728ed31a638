package steps

import (
	"fmt"

	"runway-engine/internal/model"
	"runway-engine/internal/runway"
)

type ProjectRunwayStep struct{}

func (s *ProjectRunwayStep) Name() string { return NameProjectRunway }

func (s *ProjectRunwayStep) Validate(in *model.ModelInputs) []model.CalculationMessage {
	msgs := checkAmounts(
		namedAmount{"current_monthly_burn", in.CurrentMonthlyBurn},
		namedAmount{"added_headcount_burn", in.AddedHeadcountBurn},
		namedAmount{"monthly_revenue_ramp", in.MonthlyRevenueRamp},
	)

	if !model.SupportedHorizon(in.HorizonMonths) {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidHorizon,
			Message: fmt.Sprintf("horizon_months must be %d or %d, got %d", model.HorizonShort, model.HorizonLong, in.HorizonMonths),
		})
	}

	return msgs
}

func (s *ProjectRunwayStep) Apply(state *model.Computation) []model.CalculationMessage {
	if state.Dilution == nil {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeDilutionNotCalculated,
			Message: "Runway needs the adjusted raise from the dilution step",
		}}
	}

	res := runway.Project(runway.ParamsFor(state.Inputs, state.Dilution.AdjustedRaise))
	state.Rows = res.Rows
	exhaustion := res.ExhaustionMonth
	state.ExhaustionMonth = &exhaustion

	if res.Exhausted && res.ExhaustionMonth < state.Inputs.HorizonMonths {
		return []model.CalculationMessage{{
			Level:   model.LevelWarning,
			Code:    model.CodeCapitalExhausted,
			Message: fmt.Sprintf("Capital runs out in month %d of %d", res.ExhaustionMonth, state.Inputs.HorizonMonths),
		}}
	}
	return nil
}
