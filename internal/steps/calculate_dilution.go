package steps

import (
	"fmt"

	"runway-engine/internal/dilution"
	"runway-engine/internal/model"
)

type CalculateDilutionStep struct{}

func (s *CalculateDilutionStep) Name() string { return NameCalculateDilution }

func (s *CalculateDilutionStep) Validate(in *model.ModelInputs) []model.CalculationMessage {
	msgs := checkAmounts(
		namedAmount{"raise_amount", in.RaiseAmount},
		namedAmount{"pre_money_valuation", in.PreMoneyValuation},
	)

	if in.OptionPoolRefreshPct < 0 || in.OptionPoolRefreshPct > model.MaxOptionPoolPct {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidOptionPool,
			Message: fmt.Sprintf("option_pool_refresh_pct must be between 0 and %d, got %d", model.MaxOptionPoolPct, in.OptionPoolRefreshPct),
		})
	}

	return msgs
}

func (s *CalculateDilutionStep) Apply(state *model.Computation) []model.CalculationMessage {
	res := dilution.Calculate(state.Inputs)
	state.Dilution = &res

	if res.PostMoneyValuation == 0 {
		return []model.CalculationMessage{{
			Level:   model.LevelWarning,
			Code:    model.CodeDegenerateValuation,
			Message: "Post-money valuation is 0; ownership sold is reported as 0%",
		}}
	}
	return nil
}
