package steps

import (
	"fmt"
	"math"

	"runway-engine/internal/model"
)

type namedAmount struct {
	field string
	value float64
}

// checkAmounts emits one CRITICAL message per amount that is not a finite number,
// is negative, or exceeds model.MaxAmount.
func checkAmounts(amounts ...namedAmount) []model.CalculationMessage {
	var msgs []model.CalculationMessage
	for _, a := range amounts {
		switch {
		case math.IsNaN(a.value) || math.IsInf(a.value, 0):
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    model.CodeNonFiniteAmount,
				Message: fmt.Sprintf("%s must be a finite number", a.field),
			})
		case a.value < 0:
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    model.CodeNegativeAmount,
				Message: fmt.Sprintf("%s must be non-negative, got %g", a.field, a.value),
			})
		case a.value > model.MaxAmount:
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    model.CodeAmountTooLarge,
				Message: fmt.Sprintf("%s must be at most %g, got %g", a.field, model.MaxAmount, a.value),
			})
		}
	}
	return msgs
}
