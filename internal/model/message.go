package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeNegativeAmount      = "NEGATIVE_AMOUNT"
	CodeNonFiniteAmount     = "NON_FINITE_AMOUNT"
	CodeAmountTooLarge      = "AMOUNT_TOO_LARGE"
	CodeInvalidHorizon      = "INVALID_HORIZON"
	CodeInvalidOptionPool   = "INVALID_OPTION_POOL"
	CodeDegenerateValuation = "DEGENERATE_VALUATION"
	CodeCapitalExhausted    = "CAPITAL_EXHAUSTED"
)

// HasCritical reports whether any message blocks the computation.
func HasCritical(msgs []CalculationMessage) bool {
	for _, m := range msgs {
		if m.Level == LevelCritical {
			return true
		}
	}
	return false
}

const (
	CodeDilutionNotCalculated = "DILUTION_NOT_CALCULATED"
	CodeRunwayNotProjected    = "RUNWAY_NOT_PROJECTED"
)
