package steps

import "runway-engine/internal/model"

// Step defines the contract for every stage of a computation.
// Validate checks the inputs the stage consumes without touching state;
// Apply runs the stage and records its output on the computation.
type Step interface {
	Name() string
	Validate(in *model.ModelInputs) []model.CalculationMessage
	Apply(state *model.Computation) []model.CalculationMessage
}
