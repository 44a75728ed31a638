package model

// Computation is the working state the engine steps fill in, in order.
// A Computation lives for a single pass and is discarded once a Projection is built from it.
type Computation struct {
	Inputs   ModelInputs
	Dilution *DilutionResult
	Rows     []RunwayRow

	// ExhaustionMonth is set by the runway step and read by the insight step.
	ExhaustionMonth *int
	Summary         *RunwaySummary
}

// Projection returns the finished result, or nil if a step did not run.
func (c *Computation) Projection() *Projection {
	if c.Dilution == nil || c.Summary == nil {
		return nil
	}
	return &Projection{
		Inputs:   c.Inputs,
		Dilution: *c.Dilution,
		Rows:     c.Rows,
		Summary:  *c.Summary,
	}
}
