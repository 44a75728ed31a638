package steps

import (
	"runway-engine/internal/insight"
	"runway-engine/internal/model"
)

type SummarizeInsightStep struct{}

func (s *SummarizeInsightStep) Name() string { return NameSummarizeInsight }

// Validate has nothing to check: the summarizer only reads derived values.
func (s *SummarizeInsightStep) Validate(in *model.ModelInputs) []model.CalculationMessage {
	return nil
}

func (s *SummarizeInsightStep) Apply(state *model.Computation) []model.CalculationMessage {
	if state.Dilution == nil || state.ExhaustionMonth == nil {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeRunwayNotProjected,
			Message: "Insight needs both the dilution result and the exhaustion month",
		}}
	}

	summary := insight.Summarize(state.Dilution.OwnershipSoldFraction, *state.ExhaustionMonth)
	state.Summary = &summary
	return nil
}
