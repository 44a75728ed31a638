package insight

import "runway-engine/internal/model"

// HealthScore is a linear display heuristic: 100 minus the ownership sold in percent, floored at 0.
func HealthScore(ownershipSold float64) float64 {
	score := 100 - ownershipSold*100
	if score < 0 {
		return 0
	}
	return score
}

// Classify maps an exhaustion month to a status tier: >=20 Healthy, [12,20) Caution, <12 Risky.
func Classify(exhaustionMonth int) model.Status {
	switch {
	case exhaustionMonth >= model.HealthyFromMonth:
		return model.StatusHealthy
	case exhaustionMonth >= model.CautionFromMonth:
		return model.StatusCaution
	default:
		return model.StatusRisky
	}
}

func Summarize(ownershipSold float64, exhaustionMonth int) model.RunwaySummary {
	return model.RunwaySummary{
		ExhaustionMonth: exhaustionMonth,
		HealthScore:     HealthScore(ownershipSold),
		Status:          Classify(exhaustionMonth),
	}
}
