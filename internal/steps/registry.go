package steps

const (
	NameCalculateDilution = "calculate_dilution"
	NameProjectRunway     = "project_runway"
	NameSummarizeInsight  = "summarize_insight"
)

// pipeline is the fixed execution order: each step consumes what the previous one recorded.
var pipeline = []Step{
	&CalculateDilutionStep{},
	&ProjectRunwayStep{},
	&SummarizeInsightStep{},
}

var registry = func() map[string]Step {
	m := make(map[string]Step, len(pipeline))
	for _, s := range pipeline {
		m[s.Name()] = s
	}
	return m
}()

// Pipeline returns the steps in execution order.
func Pipeline() []Step {
	out := make([]Step, len(pipeline))
	copy(out, pipeline)
	return out
}

func Get(name string) (Step, bool) {
	s, ok := registry[name]
	return s, ok
}
