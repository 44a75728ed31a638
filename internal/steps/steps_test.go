package steps

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"runway-engine/internal/model"
)

func TestPipelineOrder(t *testing.T) {
	var names []string
	for _, s := range Pipeline() {
		names = append(names, s.Name())
	}
	want := []string{NameCalculateDilution, NameProjectRunway, NameSummarizeInsight}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("pipeline order mismatch (-want +got):\n%s", diff)
	}

	for _, n := range want {
		if _, ok := Get(n); !ok {
			t.Fatalf("step %s not registered", n)
		}
	}
	if _, ok := Get("unknown_step"); ok {
		t.Fatal("unexpected step registered")
	}
}

func TestRunwayStepNeedsDilution(t *testing.T) {
	state := &model.Computation{Inputs: model.DefaultInputs()}

	msgs := (&ProjectRunwayStep{}).Apply(state)
	if len(msgs) != 1 || msgs[0].Code != model.CodeDilutionNotCalculated || msgs[0].Level != model.LevelCritical {
		t.Fatalf("expected DILUTION_NOT_CALCULATED, got %+v", msgs)
	}
	if state.Rows != nil {
		t.Fatal("runway step must not project without a dilution result")
	}
}

func TestInsightStepNeedsRunway(t *testing.T) {
	state := &model.Computation{Inputs: model.DefaultInputs()}
	(&CalculateDilutionStep{}).Apply(state)

	msgs := (&SummarizeInsightStep{}).Apply(state)
	if len(msgs) != 1 || msgs[0].Code != model.CodeRunwayNotProjected {
		t.Fatalf("expected RUNWAY_NOT_PROJECTED, got %+v", msgs)
	}
}

func TestStepsFillComputation(t *testing.T) {
	state := &model.Computation{Inputs: model.DefaultInputs()}
	for _, s := range Pipeline() {
		if msgs := s.Apply(state); len(msgs) != 0 {
			t.Fatalf("%s: unexpected messages %+v", s.Name(), msgs)
		}
	}

	p := state.Projection()
	if p == nil {
		t.Fatal("expected a complete projection")
	}
	if p.Summary.ExhaustionMonth != 24 || p.Summary.Status != model.StatusHealthy {
		t.Fatalf("unexpected summary: %+v", p.Summary)
	}
}

func TestValidateAmounts(t *testing.T) {
	in := model.DefaultInputs()
	in.CurrentMonthlyBurn = -10
	in.MonthlyRevenueRamp = -1

	msgs := (&ProjectRunwayStep{}).Validate(&in)
	if len(msgs) != 2 {
		t.Fatalf("expected one message per negative amount, got %+v", msgs)
	}
	for _, m := range msgs {
		if m.Code != model.CodeNegativeAmount {
			t.Fatalf("expected NEGATIVE_AMOUNT, got %s", m.Code)
		}
	}

	if msgs := (&CalculateDilutionStep{}).Validate(&in); len(msgs) != 0 {
		t.Fatalf("dilution step should not report runway fields, got %+v", msgs)
	}
}
