package compare

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"runway-engine/internal/engine"
	"runway-engine/internal/model"
)

func mustCompute(t *testing.T, in model.ModelInputs) *model.Projection {
	t.Helper()
	p, _, err := engine.Compute(in)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	return p
}

func paths(ops []Op) []string {
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		out = append(out, op.Op+" "+op.Path)
	}
	return out
}

func TestProjectionsBridgeToggle(t *testing.T) {
	in := model.DefaultInputs()
	base := mustCompute(t, in)
	in.IncludeBridge = true
	alt := mustCompute(t, in)

	ops, err := Projections(base, alt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"replace /dilution/adjusted_raise",
		"replace /dilution/ownership_sold_fraction",
		"replace /dilution/post_money_valuation",
		"replace /inputs/include_bridge",
		"replace /summary/health_score",
	}
	if diff := cmp.Diff(want, paths(ops)); diff != "" {
		t.Fatalf("patch paths mismatch (-want +got):\n%s", diff)
	}
	if ops[0].Value != 5_300_000.0 {
		t.Fatalf("expected adjusted raise 5300000, got %v", ops[0].Value)
	}
}

func TestProjectionsIdentical(t *testing.T) {
	p := mustCompute(t, model.DefaultInputs())
	ops, err := Projections(p, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ops) != 0 {
		t.Fatalf("expected empty patch, got %v", paths(ops))
	}
}

func TestProjectionsShorterHorizon(t *testing.T) {
	in := model.DefaultInputs()
	base := mustCompute(t, in)
	in.HorizonMonths = model.HorizonShort
	alt := mustCompute(t, in)

	ops, err := Projections(base, alt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var removed []string
	for _, op := range ops {
		if op.Op == OpRemove {
			removed = append(removed, op.Path)
		}
	}
	want := []string{"/rows/23", "/rows/22", "/rows/21", "/rows/20", "/rows/19", "/rows/18"}
	if diff := cmp.Diff(want, removed); diff != "" {
		t.Fatalf("removed rows mismatch (-want +got):\n%s", diff)
	}

	var status any
	for _, op := range ops {
		if op.Path == "/summary/status" {
			status = op.Value
		}
	}
	if status != string(model.StatusCaution) {
		t.Fatalf("expected status to become Caution, got %v", status)
	}
}

func TestDiffScalarsAndKeys(t *testing.T) {
	a := map[string]any{"a/b": 1.0, "gone": true}
	b := map[string]any{"a/b": 2.0, "new~": "x"}

	got := paths(Diff(a, b, ""))
	want := []string{"remove /gone", "replace /a~1b", "add /new~0"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("diff mismatch (-want +got):\n%s", diff)
	}
}
