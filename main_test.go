package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"runway-engine/internal/compare"
	"runway-engine/internal/model"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeScenarios(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	doc := `
scenarios:
  - name: base
  - name: bridge
    inputs:
      include_bridge: true
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write scenarios: %v", err)
	}
	return path
}

func TestCalcTable(t *testing.T) {
	out, err := run(t, "calc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Adjusted Raise Amount: $4,300,000", "Capital Runs Out In: Month 24", "$65,000"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCalcFlagsJSON(t *testing.T) {
	out, err := run(t, "calc", "--option-pool=0", "--bridge", "--horizon=18", "-o", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp model.CalculationResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	p := resp.CalculationResult.Projection
	if p == nil || p.Dilution.AdjustedRaise != 4_000_000 || len(p.Rows) != 18 {
		t.Fatalf("unexpected projection: %+v", p)
	}
	if resp.CalculationMetadata.TenantID != "local" {
		t.Fatalf("expected default tenant, got %s", resp.CalculationMetadata.TenantID)
	}
}

func TestCalcCSV(t *testing.T) {
	out, err := run(t, "calc", "--format=csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "Month,Burn ($),Revenue ($),Net Burn ($),Cumulative Burn ($)\n") {
		t.Fatalf("unexpected csv:\n%s", out)
	}
}

func TestCalcInvalidInput(t *testing.T) {
	_, err := run(t, "calc", "--horizon=12")
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCalcScenarioFileWithOverride(t *testing.T) {
	path := writeScenarios(t)

	if _, err := run(t, "calc", "--file", path); err == nil {
		t.Fatal("expected an error when several scenarios exist and none is named")
	}

	out, err := run(t, "calc", "--file", path, "--scenario", "bridge", "--raise=0", "-o", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp model.CalculationResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	// raise 0 + 10% of 10,000,000 + bridge
	if got := resp.CalculationResult.Projection.Dilution.AdjustedRaise; got != 2_000_000 {
		t.Fatalf("expected adjusted raise 2000000, got %v", got)
	}
}

func TestBatch(t *testing.T) {
	out, err := run(t, "batch", "--file", writeScenarios(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp model.BatchResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(resp.Results) != 2 || resp.Results[0].Name != "base" || resp.Results[1].Name != "bridge" {
		t.Fatalf("unexpected batch results: %+v", resp.Results)
	}
}

func TestCompare(t *testing.T) {
	out, err := run(t, "compare", "--file", writeScenarios(t), "--base", "base", "--alt", "bridge")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var ops []compare.Op
	if err := json.Unmarshal([]byte(out), &ops); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(ops) == 0 || ops[0].Path != "/dilution/adjusted_raise" {
		t.Fatalf("unexpected ops: %+v", ops)
	}

	if _, err := run(t, "compare", "--file", writeScenarios(t), "--base", "base", "--alt", "nope"); err == nil {
		t.Fatal("expected error for unknown scenario")
	}
}
