package main

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/spf13/pflag"

	"runway-engine/internal/config"
	"runway-engine/internal/model"
)

// inputFlags binds one flag per ModelInputs field, defaulting to model.DefaultInputs.
type inputFlags struct {
	values model.ModelInputs
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	d := model.DefaultInputs()
	fs.Float64Var(&f.values.CurrentMonthlyBurn, "burn", d.CurrentMonthlyBurn, "Current monthly burn ($)")
	fs.Float64Var(&f.values.AddedHeadcountBurn, "headcount-burn", d.AddedHeadcountBurn, "Extra monthly burn from month 6 ($)")
	fs.Float64Var(&f.values.MonthlyRevenueRamp, "revenue-ramp", d.MonthlyRevenueRamp, "Monthly revenue ramp ($); revenue = ramp x month")
	fs.IntVar(&f.values.HorizonMonths, "horizon", d.HorizonMonths, "Projection length in months (18 or 24)")
	fs.IntVar(&f.values.OptionPoolRefreshPct, "option-pool", d.OptionPoolRefreshPct, "Option pool refresh (%, 0-30)")
	fs.Float64Var(&f.values.RaiseAmount, "raise", d.RaiseAmount, "Raise amount ($)")
	fs.Float64Var(&f.values.PreMoneyValuation, "pre-money", d.PreMoneyValuation, "Pre-money valuation ($)")
	fs.BoolVar(&f.values.IncludeBridge, "bridge", d.IncludeBridge, "Include a $1M bridge round")
}

// overlay copies every flag the user set explicitly onto base.
func (f *inputFlags) overlay(fs *pflag.FlagSet, base model.ModelInputs) model.ModelInputs {
	out := base
	fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "burn":
			out.CurrentMonthlyBurn = f.values.CurrentMonthlyBurn
		case "headcount-burn":
			out.AddedHeadcountBurn = f.values.AddedHeadcountBurn
		case "revenue-ramp":
			out.MonthlyRevenueRamp = f.values.MonthlyRevenueRamp
		case "horizon":
			out.HorizonMonths = f.values.HorizonMonths
		case "option-pool":
			out.OptionPoolRefreshPct = f.values.OptionPoolRefreshPct
		case "raise":
			out.RaiseAmount = f.values.RaiseAmount
		case "pre-money":
			out.PreMoneyValuation = f.values.PreMoneyValuation
		case "bridge":
			out.IncludeBridge = f.values.IncludeBridge
		}
	})
	return out
}

// pickScenario returns the named scenario, or the only one when name is empty.
func pickScenario(scenarios []model.Scenario, name string) (model.Scenario, error) {
	if name == "" {
		if len(scenarios) > 1 {
			return model.Scenario{}, fmt.Errorf("file defines %d scenarios; choose one with --scenario", len(scenarios))
		}
		return scenarios[0], nil
	}
	return config.FindScenario(scenarios, name)
}

func writeIndentedJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
