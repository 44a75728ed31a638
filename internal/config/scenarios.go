package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"runway-engine/internal/model"
)

// ErrScenarioNotFound is returned by FindScenario for an unknown name.
var ErrScenarioNotFound = errors.New("scenario not found")

type scenarioFile struct {
	Scenarios []struct {
		Name   string    `yaml:"name"`
		Inputs yaml.Node `yaml:"inputs"`
	} `yaml:"scenarios"`
}

// LoadScenarios reads a YAML scenario file.
func LoadScenarios(path string) ([]model.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	scenarios, err := ParseScenarios(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}

// ParseScenarios decodes scenarios from YAML. Fields a scenario leaves out keep the
// values of model.DefaultInputs. Names must be present and unique.
func ParseScenarios(data []byte) ([]model.Scenario, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, errors.New("no scenarios defined")
	}

	seen := make(map[string]bool, len(f.Scenarios))
	out := make([]model.Scenario, 0, len(f.Scenarios))
	for i, s := range f.Scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("scenario %d has no name", i)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("duplicate scenario %q", s.Name)
		}
		seen[s.Name] = true

		in := model.DefaultInputs()
		if !s.Inputs.IsZero() {
			if err := s.Inputs.Decode(&in); err != nil {
				return nil, fmt.Errorf("scenario %q inputs: %w", s.Name, err)
			}
		}
		out = append(out, model.Scenario{Name: s.Name, Inputs: in})
	}
	return out, nil
}

func FindScenario(scenarios []model.Scenario, name string) (model.Scenario, error) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return model.Scenario{}, fmt.Errorf("%w: %q", ErrScenarioNotFound, name)
}
