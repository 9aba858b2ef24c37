package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	sim "github.com/procsim/procsim/sim"
)

// Define struct for YAML
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

type Scenario struct {
	Algorithm      string            `yaml:"algorithm"`
	Quantum        int               `yaml:"quantum"`
	Aging          bool              `yaml:"aging"`
	AgingThreshold int               `yaml:"aging_threshold"`
	Processes      []sim.ProcessSpec `yaml:"processes"`
}

// GetScenario loads a named scenario from a YAML file.
func GetScenario(scenarioFilePath string, scenarioName string) (*Scenario, error) {
	// Read YAML file
	data, err := os.ReadFile(scenarioFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML
	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}

	scenario, ok := cfg.Scenarios[scenarioName]
	if !ok {
		return nil, fmt.Errorf("scenario %q not found in %s", scenarioName, scenarioFilePath)
	}
	logrus.Infof("Using preset scenario %v", scenarioName)
	return &scenario, nil
}

// Apply configures an engine and submits the scenario's processes.
func (sc *Scenario) Apply(s *sim.Scheduler) {
	if sc.Algorithm != "" {
		s.SetAlgorithm(sc.Algorithm)
	}
	if sc.Quantum != 0 {
		s.SetTimeQuantum(sc.Quantum)
	}
	s.SetAging(sc.Aging)
	if sc.AgingThreshold != 0 {
		s.SetAgingThreshold(sc.AgingThreshold)
	}
	sim.Submit(s, sc.Processes)
}
