package sim

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ScenarioFile is the top-level comparison configuration, loaded from YAML
// via LoadScenarioFile. It fixes the population, base rates, initial split
// and horizon, and lists the named scenarios to compare.
type ScenarioFile struct {
	Population       float64         `yaml:"population"`
	InitialInfected  float64         `yaml:"initial_infected"`
	InitialRecovered float64         `yaml:"initial_recovered"`
	Beta             float64         `yaml:"beta"`
	Gamma            float64         `yaml:"gamma"`
	HorizonDays      float64         `yaml:"horizon_days"`
	SamplesPerDay    int             `yaml:"samples_per_day,omitempty"`
	Scenarios        []ScenarioEntry `yaml:"scenarios"`
}

// ScenarioEntry names one scenario of the comparison. Beta, when set,
// overrides the file-level base beta for this entry only.
type ScenarioEntry struct {
	Label         string           `yaml:"label"`
	Beta          *float64         `yaml:"beta,omitempty"`
	Interventions InterventionSpec `yaml:"interventions,omitempty"`
}

// LoadScenarioFile reads and validates a comparison spec. Unknown YAML keys
// are rejected to catch typos early.
func LoadScenarioFile(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var sf ScenarioFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sf); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	if err := sf.Validate(); err != nil {
		return nil, fmt.Errorf("scenario file %s: %w", path, err)
	}
	return &sf, nil
}

// Validate checks the file-level parameters, the initial split, and every
// entry's interventions against the horizon. Duplicate labels are legal but
// almost certainly a mistake, so they draw a warning.
func (sf *ScenarioFile) Validate() error {
	if err := sf.Params().Validate(); err != nil {
		return err
	}
	if sf.InitialInfected < 0 || sf.InitialRecovered < 0 {
		return fmt.Errorf("%w: initial_infected and initial_recovered must be non-negative", ErrInvalidParameters)
	}
	if sf.InitialInfected+sf.InitialRecovered > sf.Population {
		return fmt.Errorf("%w: initial infected (%v) plus recovered (%v) exceed population %v",
			ErrInvalidParameters, sf.InitialInfected, sf.InitialRecovered, sf.Population)
	}
	if !isFinite(sf.HorizonDays) || sf.HorizonDays <= 0 {
		return fmt.Errorf("%w: horizon_days must be positive, got %v", ErrInvalidTimeGrid, sf.HorizonDays)
	}
	if sf.SamplesPerDay < 0 {
		return fmt.Errorf("%w: samples_per_day must not be negative, got %d", ErrInvalidTimeGrid, sf.SamplesPerDay)
	}
	seen := make(map[string]bool, len(sf.Scenarios))
	for i, entry := range sf.Scenarios {
		if entry.Label == "" {
			return fmt.Errorf("%w: scenario %d has an empty label", ErrInvalidIntervention, i)
		}
		if seen[entry.Label] {
			logrus.Warnf("duplicate scenario label %q; both entries will be evaluated", entry.Label)
		}
		seen[entry.Label] = true
		if entry.Beta != nil {
			if err := sf.Params().WithBeta(*entry.Beta).Validate(); err != nil {
				return fmt.Errorf("scenario %q: %w", entry.Label, err)
			}
		}
		if err := entry.Interventions.Validate(sf.HorizonDays); err != nil {
			return fmt.Errorf("scenario %q: %w", entry.Label, err)
		}
	}
	return nil
}

// Params returns the file's base model parameters.
func (sf *ScenarioFile) Params() ModelParameters {
	return ModelParameters{N: sf.Population, Beta: sf.Beta, Gamma: sf.Gamma}
}

// InitialState derives S0 from the population and the initial infected and
// recovered counts.
func (sf *ScenarioFile) InitialState() CompartmentState {
	return CompartmentState{
		S: sf.Population - sf.InitialInfected - sf.InitialRecovered,
		I: sf.InitialInfected,
		R: sf.InitialRecovered,
	}
}

// Named converts the file's entries into the driver's batch form, preserving
// order.
func (sf *ScenarioFile) Named() []NamedScenario {
	out := make([]NamedScenario, 0, len(sf.Scenarios))
	for _, entry := range sf.Scenarios {
		params := sf.Params()
		if entry.Beta != nil {
			params = params.WithBeta(*entry.Beta)
		}
		out = append(out, NamedScenario{
			Label:         entry.Label,
			Params:        params,
			Interventions: entry.Interventions,
		})
	}
	return out
}
