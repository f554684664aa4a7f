package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.25
	DefaultDuration = 365.0
	DefaultPrey     = 50.0
	DefaultPredator = 20.0
	DefaultRuns     = 50
	DefaultSeed     = 42
	DefaultWorkers  = 4
)

type Config struct {
	Model      string             `yaml:"model"`
	Integrator string             `yaml:"integrator"`
	Dt         float64            `yaml:"dt"`
	Duration   float64            `yaml:"duration"`
	InitState  InitStateConfig    `yaml:"init_state"`
	Params     map[string]float64 `yaml:"params"`
	Experiment ExperimentConfig   `yaml:"experiment"`
	LogLevel   string             `yaml:"log_level"`
}

type InitStateConfig struct {
	Prey     float64 `yaml:"prey"`
	Predator float64 `yaml:"predator"`
}

type ExperimentConfig struct {
	Runs    int              `yaml:"runs"`
	Seed    int64            `yaml:"seed"`
	Workers int              `yaml:"workers"`
	Ranges  map[string]Range `yaml:"ranges"`
	Outputs []string         `yaml:"outputs"`
}

type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      "lotka_volterra",
		Integrator: "euler",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		InitState: InitStateConfig{
			Prey:     DefaultPrey,
			Predator: DefaultPredator,
		},
		Experiment: ExperimentConfig{
			Runs:    DefaultRuns,
			Seed:    DefaultSeed,
			Workers: DefaultWorkers,
			Outputs: []string{"time", "prey", "predator"},
		},
		LogLevel: "info",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) GetInitState() []float64 {
	return []float64{c.InitState.Prey, c.InitState.Predator}
}
