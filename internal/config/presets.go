package config

var Presets = map[string]map[string]*Config{
	"lotka_volterra": {
		"classic": {
			Model: "lotka_volterra", Integrator: "euler", Dt: 0.25, Duration: 365.0,
			InitState: InitStateConfig{Prey: 50, Predator: 20},
		},
		"boom_bust": {
			Model: "lotka_volterra", Integrator: "euler", Dt: 0.25, Duration: 730.0,
			InitState: InitStateConfig{Prey: 200, Predator: 5},
			Params: map[string]float64{
				"prey_birth_rate":    0.035,
				"predator_loss_rate": 0.08,
			},
		},
		"near_extinction": {
			Model: "lotka_volterra", Integrator: "rk4", Dt: 0.25, Duration: 365.0,
			InitState: InitStateConfig{Prey: 10, Predator: 40},
			Params: map[string]float64{
				"predation_rate": 0.003,
			},
		},
	},
	"logistic_prey": {
		"crowded": {
			Model: "logistic_prey", Integrator: "euler", Dt: 0.25, Duration: 365.0,
			InitState: InitStateConfig{Prey: 500, Predator: 20},
			Params: map[string]float64{
				"carrying_capacity": 800,
			},
		},
		"slow_burn": {
			Model: "logistic_prey", Integrator: "rk4", Dt: 0.25, Duration: 1095.0,
			InitState: InitStateConfig{Prey: 50, Predator: 20},
			Params: map[string]float64{
				"prey_birth_rate": 0.015,
			},
		},
	},
}

// GetPreset returns a copy so callers can layer overrides on top
// without mutating the shared preset table.
func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	out := *cfg
	out.Params = make(map[string]float64, len(cfg.Params))
	for name, v := range cfg.Params {
		out.Params[name] = v
	}
	return &out
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
