package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/ecolab-sim/ecolab/internal/ecodyn"
)

type ExportData struct {
	Model      string             `json:"model"`
	Integrator string             `json:"integrator"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Steps      int                `json:"steps"`
	Params     map[string]float64 `json:"params,omitempty"`
	Times      []float64          `json:"time"`
	Prey       []float64          `json:"prey"`
	Predator   []float64          `json:"predator"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
}

// ExportJSON writes a full trajectory with its provenance to w.
func ExportJSON(w io.Writer, model, integrator string, dt, duration float64, params map[string]float64, result *ecodyn.Result) error {
	data := ExportData{
		Model:      model,
		Integrator: integrator,
		Dt:         dt,
		Duration:   duration,
		Steps:      len(result.Times),
		Params:     params,
		Times:      result.Times,
		Prey:       result.Series(0),
		Predator:   result.Series(1),
		Metrics:    result.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSONFile writes the same document to a file path.
func ExportJSONFile(path, model, integrator string, dt, duration float64, params map[string]float64, result *ecodyn.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ExportJSON(f, model, integrator, dt, duration, params, result)
}
