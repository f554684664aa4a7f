package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/ecolab-sim/ecolab/internal/experiment"
)

// Summary describes one scalar collected across a batch of runs.
type Summary struct {
	Name   string
	Runs   int
	Mean   float64
	StdDev float64
	Min    float64
	Median float64
	Max    float64
}

// Reduce maps one run's output series to a scalar, e.g. the final or
// peak population.
type Reduce func(series []float64) float64

func Final(series []float64) float64 {
	if len(series) == 0 {
		return math.NaN()
	}
	return series[len(series)-1]
}

func Peak(series []float64) float64 {
	if len(series) == 0 {
		return math.NaN()
	}
	max := series[0]
	for _, v := range series[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Summarize reduces one named output across all successful runs of a
// batch to distribution statistics. Failed runs are skipped.
func Summarize(name string, results []experiment.RunResult, reduce Reduce) Summary {
	values := make([]float64, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		series, ok := res.Outputs[name]
		if !ok {
			continue
		}
		values = append(values, reduce(series))
	}

	s := Summary{Name: name, Runs: len(values)}
	if len(values) == 0 {
		s.Mean, s.StdDev, s.Min, s.Median, s.Max = math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()
		return s
	}

	sort.Float64s(values)
	s.Mean = stat.Mean(values, nil)
	s.StdDev = stat.StdDev(values, nil)
	s.Min = values[0]
	s.Max = values[len(values)-1]
	s.Median = stat.Quantile(0.5, stat.Empirical, values, nil)
	return s
}
