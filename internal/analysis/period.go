package analysis

import "gonum.org/v1/gonum/stat"

// Period estimates the oscillation period of a population series from
// the mean spacing between its local maxima. Returns 0 when fewer than
// two peaks exist (the series never completed a cycle).
func Period(times, series []float64) float64 {
	if len(times) != len(series) || len(series) < 3 {
		return 0
	}

	peaks := make([]float64, 0, 8)
	for i := 1; i < len(series)-1; i++ {
		if series[i] > series[i-1] && series[i] >= series[i+1] {
			peaks = append(peaks, times[i])
		}
	}
	if len(peaks) < 2 {
		return 0
	}

	gaps := make([]float64, len(peaks)-1)
	for i := 1; i < len(peaks); i++ {
		gaps[i-1] = peaks[i] - peaks[i-1]
	}
	return stat.Mean(gaps, nil)
}
