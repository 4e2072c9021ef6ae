package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Distribution summarizes one metric across runs.
type Distribution struct {
	Mean   float64
	StdDev float64
	P10    float64
	P50    float64
	P90    float64
	Max    float64
}

// Summary aggregates a batch of runs.
type Summary struct {
	Runs     int
	Ended    int // Runs that reached game over before the tick limit
	Score    Distribution
	Level    Distribution
	Ticks    Distribution
	HitsMean float64
}

// Summarize computes score, level and survival statistics.
func Summarize(records []RunRecord) Summary {
	sum := Summary{Runs: len(records)}
	if len(records) == 0 {
		return sum
	}

	scores := make([]float64, len(records))
	levels := make([]float64, len(records))
	ticks := make([]float64, len(records))
	hits := make([]float64, len(records))
	for i, r := range records {
		scores[i] = float64(r.Score)
		levels[i] = float64(r.Level)
		ticks[i] = float64(r.Ticks)
		hits[i] = float64(r.Hits)
		if r.Ended {
			sum.Ended++
		}
	}

	sum.Score = distribution(scores)
	sum.Level = distribution(levels)
	sum.Ticks = distribution(ticks)
	sum.HitsMean = stat.Mean(hits, nil)
	return sum
}

// distribution sorts values in place and describes them.
func distribution(values []float64) Distribution {
	sort.Float64s(values)
	d := Distribution{
		Mean: stat.Mean(values, nil),
		P10:  stat.Quantile(0.1, stat.Empirical, values, nil),
		P50:  stat.Quantile(0.5, stat.Empirical, values, nil),
		P90:  stat.Quantile(0.9, stat.Empirical, values, nil),
		Max:  values[len(values)-1],
	}
	if len(values) > 1 {
		d.StdDev = stat.StdDev(values, nil)
	}
	return d
}
