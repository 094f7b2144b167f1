package arr

import (
	"math"
	"slices"
)

// Stats summarises a numeric slice.
//
// Length is always set. Summary is nil when the slice is empty, so "no data"
// is never confused with data that sums to zero. Check [Stats.HasData] before
// reading the promoted fields.
type Stats struct {
	Length int `json:"length"`
	*Summary
}

// Summary holds the statistics that only exist for a non-empty slice.
type Summary struct {
	Sum     float64 `json:"sum"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Median  float64 `json:"median"`
	// Mode lists every value tied for the highest frequency, ascending.
	Mode              []float64 `json:"mode"`
	StandardDeviation float64   `json:"standardDeviation"`
}

// HasData reports whether the summary fields are present.
func (s Stats) HasData() bool { return s.Summary != nil }

// GetStats computes length, sum, average, min, max, median, mode and the
// population standard deviation of items.
//
//	arr.GetStats([]int{1, 2, 3, 4, 5})
//	// → {Length:5 Sum:15 Average:3 Min:1 Max:5 Median:3 Mode:[1 2 3 4 5] StandardDeviation:√2}
func GetStats[N Number](items []N) Stats {
	n := len(items)
	if n == 0 {
		return Stats{Length: 0}
	}

	values := Map(items, func(v N, _ int, _ []N) float64 { return float64(v) })
	sorted := clone(values)
	slices.Sort(sorted)

	sum := Reduce(values, func(acc, v float64, _ int, _ []float64) float64 { return acc + v }, 0)
	average := sum / float64(n)

	var median float64
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	} else {
		median = sorted[n/2]
	}

	variance := Reduce(values, func(acc, v float64, _ int, _ []float64) float64 {
		d := v - average
		return acc + d*d
	}, 0) / float64(n)

	return Stats{
		Length: n,
		Summary: &Summary{
			Sum:               sum,
			Average:           average,
			Min:               sorted[0],
			Max:               sorted[n-1],
			Median:            median,
			Mode:              mode(values),
			StandardDeviation: math.Sqrt(variance),
		},
	}
}

func mode(values []float64) []float64 {
	freq := GroupBy(values, func(v float64) float64 { return v })
	best := 0
	for _, bucket := range freq.All() {
		best = max(best, len(bucket))
	}
	out := make([]float64, 0, freq.Len())
	for k, bucket := range freq.All() {
		if len(bucket) == best {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}
