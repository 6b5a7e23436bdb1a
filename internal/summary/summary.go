// Package summary computes length statistics over validated records.
package summary

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"fastacheck-core/report"
)

// Stats describes the length distribution of one run.
type Stats struct {
	Records    int
	TotalBases int
	MinLength  int
	MaxLength  int
	Mean       float64
	StdDev     float64
	N50        int
	Ambiguous  int
}

// Compute summarizes records. StdDev is the sample standard deviation and
// is 0 for fewer than two records.
func Compute(records []report.Record) Stats {
	s := Stats{Records: len(records)}
	if len(records) == 0 {
		return s
	}

	lengths := make([]float64, len(records))
	for i, r := range records {
		lengths[i] = float64(r.Length)
		s.TotalBases += r.Length
		s.Ambiguous += r.Ambiguous
	}
	s.MinLength = int(floats.Min(lengths))
	s.MaxLength = int(floats.Max(lengths))
	s.Mean = stat.Mean(lengths, nil)
	if len(lengths) > 1 {
		s.StdDev = stat.StdDev(lengths, nil)
	}
	s.N50 = n50(lengths, s.TotalBases)
	return s
}

// n50 is the length of the shortest record among the longest ones that
// together cover at least half of total.
func n50(lengths []float64, total int) int {
	sorted := append([]float64(nil), lengths...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	acc := 0
	for _, l := range sorted {
		acc += int(l)
		if 2*acc >= total {
			return int(l)
		}
	}
	return 0
}

// AmbiguousFraction is Ambiguous over TotalBases, 0 for an empty run.
func (s Stats) AmbiguousFraction() float64 {
	if s.TotalBases == 0 {
		return 0
	}
	return float64(s.Ambiguous) / float64(s.TotalBases)
}
