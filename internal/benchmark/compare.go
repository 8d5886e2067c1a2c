package benchmark

import (
	"fmt"
	"math"

	"github.com/spf13/afero"
)

// Classify maps a percentage change to a Status. Changes of exactly
// SignificanceThreshold in either direction count as significant.
func Classify(change float64) Status {
	switch {
	case math.Abs(change) < SignificanceThreshold:
		return NoChange
	case change < 0:
		return Improved
	default:
		return Regressed
	}
}

// PercentChange returns (curr - prev) / prev * 100.
func PercentChange(prev, curr float64) (float64, error) {
	if prev == 0 {
		return 0, ErrZeroBaseline
	}
	return (curr - prev) / prev * 100, nil
}

// ComparePair loads both sides of a fixture and builds its report row.
func ComparePair(fs afero.Fs, p Pair) (Comparison, error) {
	v1, err := Load(fs, p.V1Path)
	if err != nil {
		return Comparison{}, err
	}
	v2, err := Load(fs, p.V2Path)
	if err != nil {
		return Comparison{}, err
	}

	comp := Comparison{
		Name:     p.Fixture,
		V1Millis: v1.MeanMillis(),
		V2Millis: v2.MeanMillis(),
	}
	comp.Change, err = PercentChange(comp.V1Millis, comp.V2Millis)
	if err != nil {
		return Comparison{}, fmt.Errorf("fixture %s: %w", p.Fixture, err)
	}
	comp.Status = Classify(comp.Change)
	return comp, nil
}

// CompareDir compares every complete fixture pair in dir.
// It stops at the first fixture that fails to load or compare.
func CompareDir(fs afero.Fs, dir string) ([]Comparison, error) {
	pairs, err := FindPairs(fs, dir)
	if err != nil {
		return nil, err
	}

	comparisons := make([]Comparison, 0, len(pairs))
	for _, p := range pairs {
		comp, err := ComparePair(fs, p)
		if err != nil {
			return nil, err
		}
		comparisons = append(comparisons, comp)
	}
	return comparisons, nil
}

// Summarize counts the rows in each status.
func Summarize(comparisons []Comparison) Summary {
	var s Summary
	for _, c := range comparisons {
		switch c.Status {
		case Improved:
			s.Improved++
		case Regressed:
			s.Regressed++
		default:
			s.Unchanged++
		}
	}
	return s
}
