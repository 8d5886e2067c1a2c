package chart

import "fmt"

// ClusterWidth is the share of one x unit taken by a fixture's bars.
const ClusterWidth = 0.8

// Bar is one drawn bar in data coordinates.
type Bar struct {
	Fixture string
	X       float64 // Bar center
	Value   float64
	Label   string // Empty when Value is zero
}

// Series holds every bar of one version.
type Series struct {
	Version string
	Width   float64
	Bars    []Bar
}

// Layout places one bar per recorded (fixture, version) cell. Fixture i
// is centered at x = i and its versions split ClusterWidth evenly.
func Layout(m *Matrix) []Series {
	fixtures := m.Fixtures()
	versions := m.Versions()
	if len(versions) == 0 {
		return nil
	}

	n := float64(len(versions))
	width := ClusterWidth / n

	series := make([]Series, 0, len(versions))
	for i, version := range versions {
		offset := width*float64(i) - width*n/2 + width/2
		s := Series{Version: version, Width: width}
		for x, fixture := range fixtures {
			value, ok := m.Get(fixture, version)
			if !ok {
				continue
			}
			bar := Bar{Fixture: fixture, X: float64(x) + offset, Value: value}
			if value != 0 {
				bar.Label = fmt.Sprintf("%.1f", value)
			}
			s.Bars = append(s.Bars, bar)
		}
		series = append(series, s)
	}
	return series
}

// MaxValue returns the tallest bar across all series.
func MaxValue(series []Series) float64 {
	var top float64
	for _, s := range series {
		for _, b := range s.Bars {
			if b.Value > top {
				top = b.Value
			}
		}
	}
	return top
}
