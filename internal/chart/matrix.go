// Package chart groups result files by fixture and version and renders
// them as a grouped bar chart.
package chart

import (
	"sort"
	"strings"

	"github.com/spf13/afero"

	"benchreport/internal/benchmark"
	"benchreport/internal/telemetry"
)

// Matrix maps fixture name to version label to mean in milliseconds.
type Matrix struct {
	data map[string]map[string]float64
}

func NewMatrix() *Matrix {
	return &Matrix{data: make(map[string]map[string]float64)}
}

// Add records a mean, replacing any earlier value for the same cell.
func (m *Matrix) Add(fixture, version string, millis float64) {
	row, ok := m.data[fixture]
	if !ok {
		row = make(map[string]float64)
		m.data[fixture] = row
	}
	row[version] = millis
}

// Get returns the mean for a cell and whether it was recorded.
func (m *Matrix) Get(fixture, version string) (float64, bool) {
	v, ok := m.data[fixture][version]
	return v, ok
}

// Len is the number of distinct fixtures.
func (m *Matrix) Len() int {
	return len(m.data)
}

// Fixtures returns fixture names sorted lexicographically.
func (m *Matrix) Fixtures() []string {
	fixtures := make([]string, 0, len(m.data))
	for f := range m.data {
		fixtures = append(fixtures, f)
	}
	sort.Strings(fixtures)
	return fixtures
}

// Versions returns every version label seen, sorted lexicographically.
func (m *Matrix) Versions() []string {
	set := make(map[string]struct{})
	for _, row := range m.data {
		for v := range row {
			set[v] = struct{}{}
		}
	}
	versions := make([]string, 0, len(set))
	for v := range set {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}

// AssignVersion picks the version label for a file stem. Files marked
// _v1 or _v2 take the first or second label. Any other file takes the
// label at index seen (the number of fixtures recorded so far), falling
// back to its own stem.
func AssignVersion(stem string, labels []string, seen int) string {
	switch {
	case strings.Contains(stem, "_v1"):
		if len(labels) > 0 {
			return labels[0]
		}
		return "v1"
	case strings.Contains(stem, "_v2"):
		if len(labels) > 1 {
			return labels[1]
		}
		return "v2"
	case seen < len(labels):
		return labels[seen]
	default:
		return stem
	}
}

// Build loads files in order and groups their means. It stops at the
// first file that cannot be loaded.
func Build(fs afero.Fs, files []string, labels []string) (*Matrix, error) {
	m := NewMatrix()
	for _, path := range files {
		file, err := benchmark.Load(fs, path)
		if err != nil {
			return nil, err
		}

		version := AssignVersion(benchmark.Stem(path), labels, m.Len())
		fixture := benchmark.FixtureFromFile(path)
		telemetry.LogDebug("Loaded result", "path", path, "fixture", fixture, "version", version)

		m.Add(fixture, version, file.MeanMillis())
	}
	return m, nil
}
