package benchmark

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"benchreport/internal/telemetry"
)

var (
	// ErrMalformedResult is returned when a result file cannot be decoded
	// or lacks results[0].mean.
	ErrMalformedResult = errors.New("malformed result file")

	// ErrZeroBaseline is returned when the v1 mean is zero and no
	// percentage change can be computed.
	ErrZeroBaseline = errors.New("baseline mean is zero")
)

const (
	v1Suffix = "_v1.json"
	v2Suffix = "_v2.json"
)

// Load reads and validates a result file.
func Load(fs afero.Fs, path string) (*ResultFile, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file ResultFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformedResult, path, err)
	}
	if len(file.Results) == 0 {
		return nil, fmt.Errorf("%w %s: results is empty", ErrMalformedResult, path)
	}
	if file.Results[0].Mean == nil {
		return nil, fmt.Errorf("%w %s: results[0].mean is missing", ErrMalformedResult, path)
	}

	file.Path = path
	return &file, nil
}

// FixtureFromPair strips the trailing version suffix from a pair file name.
func FixtureFromPair(name string) string {
	base := filepath.Base(name)
	if s, ok := strings.CutSuffix(base, v1Suffix); ok {
		return s
	}
	if s, ok := strings.CutSuffix(base, v2Suffix); ok {
		return s
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FixtureFromFile removes every _v1 and _v2 marker from the file stem.
func FixtureFromFile(path string) string {
	stem := Stem(path)
	stem = strings.ReplaceAll(stem, "_v1", "")
	return strings.ReplaceAll(stem, "_v2", "")
}

// Stem is the base name without its final extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FindPairs lists fixtures in dir that have both a _v1 and a _v2 file,
// sorted by fixture name. Fixtures missing either side are skipped.
func FindPairs(fs afero.Fs, dir string) ([]Pair, error) {
	matches, err := afero.Glob(fs, filepath.Join(dir, "*"+v1Suffix))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	seen := make(map[string]bool)
	var pairs []Pair
	for _, m := range matches {
		fixture := FixtureFromPair(m)
		if seen[fixture] {
			continue
		}
		seen[fixture] = true

		v1 := filepath.Join(dir, fixture+v1Suffix)
		v2 := filepath.Join(dir, fixture+v2Suffix)
		if !exists(fs, v1) || !exists(fs, v2) {
			telemetry.LogDebug("Skipping incomplete fixture", "fixture", fixture, "dir", dir)
			continue
		}
		pairs = append(pairs, Pair{Fixture: fixture, V1Path: v1, V2Path: v2})
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Fixture < pairs[j].Fixture
	})
	return pairs, nil
}

func exists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}
