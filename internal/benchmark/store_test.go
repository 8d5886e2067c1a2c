package benchmark

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResult(t *testing.T, fsys afero.Fs, path string, mean float64) {
	t.Helper()
	body := fmt.Sprintf(`{"results":[{"command":"santa-cli bench","mean":%g,"stddev":0.001,"times":[%g]}]}`, mean, mean)
	require.NoError(t, afero.WriteFile(fsys, path, []byte(body), 0644))
}

func TestLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeResult(t, fsys, "results/fib_v1.json", 0.1)

	file, err := Load(fsys, "results/fib_v1.json")
	require.NoError(t, err)
	assert.Equal(t, "results/fib_v1.json", file.Path)
	assert.Equal(t, "santa-cli bench", file.Results[0].Command)
	assert.InDelta(t, 100.0, file.MeanMillis(), 1e-9)
	assert.Equal(t, 0.001, file.Results[0].Stddev)
	assert.Equal(t, []float64{0.1}, file.Results[0].Times)
}

func TestLoad_OptionalStatsDefaultToZero(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "a.json", []byte(`{"results":[{"mean":0.5}]}`), 0644))

	file, err := Load(fsys, "a.json")
	require.NoError(t, err)
	assert.Zero(t, file.Results[0].Stddev)
	assert.Zero(t, file.Results[0].Median)
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"results": [`},
		{"empty results", `{"results": []}`},
		{"missing results", `{}`},
		{"missing mean", `{"results": [{"command": "x", "median": 0.2}]}`},
		{"wrong type", `{"results": [{"mean": "fast"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fsys, "bad.json", []byte(tt.body), 0644))

			_, err := Load(fsys, "bad.json")
			assert.ErrorIs(t, err, ErrMalformedResult)
			assert.Contains(t, err.Error(), "bad.json")
		})
	}
}

func TestLoad_ZeroMeanIsNotMissing(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeResult(t, fsys, "zero.json", 0)

	file, err := Load(fsys, "zero.json")
	require.NoError(t, err)
	assert.Equal(t, 0.0, file.MeanMillis())
}

func TestLoad_NotExist(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "nope.json")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrMalformedResult)
}

func TestFixtureNames(t *testing.T) {
	assert.Equal(t, "fibonacci", FixtureFromPair("out/fibonacci_v1.json"))
	assert.Equal(t, "fibonacci", FixtureFromPair("fibonacci_v2.json"))
	assert.Equal(t, "a_v1_b", FixtureFromPair("a_v1_b_v1.json"))
	assert.Equal(t, "plain", FixtureFromPair("plain.json"))

	assert.Equal(t, "a", FixtureFromFile("charts/a_v1.json"))
	assert.Equal(t, "a", FixtureFromFile("a_v2.json"))
	assert.Equal(t, "pre_post", FixtureFromFile("pre_v1_post.json"))
	assert.Equal(t, "baseline", FixtureFromFile("baseline.json"))
}

func TestFindPairs(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeResult(t, fsys, "results/zeta_v1.json", 0.1)
	writeResult(t, fsys, "results/zeta_v2.json", 0.1)
	writeResult(t, fsys, "results/alpha_v1.json", 0.1)
	writeResult(t, fsys, "results/alpha_v2.json", 0.1)
	writeResult(t, fsys, "results/orphan_v1.json", 0.1)
	writeResult(t, fsys, "results/lonely_v2.json", 0.1)
	writeResult(t, fsys, "results/notes.json", 0.1)

	pairs, err := FindPairs(fsys, "results")
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	assert.Equal(t, "alpha", pairs[0].Fixture)
	assert.Equal(t, "results/alpha_v1.json", pairs[0].V1Path)
	assert.Equal(t, "results/alpha_v2.json", pairs[0].V2Path)
	assert.Equal(t, "zeta", pairs[1].Fixture)
}

func TestFindPairs_Empty(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("results", 0755))

	pairs, err := FindPairs(fsys, "results")
	assert.NoError(t, err)
	assert.Empty(t, pairs)
}
