package chart

import (
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchreport/internal/benchmark"
)

func writeResult(t *testing.T, fsys afero.Fs, path string, mean float64) {
	t.Helper()
	body := fmt.Sprintf(`{"results":[{"command":"bench","mean":%g}]}`, mean)
	require.NoError(t, afero.WriteFile(fsys, path, []byte(body), 0644))
}

func TestAssignVersion(t *testing.T) {
	tests := []struct {
		name   string
		stem   string
		labels []string
		seen   int
		want   string
	}{
		{"v1 default", "a_v1", nil, 0, "v1"},
		{"v2 default", "a_v2", nil, 0, "v2"},
		{"v1 labeled", "a_v1", []string{"old", "new"}, 3, "old"},
		{"v2 labeled", "a_v2", []string{"old", "new"}, 3, "new"},
		{"v2 with one label", "a_v2", []string{"old"}, 0, "v2"},
		{"v1 wins over v2", "a_v1_v2", []string{"old", "new"}, 0, "old"},
		{"positional", "baseline", []string{"x", "y", "z"}, 2, "z"},
		{"positional exhausted", "baseline", []string{"x"}, 1, "baseline"},
		{"no labels", "baseline", nil, 0, "baseline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssignVersion(tt.stem, tt.labels, tt.seen))
		})
	}
}

func TestMatrix(t *testing.T) {
	m := NewMatrix()
	m.Add("zeta", "v2", 3)
	m.Add("alpha", "v1", 1)
	m.Add("alpha", "v2", 2)
	m.Add("alpha", "v2", 4)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"alpha", "zeta"}, m.Fixtures())
	assert.Equal(t, []string{"v1", "v2"}, m.Versions())

	v, ok := m.Get("alpha", "v2")
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)

	_, ok = m.Get("zeta", "v1")
	assert.False(t, ok)
}

func TestBuild_Labels(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeResult(t, fsys, "results/a_v1.json", 0.1)
	writeResult(t, fsys, "results/a_v2.json", 0.08)

	m, err := Build(fsys, []string{"results/a_v1.json", "results/a_v2.json"}, []string{"old", "new"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, m.Fixtures())
	assert.Equal(t, []string{"new", "old"}, m.Versions())

	old, ok := m.Get("a", "old")
	require.True(t, ok)
	assert.InDelta(t, 100.0, old, 1e-9)

	updated, ok := m.Get("a", "new")
	require.True(t, ok)
	assert.InDelta(t, 80.0, updated, 1e-9)
}

func TestBuild_PositionalLabels(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeResult(t, fsys, "main.json", 0.2)
	writeResult(t, fsys, "branch.json", 0.3)
	writeResult(t, fsys, "extra.json", 0.4)

	m, err := Build(fsys, []string{"main.json", "branch.json", "extra.json"}, []string{"first", "second"})
	require.NoError(t, err)

	// Each file is its own fixture. The third runs out of labels and uses its stem.
	_, ok := m.Get("main", "first")
	assert.True(t, ok)
	_, ok = m.Get("branch", "second")
	assert.True(t, ok)
	_, ok = m.Get("extra", "extra")
	assert.True(t, ok)
}

func TestBuild_FailsFast(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeResult(t, fsys, "ok_v1.json", 0.1)
	require.NoError(t, afero.WriteFile(fsys, "bad_v2.json", []byte(`{"results":[{}]}`), 0644))

	_, err := Build(fsys, []string{"ok_v1.json", "bad_v2.json"}, nil)
	assert.ErrorIs(t, err, benchmark.ErrMalformedResult)

	_, err = Build(fsys, []string{"missing.json"}, nil)
	assert.Error(t, err)
}
