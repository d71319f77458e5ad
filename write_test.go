package glp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildExportProblem(t *testing.T) *Problem {
	t.Helper()

	prob, err := NewProblem("export", Maximize)
	require.NoError(t, err)
	t.Cleanup(prob.Close)

	_, err = prob.AddColumns(2)
	require.NoError(t, err)
	for j := 0; j < 2; j++ {
		require.NoError(t, prob.SetColumnBounds(j, RangeBounds(0, 10)))
		prob.SetObjectiveCoefficient(j, 1)
	}

	_, err = prob.AddRows(1)
	require.NoError(t, err)
	require.NoError(t, prob.SetRowBounds(0, UpperBounds(5)))
	require.NoError(t, prob.SetRowCoefficients(0, []int32{0, 1}, []float64{1, 1}))

	return prob
}

func TestWriteFile(t *testing.T) {
	prob := buildExportProblem(t)
	dir := t.TempDir()

	for name, format := range map[string]Format{
		"model.lp":   FormatCPLEXLP,
		"model.mps":  FormatMPSFree,
		"model.deck": FormatMPSFixed,
		"model.glp":  FormatGLPK,
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, prob.WriteFile(path, format))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestWriteFileFailure(t *testing.T) {
	prob := buildExportProblem(t)

	path := filepath.Join(t.TempDir(), "no", "such", "dir", "model.lp")
	err := prob.WriteFile(path, FormatCPLEXLP)
	assert.ErrorIs(t, err, ErrFileWriteFailed)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteFileUnknownFormat(t *testing.T) {
	prob := buildExportProblem(t)

	err := prob.WriteFile(filepath.Join(t.TempDir(), "model"), Format(42))
	assert.ErrorIs(t, err, ErrFileWriteFailed)
}
