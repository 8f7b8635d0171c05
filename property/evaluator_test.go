package property

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ramp returns a table whose sample i equals i, so a value reveals the index used
func ramp(t *testing.T, d Domain) *Table {
	samples := make([]float64, d.Size())
	for i := range samples {
		samples[i] = float64(i)
	}
	tbl, err := NewTable("ramp", samples, d)
	require.NoError(t, err)
	return tbl
}

func TestNewTableChecksLength(t *testing.T) {
	_, err := NewTable("short", make([]float64, HeliumDomain.Size()-1), HeliumDomain)
	assert.Error(t, err)
	_, err = NewTable("long", make([]float64, HeliumDomain.Size()+1), HeliumDomain)
	assert.Error(t, err)

	src := make([]float64, HeliumDomain.Size())
	tbl, err := NewTable("ok", src, HeliumDomain)
	require.NoError(t, err)
	src[0] = 42
	assert.Equal(t, 0.0, tbl.At(0), "table must not alias its input")
	assert.Equal(t, "ok", tbl.Name())
	assert.Equal(t, 668, tbl.Len())
}

func TestEvaluatePlateaus(t *testing.T) {
	d := HeliumDomain
	tbl := ramp(t, d)
	for _, T := range []float64{TMin, 1.4, 0, -10, math.Inf(-1)} {
		assert.Equal(t, tbl.At(IndexMin), Evaluate(tbl, T, d))
	}
	for _, T := range []float64{TMax, 2.2, TMax + 5, math.Inf(1)} {
		assert.Equal(t, tbl.At(IndexMax), Evaluate(tbl, T, d))
	}
	assert.Equal(t, Evaluate(tbl, TMax, d), Evaluate(tbl, TMax+5, d))
}

func TestEvaluateNearest(t *testing.T) {
	d := HeliumDomain
	tbl := ramp(t, d)
	assert.Equal(t, 400.0, Evaluate(tbl, 1.9, d))
	assert.Equal(t, 400.0, Evaluate(tbl, 1.9003, d))
	assert.Equal(t, 401.0, Evaluate(tbl, 1.9007, d))

	e := Evaluator{Domain: d}
	assert.Equal(t, Evaluate(tbl, 1.9007, d), e.Evaluate(tbl, 1.9007))
}

func TestEvaluatorLinear(t *testing.T) {
	d, err := NewDomain(0, 4, 3, 0.25)
	require.NoError(t, err)
	tbl := ramp(t, d)
	e := Evaluator{Domain: d, Mode: Linear}

	assert.InDelta(t, 2.5, e.Evaluate(tbl, 0.625), 1e-12)
	assert.InDelta(t, 2.2, e.Evaluate(tbl, 0.55), 1e-12)
	assert.Equal(t, 0.0, e.Evaluate(tbl, -1))
	assert.Equal(t, 16.0, e.Evaluate(tbl, 4))
	assert.Equal(t, 16.0, e.Evaluate(tbl, 9))

	// on grid points both modes agree
	nearest := Evaluator{Domain: d}
	for i := 0; i <= d.IndexMax; i++ {
		assert.Equal(t, nearest.Evaluate(tbl, d.Temperature(i)), e.Evaluate(tbl, d.Temperature(i)))
	}
}

func TestParseInterpolation(t *testing.T) {
	m, ok := ParseInterpolation("Linear")
	assert.True(t, ok)
	assert.Equal(t, Linear, m)

	m, ok = ParseInterpolation("")
	assert.True(t, ok)
	assert.Equal(t, Nearest, m)

	_, ok = ParseInterpolation("cubic")
	assert.False(t, ok)
	assert.Equal(t, "linear", Linear.String())
	assert.Equal(t, "nearest", Nearest.String())
}
