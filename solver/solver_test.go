package solver_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/zcb/solver"
)

func TestNewton_FindsRoot(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x*x - 2 }
	root, err := solver.Newton(f, 1.0, 1e-10, 50)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-8)
}

func TestNewton_DecreasingPriceStyleObjective(t *testing.T) {
	t.Parallel()

	// The shape the yield solver sees: a convex decreasing discounting
	// curve minus a target price.
	f := func(y float64) float64 { return 100.0/math.Pow(1.0+y, 5) - 78.35 }
	root, err := solver.Newton(f, 0.05, 1e-8, 50)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(100.0/78.35, 0.2)-1.0, root, 1e-8)
}

func TestNewton_ZeroDerivative(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x*x + 1 }
	_, err := solver.Newton(f, 0.0, 1e-10, 50)
	require.ErrorIs(t, err, solver.ErrZeroDerivative)
}

func TestNewton_NonConvergence(t *testing.T) {
	t.Parallel()

	// Classic two-cycle for Newton from x=0.
	f := func(x float64) float64 { return x*x*x - 2*x + 2 }
	_, err := solver.Newton(f, 0.0, 1e-12, 50)
	require.Error(t, err)
}

func TestBrent_FindsRoot(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x*x - 2 }
	root, err := solver.Brent(f, 0.0, 2.0, 1e-10)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-8)
}

func TestBrent_EndpointRoot(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x - 1 }
	root, err := solver.Brent(f, 1.0, 2.0, 1e-10)
	require.NoError(t, err)
	assert.Equal(t, 1.0, root)
}

func TestBrent_BadBracket(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x*x - 2 }
	_, err := solver.Brent(f, 2.0, 3.0, 1e-10)
	require.ErrorIs(t, err, solver.ErrBadBracket)
}

func TestBrent_NPVStyleObjective(t *testing.T) {
	t.Parallel()

	// An IRR-style objective: buy at 95, receive 100 a year later.
	f := func(r float64) float64 { return -95.0 + 100.0/(1.0+r) }
	root, err := solver.Brent(f, -0.9999, 5.0, 1e-10)
	require.NoError(t, err)
	assert.InDelta(t, 100.0/95.0-1.0, root, 1e-8)
}
