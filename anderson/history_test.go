package anderson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// White-box checks of the ring buffer and the normal-equations
// rebuild: these pin the slot = iter mod k overwrite rule and the
// exact contents of Y/S/D/M against hand-reconstructed deltas.

// sub returns a − b element-wise.
func sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out
}

// dot returns ⟨a, b⟩.
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// clone guards the canonical sequences against Apply's in-place
// mutation of f.
func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// TestHistory_SlotContents feeds three recorded (x, f) pairs through a
// depth-2 accelerator and verifies each history slot holds exactly the
// difference vectors of the call that last wrote it: call n writes
// slot (n−1) mod k, so after three calls slot 0 holds call 3 (call 1
// destroyed) and slot 1 holds call 2.
func TestHistory_SlotContents(t *testing.T) {
	xs := [][]float64{
		{1, 2, 3},
		{0.5, 1, 1.5},
		{2, 0, 1},
	}
	fs := [][]float64{
		{0.5, 1, 1.5},
		{2, 0, 1},
		{1, 1, 1},
	}

	// Reconstruct the deltas independently: g = x − f against the
	// zero-initialized previous pair of call 0.
	prevX := []float64{0, 0, 0}
	prevF := []float64{0, 0, 0}
	prevG := []float64{0, 0, 0}
	var ys, ss, ds [][]float64
	for j := range xs {
		g := sub(xs[j], fs[j])
		ys = append(ys, sub(g, prevG))
		ss = append(ss, sub(xs[j], prevX))
		ds = append(ds, sub(fs[j], prevF))
		prevX, prevF, prevG = xs[j], fs[j], g
	}

	acc, err := New(3, 2, nil)
	require.NoError(t, err)
	defer acc.Close()

	for j := range xs {
		// Extrapolation may succeed or soft-fail; both leave history intact.
		_ = acc.Apply(clone(fs[j]), xs[j])
	}

	assert.InDeltaSlice(t, ys[2], acc.yy.Row(0), 1e-15, "slot 0 must hold call 3 residual deltas")
	assert.InDeltaSlice(t, ys[1], acc.yy.Row(1), 1e-15, "slot 1 must hold call 2 residual deltas")
	assert.InDeltaSlice(t, ss[2], acc.ss.Row(0), 1e-15, "slot 0 must hold call 3 step deltas")
	assert.InDeltaSlice(t, ss[1], acc.ss.Row(1), 1e-15, "slot 1 must hold call 2 step deltas")
	assert.InDeltaSlice(t, ds[2], acc.dd.Row(0), 1e-15, "slot 0 must hold call 3 map-output deltas")
	assert.InDeltaSlice(t, ds[1], acc.dd.Row(1), 1e-15, "slot 1 must hold call 2 map-output deltas")

	assert.Equal(t, 3, acc.iter)
}

// TestHistory_NormalMatrixMatchesHandBuilt verifies M against a direct
// reconstruction for both variants: M[i][j] = ⟨basis slot i, Y slot j⟩
// with basis = S (Type1) or Y (Type2), over the full depth including
// already-overwritten slots. The updates are driven directly because a
// full Apply would go on to LU-factor M's leading block in place
// (Solve works in place, as in any gesv-style solver), and here M must
// be observed as built, before any solve consumes it.
func TestHistory_NormalMatrixMatchesHandBuilt(t *testing.T) {
	xs := [][]float64{
		{1, 0},
		{0.25, -0.5},
		{0.8, 0.3},
	}
	fs := [][]float64{
		{0.25, -0.5},
		{0.8, 0.3},
		{0.1, 0.2},
	}

	for _, variant := range []Variant{Type1, Type2} {
		opts := DefaultOptions()
		opts.Variant = variant

		acc, err := New(2, 2, &opts)
		require.NoError(t, err)

		// Fold each pair into the history exactly as Apply does, minus
		// the extrapolation step that would overwrite M with factors.
		for j := range xs {
			acc.updateHistory(xs[j], fs[j])
			acc.iter++
		}

		basis := acc.yy
		if variant == Type1 {
			basis = acc.ss
		}
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				want := dot(basis.Row(i), acc.yy.Row(j))
				assert.InDelta(t, want, acc.m.Row(i)[j], 1e-14,
					"variant %d: M[%d][%d] must be the history dot product", variant, i, j)
			}
		}

		acc.Close()
	}
}

// TestHistory_UnwrittenSlotsStayZero verifies that before the ring
// wraps, the unwritten history rows and the matching rows/columns of M
// are still zero, so the solver's restriction to the leading
// activeWindow block reads exactly the populated history.
func TestHistory_UnwrittenSlotsStayZero(t *testing.T) {
	acc, err := New(2, 3, nil)
	require.NoError(t, err)
	defer acc.Close()

	_ = acc.Apply(clone([]float64{0.5, 0.5}), []float64{1, 1})
	_ = acc.Apply(clone([]float64{0.25, 0.25}), []float64{0.5, 0.5})

	zero := []float64{0, 0}
	assert.Equal(t, zero, acc.yy.Row(2), "slot 2 must be untouched before the ring wraps")
	assert.Equal(t, zero, acc.ss.Row(2), "slot 2 must be untouched before the ring wraps")
	assert.Equal(t, zero, acc.dd.Row(2), "slot 2 must be untouched before the ring wraps")

	for j := 0; j < 3; j++ {
		assert.Zero(t, acc.m.Row(2)[j], "M row beyond the active window must be zero")
		assert.Zero(t, acc.m.Row(j)[2], "M column beyond the active window must be zero")
	}
}
