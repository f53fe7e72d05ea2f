package anderson

import "github.com/katalvlaran/accel/linalg"

// Accelerator carries the complete Anderson-acceleration state for one
// fixed-point sequence: the previous iterate pair, the residual chain,
// a k-slot ring buffer of difference vectors and the normal-equations
// workspace. All buffers are allocated once in New, mutated in place
// by Apply and released together by Close; nothing is shared between
// instances and nothing allocates on the hot path.
//
// An Accelerator must not be used from more than one goroutine: each
// Apply depends on the full history left by its predecessors.
type Accelerator struct {
	variant Variant
	maxNorm float64
	ops     linalg.Ops

	k    int // memory depth; 0 turns Apply into a pass-through
	l    int // problem dimension
	iter int // completed Apply calls; monotone, never reset

	x, f  []float64 // iterate pair of the previous call (x_prev, f_prev)
	g     []float64 // residual g = x − f of the current update
	gPrev []float64 // residual stored at the end of the previous update

	y, s, d []float64 // per-update difference vectors (transient)

	// History ring buffers, one difference vector per row: row
	// (iter mod k) is overwritten on every update, silently replacing
	// the oldest entry once iter ≥ k. Rows past min(iter, k) are still
	// zero from allocation.
	yy, ss, dd linalg.Matrix

	m linalg.Matrix // k×k normal-equations matrix, rebuilt in full each update

	work []float64 // solve right-hand side, then the coefficients c
	ipiv []int     // LU pivot workspace
}

// New constructs an Accelerator for vectors of length dim that keeps
// the last depth iterations of history.
//
// depth = 0 disables acceleration entirely: Apply becomes a no-op and
// no buffers are allocated. opts may be nil, which selects
// DefaultOptions; unset option fields fall back to their defaults.
//
// Errors: ErrBadDimension if dim ≤ 0, ErrNegativeMemory if depth < 0.
// Construction is atomic — the caller gets either a usable
// accelerator or an error, never partial state.
func New(dim, depth int, opts *Options) (*Accelerator, error) {
	if dim <= 0 {
		return nil, ErrBadDimension
	}
	if depth < 0 {
		return nil, ErrNegativeMemory
	}

	o := opts.normalize()
	a := &Accelerator{
		variant: o.Variant,
		maxNorm: o.MaxNorm,
		ops:     o.Ops,
		k:       depth,
		l:       dim,
	}
	if depth == 0 {
		// Pass-through accelerator: no history, no workspace.
		return a, nil
	}

	a.x = make([]float64, dim)
	a.f = make([]float64, dim)
	a.g = make([]float64, dim)
	a.gPrev = make([]float64, dim)

	a.y = make([]float64, dim)
	a.s = make([]float64, dim)
	a.d = make([]float64, dim)

	a.yy = newMatrix(depth, dim)
	a.ss = newMatrix(depth, dim)
	a.dd = newMatrix(depth, dim)
	a.m = newMatrix(depth, depth)

	a.work = make([]float64, depth)
	a.ipiv = make([]int, depth)

	return a, nil
}

// newMatrix allocates a zeroed r×c row-major matrix.
func newMatrix(r, c int) linalg.Matrix {
	return linalg.Matrix{Rows: r, Cols: c, Stride: c, Data: make([]float64, r*c)}
}

// Apply performs one acceleration step.
//
// Description:
//
//	On entry f holds the raw map output F(x) for the current iterate x.
//	Apply folds the pair into the rolling history and, once at least
//	one prior update exists, overwrites f in place with the
//	extrapolated next iterate. On any failure f keeps the raw map
//	output, so the caller can always continue with plain iteration.
//
// Algorithm:
//  1. depth 0 → return immediately (pass-through).
//  2. Update the history ring buffer and rebuild the normal-equations
//     matrix from the pair (x, f).
//  3. First call → only prime the buffers; there is nothing to
//     extrapolate from yet.
//  4. Otherwise solve the leading activeWindow×activeWindow block of
//     M for the combination coefficients, activeWindow =
//     min(iter−1, depth), and apply them to f.
//
// Errors: ErrDimensionMismatch for wrong slice lengths; a *StepError
// wrapping ErrSingularSystem or ErrNormDiverged when this step's
// extrapolation was skipped. After a *StepError the accelerator
// remains fully usable — history was already updated.
//
// Complexity: O(l·k²) time, zero allocations.
func (a *Accelerator) Apply(f, x []float64) error {
	if a.k <= 0 {
		return nil
	}
	if len(f) != a.l || len(x) != a.l {
		return ErrDimensionMismatch
	}

	a.updateHistory(x, f)

	a.iter++
	if a.iter == 1 {
		// The very first call only primes the buffers: its history slot
		// was formed against the zero vector, not a real iterate.
		return nil
	}

	return a.extrapolate(f, min(a.iter-1, a.k))
}

// updateHistory folds the pair (x, f) into the ring buffer. The order
// below is load-bearing: every delta is taken against the previous
// call's x/f/g before those are overwritten for the next call.
func (a *Accelerator) updateHistory(x, f []float64) {
	slot := a.iter % a.k

	// g = x − f
	copy(a.g, x)
	a.ops.Axpy(-1, f, a.g)
	// s = x − x_prev
	copy(a.s, x)
	a.ops.Axpy(-1, a.x, a.s)
	// d = f − f_prev
	copy(a.d, f)
	a.ops.Axpy(-1, a.f, a.d)
	// y = g − g_prev
	copy(a.y, a.g)
	a.ops.Axpy(-1, a.gPrev, a.y)

	// Overwrite slot `slot`: once iter ≥ k this destroys the oldest
	// history entry.
	copy(a.yy.Row(slot), a.y)
	copy(a.ss.Row(slot), a.s)
	copy(a.dd.Row(slot), a.d)

	// This call's inputs become the next call's previous pair.
	copy(a.x, x)
	copy(a.f, f)

	a.setNormalMatrix()

	// This call's residual becomes the next call's g_prev.
	copy(a.gPrev, a.g)
}

// setNormalMatrix rebuilds M over all k history slots: M = SᵀY for
// Type1, YᵀY for Type2 in the column-stacked view, which is
// basis·Yᵀ over the row-stacked buffers. Slots beyond the active
// window are zero before the ring wraps and stale afterwards; both are
// harmless because extrapolate reads only the leading
// activeWindow×activeWindow block.
func (a *Accelerator) setNormalMatrix() {
	basis := a.yy
	if a.variant == Type1 {
		basis = a.ss
	}
	a.ops.Gemm(linalg.NoTrans, linalg.Trans, 1, basis, a.yy, 0, a.m)
}

// extrapolate solves the normal equations over the active window and
// overwrites f with the accelerated iterate.
//
//  1. c = basis·g — the right-hand side Sᵀg (Type1) or Yᵀg (Type2),
//     restricted to the window rows.
//  2. c ← M⁻¹·c by LU with partial pivoting on M's leading block.
//  3. Reject the step if the solve was singular or ‖c‖₂ breaches the
//     guard; f then keeps the raw map output.
//  4. f ← f − Dᵀ·c over the window rows — the accelerated iterate.
func (a *Accelerator) extrapolate(f []float64, window int) error {
	basis := a.yy
	if a.variant == Type1 {
		basis = a.ss
	}
	bwin := linalg.Matrix{Rows: window, Cols: a.l, Stride: basis.Stride, Data: basis.Data}
	mwin := linalg.Matrix{Rows: window, Cols: window, Stride: a.m.Stride, Data: a.m.Data}
	c := a.work[:window]

	a.ops.Gemv(linalg.NoTrans, 1, bwin, a.g, 0, c)

	solveErr := a.ops.Solve(mwin, c, a.ipiv[:window])

	// Written as !(nrm < max) so a NaN coefficient norm also fails.
	nrm := a.ops.Nrm2(c)
	switch {
	case solveErr != nil:
		return &StepError{Iteration: a.iter, Window: window, Norm: nrm, err: ErrSingularSystem}
	case !(nrm < a.maxNorm):
		return &StepError{Iteration: a.iter, Window: window, Norm: nrm, err: ErrNormDiverged}
	}

	dwin := linalg.Matrix{Rows: window, Cols: a.l, Stride: a.dd.Stride, Data: a.dd.Data}
	a.ops.Gemv(linalg.Trans, -1, dwin, c, 1, f)

	return nil
}

// Close releases every buffer the accelerator owns. It is safe on a
// nil receiver and idempotent on a live one; after Close the
// accelerator degrades to a pass-through (Apply returns nil and leaves
// f untouched).
func (a *Accelerator) Close() {
	if a == nil {
		return
	}
	a.x, a.f, a.g, a.gPrev = nil, nil, nil, nil
	a.y, a.s, a.d = nil, nil, nil
	a.yy, a.ss, a.dd, a.m = linalg.Matrix{}, linalg.Matrix{}, linalg.Matrix{}, linalg.Matrix{}
	a.work, a.ipiv = nil, nil
	a.k = 0
}

// Iterations returns the number of completed Apply calls.
func (a *Accelerator) Iterations() int { return a.iter }

// Dim returns the problem dimension l.
func (a *Accelerator) Dim() int { return a.l }

// Memory returns the configured memory depth k.
func (a *Accelerator) Memory() int { return a.k }

// Variant returns the configured acceleration variant.
func (a *Accelerator) Variant() Variant { return a.variant }
