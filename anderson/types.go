// Package anderson declares the acceleration variants and options.
package anderson

import "github.com/katalvlaran/accel/linalg"

// Variant selects which difference vectors form the k×k
// normal-equations matrix M.
//
//   - Type2 — M = YᵀY: residual differences y = g − g_prev, the
//     least-squares / Gram formulation ("Type-II" AA). The default.
//   - Type1 — M = SᵀY: step differences s = x − x_prev as the
//     projection basis ("Type-I" AA).
type Variant int

const (
	// Type2 builds M from residual differences (YᵀY). Zero value,
	// hence the default.
	Type2 Variant = iota
	// Type1 builds M from step differences (SᵀY).
	Type1
)

// DefaultMaxNorm bounds the combination-coefficient norm ‖c‖₂.
// A solve whose coefficients exceed it is treated as diverged and the
// step falls back to the raw map output.
const DefaultMaxNorm = 1e4

// Options configures an Accelerator.
//
// Fields:
//   - Variant — Type2 (YᵀY) or Type1 (SᵀY) normal equations.
//   - MaxNorm — coefficient-norm guard; values ≤ 0 select
//     DefaultMaxNorm.
//   - Ops     — dense linear-algebra backend; nil selects the
//     gonum-backed linalg.BLAS.
//
// Example:
//
//	opts := anderson.DefaultOptions()
//	opts.Variant = anderson.Type1
//	acc, err := anderson.New(dim, 10, &opts)
type Options struct {
	Variant Variant
	MaxNorm float64
	Ops     linalg.Ops
}

// DefaultOptions returns the canonical configuration: Type2 normal
// equations, DefaultMaxNorm guard and the gonum-backed BLAS backend.
func DefaultOptions() Options {
	return Options{
		Variant: Type2,
		MaxNorm: DefaultMaxNorm,
		Ops:     linalg.BLAS{},
	}
}

// normalize fills unset fields with their defaults, leaving opts nil-safe.
func (o *Options) normalize() Options {
	n := DefaultOptions()
	if o == nil {
		return n
	}
	n.Variant = o.Variant
	if o.MaxNorm > 0 {
		n.MaxNorm = o.MaxNorm
	}
	if o.Ops != nil {
		n.Ops = o.Ops
	}

	return n
}
