// Package anderson accelerates fixed-point iterations x_{n+1} = f(x_n)
// with Anderson Acceleration (AA): each step extrapolates from a short
// rolling history of iterates and residuals to a point that converges
// faster than the plain iteration.
//
// 🚀 What is Anderson Acceleration?
//
//	Given the last few residuals g = x − f(x), AA solves a tiny normal
//	equations system for combination coefficients c and replaces the
//	raw map output with a weighted combination of recent map outputs.
//	For contractive and many merely non-expansive maps this turns slow
//	geometric convergence into something close to superlinear. It is
//	the workhorse behind accelerated splitting methods in large-scale
//	convex solvers.
//
// ✨ Key features:
//   - Two classical variants: Type1 (SᵀY, step-difference basis) and
//     Type2 (YᵀY, least-squares residual basis)
//   - Bounded memory — fixed ring buffer of k history slots, all
//     allocation at construction, none on the hot path
//   - Soft failure — a singular or blown-up solve skips one step and
//     returns a diagnostic; history stays intact and the caller's raw
//     map output is preserved
//   - Pluggable dense backend — all vector/matrix work flows through
//     linalg.Ops (gonum by default)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/accel/anderson"
//
//	acc, err := anderson.New(dim, 10, nil) // nil opts → Type2 defaults
//	if err != nil { ... }
//	defer acc.Close()
//
//	x, f := x0, make([]float64, dim)
//	for i := 0; i < maxIter; i++ {
//	  evaluateMap(f, x)            // f = F(x), the caller's map
//	  if err := acc.Apply(f, x); err != nil {
//	    // acceleration skipped this step; f still holds F(x)
//	  }
//	  copy(x, f)                   // f is the (possibly accelerated) next iterate
//	}
//
// The accelerator is strictly sequential: one Apply at a time per
// instance, each depending on the full history of its predecessors.
// It never spawns goroutines and holds no global state.
//
// Complexity per Apply: O(l·k) vector work + O(l·k²)
// normal-equations rebuild + O(k³) solve, for dimension l and memory
// depth k (k ≪ l in practice). Memory: O(l·k), fixed at New.
package anderson
