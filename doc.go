// Package accel packages Anderson Acceleration for fixed-point
// iterations — feed it each (x, F(x)) pair and it hands back an
// extrapolated next iterate that converges faster than the plain map.
//
// 🚀 What is accel?
//
//	A small, allocation-disciplined acceleration engine:
//		• anderson/ — the engine: ring-buffer history, normal-equations
//		  build, guarded per-iteration solve, explicit
//		  New/Apply/Close lifecycle
//		• linalg/   — the narrow dense linear-algebra seam
//		  (Nrm2/Axpy/Gemv/Gemm/Solve) with a gonum-backed default
//
// ✨ Why choose accel?
//
//   - Bounded memory — every buffer allocated once at construction,
//     O(l·k) total, nothing on the hot path
//   - Honest failure — singular or blown-up solves skip one step with
//     a diagnostic instead of corrupting the iteration
//   - Backend-agnostic — swap the numerical backend by implementing
//     five methods
//
// Quick sketch of one accelerated loop:
//
//	acc, _ := anderson.New(dim, 10, nil)
//	defer acc.Close()
//	for !converged {
//	  evaluateMap(f, x)   // f = F(x)
//	  _ = acc.Apply(f, x) // f becomes the accelerated next iterate
//	  copy(x, f)
//	}
//
// Dive into anderson's package documentation for the variant choice
// (Type1 vs Type2) and the failure policy.
//
//	go get github.com/katalvlaran/accel
package accel
