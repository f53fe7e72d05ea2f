// Package linalg is the dense linear-algebra seam of the accel module:
// a narrow, BLAS-shaped capability interface over flat row-major
// buffers, plus a default backend built on gonum.
//
// 🚀 What is linalg?
//
//	The acceleration engine needs exactly five dense operations:
//	  • Nrm2  — Euclidean norm of a vector
//	  • Axpy  — y += α·x, in place
//	  • Gemv  — y = α·op(A)·x + β·y
//	  • Gemm  — C = α·op(A)·op(B) + β·C
//	  • Solve — A·x = b by LU with partial pivoting, in place
//	Ops bundles them so the engine never names a concrete numerical
//	backend; Matrix is a plain {Rows, Cols, Stride, Data} view that any
//	BLAS-style implementation can consume without copying.
//
// ✨ Why a seam and not gonum directly?
//
//   - Sub-block views — the engine solves leading minors and row
//     windows of long-lived buffers; Matrix reslices, never reallocates
//   - Swappable backend — tests or callers may plug any Ops (a pure-Go
//     fallback, an accelerated BLAS) without touching the engine
//   - Failure as a value — Solve reports a singular system as
//     ErrSingular instead of a panic or an info code
//
// ⚙️ Usage:
//
//	var ops linalg.Ops = linalg.BLAS{}
//	a := linalg.Matrix{Rows: 2, Cols: 2, Stride: 2, Data: []float64{2, 1, 1, 3}}
//	b := []float64{3, 5}
//	ipiv := make([]int, 2)
//	if err := ops.Solve(a, b, ipiv); err != nil {
//	  // system was singular; b is untouched
//	}
//	// b now holds the solution; a holds the LU factors.
//
// The default BLAS backend delegates to gonum.org/v1/gonum (blas64 and
// lapack64). Dimension agreement between arguments is the caller's
// contract, as in BLAS itself.
package linalg
