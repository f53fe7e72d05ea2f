// Package linalg defines the dense matrix view and the narrow
// operation set the acceleration engine depends on.
package linalg

// Transpose selects op(A) for matrix products.
type Transpose int

const (
	// NoTrans uses the matrix as stored: op(A) = A.
	NoTrans Transpose = iota
	// Trans uses the transpose: op(A) = Aᵀ.
	Trans
)

// Matrix is a dense row-major view over a flat float64 buffer.
// Row i occupies Data[i*Stride : i*Stride+Cols]; Stride must be ≥ Cols
// and stays fixed when a view narrows, so leading minors and row
// windows of a larger buffer are expressed by shrinking Rows/Cols
// without copying. A Matrix never owns Data.
type Matrix struct {
	Rows, Cols int
	Stride     int
	Data       []float64
}

// Row returns the i-th row of m as a slice aliasing m.Data.
func (m Matrix) Row(i int) []float64 {
	return m.Data[i*m.Stride : i*m.Stride+m.Cols]
}

// Ops is the dense linear-algebra capability consumed by the
// acceleration engine. Implementations operate on flat buffers and
// must not retain or reallocate them; every call is synchronous and
// allocation-free on the hot path.
//
// Dimension agreement between arguments is the caller's contract, as
// in BLAS: a mismatched call is a programmer error, not a runtime
// condition.
type Ops interface {
	// Nrm2 returns the Euclidean norm ‖x‖₂.
	Nrm2(x []float64) float64

	// Axpy accumulates y += alpha·x in place.
	Axpy(alpha float64, x, y []float64)

	// Gemv computes y = alpha·op(a)·x + beta·y in place.
	Gemv(t Transpose, alpha float64, a Matrix, x []float64, beta float64, y []float64)

	// Gemm computes c = alpha·op(a)·op(b) + beta·c in place.
	Gemm(tA, tB Transpose, alpha float64, a, b Matrix, beta float64, c Matrix)

	// Solve solves the square system a·x = b in place via LU
	// decomposition with partial pivoting: on success b holds the
	// solution and a holds the factors (a is destroyed either way up
	// to the point of failure). ipiv is pivot workspace of length
	// a.Rows. Returns ErrSingular on a zero pivot, leaving b
	// untouched.
	Solve(a Matrix, b []float64, ipiv []int) error
}
