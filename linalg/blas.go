package linalg

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// BLAS is the default Ops backend, delegating to gonum's blas64 and
// lapack64 wrappers. The zero value is ready to use.
type BLAS struct{}

var _ Ops = BLAS{}

// blas maps the package-local transpose flag onto gonum's.
func (t Transpose) blas() blas.Transpose {
	if t == Trans {
		return blas.Trans
	}

	return blas.NoTrans
}

// general adapts a Matrix view to gonum's row-major General header.
func general(a Matrix) blas64.General {
	return blas64.General{Rows: a.Rows, Cols: a.Cols, Stride: a.Stride, Data: a.Data}
}

// vector adapts a contiguous slice to a unit-increment BLAS vector.
func vector(x []float64) blas64.Vector {
	return blas64.Vector{N: len(x), Inc: 1, Data: x}
}

// Nrm2 returns the Euclidean norm ‖x‖₂.
func (BLAS) Nrm2(x []float64) float64 {
	return blas64.Nrm2(vector(x))
}

// Axpy accumulates y += alpha·x in place.
func (BLAS) Axpy(alpha float64, x, y []float64) {
	blas64.Axpy(alpha, vector(x), vector(y))
}

// Gemv computes y = alpha·op(a)·x + beta·y in place.
func (BLAS) Gemv(t Transpose, alpha float64, a Matrix, x []float64, beta float64, y []float64) {
	blas64.Gemv(t.blas(), alpha, general(a), vector(x), beta, vector(y))
}

// Gemm computes c = alpha·op(a)·op(b) + beta·c in place.
func (BLAS) Gemm(tA, tB Transpose, alpha float64, a, b Matrix, beta float64, c Matrix) {
	blas64.Gemm(tA.blas(), tB.blas(), alpha, general(a), general(b), beta, general(c))
}

// Solve solves a·x = b in place by LU with partial pivoting
// (Getrf + Getrs, the ?gesv pair). A zero pivot surfaces as
// ErrSingular before the back-substitution touches b.
func (BLAS) Solve(a Matrix, b []float64, ipiv []int) error {
	lu := general(a)
	if !lapack64.Getrf(lu, ipiv) {
		return ErrSingular
	}
	rhs := blas64.General{Rows: a.Rows, Cols: 1, Stride: 1, Data: b}
	lapack64.Getrs(blas.NoTrans, lu, rhs, ipiv)

	return nil
}
