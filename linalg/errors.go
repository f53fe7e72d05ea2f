package linalg

import "errors"

// ErrSingular indicates the coefficient matrix of a Solve call is
// singular to working precision (LU factorization hit a zero pivot).
var ErrSingular = errors.New("linalg: matrix is singular")
