package anderson

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDimension indicates a non-positive problem dimension.
	ErrBadDimension = errors.New("anderson: dimension must be positive")
	// ErrNegativeMemory indicates a negative memory depth.
	ErrNegativeMemory = errors.New("anderson: memory depth must be non-negative")
	// ErrDimensionMismatch indicates an input slice whose length
	// differs from the accelerator's dimension.
	ErrDimensionMismatch = errors.New("anderson: input length differs from accelerator dimension")
	// ErrSingularSystem indicates the normal-equations solve hit a
	// zero pivot (typically two numerically identical history slots).
	ErrSingularSystem = errors.New("anderson: singular normal-equations system")
	// ErrNormDiverged indicates the combination-coefficient norm
	// exceeded the guard threshold (near-singular or blown-up system).
	ErrNormDiverged = errors.New("anderson: coefficient norm exceeds guard threshold")
)

// StepError reports one failed extrapolation attempt. The failure is
// soft: history buffers were already updated before the solve, the
// caller's raw map output is left untouched, and the next Apply
// proceeds normally.
type StepError struct {
	Iteration int     // value of the iteration counter at the solve
	Window    int     // active window width used by the solve
	Norm      float64 // ‖c‖₂ of the rejected coefficients (diagnostic only on a singular solve)
	err       error   // ErrSingularSystem or ErrNormDiverged
}

// Error formats the diagnostic with the iteration, window and norm.
func (e *StepError) Error() string {
	return fmt.Sprintf("%v: iteration %d, window %d, coefficient norm %.2e",
		e.err, e.Iteration, e.Window, e.Norm)
}

// Unwrap exposes the failure class for errors.Is.
func (e *StepError) Unwrap() error { return e.err }
