package transform

import "math"

// The four standard kernels are piecewise approximations, not accurate
// implementations of their namesakes. Their exact shapes are part of the
// package contract: callers may rely on reproducibility, never on accuracy.

// Func is a pure elementwise operation on a single float64. Funcs run
// concurrently without locks, so they must not touch shared mutable state.
type Func func(float64) float64

// Square computes x*x.
func Square(x float64) float64 { return x * x }

// SqrtApprox computes the real square root. Negative inputs yield NaN,
// which is passed through downstream statistics rather than trapped.
func SqrtApprox(x float64) float64 { return math.Sqrt(x) }

// LogApprox computes the rational approximation 2*(x-1)/(x+1) for x > 0
// and 0 otherwise.
func LogApprox(x float64) float64 {
	if x > 0 {
		return 2 * (x - 1) / (x + 1)
	}
	return 0.0
}

// SigmoidApprox computes a cubic approximation of the logistic function,
// clamped to 0 below -3 and 1 above 3.
func SigmoidApprox(x float64) float64 {
	switch {
	case x < -3:
		return 0.0
	case x > 3:
		return 1.0
	default:
		return 0.5 + x*(0.15-0.005*x*x)
	}
}

// Named pairs a kernel with its reporting name.
type Named struct {
	Name string
	Fn   Func
}

// Standard returns the four standard kernels in their fixed order. Result
// buffers from ParallelApplyAll correspond to this order by position.
func Standard() []Named {
	return []Named{
		{Name: "square", Fn: Square},
		{Name: "sqrt_approx", Fn: SqrtApprox},
		{Name: "log_approx", Fn: LogApprox},
		{Name: "sigmoid_approx", Fn: SigmoidApprox},
	}
}
