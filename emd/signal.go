package emd

import (
	"math"
	"math/cmplx"
)

// Signal is an immutable, finite, one-dimensional sequence of samples plus
// an optional time axis, ready for decomposition.
type Signal struct {
	Samples   []complex128
	T         []float64
	IsComplex bool
}

// NewSignal validates and wraps a raw sample sequence. x must be either
// []float64 or []complex128; t, if non-nil, must be the same length as x.
// Validation of t (its length and that it is strictly increasing) is
// deferred to NewDecomposer.
func NewSignal(x any, t []float64) (Signal, error) {
	switch v := x.(type) {
	case []float64:
		if len(v) == 0 {
			return Signal{}, newError(KindInvalidInput, "signal must be non-empty")
		}
		samples := make([]complex128, len(v))
		for i, s := range v {
			if math.IsNaN(s) || math.IsInf(s, 0) {
				return Signal{}, newError(KindInvalidInput, "sample %d is not finite", i)
			}
			samples[i] = complex(s, 0)
		}
		return Signal{Samples: samples, T: t, IsComplex: false}, nil
	case []complex128:
		if len(v) == 0 {
			return Signal{}, newError(KindInvalidInput, "signal must be non-empty")
		}
		samples := append([]complex128(nil), v...)
		isComplex := false
		for i, s := range samples {
			if cmplx.IsNaN(s) || cmplx.IsInf(s) {
				return Signal{}, newError(KindInvalidInput, "sample %d is not finite", i)
			}
			if imag(s) != 0 {
				isComplex = true
			}
		}
		return Signal{Samples: samples, T: t, IsComplex: isComplex}, nil
	default:
		return Signal{}, newError(KindInvalidInput, "x must be []float64 or []complex128")
	}
}

func realPart(x []complex128) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = real(v)
	}
	return out
}

func zeroComplex(n int) []complex128 {
	return make([]complex128, n)
}

func maxAbsComplex(x []complex128) float64 {
	var m float64
	for _, v := range x {
		if a := cmplx.Abs(v); a > m {
			m = a
		}
	}
	return m
}

func isZeroComplex(x []complex128) bool {
	for _, v := range x {
		if v != 0 {
			return false
		}
	}
	return true
}
