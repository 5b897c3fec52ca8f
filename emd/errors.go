package emd

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the ways a decomposition can fail or warn, per the
// error surface in spec §7.
type ErrorKind int

const (
	// KindInvalidInput marks a fatal construction-time error: non-finite
	// samples, mismatched time axis, or conflicting fixe/fixe_h options.
	KindInvalidInput ErrorKind = iota
	// KindInsufficientExtrema marks a mode step that cannot proceed
	// because fewer than three extrema remain; recovered locally.
	KindInsufficientExtrema
	// KindAmplitudeUnderflow marks a residue that has numerically
	// vanished; recovered by ending decomposition.
	KindAmplitudeUnderflow
	// KindMaxIterationsReached is a soft warning; the partial IMF is kept.
	KindMaxIterationsReached
	// KindInternalInvariantViolated marks mirroring failing to extend
	// past a boundary even after being forced to the endpoint pivot.
	KindInternalInvariantViolated
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindInsufficientExtrema:
		return "insufficient_extrema"
	case KindAmplitudeUnderflow:
		return "amplitude_underflow"
	case KindMaxIterationsReached:
		return "max_iterations_reached"
	case KindInternalInvariantViolated:
		return "internal_invariant_violated"
	default:
		return "unknown"
	}
}

// sentinels support errors.Is against a specific kind without inspecting
// DecomposeError.Detail strings.
var (
	ErrInvalidInput              = errors.New("invalid input")
	ErrInsufficientExtrema       = errors.New("insufficient extrema")
	ErrAmplitudeUnderflow        = errors.New("amplitude underflow")
	ErrMaxIterationsReached      = errors.New("max iterations reached")
	ErrInternalInvariantViolated = errors.New("internal invariant violated")
)

func sentinelFor(kind ErrorKind) error {
	switch kind {
	case KindInvalidInput:
		return ErrInvalidInput
	case KindInsufficientExtrema:
		return ErrInsufficientExtrema
	case KindAmplitudeUnderflow:
		return ErrAmplitudeUnderflow
	case KindMaxIterationsReached:
		return ErrMaxIterationsReached
	case KindInternalInvariantViolated:
		return ErrInternalInvariantViolated
	default:
		return nil
	}
}

// DecomposeError is the error type returned by every fallible operation in
// this package.
type DecomposeError struct {
	Kind   ErrorKind
	Detail string
}

func (e *DecomposeError) Error() string {
	return fmt.Sprintf("emd: %s: %s", e.Kind, e.Detail)
}

func (e *DecomposeError) Unwrap() error {
	return sentinelFor(e.Kind)
}

func newError(kind ErrorKind, format string, args ...any) *DecomposeError {
	return &DecomposeError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// isKind reports whether err is a *DecomposeError of the given kind.
func isKind(err error, kind ErrorKind) bool {
	var de *DecomposeError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}
