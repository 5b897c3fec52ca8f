package emd

import "gonum.org/v1/gonum/interp"

// evalSpline fits a cubic spline through (tau, zeta) and evaluates it at
// every point of t (spec §4.3). The spline backend is treated as a black
// box per spec; any conforming cubic interpolant is acceptable, and this
// implementation delegates to gonum's NaturalCubic.
func evalSpline(tau, zeta, t []float64) ([]float64, error) {
	var sp interp.NaturalCubic
	if err := sp.Fit(tau, zeta); err != nil {
		return nil, newError(KindInternalInvariantViolated, "spline fit failed: %v", err)
	}
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = sp.Predict(ti)
	}
	return out, nil
}
