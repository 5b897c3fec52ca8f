package numutil

import "math"

// Linspace returns n evenly spaced samples over [start, stop], inclusive.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Sine evaluates sin(2*pi*freqHz*t) over the given time axis.
func Sine(t []float64, freqHz float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = math.Sin(2 * math.Pi * freqHz * ti)
	}
	return out
}

// Chirp evaluates the complex analytic chirp exp(i*2*pi*(f0*t + k*t^2)),
// used to exercise the complex-mode sifting path (spec scenario S7).
func Chirp(t []float64, f0, k float64) []complex128 {
	out := make([]complex128, len(t))
	for i, ti := range t {
		phase := 2 * math.Pi * (f0*ti + k*ti*ti)
		out[i] = complex(math.Cos(phase), math.Sin(phase))
	}
	return out
}
