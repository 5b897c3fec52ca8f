package emd

import (
	"math"
	"math/cmplx"
)

// modeStats is the uniform result of the mean/amplitude estimator (spec
// §4.4) for both real and complex modes. In real mode nem/nzm carry a
// single element; in complex mode they carry one element per direction.
type modeStats struct {
	envmoy []complex128
	amp    []float64
	nem    []int
	nzm    []int
}

// meanAndAmplitude computes the local mean and amplitude of candidate mode
// m against the shared time axis t, dispatching on the resolved complex
// mode.
func (d *Decomposer) meanAndAmplitude(m []complex128) (modeStats, error) {
	if d.mode == ModeReal {
		return meanAndAmplitudeReal(m, d.t, d.opts.NBSym)
	}
	return meanAndAmplitudeComplex(m, d.t, d.opts.NDirs, d.opts.NBSym, d.mode)
}

func meanAndAmplitudeReal(m []complex128, t []float64, nbsym int) (modeStats, error) {
	mv := realPart(m)
	indmin, indmax, indzer := detectExtrema(mv)
	nem := len(indmin) + len(indmax)
	nzm := len(indzer)

	tmin, tmax, mmin, mmax, err := boundaryConditions(mv, t, mv, nbsym)
	if err != nil {
		return modeStats{}, err
	}
	envminR, err := evalSpline(tmin, mmin, t)
	if err != nil {
		return modeStats{}, err
	}
	envmaxR, err := evalSpline(tmax, mmax, t)
	if err != nil {
		return modeStats{}, err
	}

	n := len(t)
	envmoy := make([]complex128, n)
	amp := make([]float64, n)
	for i := 0; i < n; i++ {
		envmoy[i] = complex((envminR[i]+envmaxR[i])/2, 0)
		amp[i] = math.Abs(envmaxR[i]-envminR[i]) / 2
	}
	return modeStats{envmoy: envmoy, amp: amp, nem: []int{nem}, nzm: []int{nzm}}, nil
}

// meanAndAmplitudeComplex implements both complex-mode variants (spec
// §4.4, §9): for each of ndirs rotation angles φ = k·π/ndirs, project
// y = Re(e^{-iφ}·m), mirror and spline y's own extrema, then for
// ModeComplexV2 rotate the resulting real envelope back by e^{iφ} before
// averaging; ModeComplexV1 skips that rotation. The projection is used
// both to locate extrema and to supply spline values (z = y) since a
// complex-valued spline is not otherwise well defined.
func meanAndAmplitudeComplex(m []complex128, t []float64, ndirs, nbsym int, mode ComplexMode) (modeStats, error) {
	n := len(t)
	envmoy := make([]complex128, n)
	ampSum := make([]float64, n)
	nem := make([]int, ndirs)
	nzm := make([]int, ndirs)

	for k := 0; k < ndirs; k++ {
		phi := float64(k) * math.Pi / float64(ndirs)
		rotFwd := cmplx.Rect(1, -phi)

		y := make([]float64, n)
		for i, v := range m {
			y[i] = real(rotFwd * v)
		}

		indmin, indmax, indzer := detectExtrema(y)
		nem[k] = len(indmin) + len(indmax)
		nzm[k] = len(indzer)

		tmin, tmax, ymin, ymax, err := boundaryConditions(y, t, y, nbsym)
		if err != nil {
			return modeStats{}, err
		}
		splMin, err := evalSpline(tmin, ymin, t)
		if err != nil {
			return modeStats{}, err
		}
		splMax, err := evalSpline(tmax, ymax, t)
		if err != nil {
			return modeStats{}, err
		}

		if mode == ModeComplexV1 {
			for i := 0; i < n; i++ {
				envmoy[i] += complex((splMin[i]+splMax[i])/2, 0)
				ampSum[i] += math.Abs(splMax[i] - splMin[i])
			}
			continue
		}

		rotBack := cmplx.Rect(1, phi)
		for i := 0; i < n; i++ {
			emin := rotBack * complex(splMin[i], 0)
			emax := rotBack * complex(splMax[i], 0)
			envmoy[i] += emin + emax
			ampSum[i] += cmplx.Abs(emax - emin)
		}
	}

	amp := make([]float64, n)
	for i := 0; i < n; i++ {
		envmoy[i] /= complex(float64(ndirs), 0)
		amp[i] = ampSum[i] / float64(ndirs) / 2
	}

	return modeStats{envmoy: envmoy, amp: amp, nem: nem, nzm: nzm}, nil
}
