package emd

import "math/cmplx"

// stopAndMean evaluates the stopping criterion for the current mode m and
// returns the envelope mean to subtract on the next sift step (spec §4.5).
// fixedHCounter persists the fixe_h consecutive-pass counter across calls
// for a single mode's sifting run.
//
// If the mean/amplitude estimator fails with InsufficientExtrema, this
// returns stop=true with a zero mean, regardless of regime. In the fixe
// regime sift.go ignores the stop flag, so the remaining iterations
// subtract that zero mean.
func (d *Decomposer) stopAndMean(m []complex128, fixedHCounter *int) (stop bool, mean []complex128, err error) {
	stats, statErr := d.meanAndAmplitude(m)
	if statErr != nil {
		if isKind(statErr, KindInsufficientExtrema) {
			return true, zeroComplex(len(m)), nil
		}
		return false, nil, statErr
	}

	switch {
	case d.opts.Fixe > 0:
		// Stop decision is purely iteration-count driven (sift.go); the
		// mean is still the real envelope mean so the loop keeps sifting
		// toward an actual IMF rather than a no-op subtraction.
		return false, stats.envmoy, nil

	case d.opts.FixeH > 0:
		allWithinOne := true
		for i := range stats.nem {
			if absInt(stats.nzm[i]-stats.nem[i]) > 1 {
				allWithinOne = false
				break
			}
		}
		if !allWithinOne {
			*fixedHCounter = 0
		} else {
			*fixedHCounter++
		}
		return *fixedHCounter >= d.opts.FixeH, stats.envmoy, nil

	default:
		n := len(m)
		exceedTheta1 := 0
		anyExceedTheta2 := false
		for i := 0; i < n; i++ {
			sx := cmplx.Abs(stats.envmoy[i]) / stats.amp[i]
			if sx > d.opts.Threshold1 {
				exceedTheta1++
			}
			if sx > d.opts.Threshold2 {
				anyExceedTheta2 = true
			}
		}
		fracExceed := float64(exceedTheta1) / float64(n)

		allNemGt2 := true
		for _, v := range stats.nem {
			if v <= 2 {
				allNemGt2 = false
				break
			}
		}

		keepSifting := (fracExceed > d.opts.Alpha || anyExceedTheta2) && allNemGt2
		stopNow := !keepSifting
		if d.mode == ModeReal && absInt(stats.nzm[0]-stats.nem[0]) > 1 {
			stopNow = false
		}
		return stopNow, stats.envmoy, nil
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
