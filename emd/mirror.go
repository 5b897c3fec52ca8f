package emd

import "github.com/cwbudde/go-hht/internal/numutil"

// boundaryConditions extends the extrema of x near both endpoints by
// reflection, stabilizing the cubic-spline ends (spec §4.2). z supplies the
// values at the reflected indices (for real-mode sifting z is x itself; for
// the complex mean/amplitude estimator z is the same rotated projection
// whose extrema were just located). t is the shared time axis.
//
// The branching below is preserved verbatim from the pyhht reference
// implementation, including two branches flagged as suspect in spec §9:
// the left "else" branch indexes indmax with a bound derived from
// indmin's length, and the left-boundary pivot is hard-coded to index 1
// rather than 0 in the minority branches. Both are covered by regression
// fixtures (mirror_test.go) rather than "corrected" here.
func boundaryConditions(x, t, z []float64, nbsym int) (tmin, tmax, zmin, zmax []float64, err error) {
	indmin, indmax, _ := detectExtrema(x)
	lx := len(x) - 1

	if len(indmin)+len(indmax) < 3 {
		return nil, nil, nil, nil, newError(KindInsufficientExtrema, "not enough extrema")
	}
	if len(indmin) == 0 || len(indmax) == 0 {
		return nil, nil, nil, nil, newError(KindInsufficientExtrema, "need at least one minimum and one maximum")
	}

	var lmax, lmin []int
	var lsym int

	if indmax[0] < indmin[0] {
		if x[0] > x[indmin[0]] {
			lmax = reverseInts(indmax[1:numutil.MinInt(len(indmax), nbsym+1)])
			lmin = reverseInts(indmin[:numutil.MinInt(len(indmin), nbsym)])
			lsym = indmax[0]
		} else {
			lmax = reverseInts(indmax[1:numutil.MinInt(len(indmax), nbsym)])
			lmin = reverseInts(indmin[:numutil.MinInt(len(indmin), nbsym-1)])
			lmin = append(lmin, 1)
			lsym = 1
		}
	} else {
		if x[0] < x[indmax[0]] {
			lmax = reverseInts(indmax[:numutil.MinInt(len(indmax), nbsym)])
			lmin = reverseInts(indmin[1:numutil.MinInt(len(indmin), nbsym+1)])
			lsym = indmin[0]
		} else {
			// Suspect branch (spec §9): bounds indmax's slice with
			// indmin's length rather than indmax's own.
			lmax = reverseInts(indmax[:numutil.MinInt(len(indmin), nbsym-1)])
			lmax = append(lmax, 1)
			lmin = reverseInts(indmin[:numutil.MinInt(len(indmax), nbsym)])
			lsym = 1
		}
	}

	var rmax, rmin []int
	var rsym int

	if indmax[len(indmax)-1] < indmin[len(indmin)-1] {
		if x[lx] < x[indmax[len(indmax)-1]] {
			start := numutil.MaxInt(len(indmax)-nbsym+1, 1) - 1
			rmax = reverseInts(indmax[start:])
			startMin := numutil.MaxInt(len(indmin)-nbsym, 1) - 1
			rmin = reverseInts(indmin[startMin : len(indmin)-1])
			rsym = indmin[len(indmin)-1]
		} else {
			start := numutil.MaxInt(len(indmax)-nbsym+1, 0)
			rmaxPart := reverseInts(indmax[start:])
			rmax = append([]int{lx}, rmaxPart...)
			startMin := numutil.MaxInt(len(indmin)-nbsym, 0)
			rmin = reverseInts(indmin[startMin:])
			rsym = lx
		}
	} else {
		if x[lx] > x[indmin[len(indmin)-1]] {
			start := numutil.MaxInt(len(indmax)-nbsym-1, 0)
			rmax = reverseInts(indmax[start : len(indmax)-1])
			startMin := numutil.MaxInt(len(indmin)-nbsym, 0)
			rmin = reverseInts(indmin[startMin:])
			rsym = indmax[len(indmax)-1]
		} else {
			start := numutil.MaxInt(len(indmax)-nbsym, 0)
			rmax = reverseInts(indmax[start:])
			startMin := numutil.MaxInt(len(indmin)-nbsym+1, 0)
			rminPart := reverseInts(indmin[startMin:])
			rmin = append([]int{lx}, rminPart...)
			rsym = lx
		}
	}

	tlmin := mirrorTimes(t, lsym, lmin)
	tlmax := mirrorTimes(t, lsym, lmax)
	trmin := mirrorTimes(t, rsym, rmin)
	trmax := mirrorTimes(t, rsym, rmax)

	if (len(tlmin) > 0 && tlmin[0] > t[0]) || (len(tlmax) > 0 && tlmax[0] > t[1]) {
		if lsym == indmax[0] {
			lmax = reverseInts(indmax[:numutil.MinInt(len(indmax), nbsym)])
		} else {
			lmin = reverseInts(indmin[:numutil.MinInt(len(indmin), nbsym)])
		}
		if lsym == 1 {
			return nil, nil, nil, nil, newError(KindInternalInvariantViolated, "mirror failed to extend past left boundary")
		}
		lsym = 1
		tlmin = mirrorTimes(t, lsym, lmin)
		tlmax = mirrorTimes(t, lsym, lmax)
	}

	if (len(trmin) > 0 && trmin[len(trmin)-1] < t[lx]) || (len(trmax) > 0 && trmax[len(trmax)-1] < t[lx]) {
		// Suspect branch (spec §9): compares the pivot index rsym to a
		// slice length (len(indmax)) rather than to lx.
		if rsym == len(indmax) {
			rmax = reverseInts(indmax[numutil.MaxInt(len(indmax)-nbsym+1, 1):len(indmax)])
		} else {
			rmin = reverseInts(indmin[numutil.MaxInt(len(indmax)-nbsym+1, 1):len(indmin)])
		}
		if rsym == lx {
			return nil, nil, nil, nil, newError(KindInternalInvariantViolated, "mirror failed to extend past right boundary")
		}
		rsym = lx
		trmin = mirrorTimes(t, rsym, rmin)
		trmax = mirrorTimes(t, rsym, rmax)
	}

	zlmax := gather(z, lmax)
	zlmin := gather(z, lmin)
	zrmax := gather(z, rmax)
	zrmin := gather(z, rmin)

	tmin = concatFloats(tlmin, gather(t, indmin), trmin)
	tmax = concatFloats(tlmax, gather(t, indmax), trmax)
	zmin = concatFloats(zlmin, gather(z, indmin), zrmin)
	zmax = concatFloats(zlmax, gather(z, indmax), zrmax)
	return tmin, tmax, zmin, zmax, nil
}

func mirrorTimes(t []float64, pivot int, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, ix := range idx {
		out[i] = 2*t[pivot] - t[ix]
	}
	return out
}

func gather(src []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, ix := range idx {
		out[i] = src[ix]
	}
	return out
}

func concatFloats(parts ...[]float64) []float64 {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]float64, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func reverseInts(in []int) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
