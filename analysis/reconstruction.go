// Package analysis provides diagnostics over a completed decomposition:
// reconstruction-error checks for the testable invariants of spec §8, and
// a spectral profile per IMF for reporting.
package analysis

import (
	"math/cmplx"

	"github.com/cwbudde/go-hht/emd"
)

// Reconstruction summarizes how closely the sum of IMFs plus residue
// reproduces the original signal, and how the extrema count evolves
// across modes.
type Reconstruction struct {
	AbsoluteError    float64 // ‖x − ΣIMF − residue‖∞
	RelativeError    float64 // AbsoluteError / ‖x‖∞ (0 if x is identically zero)
	ExtremaPerIMF    []int   // #minima + #maxima per IMF, extraction order
	ResidueExtrema   int     // interior extrema of the final residue
	LengthsConsistent bool   // every IMF and the residue have length N
}

// Reconstruct computes the diagnostics in Reconstruction for result against
// the original signal x.
func Reconstruct(x []complex128, result emd.Result) Reconstruction {
	n := len(x)
	sum := make([]complex128, n)
	lengthsOK := true

	for _, imf := range result.IMFs() {
		if len(imf) != n {
			lengthsOK = false
			continue
		}
		for i := 0; i < n; i++ {
			sum[i] += imf[i]
		}
	}
	residue := result.Residue()
	if len(residue) != n {
		lengthsOK = false
	} else {
		for i := 0; i < n; i++ {
			sum[i] += residue[i]
		}
	}

	var maxAbsErr, maxAbsX float64
	for i := 0; i < n; i++ {
		if e := cmplx.Abs(x[i] - sum[i]); e > maxAbsErr {
			maxAbsErr = e
		}
		if a := cmplx.Abs(x[i]); a > maxAbsX {
			maxAbsX = a
		}
	}

	rel := 0.0
	if maxAbsX > 0 {
		rel = maxAbsErr / maxAbsX
	}

	extremaPerIMF := make([]int, len(result.IMFs()))
	for i, imf := range result.IMFs() {
		indmin, indmax, _ := extremaCount(imf)
		extremaPerIMF[i] = indmin + indmax
	}
	rmin, rmax, _ := extremaCount(residue)

	return Reconstruction{
		AbsoluteError:     maxAbsErr,
		RelativeError:     rel,
		ExtremaPerIMF:     extremaPerIMF,
		ResidueExtrema:    rmin + rmax,
		LengthsConsistent: lengthsOK,
	}
}

// extremaCount mirrors emd's internal strict-interior-extrema detector but
// is reimplemented here (rather than exported from emd) since it is purely
// a diagnostic concern, not a sifting concern.
func extremaCount(v []complex128) (nmin, nmax, nzer int) {
	m := len(v)
	if m < 3 {
		return 0, 0, 0
	}
	re := make([]float64, m)
	for i, c := range v {
		re[i] = real(c)
	}
	for i := 1; i < m-1; i++ {
		if re[i-1] > re[i] && re[i] < re[i+1] {
			nmin++
		} else if re[i-1] < re[i] && re[i] > re[i+1] {
			nmax++
		}
	}
	for i := 0; i < m-1; i++ {
		if re[i]*re[i+1] < 0 {
			nzer++
		}
	}
	return nmin, nmax, nzer
}
