package emd

import "fmt"

// siftMode runs the inner sifting loop for one mode, starting from residue
// (spec §4.6). It returns the extracted mode and the number of sift
// iterations performed.
func (d *Decomposer) siftMode(residue []complex128, modeNumber int) ([]complex128, int, error) {
	m := append([]complex128(nil), residue...)
	fixedHCounter := 0

	stop, mean, err := d.stopAndMean(m, &fixedHCounter)
	if err != nil {
		return nil, 0, err
	}

	maxAbsX := maxAbsComplex(d.x)
	if maxAbsComplex(m) < 1e-10*maxAbsX {
		if !effectiveStop(d.opts, stop, 0) {
			d.warnings = append(d.warnings, fmt.Sprintf("mode %d: amplitude too small, stopping", modeNumber))
		}
		return nil, 0, newError(KindAmplitudeUnderflow, "residue amplitude underflow before mode %d", modeNumber)
	}

	maxIter := d.opts.MaxIter
	if d.opts.Fixe > 0 {
		maxIter = d.opts.Fixe
	}

	iter := 0
	for !effectiveStop(d.opts, stop, iter) && iter < maxIter {
		for i := range m {
			m[i] -= mean[i]
		}
		stop, mean, err = d.stopAndMean(m, &fixedHCounter)
		if err != nil {
			return nil, 0, err
		}
		iter++
	}

	if iter >= maxIter-1 && !effectiveStop(d.opts, stop, iter) {
		d.warnings = append(d.warnings, fmt.Sprintf("mode %d: maximum iteration limit reached", modeNumber))
	}

	return m, iter, nil
}

// effectiveStop overrides the evaluator's stop decision for the fixe
// regime, where stopping is controlled solely by iteration count (spec
// §4.5).
func effectiveStop(opts Options, stop bool, iter int) bool {
	if opts.Fixe > 0 {
		return iter >= opts.Fixe
	}
	return stop
}
