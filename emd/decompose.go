package emd

import (
	"math"
	"math/cmplx"
)

// Decomposer owns a signal and its running residue across one decompose
// call. It is single-threaded and synchronous (spec §5): concurrent calls
// to Decompose on the same instance are not supported, but independent
// instances may run on separate goroutines without coordination.
type Decomposer struct {
	x       []complex128
	t       []float64
	opts    Options
	mode    ComplexMode
	residue []complex128

	imfs       [][]complex128
	siftCounts []int
	warnings   []string
}

// NewDecomposer validates sig and opts and prepares a Decomposer for a
// single Decompose call.
func NewDecomposer(sig Signal, opts Options) (*Decomposer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(sig.Samples) == 0 {
		return nil, newError(KindInvalidInput, "signal must be non-empty")
	}

	t := sig.T
	if t == nil {
		t = make([]float64, len(sig.Samples))
		for i := range t {
			t[i] = float64(i)
		}
	} else {
		if len(t) != len(sig.Samples) {
			return nil, newError(KindInvalidInput, "time axis length %d does not match signal length %d", len(t), len(sig.Samples))
		}
		for i := 1; i < len(t); i++ {
			if !(t[i] > t[i-1]) {
				return nil, newError(KindInvalidInput, "time axis must be strictly increasing at index %d", i)
			}
		}
	}

	mode := opts.Mode
	if mode == ModeAuto {
		if sig.IsComplex {
			mode = ModeComplexV2
		} else {
			mode = ModeReal
		}
	}

	residue := append([]complex128(nil), sig.Samples...)

	return &Decomposer{
		x:       append([]complex128(nil), sig.Samples...),
		t:       t,
		opts:    opts,
		mode:    mode,
		residue: residue,
	}, nil
}

// hasEnoughExtrema reports whether residue still carries at least three
// extrema, per-direction in complex mode (spec's stop_EMD).
func (d *Decomposer) hasEnoughExtrema(residue []complex128) bool {
	if d.mode == ModeReal {
		indmin, indmax, _ := detectExtrema(realPart(residue))
		return len(indmin)+len(indmax) >= 3
	}
	for k := 0; k < d.opts.NDirs; k++ {
		phi := float64(k) * math.Pi / float64(d.opts.NDirs)
		rot := cmplx.Rect(1, phi)
		y := make([]float64, len(residue))
		for i, v := range residue {
			y[i] = real(rot * v)
		}
		indmin, indmax, _ := detectExtrema(y)
		if len(indmin)+len(indmax) < 3 {
			return false
		}
	}
	return true
}

func (d *Decomposer) keepDecomposing() bool {
	if !d.hasEnoughExtrema(d.residue) {
		return false
	}
	if d.opts.NIMFs == 0 {
		return true
	}
	return len(d.imfs) < d.opts.NIMFs
}

// Decompose runs the outer IMF-extraction loop (spec §4.7) until the
// residue has fewer than three extrema or the IMF budget is exhausted,
// then appends the residue as the trailing row if it is not identically
// zero.
func (d *Decomposer) Decompose() (Result, error) {
	for d.keepDecomposing() {
		mode, iters, err := d.siftMode(d.residue, len(d.imfs)+1)
		if err != nil {
			if isKind(err, KindAmplitudeUnderflow) || isKind(err, KindInsufficientExtrema) {
				break
			}
			return Result{}, err
		}

		d.imfs = append(d.imfs, mode)
		d.siftCounts = append(d.siftCounts, iters)
		for i := range d.residue {
			d.residue[i] -= mode[i]
		}
	}

	hasResidueRow := !isZeroComplex(d.residue)

	return Result{
		x:             append([]complex128(nil), d.x...),
		imfs:          d.imfs,
		residue:       append([]complex128(nil), d.residue...),
		hasResidueRow: hasResidueRow,
		mode:          d.mode,
		siftCounts:    append([]int(nil), d.siftCounts...),
	}, nil
}

// Warnings returns the non-fatal diagnostics accumulated during the most
// recent Decompose call (spec §7). The core never writes them anywhere;
// callers (e.g. cmd/emd-decompose) decide how to surface them.
func (d *Decomposer) Warnings() []string {
	return append([]string(nil), d.warnings...)
}

// Result is the outcome of one Decompose call: an ordered sequence of
// IMFs (highest frequency first) plus a trailing residue row.
type Result struct {
	x             []complex128
	imfs          [][]complex128
	residue       []complex128
	hasResidueRow bool
	mode          ComplexMode
	siftCounts    []int
}

// IMFs returns the extracted intrinsic mode functions in extraction order.
func (r Result) IMFs() [][]complex128 {
	return r.imfs
}

// Residue returns the final residual trend.
func (r Result) Residue() []complex128 {
	return r.residue
}

// Mode reports the resolved (non-auto) complex mode used for this result.
func (r Result) Mode() ComplexMode {
	return r.mode
}

// SiftCounts returns the number of sift iterations each IMF took, in
// extraction order.
func (r Result) SiftCounts() []int {
	return append([]int(nil), r.siftCounts...)
}

// Matrix assembles the [K+1, N] (or [K, N] if the residue vanished
// identically) decomposition result described in spec §6.
func (r Result) Matrix() [][]complex128 {
	rows := make([][]complex128, 0, len(r.imfs)+1)
	rows = append(rows, r.imfs...)
	if r.hasResidueRow {
		rows = append(rows, r.residue)
	}
	return rows
}

// IO computes the index of orthogonality (spec §6): a numerical witness of
// how nearly orthogonal the extracted IMFs are, normalized by signal
// energy using Σx² (not Σ|x|²), matching the source definition exactly.
func (r Result) IO() float64 {
	n := len(r.imfs)
	if n == 0 {
		return 0
	}

	var xsq complex128
	for _, v := range r.x {
		xsq += v * v
	}

	var s float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			var dot complex128
			for k := range r.imfs[i] {
				dot += r.imfs[i][k] * cmplx.Conj(r.imfs[j][k])
			}
			s += cmplx.Abs(dot / xsq)
		}
	}
	return 0.5 * s
}
