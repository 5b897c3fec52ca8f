package emd

// ComplexMode selects how the mean/amplitude estimator combines envelopes.
// ModeAuto defers to whether the signal carries a non-zero imaginary part.
type ComplexMode int

const (
	// ModeAuto infers Real vs ComplexV2 from the signal at construction
	// time, mirroring the source's is_mode_complex inference.
	ModeAuto ComplexMode = iota
	// ModeReal treats the signal as real-valued: envelopes are a single
	// upper/lower spline pair.
	ModeReal
	// ModeComplexV1 averages (envmin+envmax)/2 over ndirs rotated
	// projections without rotating the envelopes back (spec §9).
	ModeComplexV1
	// ModeComplexV2 rotates each direction's envelope back by e^{iφ}
	// before averaging; this is the active variant in the source.
	ModeComplexV2
)

func (m ComplexMode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeReal:
		return "real"
	case ModeComplexV1:
		return "complex_v1"
	case ModeComplexV2:
		return "complex_v2"
	default:
		return "unknown"
	}
}

// Options configures a Decomposer. Zero-value Options is invalid; start
// from NewOptions.
type Options struct {
	Threshold1 float64 // θ₁: per-sample stopping bound on |mean|/amplitude
	Threshold2 float64 // θ₂: hard per-sample bound on |mean|/amplitude
	Alpha      float64 // fraction of samples permitted to exceed θ₁
	NDirs      int     // rotation directions in complex mode
	NBSym      int     // extrema reflected at each boundary
	Fixe       int     // if > 0, exactly this many sift iterations per mode
	FixeH      int     // if > 0, stop once |#zero-#extrema|<=1 holds this many consecutive iterations
	MaxIter    int     // hard ceiling on sift iterations per mode
	NIMFs      int     // if > 0, stop after this many IMFs
	Mode       ComplexMode
}

// NewOptions returns the spec's default configuration (spec §3).
func NewOptions() Options {
	return Options{
		Threshold1: 0.05,
		Threshold2: 0.5,
		Alpha:      0.05,
		NDirs:      4,
		NBSym:      2,
		Fixe:       0,
		FixeH:      0,
		MaxIter:    2000,
		NIMFs:      0,
		Mode:       ModeAuto,
	}
}

func (o Options) validate() error {
	if o.Fixe > 0 && o.FixeH > 0 {
		return newError(KindInvalidInput, "fixe and fixe_h cannot both be set")
	}
	if o.Threshold1 <= 0 {
		return newError(KindInvalidInput, "threshold_1 must be > 0")
	}
	if o.Threshold2 <= 0 {
		return newError(KindInvalidInput, "threshold_2 must be > 0")
	}
	if o.Alpha <= 0 {
		return newError(KindInvalidInput, "alpha must be > 0")
	}
	if o.NDirs < 1 {
		return newError(KindInvalidInput, "ndirs must be >= 1")
	}
	if o.NBSym < 1 {
		return newError(KindInvalidInput, "nbsym must be >= 1")
	}
	if o.Fixe < 0 {
		return newError(KindInvalidInput, "fixe must be >= 0")
	}
	if o.FixeH < 0 {
		return newError(KindInvalidInput, "fixe_h must be >= 0")
	}
	if o.MaxIter < 1 {
		return newError(KindInvalidInput, "maxiter must be >= 1")
	}
	if o.NIMFs < 0 {
		return newError(KindInvalidInput, "n_imfs must be >= 0")
	}
	return nil
}
