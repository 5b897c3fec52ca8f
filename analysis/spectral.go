package analysis

import (
	"errors"
	"math/cmplx"
	"sync"

	algofft "github.com/cwbudde/algo-fft"
)

// spectralFFTPlan caches a forward real-FFT plan for one transform length,
// preferring algo-fft's fast plan and falling back to the safe plan when
// the fast path is unavailable for that length.
type spectralFFTPlan struct {
	mu   sync.Mutex
	fast *algofft.FastPlanReal64
	safe *algofft.PlanRealT[float64, complex128]
}

var spectralPlanCache sync.Map // map[int]*spectralFFTPlan

func getSpectralFFTPlan(n int) (*spectralFFTPlan, error) {
	if v, ok := spectralPlanCache.Load(n); ok {
		return v.(*spectralFFTPlan), nil
	}

	p := &spectralFFTPlan{}

	fast, err := algofft.NewFastPlanReal64(n)
	if err == nil {
		p.fast = fast
	} else if !errors.Is(err, algofft.ErrNotImplemented) {
		// Ignore fast-plan setup errors and rely on the safe plan.
	}

	safe, err := algofft.NewPlanReal64(n)
	if err != nil {
		if p.fast == nil {
			return nil, err
		}
	} else {
		p.safe = safe
	}

	actual, _ := spectralPlanCache.LoadOrStore(n, p)
	return actual.(*spectralFFTPlan), nil
}

func (p *spectralFFTPlan) forward(dst []complex128, src []float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.fast != nil {
		p.fast.Forward(dst, src)
		return nil
	}
	if p.safe != nil {
		return p.safe.Forward(dst, src)
	}
	return errors.New("analysis: missing FFT plan")
}

// SpectralBand is the magnitude spectrum of a single IMF.
type SpectralBand struct {
	ModeIndex  int       `json:"mode_index"`
	BinHz      []float64 `json:"bin_hz"`
	Magnitude  []float64 `json:"magnitude"`
	PeakHz     float64   `json:"peak_hz"`
	PeakMag    float64   `json:"peak_magnitude"`
}

// SpectralProfile computes the magnitude spectrum of each IMF's real part,
// using the analytic-signal real projection for complex-mode results. This
// is a reporting diagnostic distinct from instantaneous-frequency/Hilbert
// analysis, which is out of scope (spec §1 non-goals).
func SpectralProfile(imfs [][]complex128, sampleRate int) ([]SpectralBand, error) {
	bands := make([]SpectralBand, 0, len(imfs))
	for i, imf := range imfs {
		n := len(imf)
		if n < 2 {
			bands = append(bands, SpectralBand{ModeIndex: i})
			continue
		}
		fftN := n
		if fftN%2 != 0 {
			fftN--
		}
		if fftN < 2 {
			bands = append(bands, SpectralBand{ModeIndex: i})
			continue
		}

		in := make([]float64, fftN)
		for k := 0; k < fftN; k++ {
			in[k] = real(imf[k])
		}

		bins := fftN / 2
		plan, err := getSpectralFFTPlan(fftN)
		if err != nil {
			return nil, err
		}
		spec := make([]complex128, bins+1)
		if err := plan.forward(spec, in); err != nil {
			return nil, err
		}

		binHz := make([]float64, bins+1)
		mag := make([]float64, bins+1)
		var peakHz, peakMag float64
		for k := 0; k <= bins; k++ {
			binHz[k] = float64(k) * float64(sampleRate) / float64(fftN)
			mag[k] = cmplx.Abs(spec[k])
			if mag[k] > peakMag {
				peakMag = mag[k]
				peakHz = binHz[k]
			}
		}

		bands = append(bands, SpectralBand{
			ModeIndex: i,
			BinHz:     binHz,
			Magnitude: mag,
			PeakHz:    peakHz,
			PeakMag:   peakMag,
		})
	}
	return bands, nil
}
