package emd

import (
	"math"
	"testing"

	"github.com/cwbudde/go-hht/internal/numutil"
)

// In real mode, a clean sinusoid's local mean should be near zero and its
// local amplitude near the sinusoid's own amplitude, away from the boundary
// regions where the mirrored envelope is less accurate.
func TestMeanAndAmplitudeRealSinusoid(t *testing.T) {
	n := 256
	tAxis := numutil.Linspace(0, 1, n)
	x := numutil.Sine(tAxis, 6.0)
	m := make([]complex128, n)
	for i, v := range x {
		m[i] = complex(v, 0)
	}

	stats, err := meanAndAmplitudeReal(m, tAxis, 2)
	if err != nil {
		t.Fatalf("meanAndAmplitudeReal: %v", err)
	}
	if len(stats.nem) != 1 || len(stats.nzm) != 1 {
		t.Fatalf("expected single-element nem/nzm in real mode, got %d/%d", len(stats.nem), len(stats.nzm))
	}

	lo, hi := n/4, 3*n/4
	for i := lo; i < hi; i++ {
		if math.Abs(real(stats.envmoy[i])) > 0.05 {
			t.Errorf("envmoy[%d] = %v, want near 0", i, stats.envmoy[i])
		}
		if math.Abs(stats.amp[i]-1) > 0.1 {
			t.Errorf("amp[%d] = %v, want near 1", i, stats.amp[i])
		}
	}
}

// In complex mode, a unit-amplitude rotating phasor should produce near-zero
// mean and near-unit amplitude across all directions, away from boundaries.
func TestMeanAndAmplitudeComplexV2ConstantEnvelope(t *testing.T) {
	n := 256
	tAxis := numutil.Linspace(0, 1, n)
	m := numutil.Chirp(tAxis, 5.0, 0)

	stats, err := meanAndAmplitudeComplex(m, tAxis, 4, 2, ModeComplexV2)
	if err != nil {
		t.Fatalf("meanAndAmplitudeComplex: %v", err)
	}
	if len(stats.nem) != 4 || len(stats.nzm) != 4 {
		t.Fatalf("expected ndirs-length nem/nzm, got %d/%d", len(stats.nem), len(stats.nzm))
	}

	lo, hi := n/4, 3*n/4
	for i := lo; i < hi; i++ {
		if mag := realAbs(stats.envmoy[i]); mag > 0.1 {
			t.Errorf("envmoy[%d] magnitude = %v, want near 0", i, mag)
		}
		if math.Abs(stats.amp[i]-1) > 0.15 {
			t.Errorf("amp[%d] = %v, want near 1", i, stats.amp[i])
		}
	}
}

func realAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
