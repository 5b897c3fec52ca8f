package numutil

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	got := Linspace(0, 1, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Linspace[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLinspaceSinglePoint(t *testing.T) {
	got := Linspace(3, 7, 1)
	if len(got) != 1 || got[0] != 3 {
		t.Fatalf("Linspace with n=1 = %v, want [3]", got)
	}
}

func TestLinspaceNonPositiveN(t *testing.T) {
	if got := Linspace(0, 1, 0); got != nil {
		t.Fatalf("Linspace with n=0 = %v, want nil", got)
	}
}

func TestSine(t *testing.T) {
	tAxis := Linspace(0, 1, 5)
	got := Sine(tAxis, 1.0)
	want := []float64{0, math.Sin(2 * math.Pi * 0.25), math.Sin(2 * math.Pi * 0.5), math.Sin(2 * math.Pi * 0.75), math.Sin(2 * math.Pi)}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Sine[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestChirpZeroSlopeIsConstantFrequencyPhasor(t *testing.T) {
	tAxis := Linspace(0, 1, 9)
	got := Chirp(tAxis, 2.0, 0)
	for i, ti := range tAxis {
		if mag := math.Hypot(real(got[i]), imag(got[i])); math.Abs(mag-1) > 1e-9 {
			t.Errorf("|Chirp[%d]| = %v, want 1", i, mag)
		}
		phase := 2 * math.Pi * 2.0 * ti
		want := complex(math.Cos(phase), math.Sin(phase))
		if math.Abs(real(got[i])-real(want)) > 1e-9 || math.Abs(imag(got[i])-imag(want)) > 1e-9 {
			t.Errorf("Chirp[%d] = %v, want %v", i, got[i], want)
		}
	}
}
