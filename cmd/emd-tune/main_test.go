package main

import (
	"math"
	"testing"
)

func TestFromNormalized(t *testing.T) {
	defs := []knobDef{
		{"threshold_1", 0.01, 0.20},
		{"alpha", 0.01, 0.20},
		{"nbsym", 1, 6},
	}
	got := fromNormalized([]float64{0, 0.5, 1}, defs)
	want := []float64{0.01, 0.105, 6}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("fromNormalized[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFromNormalizedClampsOutOfRangePositions(t *testing.T) {
	defs := []knobDef{{"x", 0, 10}}
	got := fromNormalized([]float64{-5}, defs)
	if got[0] != 0 {
		t.Errorf("expected clamp to 0, got %v", got[0])
	}
	got = fromNormalized([]float64{5}, defs)
	if got[0] != 10 {
		t.Errorf("expected clamp to 10, got %v", got[0])
	}
}

func TestClampMinMax(t *testing.T) {
	if v := clamp(-1, 0, 1); v != 0 {
		t.Errorf("clamp(-1,0,1) = %v, want 0", v)
	}
	if v := clamp(2, 0, 1); v != 1 {
		t.Errorf("clamp(2,0,1) = %v, want 1", v)
	}
	if v := clamp(0.5, 0, 1); v != 0.5 {
		t.Errorf("clamp(0.5,0,1) = %v, want 0.5", v)
	}
	if minInt(3, 7) != 3 || minInt(7, 3) != 3 {
		t.Error("minInt failed")
	}
	if maxInt(3, 7) != 7 || maxInt(7, 3) != 7 {
		t.Error("maxInt failed")
	}
}

func TestCalibrationBankProducesThreeValidSignals(t *testing.T) {
	bank := calibrationBank(128)
	if len(bank) != 3 {
		t.Fatalf("expected 3 calibration signals, got %d", len(bank))
	}
	for i, sig := range bank {
		if len(sig.Samples) != 128 {
			t.Errorf("signal %d has %d samples, want 128", i, len(sig.Samples))
		}
	}
}

func TestNewMayflyConfigUnsupportedVariant(t *testing.T) {
	if _, err := newMayflyConfig("bogus", 10, 3, 5); err == nil {
		t.Fatal("expected an error for an unsupported variant")
	}
}

func TestNewMayflyConfigKnownVariants(t *testing.T) {
	for _, variant := range []string{"ma", "desma", "olce", "eobbma", "gsasma", "mpma", "aoblmoa"} {
		cfg, err := newMayflyConfig(variant, 10, 3, 5)
		if err != nil {
			t.Fatalf("newMayflyConfig(%q): %v", variant, err)
		}
		if cfg.ProblemSize != 3 {
			t.Errorf("%s: ProblemSize = %d, want 3", variant, cfg.ProblemSize)
		}
		if cfg.NPop != 10 || cfg.NPopF != 10 {
			t.Errorf("%s: NPop/NPopF = %d/%d, want 10/10", variant, cfg.NPop, cfg.NPopF)
		}
		if cfg.MaxIterations != 5 {
			t.Errorf("%s: MaxIterations = %d, want 5", variant, cfg.MaxIterations)
		}
	}
}
