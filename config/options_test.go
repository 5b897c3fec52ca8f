package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/go-hht/emd"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opts.json")

	opts := emd.NewOptions()
	opts.Threshold1 = 0.03
	opts.NDirs = 8
	opts.Mode = emd.ModeComplexV2

	if err := Save(path, opts); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != opts {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, opts)
	}
}

func TestLoadAppliesOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.json")
	if err := os.WriteFile(path, []byte(`{"ndirs": 6}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := emd.NewOptions()
	want.NDirs = 6
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestApplyRejectsFixeAndFixeHTogether(t *testing.T) {
	dst := emd.NewOptions()
	fixe, fixeH := 3, 4
	f := &File{Fixe: &fixe, FixeH: &fixeH}
	if err := Apply(&dst, f); err == nil {
		t.Fatal("expected an error when both fixe and fixe_h are set")
	}
}

func TestApplyValidatesEachField(t *testing.T) {
	bad := -1.0
	badInt := 0

	cases := []struct {
		name string
		f    *File
	}{
		{"threshold_1", &File{Threshold1: &bad}},
		{"ndirs", &File{NDirs: &badInt}},
		{"nbsym", &File{NBSym: &badInt}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dst := emd.NewOptions()
			if err := Apply(&dst, c.f); err == nil {
				t.Fatalf("expected an error for invalid %s", c.name)
			}
		})
	}
}

func TestApplyNilFileIsNoOp(t *testing.T) {
	dst := emd.NewOptions()
	want := dst
	if err := Apply(&dst, nil); err != nil {
		t.Fatalf("Apply with nil file: %v", err)
	}
	if dst != want {
		t.Fatalf("nil file mutated options: got %+v, want %+v", dst, want)
	}
}

func TestParseModeRejectsUnknown(t *testing.T) {
	if _, err := parseMode("quantum"); err == nil {
		t.Fatal("expected an error for an unknown mode string")
	}
}

func TestParseModeAllKnownValues(t *testing.T) {
	cases := map[string]emd.ComplexMode{
		"auto":       emd.ModeAuto,
		"real":       emd.ModeReal,
		"complex_v1": emd.ModeComplexV1,
		"complex_v2": emd.ModeComplexV2,
	}
	for s, want := range cases {
		got, err := parseMode(s)
		if err != nil {
			t.Fatalf("parseMode(%q): %v", s, err)
		}
		if got != want {
			t.Errorf("parseMode(%q) = %v, want %v", s, got, want)
		}
	}
}
