// Package config loads and saves emd.Options as JSON, mirroring the
// optional-field-over-defaults pattern used for on-disk presets elsewhere
// in this codebase.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cwbudde/go-hht/emd"
)

// File is the JSON schema for a persisted set of sifting options. Every
// field is optional; an absent field falls back to emd.NewOptions.
type File struct {
	Threshold1 *float64 `json:"threshold_1"`
	Threshold2 *float64 `json:"threshold_2"`
	Alpha      *float64 `json:"alpha"`
	NDirs      *int     `json:"ndirs"`
	NBSym      *int     `json:"nbsym"`
	Fixe       *int     `json:"fixe"`
	FixeH      *int     `json:"fixe_h"`
	MaxIter    *int     `json:"maxiter"`
	NIMFs      *int     `json:"n_imfs"`
	Mode       *string  `json:"mode"`
}

// Load reads a File from path and applies it over emd.NewOptions.
func Load(path string) (emd.Options, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return emd.Options{}, err
	}

	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return emd.Options{}, err
	}

	opts := emd.NewOptions()
	if err := Apply(&opts, &f); err != nil {
		return emd.Options{}, err
	}
	return opts, nil
}

// Save writes opts to path as a File, with every field populated.
func Save(path string, opts emd.Options) error {
	mode := opts.Mode.String()
	f := File{
		Threshold1: &opts.Threshold1,
		Threshold2: &opts.Threshold2,
		Alpha:      &opts.Alpha,
		NDirs:      &opts.NDirs,
		NBSym:      &opts.NBSym,
		Fixe:       &opts.Fixe,
		FixeH:      &opts.FixeH,
		MaxIter:    &opts.MaxIter,
		NIMFs:      &opts.NIMFs,
		Mode:       &mode,
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Apply overlays f's set fields onto dst, validating each as it is applied.
func Apply(dst *emd.Options, f *File) error {
	if dst == nil {
		return fmt.Errorf("nil destination options")
	}
	if f == nil {
		return nil
	}

	if f.Threshold1 != nil {
		if *f.Threshold1 <= 0 {
			return fmt.Errorf("threshold_1 must be > 0")
		}
		dst.Threshold1 = *f.Threshold1
	}
	if f.Threshold2 != nil {
		if *f.Threshold2 <= 0 {
			return fmt.Errorf("threshold_2 must be > 0")
		}
		dst.Threshold2 = *f.Threshold2
	}
	if f.Alpha != nil {
		if *f.Alpha <= 0 {
			return fmt.Errorf("alpha must be > 0")
		}
		dst.Alpha = *f.Alpha
	}
	if f.NDirs != nil {
		if *f.NDirs < 1 {
			return fmt.Errorf("ndirs must be >= 1")
		}
		dst.NDirs = *f.NDirs
	}
	if f.NBSym != nil {
		if *f.NBSym < 1 {
			return fmt.Errorf("nbsym must be >= 1")
		}
		dst.NBSym = *f.NBSym
	}
	if f.Fixe != nil {
		if *f.Fixe < 0 {
			return fmt.Errorf("fixe must be >= 0")
		}
		dst.Fixe = *f.Fixe
	}
	if f.FixeH != nil {
		if *f.FixeH < 0 {
			return fmt.Errorf("fixe_h must be >= 0")
		}
		dst.FixeH = *f.FixeH
	}
	if f.MaxIter != nil {
		if *f.MaxIter < 1 {
			return fmt.Errorf("maxiter must be >= 1")
		}
		dst.MaxIter = *f.MaxIter
	}
	if f.NIMFs != nil {
		if *f.NIMFs < 0 {
			return fmt.Errorf("n_imfs must be >= 0")
		}
		dst.NIMFs = *f.NIMFs
	}
	if f.Mode != nil {
		mode, err := parseMode(*f.Mode)
		if err != nil {
			return err
		}
		dst.Mode = mode
	}

	if dst.Fixe > 0 && dst.FixeH > 0 {
		return fmt.Errorf("fixe and fixe_h cannot both be set")
	}
	return nil
}

func parseMode(s string) (emd.ComplexMode, error) {
	switch s {
	case "auto":
		return emd.ModeAuto, nil
	case "real":
		return emd.ModeReal, nil
	case "complex_v1":
		return emd.ModeComplexV1, nil
	case "complex_v2":
		return emd.ModeComplexV2, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}
