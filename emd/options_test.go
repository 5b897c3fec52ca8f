package emd

import "testing"

func TestNewOptionsDefaults(t *testing.T) {
	o := NewOptions()
	if err := o.validate(); err != nil {
		t.Fatalf("default options should validate: %v", err)
	}
	if o.Mode != ModeAuto {
		t.Fatalf("expected ModeAuto by default, got %v", o.Mode)
	}
}

func TestOptionsValidateRejectsOutOfRangeFields(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Options)
	}{
		{"threshold1", func(o *Options) { o.Threshold1 = 0 }},
		{"threshold2", func(o *Options) { o.Threshold2 = -1 }},
		{"alpha", func(o *Options) { o.Alpha = 0 }},
		{"ndirs", func(o *Options) { o.NDirs = 0 }},
		{"nbsym", func(o *Options) { o.NBSym = 0 }},
		{"maxiter", func(o *Options) { o.MaxIter = 0 }},
		{"fixe", func(o *Options) { o.Fixe = -1 }},
		{"fixeH", func(o *Options) { o.FixeH = -1 }},
		{"nimfs", func(o *Options) { o.NIMFs = -1 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := NewOptions()
			c.mut(&o)
			if err := o.validate(); err == nil {
				t.Fatalf("expected validation error for %s", c.name)
			}
		})
	}
}

func TestComplexModeString(t *testing.T) {
	cases := map[ComplexMode]string{
		ModeAuto:      "auto",
		ModeReal:      "real",
		ModeComplexV1: "complex_v1",
		ModeComplexV2: "complex_v2",
	}
	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", mode, got, want)
		}
	}
}
