// Command emd-decompose runs empirical mode decomposition over a WAV or
// CSV signal and writes one file per extracted IMF plus the residue.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cwbudde/go-hht/analysis"
	"github.com/cwbudde/go-hht/config"
	"github.com/cwbudde/go-hht/emd"
	"github.com/cwbudde/go-hht/internal/numutil"
)

func main() {
	input := flag.String("input", "", "Input WAV file path")
	csvPath := flag.String("csv", "", "Input single-column CSV path (alternative to -input)")
	sampleRate := flag.Int("sample-rate", 48000, "Sample rate for CSV input and output WAV files")
	resampleHz := flag.Int("resample-hz", 0, "Resample input to this rate before decomposing (0 disables)")
	configPath := flag.String("config", "", "Optional JSON sifting-options file (see config package)")
	threshold1 := flag.Float64("threshold-1", 0.05, "Stopping threshold theta_1")
	threshold2 := flag.Float64("threshold-2", 0.5, "Stopping threshold theta_2")
	alpha := flag.Float64("alpha", 0.05, "Fraction of samples permitted to exceed threshold_1")
	ndirs := flag.Int("ndirs", 4, "Rotation directions for complex-mode sifting")
	nbsym := flag.Int("nbsym", 2, "Extrema mirrored at each boundary")
	fixe := flag.Int("fixe", 0, "Fixed sift iteration count per mode (0 disables)")
	fixeH := flag.Int("fixe-h", 0, "Consecutive-pass stop count (0 disables)")
	maxIter := flag.Int("max-iter", 2000, "Hard ceiling on sift iterations per mode")
	nIMFs := flag.Int("n-imfs", 0, "Stop after this many IMFs (0 means unlimited)")
	mode := flag.String("mode", "auto", "Complex mode: auto|real|complex_v1|complex_v2")
	outputDir := flag.String("output-dir", "out/emd", "Directory for per-IMF WAV and report JSON")
	spectralReport := flag.Bool("spectral-report", false, "Include a per-IMF magnitude spectrum in the report")
	flag.Parse()

	if *input == "" && *csvPath == "" {
		die("one of -input or -csv is required")
	}
	if *input != "" && *csvPath != "" {
		die("-input and -csv are mutually exclusive")
	}

	opts := emd.NewOptions()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			die("failed to load config: %v", err)
		}
		opts = loaded
	} else {
		parsedMode, err := parseMode(*mode)
		if err != nil {
			die("invalid -mode: %v", err)
		}
		opts = emd.Options{
			Threshold1: *threshold1,
			Threshold2: *threshold2,
			Alpha:      *alpha,
			NDirs:      *ndirs,
			NBSym:      *nbsym,
			Fixe:       *fixe,
			FixeH:      *fixeH,
			MaxIter:    *maxIter,
			NIMFs:      *nIMFs,
			Mode:       parsedMode,
		}
	}

	var samples []float64
	rate := *sampleRate
	var err error
	if *input != "" {
		samples, rate, err = numutil.ReadWAVMono(*input)
		if err != nil {
			die("failed to read wav: %v", err)
		}
	} else {
		samples, err = readCSV(*csvPath)
		if err != nil {
			die("failed to read csv: %v", err)
		}
	}

	if *resampleHz > 0 {
		samples, err = numutil.ResampleIfNeeded(samples, rate, *resampleHz)
		if err != nil {
			die("failed to resample: %v", err)
		}
		rate = *resampleHz
	}

	sig, err := emd.NewSignal(samples, nil)
	if err != nil {
		die("invalid signal: %v", err)
	}

	dec, err := emd.NewDecomposer(sig, opts)
	if err != nil {
		die("failed to build decomposer: %v", err)
	}

	result, err := dec.Decompose()
	if err != nil {
		die("decomposition failed: %v", err)
	}
	for _, w := range dec.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		die("failed to create output dir: %v", err)
	}

	toSamples := numutil.ComplexMagnitude
	if result.Mode() == emd.ModeReal {
		toSamples = func(x []complex128) []float64 {
			out := make([]float64, len(x))
			for i, v := range x {
				out[i] = real(v)
			}
			return out
		}
	}
	for i, imf := range result.IMFs() {
		path := filepath.Join(*outputDir, fmt.Sprintf("imf_%02d.wav", i+1))
		if err := numutil.WriteMonoWAV(path, toSamples(imf), rate); err != nil {
			die("failed to write %s: %v", path, err)
		}
	}
	residuePath := filepath.Join(*outputDir, "residue.wav")
	if err := numutil.WriteMonoWAV(residuePath, toSamples(result.Residue()), rate); err != nil {
		die("failed to write %s: %v", residuePath, err)
	}

	report := buildReport(samples, result, rate, *spectralReport)
	reportPath := filepath.Join(*outputDir, "report.json")
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		die("failed to marshal report: %v", err)
	}
	if err := os.WriteFile(reportPath, b, 0o644); err != nil {
		die("failed to write report: %v", err)
	}

	fmt.Printf("Done imfs=%d io=%.6f mode=%s\n", len(result.IMFs()), result.IO(), result.Mode())
}

type report struct {
	Mode             string                   `json:"mode"`
	IMFCount         int                      `json:"imf_count"`
	IndexOrthogonality float64                `json:"index_orthogonality"`
	SiftCounts       []int                    `json:"sift_counts"`
	Reconstruction   analysis.Reconstruction  `json:"reconstruction"`
	Spectral         []analysis.SpectralBand  `json:"spectral,omitempty"`
}

func buildReport(samples []float64, result emd.Result, rate int, withSpectral bool) report {
	x := make([]complex128, len(samples))
	for i, s := range samples {
		x[i] = complex(s, 0)
	}
	rep := report{
		Mode:               result.Mode().String(),
		IMFCount:           len(result.IMFs()),
		IndexOrthogonality: result.IO(),
		SiftCounts:         result.SiftCounts(),
		Reconstruction:     analysis.Reconstruct(x, result),
	}
	if withSpectral {
		bands, err := analysis.SpectralProfile(result.IMFs(), rate)
		if err == nil {
			rep.Spectral = bands
		}
	}
	return rep
}

func readCSV(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	var out []float64
	for {
		rec, err := r.Read()
		if err != nil {
			break
		}
		if len(rec) == 0 {
			continue
		}
		field := strings.TrimSpace(rec[len(rec)-1])
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no numeric samples found in %s", path)
	}
	return out, nil
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

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
