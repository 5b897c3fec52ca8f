// Command emd-tune searches for sifting-threshold hyperparameters that
// minimize the index of orthogonality across a bank of calibration
// signals, using a Mayfly-family population optimizer.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cwbudde/go-hht/config"
	"github.com/cwbudde/go-hht/emd"
	"github.com/cwbudde/go-hht/internal/numutil"
	"github.com/cwbudde/mayfly"
)

// knobDef describes one tunable's normalized-to-real mapping, mirroring
// the fitting tools' knob-definition idiom.
type knobDef struct {
	Name string
	Min  float64
	Max  float64
}

var knobs = []knobDef{
	{"threshold_1", 0.01, 0.20},
	{"alpha", 0.01, 0.20},
	{"nbsym", 1, 6},
}

func main() {
	variant := flag.String("mayfly-variant", "desma", "Mayfly variant: ma|desma|olce|eobbma|gsasma|mpma|aoblmoa")
	pop := flag.Int("mayfly-pop", 10, "Male and female population size per round")
	roundEvals := flag.Int("mayfly-round-evals", 240, "Target eval budget per round")
	workers := flag.Int("workers", 1, "Parallel optimization workers, each owning an independent Decomposer")
	timeBudget := flag.Float64("time-budget", 30.0, "Optimization time budget in seconds")
	maxEvals := flag.Int("max-evals", 4000, "Maximum objective evaluations")
	seed := flag.Int64("seed", 1, "Random seed")
	sampleCount := flag.Int("samples", 512, "Calibration signal length in samples")
	outputConfig := flag.String("output-config", "out/emd-tune/tuned.json", "Path to write the tuned options JSON")
	flag.Parse()

	if *workers < 1 {
		*workers = 1
	}
	if *maxEvals < 1 {
		die("max-evals must be >= 1")
	}
	if *pop < 2 {
		*pop = 2
	}

	bank := calibrationBank(*sampleCount)

	objective := func(vals []float64) float64 {
		opts := emd.NewOptions()
		opts.Threshold1 = vals[0]
		opts.Alpha = vals[1]
		opts.NBSym = int(math.Round(vals[2]))
		if opts.NBSym < 1 {
			opts.NBSym = 1
		}

		var total float64
		for _, sig := range bank {
			dec, err := emd.NewDecomposer(sig, opts)
			if err != nil {
				return 10.0
			}
			result, err := dec.Decompose()
			if err != nil {
				return 10.0
			}
			if len(result.IMFs()) == 0 {
				return 5.0
			}
			total += result.IO()
		}
		return total / float64(len(bank))
	}

	var (
		mu        sync.Mutex
		bestScore = math.Inf(1)
		bestVals  []float64
		evals     int64
		rounds    int64
	)

	deadline := time.Now().Add(time.Duration(*timeBudget * float64(time.Second)))
	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for {
				if time.Now().After(deadline) {
					return
				}
				mu.Lock()
				remaining := *maxEvals - int(evals)
				mu.Unlock()
				if remaining <= 0 {
					return
				}

				round := int(atomic.AddInt64(&rounds, 1))
				budget := minInt(*roundEvals, remaining)
				iters := maxInt(1, budget/(2**pop))

				cfg, err := newMayflyConfig(*variant, *pop, len(knobs), iters)
				if err != nil {
					fmt.Fprintf(os.Stderr, "mayfly round %d setup failed: %v\n", round, err)
					return
				}
				cfg.Rand = rand.New(rand.NewSource(*seed + int64(workerID)*104729 + int64(round)*7919))
				cfg.ObjectiveFunc = func(pos []float64) float64 {
					mu.Lock()
					if evals >= int64(*maxEvals) {
						mu.Unlock()
						return bestScore + 1.0
					}
					evals++
					mu.Unlock()

					vals := fromNormalized(pos, knobs)
					score := objective(vals)

					mu.Lock()
					if score < bestScore {
						bestScore = score
						bestVals = append([]float64(nil), vals...)
					}
					mu.Unlock()
					return score
				}

				if _, err := runMayfly(cfg); err != nil {
					fmt.Fprintf(os.Stderr, "mayfly round %d failed: %v\n", round, err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	if bestVals == nil {
		die("no evaluations completed; increase -time-budget or -max-evals")
	}

	tuned := emd.NewOptions()
	tuned.Threshold1 = bestVals[0]
	tuned.Alpha = bestVals[1]
	tuned.NBSym = int(math.Round(bestVals[2]))
	if tuned.NBSym < 1 {
		tuned.NBSym = 1
	}

	if err := config.Save(*outputConfig, tuned); err != nil {
		die("failed to save tuned config: %v", err)
	}

	fmt.Printf("Done evals=%d best_io=%.6f threshold_1=%.4f alpha=%.4f nbsym=%d\n",
		evals, bestScore, tuned.Threshold1, tuned.Alpha, tuned.NBSym)
}

func calibrationBank(n int) []emd.Signal {
	t := numutil.Linspace(0, 1, n)
	sigs := make([]emd.Signal, 0, 3)

	twoTone := make([]float64, n)
	lowFreq := numutil.Sine(t, 2.0)
	highFreq := numutil.Sine(t, 30.0)
	for i := range twoTone {
		twoTone[i] = lowFreq[i] + 0.5*highFreq[i] + 0.3*t[i]
	}
	if sig, err := emd.NewSignal(twoTone, nil); err == nil {
		sigs = append(sigs, sig)
	}

	trend := make([]float64, n)
	for i := range trend {
		trend[i] = 2*t[i] - 1
	}
	if sig, err := emd.NewSignal(trend, nil); err == nil {
		sigs = append(sigs, sig)
	}

	single := numutil.Sine(t, 5.0)
	if sig, err := emd.NewSignal(single, nil); err == nil {
		sigs = append(sigs, sig)
	}

	return sigs
}

func fromNormalized(pos []float64, defs []knobDef) []float64 {
	out := make([]float64, len(defs))
	for i, d := range defs {
		v := clamp(pos[i], 0, 1)
		out[i] = d.Min + v*(d.Max-d.Min)
	}
	return out
}

func newMayflyConfig(variant string, pop int, dims int, iters int) (*mayfly.Config, error) {
	var cfg *mayfly.Config
	switch variant {
	case "ma":
		cfg = mayfly.NewDefaultConfig()
	case "desma":
		cfg = mayfly.NewDESMAConfig()
	case "olce":
		cfg = mayfly.NewOLCEConfig()
	case "eobbma":
		cfg = mayfly.NewEOBBMAConfig()
	case "gsasma":
		cfg = mayfly.NewGSASMAConfig()
	case "mpma":
		cfg = mayfly.NewMPMAConfig()
	case "aoblmoa":
		cfg = mayfly.NewAOBLMOAConfig()
	default:
		return nil, fmt.Errorf("unsupported variant %q", variant)
	}
	cfg.ProblemSize = dims
	cfg.LowerBound = 0.0
	cfg.UpperBound = 1.0
	cfg.MaxIterations = iters
	cfg.NPop = pop
	cfg.NPopF = pop
	cfg.NC = 2 * pop
	cfg.NM = maxInt(1, int(math.Round(0.05*float64(pop))))
	return cfg, nil
}

func runMayfly(cfg *mayfly.Config) (_ *mayfly.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mayfly panic: %v", r)
		}
	}()
	return mayfly.Optimize(cfg)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
