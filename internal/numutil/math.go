// Package numutil holds small numeric, signal-generation and WAV helpers
// shared by the emd package, the cmd tools and the tests.
package numutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ParseDirections parses a round count such as ndirs/nbsym from a CLI flag,
// rejecting anything below 1.
func ParseDirections(raw string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("empty value (use integer >= 1)")
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%q (use integer >= 1)", raw)
	}
	if n < 1 {
		return 0, fmt.Errorf("%d (must be >= 1)", n)
	}
	return n, nil
}

// RoundHalfToEven rounds a float64 midpoint using banker's rounding, the
// convention picked for collapsing zero-crossing plateaus to a single index
// (spec §9).
func RoundHalfToEven(v float64) int {
	floor := int(math.Floor(v))
	frac := v - float64(floor)
	switch {
	case frac < 0.5:
		return floor
	case frac > 0.5:
		return floor + 1
	default:
		if floor%2 == 0 {
			return floor
		}
		return floor + 1
	}
}
