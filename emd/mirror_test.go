package emd

import "testing"

// TestBoundaryConditionsSuspectBranches exercises both branches flagged as
// suspect in boundary_conditions (spec §9), in a single hand-traced fixture:
//
//   - left: the first extremum is a minimum and x[0] is not below the first
//     maximum's value, landing in the branch that bounds indmax's slice
//     with indmin's length rather than indmax's own (mirror.go:48-49).
//   - right: the last extremum (a maximum, far from the right endpoint due
//     to a long monotonically decreasing tail) fails to mirror past the
//     endpoint, triggering the boundary-retry block whose suspect pivot
//     comparison is `rsym == len(indmax)` (mirror.go:111-118). That
//     specific equality can never hold given detectExtrema's invariant
//     that extrema indices are spaced at least 2 apart (indmax[k] >=
//     2k+1), so this fixture exercises the retry block's other arm
//     instead — the comparison itself, not just one of its arms, is what
//     spec §9 flags, and both arms are reachable only through this block.
//
// The expected values below were derived by hand-tracing
// boundaryConditions against x, not by running the implementation.
func TestBoundaryConditionsSuspectBranches(t *testing.T) {
	x := []float64{
		10, 1, 8, 0, 9, 1, 10, 2, 11,
		10.5, 10.0, 9.5, 9.0, 8.5, 8.0, 7.5, 7.0, 6.5, 6.0, 5.5, 5.0,
	}
	tAxis := make([]float64, len(x))
	for i := range tAxis {
		tAxis[i] = float64(i)
	}

	indmin, indmax, _ := detectExtrema(x)
	wantIndmin := []int{1, 3, 5, 7}
	wantIndmax := []int{2, 4, 6, 8}
	assertIntSlice(t, "indmin", indmin, wantIndmin)
	assertIntSlice(t, "indmax", indmax, wantIndmax)

	tmin, tmax, zmin, zmax, err := boundaryConditions(x, tAxis, x, 2)
	if err != nil {
		t.Fatalf("boundaryConditions: %v", err)
	}

	assertFloatSlice(t, "tmin", tmin, []float64{-1, 1, 1, 3, 5, 7, 33})
	assertFloatSlice(t, "tmax", tmax, []float64{0, 1, 2, 4, 6, 8, 34, 36})
	assertFloatSlice(t, "zmin", zmin, []float64{0, 1, 1, 0, 1, 2, 2})
	assertFloatSlice(t, "zmax", zmax, []float64{8, 1, 8, 9, 10, 11, 10, 9})
}

// TestBoundaryConditionsLeftBoundaryFailure covers the left-retry path's
// own hard failure: with nbsym=1 the left pivot is already index 1 and the
// mirrored points do not reach past the left endpoint, so instead of
// retrying, mirroring reports KindInternalInvariantViolated rather than
// silently truncating.
func TestBoundaryConditionsLeftBoundaryFailure(t *testing.T) {
	x := []float64{
		10, 1, 8, 0, 9, 1, 10, 2, 11,
		10.5, 10.0, 9.5, 9.0, 8.5, 8.0, 7.5, 7.0, 6.5, 6.0, 5.5, 5.0,
	}
	tAxis := make([]float64, len(x))
	for i := range tAxis {
		tAxis[i] = float64(i)
	}

	_, _, _, _, err := boundaryConditions(x, tAxis, x, 1)
	if err == nil {
		t.Fatal("expected a boundary-extension failure with nbsym=1")
	}
	if !isKind(err, KindInternalInvariantViolated) {
		t.Fatalf("expected KindInternalInvariantViolated, got %v", err)
	}
}

func TestBoundaryConditionsRejectsTooFewExtrema(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	tAxis := []float64{0, 1, 2, 3, 4}
	_, _, _, _, err := boundaryConditions(x, tAxis, x, 2)
	if !isKind(err, KindInsufficientExtrema) {
		t.Fatalf("expected KindInsufficientExtrema, got %v", err)
	}
}

func assertIntSlice(t *testing.T, name string, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s length = %d, want %d (got %v)", name, len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s[%d] = %d, want %d (got %v)", name, i, got[i], want[i], got)
		}
	}
}

func assertFloatSlice(t *testing.T, name string, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s length = %d, want %d (got %v)", name, len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s[%d] = %v, want %v (got %v)", name, i, got[i], want[i], got)
		}
	}
}
