package entropy

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestInformationEmptyAndZero(t *testing.T) {
	if got := Information(nil); got != 0 {
		t.Errorf("Information(nil) = %f, want 0", got)
	}
	if got := Information([]int{}); got != 0 {
		t.Errorf("Information([]) = %f, want 0", got)
	}
	if got := Information([]int{0, 0, 0}); got != 0 {
		t.Errorf("Information(all zero) = %f, want 0", got)
	}
}

func TestInformationSingleEvent(t *testing.T) {
	// A certain outcome carries no information.
	if got := Information([]int{7}); got != 0 {
		t.Errorf("Information([7]) = %f, want 0", got)
	}
	if got := Information([]int{0, 7, 0}); got != 0 {
		t.Errorf("Information([0 7 0]) = %f, want 0", got)
	}
}

func TestInformationUniformBinary(t *testing.T) {
	want := math.Log(2)
	for _, counts := range [][]int{{1, 1}, {2, 2}, {50, 50}} {
		if got := Information(counts); math.Abs(got-want) > eps {
			t.Errorf("Information(%v) = %f, want ln 2 = %f", counts, got, want)
		}
	}
}

func TestInformationUniformIsMaximal(t *testing.T) {
	uniform := Information([]int{10, 10, 10})
	skewed := Information([]int{28, 1, 1})
	if skewed >= uniform {
		t.Errorf("skewed distribution info %f should be below uniform %f", skewed, uniform)
	}
	want := math.Log(3)
	if math.Abs(uniform-want) > eps {
		t.Errorf("uniform ternary info = %f, want ln 3 = %f", uniform, want)
	}
}

func TestInformationNonNegative(t *testing.T) {
	samples := [][]int{
		{1}, {1, 2}, {3, 0, 9}, {100, 1}, {0, 0, 1}, {5, 5, 5, 5},
	}
	for _, counts := range samples {
		if got := Information(counts); got < 0 {
			t.Errorf("Information(%v) = %f, want >= 0", counts, got)
		}
	}
}

func TestInformationIgnoresNegativeCounts(t *testing.T) {
	// Negative counts cannot occur from real tallies; they are treated
	// like zeros rather than poisoning the normalization.
	a := Information([]int{3, -2, 3})
	b := Information([]int{3, 0, 3})
	if math.Abs(a-b) > eps {
		t.Errorf("negative count changed result: %f vs %f", a, b)
	}
}
