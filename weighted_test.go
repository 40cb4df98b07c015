package randseed_test

import (
	"slices"
	"testing"

	"github.com/nozzle/randseed"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestCumSum(t *testing.T) {
	tests := []struct {
		name     string
		weights  []float64
		expected []float64
	}{
		{"empty", nil, []float64{}},
		{"single", []float64{2.5}, []float64{2.5}},
		{"zeros", []float64{0, 0, 0}, []float64{0, 0, 0}},
		{"mixed", []float64{1, 0, 2, 3}, []float64{1, 1, 3, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := randseed.CumSum(tt.weights)
			if got == nil || !slices.Equal(got, tt.expected) {
				t.Errorf("CumSum(%v): got %v, expected %v", tt.weights, got, tt.expected)
			}
		})
	}
}

func TestCumSumFloat32(t *testing.T) {
	got := randseed.CumSum([]float32{0.5, 0.25, 0.25})
	expected := []float64{0.5, 0.75, 1}
	if !slices.Equal(got, expected) {
		t.Errorf("CumSum float32: got %v, expected %v", got, expected)
	}
}

func TestAppendCumSumReusesBuffer(t *testing.T) {
	buf := make([]float64, 0, 8)
	buf = randseed.AppendCumSum(buf, []float64{1, 2, 3, 4, 5})
	first := &buf[0]

	buf = randseed.AppendCumSum(buf, []float64{4, 4})
	if !slices.Equal(buf, []float64{4, 8}) {
		t.Errorf("AppendCumSum: got %v, expected [4 8]", buf)
	}
	if &buf[0] != first {
		t.Error("AppendCumSum reallocated a buffer with enough capacity")
	}
}

func TestDrawWeightedIndex(t *testing.T) {
	r := randseed.NewFromTime()

	if got := randseed.DrawWeightedIndex(r, []float64{0, 1, 0}); got != 1 {
		t.Errorf("DrawWeightedIndex([0 1 0]): got %d, expected 1", got)
	}
	if got, _ := randseed.DrawWeightedIndexBuf(r, []float64{0, 1, 0}, nil); got != 1 {
		t.Errorf("DrawWeightedIndexBuf([0 1 0]): got %d, expected 1", got)
	}
	if got := randseed.DrawWeightedIndex(r, []float64{}); got != -1 {
		t.Errorf("DrawWeightedIndex([]): got %d, expected -1", got)
	}
	if got := randseed.DrawWeightedIndex(r, []float64{0, 0, 0}); got != -1 {
		t.Errorf("DrawWeightedIndex([0 0 0]): got %d, expected -1", got)
	}

	if got := randseed.DrawWeightedIndex(r, []float32{0, 1, 0}); got != 1 {
		t.Errorf("DrawWeightedIndex(float32 [0 1 0]): got %d, expected 1", got)
	}
	if got, _ := randseed.DrawWeightedIndexBuf(r, []float32{0, 1, 0}, nil); got != 1 {
		t.Errorf("DrawWeightedIndexBuf(float32 [0 1 0]): got %d, expected 1", got)
	}
	if got := randseed.DrawWeightedIndex(r, []float32{}); got != -1 {
		t.Errorf("DrawWeightedIndex(float32 []): got %d, expected -1", got)
	}
}

func TestDrawWeightedIndexOnlyNonZero(t *testing.T) {
	r := randseed.New(12345)
	weights := []float64{0, 0, 3, 0}

	var totals []float64
	for range 1000 {
		var got int
		got, totals = randseed.DrawWeightedIndexBuf(r, weights, totals)
		if got != 2 {
			t.Fatalf("Got %d, expected 2", got)
		}
	}
}

func TestDrawWeightedIndexVsReference(t *testing.T) {
	r := randseed.New(12345)
	if got := randseed.DrawWeightedIndex(r, []float64{1, 2, 3, 4}); got != 0 {
		t.Errorf("First draw: got %d, expected 0", got)
	}
}

func TestDrawWeightedIndexDistribution(t *testing.T) {
	r := randseed.New(777)
	weights := []float64{1, 2, 3, 4}
	const n = 100000

	observed := make([]float64, len(weights))
	for range n {
		observed[randseed.DrawWeightedIndex(r, weights)]++
	}

	expected := make([]float64, len(weights))
	for i, w := range weights {
		expected[i] = n * w / 10
	}

	chi2 := stat.ChiSquare(observed, expected)
	p := distuv.ChiSquared{K: float64(len(weights) - 1)}.Survival(chi2)
	t.Logf("observed=%v chi2=%.3f p=%.4f", observed, chi2, p)
	if p < 1e-4 {
		t.Errorf("Weighted draws do not follow weights: chi2=%.3f p=%.2e", chi2, p)
	}
}

func TestDrawWeightedIndexesWithReplacement(t *testing.T) {
	r := randseed.NewFromTime()

	got := randseed.DrawWeightedIndexes(r, []float64{0, 1, 0}, 10, true)
	expected := []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	if !slices.Equal(got, expected) {
		t.Errorf("Got %v, expected %v", got, expected)
	}

	got = randseed.DrawWeightedIndexes(r, []float32{0, 1, 0}, 10, true)
	if !slices.Equal(got, expected) {
		t.Errorf("float32: got %v, expected %v", got, expected)
	}
}

func TestDrawWeightedIndexesWithoutReplacement(t *testing.T) {
	r := randseed.NewFromTime()

	got := randseed.DrawWeightedIndexes(r, []float64{0, 1, 0}, 10, false)
	if !slices.Equal(got, []int{1}) {
		t.Errorf("Got %v, expected [1]", got)
	}

	got = randseed.DrawWeightedIndexes(r, []float32{0, 1, 0}, 10, false)
	if !slices.Equal(got, []int{1}) {
		t.Errorf("float32: got %v, expected [1]", got)
	}
}

func TestDrawWeightedIndexesVsReference(t *testing.T) {
	weights := []float64{1, 2, 3, 4}

	r := randseed.New(12345)
	got := randseed.DrawWeightedIndexes(r, weights, 10, true)
	expected := []int{0, 0, 3, 2, 3, 3, 1, 3, 1, 2}
	if !slices.Equal(got, expected) {
		t.Errorf("With replacement: got %v, expected %v", got, expected)
	}

	r = randseed.New(12345)
	got = randseed.DrawWeightedIndexes(r, weights, 4, false)
	expected = []int{0, 1, 3, 2}
	if !slices.Equal(got, expected) {
		t.Errorf("Without replacement: got %v, expected %v", got, expected)
	}
}

func TestDrawWeightedIndexesUnique(t *testing.T) {
	r := randseed.New(99)
	weights := []float64{5, 0, 1, 1, 0.5, 3, 0, 2}

	for count := -1; count <= 12; count++ {
		for range 200 {
			got := randseed.DrawWeightedIndexes(r, weights, count, false)
			if len(got) > max(0, min(count, len(weights))) {
				t.Fatalf("count=%d: got %d indexes", count, len(got))
			}
			seen := make(map[int]bool)
			for _, idx := range got {
				if seen[idx] {
					t.Fatalf("count=%d: duplicate index %d in %v", count, idx, got)
				}
				if weights[idx] == 0 {
					t.Fatalf("count=%d: zero-weight index %d drawn", count, idx)
				}
				seen[idx] = true
			}
		}
	}

	// Only six weights are positive
	if got := randseed.DrawWeightedIndexes(r, weights, 8, false); len(got) != 6 {
		t.Errorf("Got %d indexes, expected 6", len(got))
	}
}

func TestDrawWeightedIndexesEdgeCases(t *testing.T) {
	r := randseed.New(3)

	tests := []struct {
		name            string
		weights         []float64
		count           int
		withReplacement bool
	}{
		{"empty with replacement", nil, 5, true},
		{"empty without replacement", nil, 5, false},
		{"zero count with replacement", []float64{1, 2}, 0, true},
		{"zero count without replacement", []float64{1, 2}, 0, false},
		{"negative count with replacement", []float64{1, 2}, -3, true},
		{"negative count without replacement", []float64{1, 2}, -3, false},
		{"all zero with replacement", []float64{0, 0}, 4, true},
		{"all zero without replacement", []float64{0, 0}, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := randseed.DrawWeightedIndexes(r, tt.weights, tt.count, tt.withReplacement)
			if got == nil || len(got) != 0 {
				t.Errorf("Got %#v, expected empty slice", got)
			}
		})
	}
}

func TestDrawWeightedIndexesWithoutReplacementKeepsInput(t *testing.T) {
	r := randseed.New(8)
	weights := []float32{1, 2, 3}

	randseed.DrawWeightedIndexes(r, weights, 3, false)

	if !slices.Equal(weights, []float32{1, 2, 3}) {
		t.Errorf("Weights modified: %v", weights)
	}
}

func BenchmarkDrawWeightedIndexBuf(b *testing.B) {
	r := randseed.New(12345)
	weights := make([]float64, 64)
	for i := range weights {
		weights[i] = float64(i%5) + 0.5
	}
	var totals []float64
	for b.Loop() {
		_, totals = randseed.DrawWeightedIndexBuf(r, weights, totals)
	}
}
