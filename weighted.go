package randseed

// Weight is the set of element types accepted as draw weights.
// Weights are assumed to be non-negative; negative weights are not
// validated and give unspecified results.
type Weight interface {
	~float32 | ~float64
}

// CumSum returns the running totals of weights, accumulated left to right in
// float64. The result has the same length as weights.
func CumSum[W Weight](weights []W) []float64 {
	if len(weights) == 0 {
		return []float64{}
	}
	return AppendCumSum(make([]float64, 0, len(weights)), weights)
}

// AppendCumSum writes the running totals of weights into dst, reusing its
// storage, and returns the resulting slice. The previous contents of dst
// are discarded.
//
// The sum is intentionally sequential: the totals are draw thresholds and
// must not depend on vectorized summation order.
func AppendCumSum[W Weight](dst []float64, weights []W) []float64 {
	dst = dst[:0]
	var total float64
	for _, w := range weights {
		total += float64(w)
		dst = append(dst, total)
	}
	return dst
}

// DrawIndex draws an index from running totals as produced by CumSum.
// It returns the first index i with v <= totals[i] and totals[i] > 0, where
// v is drawn from [0, totals[len-1]). It returns -1 if totals is empty or no
// index qualifies, as with all-zero weights. A draw is consumed whenever
// totals is non-empty.
func (r *Rand) DrawIndex(totals []float64) int {
	if len(totals) == 0 {
		return -1
	}

	v := r.Float64N(totals[len(totals)-1])
	for i, total := range totals {
		if v <= total && total > 0 {
			return i
		}
	}
	return -1
}

// DrawWeightedIndex draws an index with probability proportional to its
// weight. It returns -1 for empty or all-zero weights.
func DrawWeightedIndex[W Weight](r *Rand, weights []W) int {
	if len(weights) == 0 {
		return -1
	}
	return r.DrawIndex(CumSum(weights))
}

// DrawWeightedIndexBuf is DrawWeightedIndex using totals as scratch space
// for the running totals. It returns the drawn index and the (possibly
// grown) buffer for reuse in later calls.
func DrawWeightedIndexBuf[W Weight](r *Rand, weights []W, totals []float64) (int, []float64) {
	totals = AppendCumSum(totals, weights)
	return r.DrawIndex(totals), totals
}

// DrawWeightedIndexes draws up to count indexes with probability
// proportional to their weights.
//
// With replacement, an index may be drawn more than once; failed draws (all
// weights zero) are skipped, so the result may be shorter than count.
//
// Without replacement, count is clamped to len(weights) and each drawn
// index is excluded from later draws, so no index repeats. Drawing stops
// early once no weight remains.
//
// A count <= 0 returns an empty slice.
func DrawWeightedIndexes[W Weight](r *Rand, weights []W, count int, withReplacement bool) []int {
	if withReplacement {
		return drawWithReplacement(r, weights, count)
	}
	return drawWithoutReplacement(r, weights, count)
}

func drawWithReplacement[W Weight](r *Rand, weights []W, count int) []int {
	result := make([]int, 0, max(count, 0))
	if len(weights) == 0 {
		return result
	}

	totals := CumSum(weights)
	for range count {
		if index := r.DrawIndex(totals); index >= 0 {
			result = append(result, index)
		}
	}
	return result
}

func drawWithoutReplacement[W Weight](r *Rand, weights []W, count int) []int {
	count = min(count, len(weights))
	result := make([]int, 0, max(count, 0))
	if len(weights) == 0 {
		return result
	}

	remaining := make([]float64, len(weights))
	for i, w := range weights {
		remaining[i] = float64(w)
	}

	totals := make([]float64, 0, len(remaining))
	for range count {
		var index int
		index, totals = DrawWeightedIndexBuf(r, remaining, totals)
		if index < 0 {
			break
		}
		remaining[index] = 0
		result = append(result, index)
	}
	return result
}
