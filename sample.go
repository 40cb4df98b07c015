package randseed

import (
	"math"
	"slices"
)

// Shuffle pseudo-randomizes the order of n elements using a forward
// Fisher-Yates pass: for each i in [0, n-1), j is drawn from NextRange(i, n)
// and swap(i, j) is called.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n-1; i++ {
		j := int(r.NextRange(int32(i), int32(n)))
		swap(i, j)
	}
}

// ShuffleSlice shuffles s in place.
func ShuffleSlice[S ~[]E, E any](r *Rand, s S) {
	r.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// Shuffled returns a shuffled copy of s, leaving s untouched.
func Shuffled[S ~[]E, E any](r *Rand, s S) S {
	c := slices.Clone(s)
	if c == nil {
		c = S{}
	}
	ShuffleSlice(r, c)
	return c
}

// ChanceSatisfied reports whether a draw falls within probability p.
// A draw is always consumed. p <= 0 is never satisfied and p >= 1 always is.
func (r *Rand) ChanceSatisfied(p float64) bool {
	return (r.Float64() <= p && p > 0) || p >= 1
}

// InsideUnitCircle returns a point uniformly distributed over the unit disc.
// The radius is the square root of a uniform draw so that samples have
// uniform areal density.
func (r *Rand) InsideUnitCircle() (x, y float64) {
	radius := math.Sqrt(r.Float64())
	angle := r.Float64N(2 * math.Pi)
	return radius * math.Cos(angle), radius * math.Sin(angle)
}

// Float32InsideUnitCircle is InsideUnitCircle narrowed to float32.
func (r *Rand) Float32InsideUnitCircle() (x, y float32) {
	dx, dy := r.InsideUnitCircle()
	return float32(dx), float32(dy)
}
