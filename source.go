package randseed

import (
	"errors"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

var _ rand.Source = (*Rand)(nil)

var (
	// ErrNoWeight is returned when a distribution needs at least one positive weight.
	ErrNoWeight = errors.New("randseed: no positive weight")
	// ErrNegativeWeight is returned when a distribution is given a negative weight.
	ErrNegativeWeight = errors.New("randseed: negative weight")
)

// Uint64 returns a 64-bit value built from three raw draws, so that a Rand
// can serve as a math/rand/v2 Source. Raw draws never reach MaxInt32, so
// the result is close to, but not exactly, uniform over 64 bits.
func (r *Rand) Uint64() uint64 {
	a := uint64(r.Next())
	b := uint64(r.Next())
	c := uint64(r.Next())
	return a<<33 | b<<2 | c&3
}

// NormFloat64 returns a normally distributed value with mean mu and standard
// deviation sigma, drawn through gonum's distuv.Normal with r as its source.
func (r *Rand) NormFloat64(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: r}.Rand()
}

// Categorical returns a gonum categorical distribution over weights that
// draws from r. Unlike DrawWeightedIndex it supports reweighting in
// logarithmic time, which suits long sequences of draws without replacement.
func (r *Rand) Categorical(weights []float64) (distuv.Categorical, error) {
	var positive bool
	for _, w := range weights {
		if w < 0 {
			return distuv.Categorical{}, ErrNegativeWeight
		}
		if w > 0 {
			positive = true
		}
	}
	if !positive {
		return distuv.Categorical{}, ErrNoWeight
	}
	return distuv.NewCategorical(weights, r), nil
}
