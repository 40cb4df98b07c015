package randseed

import "math"

// Float64 returns a pseudo-random value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Next()) / math.MaxInt32
}

// Float64N returns a pseudo-random value in [0, max).
func (r *Rand) Float64N(max float64) float64 {
	return r.Float64() * max
}

// Float64Range returns a pseudo-random value in [min, max).
//
// The result is the blend t*max + (1-t)*min rather than min + t*(max-min).
// The explicit conversions keep the compiler from fusing the products into
// an FMA, which would change the rounding on some architectures.
func (r *Rand) Float64Range(min, max float64) float64 {
	t := r.Float64()
	return float64(t*max) + float64((1-t)*min)
}

// Float32 returns Float64 rounded to float32. Draws within 2^-25 of 1
// round up, so the result is 1 with probability about 3e-8.
func (r *Rand) Float32() float32 {
	return float32(r.Float64())
}

// Float32N returns Float64N narrowed to float32.
func (r *Rand) Float32N(max float32) float32 {
	return float32(r.Float64N(float64(max)))
}

// Float32Range returns Float64Range narrowed to float32.
func (r *Rand) Float32Range(min, max float32) float32 {
	return float32(r.Float64Range(float64(min), float64(max)))
}

// NextN returns a pseudo-random value in [0, max).
// For max <= 0 the result is in (max, 0].
func (r *Rand) NextN(max int32) int32 {
	return int32(r.Float64() * float64(max))
}

// NextRange returns a pseudo-random value in [min, max).
// The result is unspecified when max < min.
//
// Ranges wider than MaxInt32 draw twice per call; see largeFloat64.
func (r *Rand) NextRange(min, max int32) int32 {
	delta := int64(max) - int64(min)

	var t float64
	if delta <= math.MaxInt32 {
		t = r.Float64()
	} else {
		t = r.largeFloat64()
	}

	return int32(int64(t*float64(delta)) + int64(min))
}

// largeFloat64 maps two raw draws to [0, 1): the first supplies the
// magnitude, the parity of the second supplies a sign. This spreads the
// result over twice the raw span so that ranges up to 2^32-1 are reachable.
//
// It is kept for sequence compatibility; the distribution is not exactly
// uniform at full 64-bit resolution.
func (r *Rand) largeFloat64() float64 {
	next := r.Next()
	if r.Next()%2 == 0 {
		next = -next
	}

	result := float64(next) + (math.MaxInt32 - 1)
	return result / (2.0*math.MaxInt32 - 1)
}
