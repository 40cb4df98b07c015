// Package rand provides the lagged subtractive generator used by randseed.
// The algorithm follows Knuth's subtractive method as popularised by
// Numerical Recipes and the .NET Framework System.Random, and reproduces its
// output sequence exactly for any int32 seed.
package rand

import "math"

const (
	// StateLen is the length of the state array. Index 0 is never read or
	// written by the algorithm; only indices 1..55 carry state.
	StateLen = 56

	mbig   = math.MaxInt32
	mseed  = 161803398
	lag    = 21
	period = 55
)

// Subtractive is a lagged subtractive random number generator.
//
// The zero value is not seeded; use NewSubtractive or call Seed first.
// A Subtractive must not be used from more than one goroutine at a time.
type Subtractive struct {
	seed  int32
	pos1  int32
	pos2  int32
	state [StateLen]int32
}

// NewSubtractive creates a new generator with the given seed.
func NewSubtractive(seed int32) *Subtractive {
	s := &Subtractive{}
	s.Seed(seed)
	return s
}

// posMod folds a difference of two state values back into [0, MaxInt32).
// It is a single conditional add, not a true modulo.
func posMod(v int32) int32 {
	if v < 0 {
		return v + mbig
	}
	return v
}

func wrap(i int32) int32 {
	if i > period {
		return 1
	}
	return i
}

// Seed reinitializes the generator, discarding all prior state.
func (s *Subtractive) Seed(seed int32) {
	s.seed = seed
	s.pos1 = 0
	s.pos2 = lag

	abs := int32(mbig)
	if seed != math.MinInt32 {
		abs = seed
		if abs < 0 {
			abs = -abs
		}
	}

	mj := mseed - abs
	s.state[period] = mj
	mk := int32(1)

	for i := int32(1); i < period; i++ {
		index := (lag * i) % period
		s.state[index] = mk
		mk = posMod(mj - mk)
		mj = s.state[index]
	}

	// Warm up to reduce seed bias
	for range 4 {
		for i := int32(1); i <= period; i++ {
			s.state[i] = posMod(s.state[i] - s.state[1+(i+30)%period])
		}
	}
}

// Next returns the next raw value in [0, MaxInt32-1].
func (s *Subtractive) Next() int32 {
	i := wrap(s.pos1 + 1)
	j := wrap(s.pos2 + 1)

	next := posMod(s.state[i] - s.state[j])
	if next == mbig {
		next--
	}

	s.state[i] = next
	s.pos1 = i
	s.pos2 = j
	return next
}

// SeedValue returns the seed the generator was last initialized with.
func (s *Subtractive) SeedValue() int32 {
	return s.seed
}

// Positions returns the two rotating cursors into the state array.
func (s *Subtractive) Positions() (pos1, pos2 int32) {
	return s.pos1, s.pos2
}

// State returns a copy of the state array.
func (s *Subtractive) State() [StateLen]int32 {
	return s.state
}

// Load overwrites the generator with previously captured fields.
// Callers are responsible for validating the positions.
func (s *Subtractive) Load(seed, pos1, pos2 int32, state [StateLen]int32) {
	s.seed = seed
	s.pos1 = pos1
	s.pos2 = pos2
	s.state = state
}
