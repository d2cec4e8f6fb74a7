package engine

import "math/rand"

// Source is the single injectable randomness dependency. Every roll the
// engine makes (critical hits, flee attempts, loot, gold ranges, dice
// games, fountain effects) goes through one Source, so a fixed seed
// reproduces an entire session.
type Source interface {
	// Float64 returns the next value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// NewSource returns a seeded pseudo-random Source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// ScriptedSource replays queued values for deterministic tests. When a
// queue runs dry the zero value is returned, which keeps outcomes
// predictable rather than panicking mid-test.
type ScriptedSource struct {
	Floats []float64
	Ints   []int
}

func (s *ScriptedSource) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

func (s *ScriptedSource) Intn(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}
