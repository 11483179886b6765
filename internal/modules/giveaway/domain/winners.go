package domain

import "math/rand/v2"

// Picker returns a pseudo-random int in [0, n). *rand.Rand implements it.
type Picker interface {
	IntN(n int) int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

// DefaultPicker uses the math/rand/v2 global source.
var DefaultPicker Picker = globalPicker{}

// SelectWinners draws count distinct entrants uniformly without replacement.
// When there are no more entrants than count, every entrant wins in the
// original order. The input slice is not modified.
func SelectWinners(entrants []string, count int, p Picker) []string {
	if count <= 0 || len(entrants) == 0 {
		return nil
	}
	if len(entrants) <= count {
		winners := make([]string, len(entrants))
		copy(winners, entrants)
		return winners
	}

	pool := make([]string, len(entrants))
	copy(pool, entrants)

	// Partial Fisher-Yates: the first count slots hold the sample.
	for i := range count {
		j := i + p.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count]
}
