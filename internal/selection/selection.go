// Package selection picks one wallpaper candidate uniformly at random.
package selection

import "math/rand/v2"

// Chooser draws candidates from a uniformly distributed generator.
type Chooser struct {
	intN func(n int) int
}

// New returns a Chooser backed by the runtime-seeded global generator.
func New() *Chooser {
	return &Chooser{intN: rand.IntN}
}

// NewWithSource returns a Chooser drawing from src, for reproducible runs.
func NewWithSource(src rand.Source) *Chooser {
	r := rand.New(src)
	return &Chooser{intN: r.IntN}
}

// Choose returns one element of candidates with probability 1/len(candidates).
// It reports false when candidates is empty.
func (c *Chooser) Choose(candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	intN := rand.IntN
	if c != nil && c.intN != nil {
		intN = c.intN
	}
	return candidates[intN(len(candidates))], true
}
