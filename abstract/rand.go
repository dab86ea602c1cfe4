package abstract

// Source supplies the random draws that drive insert and join. Intn
// must return a uniform integer in [0, n) for any n >= 1; the bounds
// passed correspond to subtree sizes. A biased or correlated source
// degrades the balance guarantee but never the ordering or size
// invariants. Sources are sequential mutable state: each structural
// decision consumes exactly one draw.
type Source interface {
	Intn(n int) int
}

// LCG is the default Source, a linear congruential generator with the
// multiplier and increment from Numerical Recipes. It is cheap and
// deterministic for a given seed, but it has only 32 bits of state,
// so it is not ideal for very large trees.
type LCG struct {
	state uint32
}

// NewLCG returns an LCG seeded with seed. NewLCG(1) reproduces the
// default sequence used by trees that were not given a Source.
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Intn advances the generator and reduces the new state modulo n.
func (l *LCG) Intn(n int) int {
	l.state = 1664525*l.state + 1013904223
	return int(uint64(l.state) % uint64(n))
}
