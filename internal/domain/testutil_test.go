package domain

import "testing"

// seqRand replays a fixed sequence of values, reduced modulo n.
type seqRand struct {
	vals []int32
	i    int
}

func (r *seqRand) Int31n(n int32) int32 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func newTestState(tb testing.TB, rng Rand) *GameState {
	tb.Helper()
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		tb.Fatalf("default config: %v", err)
	}
	return NewGameState(cfg, rng)
}
