package parsette

// Pair allows returning two results from a parser.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// NewPair instantiates a new Pair.
func NewPair[L, R any](left L, right R) Pair[L, R] {
	return Pair[L, R]{Left: left, Right: right}
}
