package parsette

// Preceded parses and discards a result from the prefix parser, then parses
// a result from the main parser and returns it.
func Preceded[S, OP, A any](prefix Parser[S, OP], p Parser[S, A]) Parser[S, A] {
	return Then(prefix, p)
}

// Terminated parses a result from the main parser, then parses and discards
// a result from the suffix parser, returning only the main result.
func Terminated[S, A, OS any](p Parser[S, A], suffix Parser[S, OS]) Parser[S, A] {
	return Bind(p, func(value A) Parser[S, A] {
		return Then(suffix, Return[S, A](value))
	})
}

// Between parses open, then p, then close, and returns p's result.
func Between[S, OO, A, OC any](open Parser[S, OO], close Parser[S, OC], p Parser[S, A]) Parser[S, A] {
	return Then(open, Terminated(p, close))
}

// Sequenced applies two parsers in order and returns both results as a Pair.
func Sequenced[S, L, R any](left Parser[S, L], right Parser[S, R]) Parser[S, Pair[L, R]] {
	return Bind(left, func(l L) Parser[S, Pair[L, R]] {
		return Bind(right, func(r R) Parser[S, Pair[L, R]] {
			return Return[S, Pair[L, R]](NewPair(l, r))
		})
	})
}

// SeparatedPair applies two parsers separated by a third, discarding the
// separator's result and returning the outer two as a Pair.
func SeparatedPair[S, L, O, R any](left Parser[S, L], separator Parser[S, O], right Parser[S, R]) Parser[S, Pair[L, R]] {
	return Sequenced(Terminated(left, separator), right)
}
