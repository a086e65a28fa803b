package parsette

// Choice tries each parser in order, folding them together with Or: the
// first to consume input wins; when none consumes, the first to succeed
// wins, and the failure message of the whole reflects every branch that was
// tried.
//
// Choice of nothing is Fail.
func Choice[S, A any](parsers ...Parser[S, A]) Parser[S, A] {
	combined := Fail[S, A]()
	for i := len(parsers) - 1; i >= 0; i-- {
		combined = Or(parsers[i], combined)
	}
	return combined
}

// Option applies p, producing fallback if p fails without consuming.
func Option[S, A any](p Parser[S, A], fallback A) Parser[S, A] {
	return Or(p, Return[S, A](fallback))
}

// Optional applies p and discards its result; it succeeds whether or not p
// matched, as long as p did not fail after consuming.
func Optional[S, A any](p Parser[S, A]) Parser[S, Unit] {
	return Or(Then(p, Return[S, Unit](Unit{})), Return[S, Unit](Unit{}))
}

// OptionalOf applies p, producing a pointer to its result on success and
// nil if p failed without consuming.
func OptionalOf[S, A any](p Parser[S, A]) Parser[S, *A] {
	return Option(Bind(p, func(value A) Parser[S, *A] {
		return Return[S, *A](&value)
	}), nil)
}

// LookAhead applies p without consuming input on success. Failures pass
// through as p produced them; combine with Attempt for a fully
// non-consuming probe.
func LookAhead[S, A any](p Parser[S, A]) Parser[S, A] {
	return func(input Input[S]) Consumed[S, A] {
		c := p(input)
		r := c.Reply()
		if !r.OK {
			if c.Consumed {
				return consumedNow(r)
			}
			return emptied(r)
		}
		return emptied(okReply(r.Result, input, messageAt(input.Position())))
	}
}
