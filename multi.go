package parsette

// Many applies p repeatedly until it fails without consuming, and returns
// the collected results in input order. A failure that consumed input is
// propagated rather than swallowed; the loop is iterative, so a million
// matches cost no stack.
//
// A non-consuming success of p is a fixed point: repeating it could never
// terminate, so the loop stops there with what it has.
func Many[S, A any](p Parser[S, A]) Parser[S, []A] {
	return func(input Input[S]) Consumed[S, []A] {
		results := []A{}
		remaining := input
		advanced := false
		for {
			c := p(remaining)
			if c.Consumed {
				r := c.Reply()
				if !r.OK {
					return consumedNow(castError[S, A, []A](r))
				}
				advanced = true
				results = append(results, r.Result)
				remaining = r.Rest
				continue
			}
			r := c.Reply()
			final := okReply(results, remaining, r.Msg)
			if advanced {
				return consumedNow(final)
			}
			return emptied(final)
		}
	}
}

// Many1 is Many requiring at least one match.
func Many1[S, A any](p Parser[S, A]) Parser[S, []A] {
	return Bind(p, func(first A) Parser[S, []A] {
		return Bind(Many(p), func(rest []A) Parser[S, []A] {
			return Return[S, []A](append([]A{first}, rest...))
		})
	})
}

// SkipMany applies p repeatedly until it fails without consuming, and
// discards the results.
func SkipMany[S, A any](p Parser[S, A]) Parser[S, Unit] {
	return func(input Input[S]) Consumed[S, Unit] {
		remaining := input
		advanced := false
		for {
			c := p(remaining)
			if c.Consumed {
				r := c.Reply()
				if !r.OK {
					return consumedNow(castError[S, A, Unit](r))
				}
				advanced = true
				remaining = r.Rest
				continue
			}
			r := c.Reply()
			final := okReply(Unit{}, remaining, r.Msg)
			if advanced {
				return consumedNow(final)
			}
			return emptied(final)
		}
	}
}

// SkipMany1 is SkipMany requiring at least one match.
func SkipMany1[S, A any](p Parser[S, A]) Parser[S, Unit] {
	return Then(p, SkipMany(p))
}

// Count applies p exactly count times. A count of zero yields an empty
// slice without touching the input; any failure fails the whole.
func Count[S, A any](p Parser[S, A], count int) Parser[S, []A] {
	return func(input Input[S]) Consumed[S, []A] {
		results := make([]A, 0, count)
		remaining := input
		advanced := false
		msg := messageAt(input.Position())
		for i := 0; i < count; i++ {
			c := p(remaining)
			r := c.Reply()
			if !r.OK {
				err := castError[S, A, []A](r)
				if advanced || c.Consumed {
					return consumedNow(err)
				}
				return emptied(err)
			}
			if c.Consumed {
				advanced = true
			}
			results = append(results, r.Result)
			remaining = r.Rest
			msg = r.Msg
		}
		final := okReply(results, remaining, msg)
		if advanced {
			return consumedNow(final)
		}
		return emptied(final)
	}
}

// SepBy1 parses one or more occurrences of p separated by sep, returning
// the results of p. A separator that consumes input and is not followed by
// p fails the whole parse; SepEndBy1 accepts a trailing separator.
func SepBy1[S, A, O any](p Parser[S, A], sep Parser[S, O]) Parser[S, []A] {
	return Bind(p, func(first A) Parser[S, []A] {
		return Bind(Many(Then(sep, p)), func(rest []A) Parser[S, []A] {
			return Return[S, []A](append([]A{first}, rest...))
		})
	})
}

// SepBy is SepBy1 allowing zero occurrences.
func SepBy[S, A, O any](p Parser[S, A], sep Parser[S, O]) Parser[S, []A] {
	return Or(SepBy1(p, sep), Return[S, []A]([]A{}))
}

// SepEndBy1 parses one or more occurrences of p separated, and optionally
// ended, by sep.
func SepEndBy1[S, A, O any](p Parser[S, A], sep Parser[S, O]) Parser[S, []A] {
	return func(input Input[S]) Consumed[S, []A] {
		c := p(input)
		r := c.Reply()
		if !r.OK {
			err := castError[S, A, []A](r)
			if c.Consumed {
				return consumedNow(err)
			}
			return emptied(err)
		}
		results := []A{r.Result}
		remaining := r.Rest
		advanced := c.Consumed
		for {
			sc := sep(remaining)
			sr := sc.Reply()
			if !sr.OK {
				if sc.Consumed {
					return consumedNow(castError[S, O, []A](sr))
				}
				final := okReply(results, remaining, sr.Msg)
				if advanced {
					return consumedNow(final)
				}
				return emptied(final)
			}
			if sc.Consumed {
				advanced = true
			}
			pc := p(sr.Rest)
			pr := pc.Reply()
			if !pr.OK {
				if pc.Consumed {
					return consumedNow(castError[S, A, []A](pr))
				}
				// Trailing separator: keep it consumed and stop.
				final := okReply(results, sr.Rest, pr.Msg)
				if advanced {
					return consumedNow(final)
				}
				return emptied(final)
			}
			results = append(results, pr.Result)
			remaining = pr.Rest
			if pc.Consumed {
				advanced = true
			} else if !sc.Consumed {
				// Fixed point, nothing was consumed this round.
				final := okReply(results, remaining, pr.Msg)
				if advanced {
					return consumedNow(final)
				}
				return emptied(final)
			}
		}
	}
}

// SepEndBy is SepEndBy1 allowing zero occurrences.
func SepEndBy[S, A, O any](p Parser[S, A], sep Parser[S, O]) Parser[S, []A] {
	return Or(SepEndBy1(p, sep), Return[S, []A]([]A{}))
}

// EndBy parses zero or more occurrences of p, each followed by sep.
func EndBy[S, A, O any](p Parser[S, A], sep Parser[S, O]) Parser[S, []A] {
	return Many(Terminated(p, sep))
}

// EndBy1 is EndBy requiring at least one occurrence.
func EndBy1[S, A, O any](p Parser[S, A], sep Parser[S, O]) Parser[S, []A] {
	return Many1(Terminated(p, sep))
}

// ManyTill applies p repeatedly until end succeeds, returning p's results.
// It is non-greedy: end is tried before p on every round, and end's
// consumption counts like any other.
func ManyTill[S, A, E any](p Parser[S, A], end Parser[S, E]) Parser[S, []A] {
	return func(input Input[S]) Consumed[S, []A] {
		results := []A{}
		remaining := input
		advanced := false
		for {
			ec := end(remaining)
			er := ec.Reply()
			if er.OK {
				final := okReply(results, er.Rest, er.Msg)
				if advanced || ec.Consumed {
					return consumedNow(final)
				}
				return emptied(final)
			}
			if ec.Consumed {
				return consumedNow(castError[S, E, []A](er))
			}
			pc := p(remaining)
			pr := pc.Reply()
			if !pr.OK {
				err := errReply[S, []A](mergeLazy(er.Msg, pr.Msg))
				if advanced || pc.Consumed {
					return consumedNow(err)
				}
				return emptied(err)
			}
			if !pc.Consumed {
				// p accepted without consuming: the terminator can never be
				// reached this way, so reject rather than spin.
				err := errReply[S, []A](mergeLazy(er.Msg, pr.Msg))
				if advanced {
					return consumedNow(err)
				}
				return emptied(err)
			}
			advanced = true
			results = append(results, pr.Result)
			remaining = pr.Rest
		}
	}
}

// Chainl1 parses one or more occurrences of p separated by op, and folds
// the results left-associatively through the functions op produces:
// a·b·c parses as (a·b)·c.
func Chainl1[S, A any](p Parser[S, A], op Parser[S, func(A, A) A]) Parser[S, A] {
	return Bind(p, func(first A) Parser[S, A] {
		return func(input Input[S]) Consumed[S, A] {
			acc := first
			remaining := input
			advanced := false
			for {
				oc := op(remaining)
				or := oc.Reply()
				if !or.OK {
					if oc.Consumed {
						return consumedNow(castError[S, func(A, A) A, A](or))
					}
					final := okReply(acc, remaining, or.Msg)
					if advanced {
						return consumedNow(final)
					}
					return emptied(final)
				}
				pc := p(or.Rest)
				pr := pc.Reply()
				if !pr.OK {
					if oc.Consumed || pc.Consumed {
						return consumedNow(castError[S, A, A](pr))
					}
					final := okReply(acc, remaining, pr.Msg)
					if advanced {
						return consumedNow(final)
					}
					return emptied(final)
				}
				acc = or.Result(acc, pr.Result)
				if !oc.Consumed && !pc.Consumed {
					// Fixed point, nothing was consumed this round.
					final := okReply(acc, pr.Rest, pr.Msg)
					if advanced {
						return consumedNow(final)
					}
					return emptied(final)
				}
				advanced = true
				remaining = pr.Rest
			}
		}
	})
}

// Chainl is Chainl1 producing fallback on zero occurrences of p.
func Chainl[S, A any](p Parser[S, A], op Parser[S, func(A, A) A], fallback A) Parser[S, A] {
	return Or(Chainl1(p, op), Return[S, A](fallback))
}

// Chainr1 parses one or more occurrences of p separated by op, and folds
// the results right-associatively: a·b·c parses as a·(b·c).
func Chainr1[S, A any](p Parser[S, A], op Parser[S, func(A, A) A]) Parser[S, A] {
	return Bind(p, func(first A) Parser[S, A] {
		return Or(
			Bind(op, func(combine func(A, A) A) Parser[S, A] {
				return Bind(Chainr1(p, op), func(rest A) Parser[S, A] {
					return Return[S, A](combine(first, rest))
				})
			}),
			Return[S, A](first),
		)
	})
}

// Chainr is Chainr1 producing fallback on zero occurrences of p.
func Chainr[S, A any](p Parser[S, A], op Parser[S, func(A, A) A], fallback A) Parser[S, A] {
	return Or(Chainr1(p, op), Return[S, A](fallback))
}
