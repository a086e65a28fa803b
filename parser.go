package parsette

import "sync"

// Parser is the common signature of a parser function: a pure function from
// an input to a consumed/empty reply. Applying the same parser twice to the
// same input yields the same outcome.
type Parser[S, A any] func(Input[S]) Consumed[S, A]

// Unit is the result type of parsers that match something but produce
// nothing worth keeping, such as EOF and SkipMany.
type Unit struct{}

// Return produces a parser that always succeeds with value, consuming
// nothing.
func Return[S, A any](value A) Parser[S, A] {
	return func(input Input[S]) Consumed[S, A] {
		return emptied(okReply(value, input, messageAt(input.Position())))
	}
}

// Fail produces a parser that always fails at the current position, with
// nothing expected. Label it to give the failure a name.
func Fail[S, A any]() Parser[S, A] {
	return func(input Input[S]) Consumed[S, A] {
		return emptied(errReply[S, A](expectingAt(input.Position())))
	}
}

// EOF succeeds only at the end of the input, consuming nothing.
func EOF[S any]() Parser[S, Unit] {
	return func(input Input[S]) Consumed[S, Unit] {
		if input.End() {
			return emptied(okReply(Unit{}, input, messageAt(input.Position())))
		}
		return emptied(errReply[S, Unit](unexpectedAt(input.Position(), input.Current(), "EOF")))
	}
}

// Satisfy matches a single symbol for which pred holds. It fails without
// consuming on the end of input or a symbol pred rejects.
func Satisfy[S any](pred func(S) bool) Parser[S, S] {
	return func(input Input[S]) Consumed[S, S] {
		if input.End() {
			return emptied(errReply[S, S](unexpectedEOF(input.Position())))
		}
		sym := input.Current()
		if !pred(sym) {
			return emptied(errReply[S, S](unexpectedAt(input.Position(), sym)))
		}
		rest := input.Advance(1)
		return consumedNow(okReply(sym, rest, messageAt(rest.Position())))
	}
}

// Symbol matches exactly the given symbol.
func Symbol[S comparable](symbol S) Parser[S, S] {
	return SymbolAs(symbol, symbol)
}

// SymbolAs matches exactly the given symbol and returns result instead.
func SymbolAs[S comparable, A any](symbol S, result A) Parser[S, A] {
	expected := renderSymbol(symbol)
	return func(input Input[S]) Consumed[S, A] {
		if input.End() {
			return emptied(errReply[S, A](unexpectedEOF(input.Position(), expected)))
		}
		sym := input.Current()
		if sym != symbol {
			return emptied(errReply[S, A](unexpectedAt(input.Position(), sym, expected)))
		}
		rest := input.Advance(1)
		return consumedNow(okReply(result, rest, messageAt(rest.Position())))
	}
}

// Bind runs p, feeds its result to f, and runs the parser f returns on the
// remaining input. Once p has consumed, the whole chain counts as consumed
// no matter what f's parser does; when both legs stay empty their messages
// are merged so the error reflects everything that was acceptable here.
func Bind[S, A, B any](p Parser[S, A], f func(A) Parser[S, B]) Parser[S, B] {
	return func(input Input[S]) Consumed[S, B] {
		c := p(input)
		if c.Consumed {
			return consumedLazy(func() Reply[S, B] {
				r := c.Reply()
				if !r.OK {
					return castError[S, A, B](r)
				}
				return f(r.Result)(r.Rest).Reply()
			})
		}
		r := c.Reply()
		if !r.OK {
			return emptied(castError[S, A, B](r))
		}
		q := f(r.Result)(r.Rest)
		if q.Consumed {
			return q
		}
		qr := q.Reply()
		if !qr.OK {
			return emptied(errReply[S, B](mergeLazy(r.Msg, qr.Msg)))
		}
		return emptied(okReply(qr.Result, qr.Rest, mergeLazy(r.Msg, qr.Msg)))
	}
}

// Then runs p, discards its result, and runs q. It is Bind with a constant
// continuation.
func Then[S, A, B any](p Parser[S, A], q Parser[S, B]) Parser[S, B] {
	return Bind(p, func(A) Parser[S, B] { return q })
}

// Map runs p and transforms its result through f. An error from f becomes a
// parse failure at the position p started from.
func Map[S, A, B any](p Parser[S, A], f func(A) (B, error)) Parser[S, B] {
	return func(start Input[S]) Consumed[S, B] {
		return Bind(p, func(value A) Parser[S, B] {
			return func(input Input[S]) Consumed[S, B] {
				mapped, err := f(value)
				if err != nil {
					return emptied(errReply[S, B](expectingAt(start.Position(), err.Error())))
				}
				return emptied(okReply(mapped, input, messageAt(input.Position())))
			}
		})(start)
	}
}

// Or tries p and runs q whenever p did not consume input. A consumed outcome
// of p, success or failure, commits: q never runs. After an empty outcome of
// p, a consumed outcome of q wins; when both stay empty, p's success (or
// else q's) is returned and their messages merge so the reported
// expectations cover both branches.
func Or[S, A any](p, q Parser[S, A]) Parser[S, A] {
	return func(input Input[S]) Consumed[S, A] {
		c := p(input)
		if c.Consumed {
			return c
		}
		r := c.Reply()
		d := q(input)
		if d.Consumed {
			return d
		}
		dr := d.Reply()
		if r.OK {
			return emptied(okReply(r.Result, r.Rest, mergeLazy(r.Msg, dr.Msg)))
		}
		if dr.OK {
			return emptied(okReply(dr.Result, dr.Rest, mergeLazy(r.Msg, dr.Msg)))
		}
		return emptied(errReply[S, A](mergeLazy(r.Msg, dr.Msg)))
	}
}

// Attempt runs p and pretends no input was consumed if it fails. This is
// the single backtracking primitive: wrapping the left arm of an Or in
// Attempt buys arbitrary-length lookahead.
func Attempt[S, A any](p Parser[S, A]) Parser[S, A] {
	return func(input Input[S]) Consumed[S, A] {
		c := p(input)
		if !c.Consumed {
			return c
		}
		r := c.Reply()
		if r.OK {
			return consumedNow(r)
		}
		return emptied(r)
	}
}

// Label names what p was looking for. The name replaces the expected set on
// any outcome that did not consume input; consumed outcomes pass through
// untouched, since by then the parser was committed past the point the name
// describes.
func Label[S, A any](p Parser[S, A], name string) Parser[S, A] {
	return func(input Input[S]) Consumed[S, A] {
		c := p(input)
		if c.Consumed {
			return c
		}
		r := c.Reply()
		r.Msg = expectLazy(r.Msg, name)
		return emptied(r)
	}
}

// Deferred builds a parser on first use. It exists so that recursive
// grammars can tie the knot:
//
//	var value Parser[rune, Node]
//	value = Deferred(func() Parser[rune, Node] {
//		return Or(leaf, Between(Chr('('), Chr(')'), value))
//	})
//
// build runs once; the resolved parser is shared by later applications.
func Deferred[S, A any](build func() Parser[S, A]) Parser[S, A] {
	resolve := sync.OnceValue(build)
	return func(input Input[S]) Consumed[S, A] {
		return resolve()(input)
	}
}

// Parse applies p followed by EOF to input, forces the reply, and renders
// any failure as a *ParseError.
func Parse[S, A any](p Parser[S, A], input Input[S]) (A, error) {
	whole := Bind(p, func(value A) Parser[S, A] {
		return Then(EOF[S](), Return[S, A](value))
	})
	r := whole(input).Reply()
	if r.OK {
		return r.Result, nil
	}
	var zero A
	return zero, newParseError(r.Msg())
}

// ParseString is Parse over a string input.
func ParseString[A any](p Parser[rune, A], text string) (A, error) {
	return Parse(p, FromString(text))
}
