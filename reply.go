package parsette

import "sync"

// Reply is the outcome of applying a parser: either a result value with the
// rest of the input, or a failure. Both sides carry a message so that later
// alternatives can fold their expectations into it.
type Reply[S, A any] struct {
	OK     bool
	Result A          // zero when !OK
	Rest   Input[S]   // input after the parse; nil when !OK
	Msg    LazyMessage
}

func okReply[S, A any](result A, rest Input[S], msg LazyMessage) Reply[S, A] {
	return Reply[S, A]{OK: true, Result: result, Rest: rest, Msg: msg}
}

func errReply[S, A any](msg LazyMessage) Reply[S, A] {
	return Reply[S, A]{Msg: msg}
}

// castError converts a failed reply to another value type. Only failures can
// be converted: no value is carried, so only the phantom type changes.
func castError[S, A, B any](r Reply[S, A]) Reply[S, B] {
	return Reply[S, B]{Msg: r.Msg}
}

// Consumed pairs a reply with the fact that matters to alternation: whether
// the parser advanced past its entry cursor on the way to that reply. The
// flag is decided eagerly; the reply behind a consumed outcome may stay
// unevaluated until someone calls Reply, which lets Or commit on the flag
// alone.
type Consumed[S, A any] struct {
	Consumed bool
	reply    func() Reply[S, A]
}

// Reply forces and returns the underlying reply.
func (c Consumed[S, A]) Reply() Reply[S, A] { return c.reply() }

// consumedLazy wraps a deferred reply with the consumed flag set. The thunk
// is memoized: forcing twice evaluates once.
func consumedLazy[S, A any](build func() Reply[S, A]) Consumed[S, A] {
	return Consumed[S, A]{Consumed: true, reply: sync.OnceValue(build)}
}

// consumedNow wraps an already-evaluated reply with the consumed flag set.
func consumedNow[S, A any](r Reply[S, A]) Consumed[S, A] {
	return Consumed[S, A]{Consumed: true, reply: func() Reply[S, A] { return r }}
}

// emptied wraps an already-evaluated reply with the consumed flag unset.
func emptied[S, A any](r Reply[S, A]) Consumed[S, A] {
	return Consumed[S, A]{reply: func() Reply[S, A] { return r }}
}
