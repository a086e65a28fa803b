package parsette

import "sync"

// Message describes the state of a parse at one position: the symbol that
// was found there (if any) and the names of the productions that were
// expected instead. Messages are carried by every reply, successful or not;
// only the one attached to the final failure is ever rendered.
type Message struct {
	Pos        int
	Unexpected string   // rendering of the symbol found, "" when none
	AtEOF      bool     // the unexpected thing was the end of the input
	Expected   []string // production names, in first-seen order
}

// LazyMessage defers message construction until the message is merged or
// rendered. Thousands of messages are allocated and dropped during a typical
// parse; only a handful are ever forced.
type LazyMessage func() Message

func lazyMessage(build func() Message) LazyMessage {
	return sync.OnceValue(build)
}

// messageAt returns the empty message at pos: nothing unexpected, nothing
// expected. Successful replies carry these.
func messageAt(pos int) LazyMessage {
	return func() Message { return Message{Pos: pos} }
}

// unexpectedAt records finding symbol sym at pos while looking for the named
// productions.
func unexpectedAt[S any](pos int, sym S, expected ...string) LazyMessage {
	return lazyMessage(func() Message {
		return Message{Pos: pos, Unexpected: renderSymbol(sym), Expected: expected}
	})
}

// unexpectedEOF records running out of input at pos.
func unexpectedEOF(pos int, expected ...string) LazyMessage {
	return func() Message {
		return Message{Pos: pos, AtEOF: true, Expected: expected}
	}
}

// expectingAt records a plain expectation failure at pos, with nothing to
// report as unexpected.
func expectingAt(pos int, expected ...string) LazyMessage {
	return func() Message {
		return Message{Pos: pos, Expected: expected}
	}
}

// Expect returns a copy of m whose expected set is exactly {name}. Label
// uses this to replace, not extend, the expectations of its inner parser.
func (m Message) Expect(name string) Message {
	m.Expected = []string{name}
	return m
}

// merge combines two messages. The later position wins outright; on a tie
// the expected sets are unioned and m's unexpected symbol is preferred when
// it has one.
func (m Message) merge(other Message) Message {
	switch {
	case m.Pos > other.Pos:
		return m
	case other.Pos > m.Pos:
		return other
	}
	merged := Message{
		Pos:        m.Pos,
		Unexpected: m.Unexpected,
		AtEOF:      m.AtEOF,
		Expected:   unionExpected(m.Expected, other.Expected),
	}
	if merged.Unexpected == "" && !merged.AtEOF {
		merged.Unexpected = other.Unexpected
		merged.AtEOF = other.AtEOF
	}
	return merged
}

func mergeLazy(a, b LazyMessage) LazyMessage {
	return lazyMessage(func() Message { return a().merge(b()) })
}

func expectLazy(m LazyMessage, name string) LazyMessage {
	return lazyMessage(func() Message { return m().Expect(name) })
}

// unionExpected appends the names of b that a does not already hold,
// preserving first-seen order.
func unionExpected(a, b []string) []string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	merged := make([]string, len(a), len(a)+len(b))
	copy(merged, a)
outer:
	for _, name := range b {
		for _, seen := range merged {
			if seen == name {
				continue outer
			}
		}
		merged = append(merged, name)
	}
	return merged
}
