// Package parsette implements monadic parser combinators in the style of
// Parsec: parsers are pure functions from an immutable input to a reply
// wrapped in a consumed/empty marker, alternation commits as soon as input
// is consumed, and Attempt is the single backtracking primitive.
//
// A parser of type Parser[S, A] reads symbols of type S and produces a
// value of type A. The text layer in characters.go and numbers.go covers
// the common case S = rune.
package parsette
