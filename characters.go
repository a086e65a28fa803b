package parsette

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Chr parses a single given character.
func Chr(character rune) Parser[rune, rune] {
	return Symbol(character)
}

// AnyChar parses any single character.
func AnyChar() Parser[rune, rune] {
	return Label(Satisfy(func(rune) bool { return true }), "any character")
}

// Alpha parses a single alphabetic character, in the Unicode sense.
func Alpha() Parser[rune, rune] {
	return Label(Satisfy(unicode.IsLetter), "alpha")
}

// Digit parses a single decimal digit character.
func Digit() Parser[rune, rune] {
	return Label(Satisfy(unicode.IsDigit), "digit")
}

// Space parses a single space character: the Unicode space separator
// categories, not tabs or line breaks.
func Space() Parser[rune, rune] {
	return Label(Satisfy(func(r rune) bool {
		return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
	}), "space")
}

// Whitespace parses a single whitespace character, including tabs and line
// breaks.
func Whitespace() Parser[rune, rune] {
	return Label(Satisfy(unicode.IsSpace), "whitespace")
}

// Whitespaces skips any number of whitespace characters.
func Whitespaces() Parser[rune, Unit] {
	return SkipMany(Whitespace())
}

// OneOf parses any single character present in options.
func OneOf(options string) Parser[rune, rune] {
	return Label(Satisfy(func(r rune) bool {
		return strings.ContainsRune(options, r)
	}), "one of "+strconv.Quote(options))
}

// NoneOf parses any single character not present in blacklist.
func NoneOf(blacklist string) Parser[rune, rune] {
	return Label(Satisfy(func(r rune) bool {
		return !strings.ContainsRune(blacklist, r)
	}), "none of "+strconv.Quote(blacklist))
}

// Token parses a provided candidate string, consuming an exact match from
// the input. A mismatch partway through leaves the matched prefix consumed,
// which commits any enclosing Or; wrap in Attempt to make the match
// all-or-nothing.
func Token(token string) Parser[rune, string] {
	candidate := []rune(token)
	expected := strconv.Quote(token)
	return func(input Input[rune]) Consumed[rune, string] {
		remaining := input
		for i, want := range candidate {
			if remaining.End() {
				err := errReply[rune, string](unexpectedEOF(remaining.Position(), token))
				if i > 0 {
					return consumedNow(err)
				}
				return emptied(err)
			}
			got := remaining.Current()
			if got != want {
				err := errReply[rune, string](unexpectedAt(remaining.Position(), got, expected))
				if i > 0 {
					return consumedNow(err)
				}
				return emptied(err)
			}
			remaining = remaining.Advance(1)
		}
		final := okReply(token, remaining, messageAt(remaining.Position()))
		if len(candidate) == 0 {
			return emptied(final)
		}
		return consumedNow(final)
	}
}

// AlphaNum parses a run of one or more alphanumeric characters and returns
// it as a string.
func AlphaNum() Parser[rune, string] {
	isAlphaNum := func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return func(input Input[rune]) Consumed[rune, string] {
		if input.End() {
			return emptied(errReply[rune, string](unexpectedEOF(input.Position(), "alphaNum")))
		}
		if !isAlphaNum(input.Current()) {
			return emptied(errReply[rune, string](unexpectedAt(input.Position(), input.Current(), "alphaNum")))
		}
		var run strings.Builder
		remaining := input
		for !remaining.End() && isAlphaNum(remaining.Current()) {
			run.WriteRune(remaining.Current())
			remaining = remaining.Advance(1)
		}
		return consumedNow(okReply(run.String(), remaining, messageAt(remaining.Position())))
	}
}

// Regex parses the prefix of the remaining input that pattern matches,
// returning the matched text. Matching follows Go regexp's leftmost-first
// rules: among alternatives the first that matches is taken, not
// necessarily the longest. The pattern is compiled eagerly and anchored
// at the cursor; compilation failure panics, as does applying the parser to
// an input without text views. Both are programmer errors, not parse
// failures.
//
// A zero-length match succeeds without consuming, so Many(Regex(p)) cannot
// spin on a pattern that accepts the empty string.
func Regex(pattern string) Parser[rune, string] {
	re := regexp.MustCompile(`\A(?:` + pattern + `)`)
	expected := "Regex('" + pattern + "')"
	return func(input Input[rune]) Consumed[rune, string] {
		text, ok := input.(TextInput)
		if !ok {
			panic("parsette: Regex requires an input with text views (FromString or FromRunes)")
		}
		view := text.CharSequenceFrom(-1)
		loc := re.FindStringIndex(view)
		if loc == nil {
			if input.End() {
				return emptied(errReply[rune, string](unexpectedEOF(input.Position(), expected)))
			}
			return emptied(errReply[rune, string](unexpectedAt(input.Position(), input.Current(), expected)))
		}
		matched := view[:loc[1]]
		length := utf8.RuneCountInString(matched)
		if length == 0 {
			return emptied(okReply(matched, input, messageAt(input.Position())))
		}
		rest := input.Advance(length)
		return consumedNow(okReply(matched, rest, messageAt(rest.Position())))
	}
}
