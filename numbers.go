package parsette

import (
	"errors"
	"math"
	"strconv"

	"go4.org/mem"
)

const (
	integerPattern = `-?\d+`
	floatPattern   = `-?(\d+(\.\d*)?|\d*\.\d+)([eE][+-]?\d+)?[fFdD]?`
)

// Int parses an optionally signed run of decimal digits into an int. A run
// that does not fit is a parse error, not a panic; the Attempt keeps an
// overflow failure empty, so an enclosing Or may still try an alternative.
func Int() Parser[rune, int] {
	return Attempt(Bind(Regex(integerPattern), func(digits string) Parser[rune, int] {
		return func(input Input[rune]) Consumed[rune, int] {
			value, err := mem.ParseInt(mem.S(digits), 10, strconv.IntSize)
			if err != nil {
				return emptied(errReply[rune, int](expectingAt(input.Position(), "integer")))
			}
			return emptied(okReply(int(value), input, messageAt(input.Position())))
		}
	}))
}

// Int64 parses an optionally signed run of decimal digits into an int64.
// Like Int, overflow fails without counting as consumed.
func Int64() Parser[rune, int64] {
	return Attempt(Bind(Regex(integerPattern), func(digits string) Parser[rune, int64] {
		return func(input Input[rune]) Consumed[rune, int64] {
			value, err := mem.ParseInt(mem.S(digits), 10, 64)
			if err != nil {
				return emptied(errReply[rune, int64](expectingAt(input.Position(), "int64")))
			}
			return emptied(okReply(value, input, messageAt(input.Position())))
		}
	}))
}

// Float64 parses a floating point literal, with optional fraction, exponent
// and a trailing f/F/d/D suffix. A literal too large for a float64 rounds
// to ±Inf rather than failing.
func Float64() Parser[rune, float64] {
	return Bind(Regex(floatPattern), func(text string) Parser[rune, float64] {
		return func(input Input[rune]) Consumed[rune, float64] {
			value, err := parseFloatLiteral(text)
			if err != nil {
				return emptied(errReply[rune, float64](expectingAt(input.Position(), "float")))
			}
			return emptied(okReply(value, input, messageAt(input.Position())))
		}
	})
}

// Number parses a floating point literal like Float64, but returns an int64
// when the value is an exact integer in the signed 64-bit range, and a
// float64 otherwise.
func Number() Parser[rune, any] {
	return Bind(Regex(floatPattern), func(text string) Parser[rune, any] {
		return func(input Input[rune]) Consumed[rune, any] {
			value, err := parseFloatLiteral(text)
			if err != nil {
				return emptied(errReply[rune, any](expectingAt(input.Position(), "number")))
			}
			var result any = value
			// math.MaxInt64 rounds up to 2^63 as a float64, so the upper
			// bound must stay strict.
			if value == math.Trunc(value) && value >= math.MinInt64 && value < math.MaxInt64 {
				result = int64(value)
			}
			return emptied(okReply(result, input, messageAt(input.Position())))
		}
	})
}

func parseFloatLiteral(text string) (float64, error) {
	if n := len(text); n > 0 {
		switch text[n-1] {
		case 'f', 'F', 'd', 'D':
			text = text[:n-1]
		}
	}
	value, err := mem.ParseFloat(mem.S(text), 64)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		// Out-of-range literals round to ±Inf, which is a value, not an error.
		return value, nil
	}
	return value, err
}
