package parsette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChr(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		parser      Parser[rune, rune]
		input       string
		wantErr     bool
		wantOutput  rune
		wantRestPos int
	}{
		{
			name:        "parsing char from single char input should succeed",
			parser:      Chr('a'),
			input:       "a",
			wantOutput:  'a',
			wantRestPos: 1,
		},
		{
			name:        "parsing valid char in longer input should succeed",
			parser:      Chr('a'),
			input:       "abc",
			wantOutput:  'a',
			wantRestPos: 1,
		},
		{
			name:    "parsing non-matching input should fail",
			parser:  Chr('a'),
			input:   "123",
			wantErr: true,
		},
		{
			name:    "parsing empty input should fail",
			parser:  Chr('a'),
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := tc.parser(FromString(tc.input))
			r := c.Reply()
			if r.OK == tc.wantErr {
				t.Fatalf("got ok %v, want error %v", r.OK, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			if r.Result != tc.wantOutput {
				t.Errorf("got output %q, want %q", r.Result, tc.wantOutput)
			}
			if r.Rest.Position() != tc.wantRestPos {
				t.Errorf("got rest position %d, want %d", r.Rest.Position(), tc.wantRestPos)
			}
		})
	}
}

func TestAlpha(t *testing.T) {
	t.Parallel()

	c := Alpha()(FromString("a"))
	r := c.Reply()
	require.True(t, r.OK)
	assert.Equal(t, 'a', r.Result)
	assert.Equal(t, 1, r.Rest.Position())

	c = Alpha()(FromString("0"))
	r = c.Reply()
	require.False(t, r.OK)
	assert.False(t, c.Consumed)
	assert.Contains(t, r.Msg().Expected, "alpha")

	// Unicode letters are letters.
	c = Alpha()(FromString("é"))
	r = c.Reply()
	require.True(t, r.OK)
	assert.Equal(t, 'é', r.Result)
}

func TestDigitAndFriends(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		parser  Parser[rune, rune]
		input   string
		wantErr bool
	}{
		{name: "digit matches digit", parser: Digit(), input: "7"},
		{name: "digit rejects letter", parser: Digit(), input: "x", wantErr: true},
		{name: "space matches space", parser: Space(), input: " "},
		{name: "space rejects tab", parser: Space(), input: "\t", wantErr: true},
		{name: "whitespace matches tab", parser: Whitespace(), input: "\t"},
		{name: "whitespace matches newline", parser: Whitespace(), input: "\n"},
		{name: "whitespace rejects letter", parser: Whitespace(), input: "g", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := tc.parser(FromString(tc.input))
			r := c.Reply()
			if r.OK == tc.wantErr {
				t.Errorf("got ok %v, want error %v", r.OK, tc.wantErr)
			}
		})
	}
}

func TestWhitespaces(t *testing.T) {
	t.Parallel()

	p := Preceded(Whitespaces(), AlphaNum())

	got, err := ParseString(p, " \t\n  word")
	require.NoError(t, err)
	assert.Equal(t, "word", got)

	got, err = ParseString(p, "word")
	require.NoError(t, err)
	assert.Equal(t, "word", got)
}

func TestOneOfNoneOf(t *testing.T) {
	t.Parallel()

	c := OneOf("+-*/")(FromString("*"))
	r := c.Reply()
	require.True(t, r.OK)
	assert.Equal(t, '*', r.Result)

	c = OneOf("+-*/")(FromString("x"))
	require.False(t, c.Reply().OK)

	c = NoneOf("\"\\")(FromString("x"))
	require.True(t, c.Reply().OK)

	c = NoneOf("\"\\")(FromString("\""))
	require.False(t, c.Reply().OK)
}

func TestToken(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		input        string
		wantErr      bool
		wantConsumed bool
		wantRestPos  int
	}{
		{
			name:         "full match should consume the token",
			input:        "hello!",
			wantConsumed: true,
			wantRestPos:  5,
		},
		{
			name:         "partial match should fail consumed",
			input:        "help",
			wantErr:      true,
			wantConsumed: true,
		},
		{
			name:    "first char mismatch should fail empty",
			input:   "xyz",
			wantErr: true,
		},
		{
			name:    "empty input should fail empty",
			input:   "",
			wantErr: true,
		},
		{
			name:         "end of input mid-match should fail consumed",
			input:        "hel",
			wantErr:      true,
			wantConsumed: true,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := Token("hello")(FromString(tc.input))
			r := c.Reply()
			if r.OK == tc.wantErr {
				t.Fatalf("got ok %v, want error %v", r.OK, tc.wantErr)
			}
			if c.Consumed != tc.wantConsumed {
				t.Errorf("got consumed %v, want %v", c.Consumed, tc.wantConsumed)
			}
			if !tc.wantErr {
				assert.Equal(t, "hello", r.Result)
				assert.Equal(t, tc.wantRestPos, r.Rest.Position())
			}
		})
	}
}

func TestTokenExpectation(t *testing.T) {
	t.Parallel()

	c := Token("hello")(FromString("help"))
	r := c.Reply()
	require.False(t, r.OK)
	assert.Contains(t, r.Msg().Expected, `"hello"`)
}

func TestAlphaNum(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		input       string
		wantErr     bool
		wantOutput  string
		wantRestPos int
	}{
		{
			name:        "parsing an alphanumeric run should succeed",
			input:       "abc123 rest",
			wantOutput:  "abc123",
			wantRestPos: 6,
		},
		{
			name:    "parsing a symbol should fail empty",
			input:   "!abc",
			wantErr: true,
		},
		{
			name:    "parsing empty input should fail empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := AlphaNum()(FromString(tc.input))
			r := c.Reply()
			if r.OK == tc.wantErr {
				t.Fatalf("got ok %v, want error %v", r.OK, tc.wantErr)
			}
			if tc.wantErr {
				assert.False(t, c.Consumed)
				assert.Contains(t, r.Msg().Expected, "alphaNum")
				return
			}
			assert.Equal(t, tc.wantOutput, r.Result)
			assert.Equal(t, tc.wantRestPos, r.Rest.Position())
		})
	}
}

func TestRegex(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		parser       Parser[rune, string]
		input        string
		wantErr      bool
		wantConsumed bool
		wantOutput   string
		wantRestPos  int
	}{
		{
			name:         "matching prefix should be consumed",
			parser:       Regex(`[a-z]+`),
			input:        "abc123",
			wantConsumed: true,
			wantOutput:   "abc",
			wantRestPos:  3,
		},
		{
			name:    "pattern must match at the cursor",
			parser:  Regex(`[a-z]+`),
			input:   "123abc",
			wantErr: true,
		},
		{
			name:        "zero-length match stays empty",
			parser:      Regex(`[a-z]*`),
			input:       "123",
			wantOutput:  "",
			wantRestPos: 0,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := tc.parser(FromString(tc.input))
			r := c.Reply()
			if r.OK == tc.wantErr {
				t.Fatalf("got ok %v, want error %v", r.OK, tc.wantErr)
			}
			if c.Consumed != tc.wantConsumed {
				t.Errorf("got consumed %v, want %v", c.Consumed, tc.wantConsumed)
			}
			if !tc.wantErr {
				assert.Equal(t, tc.wantOutput, r.Result)
				assert.Equal(t, tc.wantRestPos, r.Rest.Position())
			}
		})
	}
}

func TestRegexEmptyMatchDoesNotSpinMany(t *testing.T) {
	t.Parallel()

	// `[a-z]*` can match the empty string; Many must still terminate.
	c := Many(Regex(`[a-z]*`))(FromString("abc123"))
	r := c.Reply()

	require.True(t, r.OK)
	assert.Equal(t, 3, r.Rest.Position())
}

func TestRegexRequiresTextInput(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("Regex over a plain symbol input should panic")
		}
	}()

	Regex(`x`)(FromSlice([]rune("x")))
}

func TestRegexWorksOnRuneInputs(t *testing.T) {
	t.Parallel()

	c := Regex(`\d+`)(FromRunes([]rune("42!")))
	r := c.Reply()
	require.True(t, r.OK)
	assert.Equal(t, "42", r.Result)
	assert.Equal(t, 2, r.Rest.Position())
}

func BenchmarkToken(b *testing.B) {
	parser := Token("hello")
	input := FromString("hello world")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		parser(input).Reply()
	}
}

func BenchmarkRegex(b *testing.B) {
	parser := Regex(`[a-z]+`)
	input := FromString("lowercase text")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		parser(input).Reply()
	}
}
