package cook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/astbridge/pkg/cook"
)

func TestCook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: "plain text", want: "plain text"},
		{name: "empty", raw: "", want: ""},
		{name: "single escapes", raw: `\n\r\t\b\f\v\0`, want: "\n\r\t\b\f\v\x00"},
		{name: "identity escapes", raw: "\\'\\\"\\\\\\`\\$", want: "'\"\\`$"},
		{name: "hex", raw: `\x41\x7a`, want: "Az"},
		{name: "unicode", raw: `\u0041\u00e9`, want: "A\u00e9"},
		{name: "code point", raw: `\u{1F600}`, want: "\U0001F600"},
		{name: "surrogate pair", raw: `\uD83D\uDE00`, want: "\U0001F600"},
		{name: "lone surrogate", raw: `a\uD83Db`, want: "a\uFFFDb"},
		{name: "bad hex", raw: `\xZZ!`, want: "\uFFFD!"},
		{name: "short unicode", raw: `\u12`, want: "\uFFFD"},
		{name: "code point too large", raw: `\u{110000}`, want: "\uFFFD"},
		{name: "empty code point", raw: `\u{}x`, want: "\uFFFDx"},
		{name: "unclosed code point", raw: `\u{41`, want: "\uFFFD"},
		{name: "crlf", raw: "a\r\nb", want: "a\nb"},
		{name: "cr", raw: "a\rb", want: "a\nb"},
		{name: "line separator", raw: "a\u2028b\u2029c", want: "a\nb\nc"},
		{name: "line continuation", raw: "a\\\nb", want: "ab"},
		{name: "crlf continuation", raw: "a\\\r\nb", want: "ab"},
		{name: "trailing backslash", raw: `a\`, want: "a"},
		{name: "astral text", raw: "\U0001F600\\n", want: "\U0001F600\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, cook.Cook(tt.raw))
		})
	}
}
