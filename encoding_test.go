// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpush_test

import (
	"testing"

	"github.com/creachadair/jpush"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", `"\u2028 \u2029 \ufffd"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
	}
	for _, test := range tests {
		got := jpush.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},               // missing quotes
		{`"missing quote`, ``, true}, // missing quotes
		{`missing quote"`, ``, true}, // missing quotes
		{`""`, ``, false},
		{`"ok go"`, "ok go", false},
		{`"abc\ndef"`, "abc\ndef", false},
		{`"\tabc\n"`, "\tabc\n", false},
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", false},
		{`"\/\\\""`, `/\"`, false},

		// Unicode escapes.
		{`"a \u0026 b"`, "a & b", false},
		{`"\u00e9"`, "é", false},

		// A surrogate half is encoded on its own, not combined.
		{`"\ud834"`, "\xed\xa0\xb4", false},

		// Truncated or malformed escapes degrade to a literal "u".
		{`"\u"`, "u", false},
		{`"\u00"`, "u00", false},
		{`"\u00x9"`, "u00x9", false},
		{`"\u019 "`, "u019 ", false},

		// Unknown escapes pass the escaped character through.
		{`"\q"`, "q", false},

		{`"a\"b"`, `a"b`, false},
		{`"a\\b\\cd"`, `a\b\cd`, false},
	}

	for _, test := range tests {
		got, err := jpush.Unquote(test.input)
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if cmp := string(got); cmp != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, cmp, test.want)
		}
	}
}
