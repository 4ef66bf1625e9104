// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpush_test

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/creachadair/jpush"
	"github.com/google/go-cmp/cmp"
)

// parseString feeds the whole input to a fresh stream, closes the source,
// and drives Parse to a terminal result, delivering events to h.
func parseString(t *testing.T, input string, h jpush.Handler) error {
	t.Helper()
	src := jpush.NewSource()
	src.FeedString(input)
	src.Close()
	st := jpush.NewStream(src)
	for {
		if err := st.Parse(h); err != jpush.ErrMoreInput {
			return err
		}
	}
}

func TestStream(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`{}`, "BeginObject\nEndObject"},
		{`[]`, "BeginArray\nEndArray"},

		{`{ "a" , 1 }`, `
BeginObject
Key <a>
ObjectValue literal <1>
EndObject`},

		// The conventional colon form is accepted as well.
		{`{ "a" : 1 }`, `
BeginObject
Key <a>
ObjectValue literal <1>
EndObject`},

		{`[null, true, false]`, `
BeginArray
ArrayValue literal <null>
ArrayValue literal <true>
ArrayValue literal <false>
EndArray`},

		{`[[]]`, `
BeginArray
BeginArray
EndArray
EndArray`},

		{`{ "x" , {}, "y" , [true], "z" , "w" }`, `
BeginObject
Key <x>
BeginObject
EndObject
Key <y>
BeginArray
ArrayValue literal <true>
EndArray
Key <z>
ObjectValue string <w>
EndObject`},

		{`["a\tb", 1.e+1, {"k" : "v"}]`, `
BeginArray
ArrayValue string <a	b>
ArrayValue literal <1.e+1>
BeginObject
Key <k>
ObjectValue string <v>
EndObject
EndArray`},
	}

	for _, test := range tests {
		th := new(testHandler)
		if err := parseString(t, test.input, th); err != nil {
			t.Errorf("Input: %#q\nParse failed: %v", test.input, err)
			continue
		}
		if diff := diffStrings(test.want, th.output()); diff != "" {
			t.Errorf("Input: %#q\nOutput: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestStreamErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
		estr  string
	}{
		// A document must be an object or an array.
		{``, ``, `at offset 0: unexpected end of input`},
		{`true`, ``, `at offset 0: unexpected literal`},
		{`"loose"`, ``, `at offset 0: unexpected string`},

		// Unbalanced object bits.
		{`{`, `BeginObject`, `at offset 1: unexpected end of input`},
		{`}`, ``, `at offset 0: unexpected "}"`},
		{`{ false , 1 }`, `BeginObject`, `at offset 2: unexpected literal`},
		{`{"true":}`, `
BeginObject
Key <true>`, `at offset 8: unexpected "}"`},

		// Unbalanced array bits.
		{`[`, `BeginArray`, `at offset 1: unexpected end of input`},
		{`]`, ``, `at offset 0: unexpected "]"`},
		{`[15,]`, `
BeginArray
ArrayValue literal <15>`, `at offset 4: unexpected "]"`},

		// Trailing junk after a complete value.
		{`{ "a" , 1 } false`, `
BeginObject
Key <a>
ObjectValue literal <1>
EndObject`, `at offset 12: unexpected literal`},
		{`[] []`, `
BeginArray
EndArray`, `at offset 3: unexpected "["`},
	}

	for _, test := range tests {
		th := new(testHandler)
		err := parseString(t, test.input, th)
		if err == nil {
			t.Errorf("Input: %#q\nParse did not report an error", test.input)
			continue
		}
		if diff := diffStrings(test.want, th.output()); diff != "" {
			t.Errorf("Input: %#q\nOutput: (-want, +got)\n%s", test.input, diff)
		}
		if diff := diffStrings(test.estr, err.Error()); diff != "" {
			t.Errorf("Input: %#q\nError: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestStreamLexicalError(t *testing.T) {
	th := new(testHandler)
	err := parseString(t, `[ tru ]`, th)
	if !errors.Is(err, jpush.ErrInvalidToken) {
		t.Errorf("Parse: got %v, want %v", err, jpush.ErrInvalidToken)
	}
	if diff := diffStrings("BeginArray", th.output()); diff != "" {
		t.Errorf("Output: (-want, +got)\n%s", diff)
	}
}

func TestStreamHandlerVeto(t *testing.T) {
	veto := errors.New("no keys today")
	th := &vetoHandler{bad: veto}

	src := jpush.NewSource()
	src.FeedString(`{ "a" , 1 }`)
	src.Close()
	st := jpush.NewStream(src)

	var err error
	for {
		err = st.Parse(th)
		if err != jpush.ErrMoreInput {
			break
		}
	}
	if err != veto {
		t.Errorf("Parse: got %v, want %v", err, veto)
	}

	// The error is latched: another call must not consume more input.
	if err2 := st.Parse(th); err2 != veto {
		t.Errorf("Parse after error: got %v, want %v", err2, veto)
	}
}

type vetoHandler struct {
	jpush.NopHandler
	bad error
}

func (v *vetoHandler) Key([]byte) error { return v.bad }

func TestStreamChunked(t *testing.T) {
	tests := []struct {
		chunks []string
		want   string
	}{
		{[]string{"[", "null", ", true, false", "]"}, `
BeginArray
ArrayValue literal <null>
ArrayValue literal <true>
ArrayValue literal <false>
EndArray`},

		{[]string{`{ "h`, `i" , "v" }`}, `
BeginObject
Key <hi>
ObjectValue string <v>
EndObject`},

		{[]string{`{ "k" , 1.`, `e+1 }`}, `
BeginObject
Key <k>
ObjectValue literal <1.e+1>
EndObject`},

		// The whole value in one chunk still needs closure to drain the
		// final "}" out of the greedy scanner.
		{[]string{`{}`}, "BeginObject\nEndObject"},
	}

	for _, test := range tests {
		src := jpush.NewSource()
		st := jpush.NewStream(src)
		th := new(testHandler)

		ok := true
		for i, chunk := range test.chunks {
			src.FeedString(chunk)
			if err := st.Parse(th); err != jpush.ErrMoreInput {
				t.Errorf("Chunks: %q\nParse chunk %d: got %v, want %v",
					test.chunks, i, err, jpush.ErrMoreInput)
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		src.Close()
		for {
			err := st.Parse(th)
			if err == jpush.ErrMoreInput {
				continue
			} else if err != nil {
				t.Errorf("Chunks: %q\nParse failed: %v", test.chunks, err)
			}
			break
		}
		if diff := diffStrings(test.want, th.output()); diff != "" {
			t.Errorf("Chunks: %q\nOutput: (-want, +got)\n%s", test.chunks, diff)
		}
	}
}

// Parsing must deliver the same events no matter how the input is cut into
// chunks, including cuts inside tokens.
func TestChunkingIndependence(t *testing.T) {
	inputs := []string{
		`{}`,
		`[]`,
		`[[], {}]`,
		`{ "a" , 1 }`,
		`[null, true, false]`,
		`{ "k" , 1.e+1, "s" , "a\tb c", "inner" , { "x" , [1, 2.5, -3e2] } }`,
		`["deep", [["er", [[]]]], { "" , "" }]`,
	}
	rng := rand.New(rand.NewSource(20250806))

	for _, input := range inputs {
		th := new(testHandler)
		if err := parseString(t, input, th); err != nil {
			t.Errorf("Input: %#q\nParse failed: %v", input, err)
			continue
		}
		want := th.output()

		for round := 0; round < 25; round++ {
			src := jpush.NewSource()
			st := jpush.NewStream(src)
			tc := new(testHandler)

			rest := input
			for len(rest) > 0 {
				n := 1 + rng.Intn(len(rest))
				src.FeedString(rest[:n])
				rest = rest[n:]
				if err := st.Parse(tc); err != jpush.ErrMoreInput {
					t.Fatalf("Input: %#q\nParse mid-stream: got %v, want %v",
						input, err, jpush.ErrMoreInput)
				}
			}
			src.Close()
			for {
				err := st.Parse(tc)
				if err == jpush.ErrMoreInput {
					continue
				} else if err != nil {
					t.Fatalf("Input: %#q\nParse failed: %v", input, err)
				}
				break
			}
			if diff := diffStrings(want, tc.output()); diff != "" {
				t.Errorf("Input: %#q\nOutput: (-want, +got)\n%s", input, diff)
			}
		}
	}
}

// Extra blanks outside string literals must not change the event sequence.
func TestWhitespaceTransparency(t *testing.T) {
	tests := []struct {
		compact, padded string
	}{
		{`{"a",1}`, "{\n  \"a\" ,\t1\r\n}"},
		{`[null,true]`, " [ null\f, true ] "},
		{`{"s","a b"}`, `{ "s" , "a b" }`},
	}
	for _, test := range tests {
		tw, tp := new(testHandler), new(testHandler)
		if err := parseString(t, test.compact, tw); err != nil {
			t.Errorf("Input: %#q\nParse failed: %v", test.compact, err)
			continue
		}
		if err := parseString(t, test.padded, tp); err != nil {
			t.Errorf("Input: %#q\nParse failed: %v", test.padded, err)
			continue
		}
		if diff := diffStrings(tw.output(), tp.output()); diff != "" {
			t.Errorf("Inputs: %#q vs %#q\nOutput: (-compact, +padded)\n%s",
				test.compact, test.padded, diff)
		}
	}
}

func TestStreamDone(t *testing.T) {
	st := jpush.NewStreamWithScanner(newScanner(`[]`))
	var h jpush.NopHandler
	for {
		if err := st.Parse(h); err == jpush.ErrMoreInput {
			continue
		} else if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		break
	}
	// Completion is terminal and repeatable.
	if err := st.Parse(h); err != nil {
		t.Errorf("Parse after completion: got %v, want nil", err)
	}
}

func diffStrings(want, got string) string {
	return cmp.Diff(strings.Split(strings.TrimSpace(want), "\n"),
		strings.Split(strings.TrimSpace(got), "\n"))
}

type testHandler struct {
	buf bytes.Buffer
}

func (t *testHandler) pr(msg string, args ...any) {
	fmt.Fprintf(&t.buf, msg, args...)
	t.buf.WriteByte('\n')
}

func (t *testHandler) output() string { return t.buf.String() }

func (t *testHandler) BeginObject() error { t.pr("BeginObject"); return nil }
func (t *testHandler) EndObject() error   { t.pr("EndObject"); return nil }
func (t *testHandler) BeginArray() error  { t.pr("BeginArray"); return nil }
func (t *testHandler) EndArray() error    { t.pr("EndArray"); return nil }

func (t *testHandler) Key(text []byte) error {
	t.pr("Key <%s>", string(text))
	return nil
}

func (t *testHandler) ObjectValue(tok jpush.Token, text []byte) error {
	t.pr("ObjectValue %s <%s>", tok, string(text))
	return nil
}

func (t *testHandler) ArrayValue(tok jpush.Token, text []byte) error {
	t.pr("ArrayValue %s <%s>", tok, string(text))
	return nil
}
