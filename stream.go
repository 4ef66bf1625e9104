// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpush

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnexpectedToken indicates a token that is not valid at the current
// point of the grammar, including extra input after a complete value and an
// end of input in the middle of a value.
var ErrUnexpectedToken = errors.New("unexpected token")

// A Handler handles events from parsing an input stream. If a method
// reports an error, parsing stops and that error is returned to the caller.
// The parser ensures objects and arrays are correctly balanced.
//
// The text argument to a Handler method is only valid for the duration of
// that method call. If the method needs to retain the text after it
// returns, it must copy it.
type Handler interface {
	// Begin a new object.
	BeginObject() error

	// End the most-recently-opened object.
	EndObject() error

	// Begin a new array.
	BeginArray() error

	// End the most-recently-opened array.
	EndArray() error

	// Report the key of an object member. The text is already decoded.
	Key(text []byte) error

	// Report a primitive member value inside an object. The token
	// distinguishes a quoted string from a bare literal, so that "true" and
	// true are not conflated: it is String or Other.
	ObjectValue(tok Token, text []byte) error

	// Report a primitive array element. The token is String or Other.
	ArrayValue(tok Token, text []byte) error
}

// NopHandler ignores all events without error. Embed a NopHandler to get
// default no-op implementations of the Handler methods, or use it alone to
// check input for validity without materializing anything.
type NopHandler struct{}

// BeginObject satisfies part of the Handler interface.
func (NopHandler) BeginObject() error { return nil }

// EndObject satisfies part of the Handler interface.
func (NopHandler) EndObject() error { return nil }

// BeginArray satisfies part of the Handler interface.
func (NopHandler) BeginArray() error { return nil }

// EndArray satisfies part of the Handler interface.
func (NopHandler) EndArray() error { return nil }

// Key satisfies part of the Handler interface.
func (NopHandler) Key([]byte) error { return nil }

// ObjectValue satisfies part of the Handler interface.
func (NopHandler) ObjectValue(Token, []byte) error { return nil }

// ArrayValue satisfies part of the Handler interface.
func (NopHandler) ArrayValue(Token, []byte) error { return nil }

// Stream is an incremental stream parser that consumes input and delivers
// events to a Handler corresponding with the structure of the input.
//
// The parser is resumable: when Parse reports ErrMoreInput its state is
// preserved, and a later call resumes the derivation where it stopped. All
// other results are terminal. Like the scanner it is driven entirely by the
// caller and is not safe for concurrent use.
type Stream struct {
	sc    *Scanner
	state int
	stk   []int // interleaved (symbol, state) pairs
	done  bool
	err   error // latched terminal error
}

// NewStream constructs a new Stream that consumes input from src.
func NewStream(src *Source) *Stream { return &Stream{sc: NewScanner(src)} }

// NewStreamWithScanner constructs a new Stream that consumes tokens from sc.
func NewStreamWithScanner(sc *Scanner) *Stream { return &Stream{sc: sc} }

// Parse consumes input and delivers events to h until a complete JSON value
// has been parsed, input runs out, or an error occurs.
//
// Parse returns nil when a whole value was consumed and the input is
// exhausted. It returns ErrMoreInput when the available input was consumed
// without completing the value; the caller feeds the source (or closes it)
// and calls Parse again. After the source is closed, one additional
// ErrMoreInput may be reported while the final token is drained, so callers
// must keep calling until a terminal result arrives.
//
// Syntax and lexical errors have concrete type [*SyntaxError]. An error
// reported by a Handler method is returned unwrapped. Terminal errors are
// latched: subsequent calls return the same result without consuming input.
func (s *Stream) Parse(h Handler) error {
	if s.err != nil {
		return s.err
	} else if s.done {
		return nil
	}

	tok, text, err := s.next()
	if err != nil {
		if err == ErrMoreInput {
			return err
		}
		return s.fail(err)
	}

	for {
		cell := pt[s.state][tok]
		switch cell.what {
		case ptError:
			return s.fail(s.unexpected(tok))

		case ptShift:
			s.stk = append(s.stk, int(tok), int(cell.where))
			s.state = int(cell.where)
			if err := s.invoke(h, tok, text); err != nil {
				return s.fail(err)
			}
			tok, text, err = s.next()
			if err != nil {
				if err == ErrMoreInput {
					return err
				}
				return s.fail(err)
			}
			if tok == EOS {
				// The value may now be complete, but the closing reductions
				// only run with EOS as lookahead on the next call. Reporting
				// ErrMoreInput here is what obliges callers to keep calling
				// after Close.
				return ErrMoreInput
			}

		default: // reduce
			nt, n := int(cell.what), int(cell.where)
			if len(s.stk) < 2*n {
				panic("jpush: parser stack underflow")
			}
			s.stk = s.stk[:len(s.stk)-2*n]
			if len(s.stk) == 0 {
				if nt != 0 || tok != EOS {
					panic("jpush: parser stack empty before acceptance")
				}
				s.done = true
				return nil
			}
			top := s.stk[len(s.stk)-1]
			goTo := pt[top][nt]
			if goTo.what != ptShift {
				panic(fmt.Sprintf("jpush: no transition from state %d on nonterminal %d", top, nt))
			}
			s.state = int(goTo.where)
			s.stk = append(s.stk, nt, s.state)
		}
	}
}

// next fetches the next lookahead from the scanner, mapping a clean end of
// input to the EOS terminal.
func (s *Stream) next() (Token, []byte, error) {
	err := s.sc.Next()
	if err == io.EOF {
		return EOS, nil, nil
	} else if err != nil {
		return Invalid, nil, err
	}
	return s.sc.Token(), s.sc.Text(), nil
}

// invoke runs the semantic hook attached to the state just shifted into, if
// any. The hook states are fixed properties of the parse table.
func (s *Stream) invoke(h Handler, tok Token, text []byte) error {
	switch s.state {
	case 1, 10, 11:
		return h.BeginObject()
	case 2:
		return h.Key(text)
	case 4, 5:
		return h.ObjectValue(tok, text)
	case 13, 32, 34:
		return h.EndObject()
	case 6, 9, 19:
		return h.BeginArray()
	case 7, 8:
		return h.ArrayValue(tok, text)
	case 23, 36, 37:
		return h.EndArray()
	}
	return nil
}

func (s *Stream) unexpected(tok Token) error {
	msg := fmt.Sprintf("unexpected %v", tok)
	if tok == EOS {
		msg = "unexpected end of input"
	}
	return &SyntaxError{
		Offset:  s.sc.Pos(),
		Message: msg,
		err:     ErrUnexpectedToken,
	}
}

func (s *Stream) fail(err error) error {
	s.err = err
	return err
}

// SyntaxError is the concrete type of lexical and syntactic errors reported
// by the Scanner and the Stream.
type SyntaxError struct {
	Offset  int    // byte offset in the input where the error occurred
	Message string // human-readable description

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	msg := s.Message
	if msg == "" {
		msg = s.err.Error()
	}
	return fmt.Sprintf("at offset %d: %s", s.Offset, msg)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
