// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpush

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/creachadair/jpush/internal/escape"
	"go4.org/mem"
)

// Sentinel errors reported by the Scanner and Stream.
var (
	// ErrMoreInput indicates that all available input was consumed without
	// reaching a decision. The call must be repeated after more bytes are fed
	// to the Source, or after the Source is closed.
	ErrMoreInput = errors.New("more input required")

	// ErrInvalidToken indicates input that matches no token of the grammar.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnfinishedToken indicates that the input ended in the middle of a
	// token that had not yet reached an accepting state.
	ErrUnfinishedToken = errors.New("unfinished token at end of input")
)

// Lexing context. A byte means different things depending on whether it
// occurs inside a string literal or just after a backslash; the context
// determines how a byte is mapped to its character class.
const (
	inDefault = iota
	inString
	afterBackslash
)

// A Scanner reads lexical tokens from a Source. Each call to Next advances
// the scanner to the next token, or reports an error.
//
// The scanner is resumable: when Next reports ErrMoreInput all internal
// state is preserved, and a later call continues exactly where the previous
// one stopped, even mid-token. The scanner is greedy, so a token such as a
// number cannot be committed until a byte that cannot extend it is seen or
// the source is closed; bytes read past the committed token are pushed back
// into the source.
type Scanner struct {
	src *Source
	lex bytes.Buffer // bytes of the token being recognized
	tok Token
	txt []byte // committed token text; for String, the decoded payload
	err error

	state     int // current DFA state
	lastFinal int // most recent accepting DFA state, or -1
	over      int // bytes in lex read past lastFinal
	ctx       int // lexing context
	pos       int // offset of the first byte of the current token
	end       int // offset just past the last byte of the current token
}

// NewScanner constructs a new lexical scanner that consumes input from src.
func NewScanner(src *Source) *Scanner {
	return &Scanner{src: src, lastFinal: -1}
}

// Next advances s to the next token of the input, or reports an error.
// Next returns ErrMoreInput if the source ran dry while still open; the
// call may be repeated once more bytes are available, and scanning resumes
// where it stopped. At the end of the input, Next returns io.EOF. Lexical
// errors have concrete type *SyntaxError. Errors other than ErrMoreInput
// are terminal: the scanner repeats them on subsequent calls.
func (s *Scanner) Next() error {
	if s.err != nil && s.err != ErrMoreInput {
		return s.err
	}
	s.err = nil

	for {
		c, err := s.src.next()
		if err == ErrMoreInput {
			s.err = err
			return err
		} else if err == io.EOF {
			if s.lastFinal >= 0 {
				return s.flush()
			} else if s.lex.Len() > 0 {
				s.reset()
				return s.fail(ErrUnfinishedToken)
			}
			s.tok = EOS
			s.txt = nil
			s.pos = s.src.Offset()
			s.end = s.pos
			return s.setErr(io.EOF)
		} else if err != nil {
			return s.setErr(fmt.Errorf("at offset %d: %w", s.src.Offset(), err))
		}

		// Whitespace never reaches the lexeme: in a string body the blank
		// bytes classify as NOSPECIAL instead, and outside a string they
		// either self-loop on the start state or terminate a token.
		class := s.classify(c)
		if class != cBlank {
			if s.lex.Len() == 0 {
				s.pos = s.src.Offset() - 1
			}
			s.lex.WriteByte(c)
			s.over++
		}

		next := dfa[s.state][class]
		if next < 0 {
			if s.lastFinal >= 0 {
				return s.flush()
			}
			s.reset()
			return s.fail(ErrInvalidToken)
		}
		s.state = int(next)
		if accept[next] != Invalid {
			s.lastFinal = s.state
			s.over = 0
		}
	}
}

// Token returns the type of the current token. After Next returns io.EOF
// the token is EOS.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Text returns the text of the current token. For String tokens this is the
// decoded payload without the delimiting quotes; for all other tokens it is
// the raw lexeme. The value is only valid until the next call of Next; the
// caller must copy it if it is needed beyond that.
func (s *Scanner) Text() []byte { return s.txt }

// Pos returns the byte offset of the start of the current token.
func (s *Scanner) Pos() int { return s.pos }

// Span returns the location of the current token in the input. The span of
// the EOS token is empty.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// classify maps c to its character class under the current context, and
// advances the context.
func (s *Scanner) classify(c byte) int {
	switch s.ctx {
	case inString:
		switch c {
		case '\\':
			s.ctx = afterBackslash
			return cBackslash
		case '"':
			s.ctx = inDefault
			return cQuote
		}
		return cNoSpecial

	case afterBackslash:
		s.ctx = inString
		return cAny
	}

	switch c {
	case '"':
		s.ctx = inString
		return cQuote
	case '0':
		return cZero
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return cDigit
	case '.':
		return cDot
	case 'e', 'E':
		return cE
	case '+', '-':
		return cSign
	case '{', '}', '[', ']', ',', ':':
		return cPunct
	case ' ', '\t', '\r', '\n', '\f':
		return cBlank
	case 'a', 'A':
		return cA
	case 'f', 'F':
		return cF
	case 'l', 'L':
		return cL
	case 'n', 'N':
		return cN
	case 'r', 'R':
		return cR
	case 's', 'S':
		return cS
	case 't', 'T':
		return cT
	case 'u', 'U':
		return cU
	}
	return cAny
}

// flush commits the token of the last accepting state. Overshoot bytes are
// pushed back into the source, string payloads are decoded, and a punct
// lexeme is resolved to its single-character token.
func (s *Scanner) flush() error {
	term := accept[s.lastFinal]
	raw := s.lex.Bytes()
	keep := len(raw) - s.over
	if s.over > 0 {
		s.src.unget(raw[keep:])
	}
	s.end = s.pos + keep

	switch term {
	case String:
		s.tok = String
		s.txt = escape.Decode(mem.B(raw[1 : keep-1]))
	case punct:
		s.tok = punctToken(raw[0])
		s.txt = append(s.txt[:0], raw[:keep]...)
	default:
		s.tok = term
		s.txt = append(s.txt[:0], raw[:keep]...)
	}

	s.lastFinal = -1
	s.over = 0
	s.reset()
	return nil
}

// reset returns the DFA to its start configuration. Pushed-back source
// bytes are unaffected.
func (s *Scanner) reset() {
	s.state = 0
	s.ctx = inDefault
	s.lex.Reset()
}

func punctToken(c byte) Token {
	switch c {
	case '{':
		return LBrace
	case '}':
		return RBrace
	case '[':
		return LSquare
	case ']':
		return RSquare
	case ',':
		return Comma
	case ':':
		return Colon
	}
	panic(fmt.Sprintf("not a punctuation byte: %q", c))
}

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

func (s *Scanner) fail(err error) error {
	return s.setErr(&SyntaxError{Offset: s.src.Offset(), err: err})
}
