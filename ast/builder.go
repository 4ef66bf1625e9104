// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bytes"
	"io"
	"strconv"

	"github.com/creachadair/jpush"
)

// A container is a node under construction that accepts child values.
type container interface {
	attach(Value)
}

func (r *Root) attach(v Value) { r.Value = v }

func (m *Member) attach(v Value) { m.Value = v }

func (a *Array) attach(v Value) { a.Values = append(a.Values, v) }

// A Builder implements the jpush.Handler interface to assemble a document
// tree from the events of a parse. The stack invariant is that the topmost
// entry is always the node currently accepting children; a member stays on
// the stack only until its value is known.
type Builder struct {
	root Root
	stk  []container
}

var _ jpush.Handler = (*Builder)(nil)

// NewBuilder constructs an empty Builder ready to receive events.
func NewBuilder() *Builder {
	b := new(Builder)
	b.stk = append(b.stk, &b.root)
	return b
}

// Root returns the root of the tree under construction. After a parse has
// delivered all its events, the root wraps the complete document.
func (b *Builder) Root() *Root { return &b.root }

func (b *Builder) top() container { return b.stk[len(b.stk)-1] }

func (b *Builder) pop() { b.stk = b.stk[:len(b.stk)-1] }

// begin attaches a new composite to the current container and makes it the
// target for subsequent children. A member is complete once its value is
// attached, so it is removed before the composite is pushed.
func (b *Builder) begin(v container) {
	t := b.top()
	t.attach(v.(Value))
	if _, ok := t.(*Member); ok {
		b.pop()
	}
	b.stk = append(b.stk, v)
}

// BeginObject satisfies part of the jpush.Handler interface.
func (b *Builder) BeginObject() error { b.begin(new(Object)); return nil }

// EndObject satisfies part of the jpush.Handler interface.
func (b *Builder) EndObject() error { b.pop(); return nil }

// BeginArray satisfies part of the jpush.Handler interface.
func (b *Builder) BeginArray() error { b.begin(new(Array)); return nil }

// EndArray satisfies part of the jpush.Handler interface.
func (b *Builder) EndArray() error { b.pop(); return nil }

// Key satisfies part of the jpush.Handler interface.
func (b *Builder) Key(text []byte) error {
	obj := b.top().(*Object)
	m := &Member{Key: string(text)}
	obj.Members = append(obj.Members, m)
	b.stk = append(b.stk, m)
	return nil
}

// ObjectValue satisfies part of the jpush.Handler interface.
func (b *Builder) ObjectValue(tok jpush.Token, text []byte) error {
	m := b.top().(*Member)
	m.Value = classify(tok, text)
	b.pop()
	return nil
}

// ArrayValue satisfies part of the jpush.Handler interface.
func (b *Builder) ArrayValue(tok jpush.Token, text []byte) error {
	a := b.top().(*Array)
	a.Values = append(a.Values, classify(tok, text))
	return nil
}

// An Object never sits atop the stack when a composite begins: inside an
// object the key has already pushed a member, so it only needs to accept
// members. attach is defined to complete the container set, but reaching it
// means the event stream violated the grammar.
func (o *Object) attach(Value) { panic("ast: value attached directly to object") }

// classify converts a primitive token into its Value. A quoted string is
// always a String; bare literals are the keywords, compared without case,
// or otherwise a number.
func classify(tok jpush.Token, text []byte) Value {
	if tok == jpush.String {
		return String(text)
	}
	switch {
	case bytes.EqualFold(text, []byte("true")):
		return Bool(true)
	case bytes.EqualFold(text, []byte("false")):
		return Bool(false)
	case bytes.EqualFold(text, []byte("null")):
		return Null{}
	}
	// The scanner only delivers lexically valid numbers here. An
	// out-of-range literal saturates to an infinity, as ParseFloat returns
	// the nearest representable value alongside the range error.
	v, _ := strconv.ParseFloat(string(text), 64)
	return Number(v)
}

// Parse reads all of r and parses it as a single JSON document, returning
// the assembled tree. The input must contain exactly one value, optionally
// surrounded by whitespace.
func Parse(r io.Reader) (*Root, error) {
	b := NewBuilder()
	src := jpush.NewSource()
	st := jpush.NewStream(src)

	buf := make([]byte, 4096)
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			src.Feed(buf[:n])
			if err := st.Parse(b); err != jpush.ErrMoreInput {
				if err != nil {
					return nil, err
				}
				return b.Root(), nil
			}
		}
		if rerr == io.EOF {
			break
		} else if rerr != nil {
			src.Fail(rerr)
			return nil, st.Parse(b)
		}
	}
	src.Close()

	// Drain: after closure the final token may take one extra round to
	// flush before the parse reaches a terminal result.
	for {
		err := st.Parse(b)
		if err == jpush.ErrMoreInput {
			continue
		} else if err != nil {
			return nil, err
		}
		return b.Root(), nil
	}
}
