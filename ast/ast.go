// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a document object model for JSON values, and a
// builder that assembles documents from the events of a parse.
package ast

import (
	"strconv"
	"strings"

	"github.com/creachadair/jpush"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON encodes the value as JSON text.
	JSON() string
}

// A String is a string value. Its content is the decoded text, without
// quotation marks or escapes.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return jpush.Quote(string(s)) }

// A Number is a numeric value, represented as an IEEE-754 double.
type Number float64

// JSON satisfies the Value interface. The encoding is the shortest decimal
// form that parses back to the same value.
func (n Number) JSON() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// Null represents the JSON null constant. Its only value is the zero Null.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

// An Array is an ordered sequence of values.
type Array struct {
	Values []Value
}

// JSON satisfies the Value interface.
func (a *Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.Values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// JSON satisfies the Value interface. A member whose value has not yet been
// assigned encodes as null.
func (m *Member) JSON() string {
	val := "null"
	if m.Value != nil {
		val = m.Value.JSON()
	}
	return jpush.Quote(m.Key) + " : " + val
}

// An Object is a collection of key-value members. Members preserve the
// order of their appearance in the input, and duplicate keys are retained.
type Object struct {
	Members []*Member
}

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// JSON satisfies the Value interface.
func (o *Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// A Root wraps the single top-level value of a document. An empty Root,
// whose value has not been assigned, encodes as null.
type Root struct {
	Value Value
}

// JSON satisfies the Value interface.
func (r *Root) JSON() string {
	if r.Value == nil {
		return "null"
	}
	return r.Value.JSON()
}
