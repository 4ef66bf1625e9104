// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// Path traverses a sequence of nested object keys and array indices
// starting from v, and returns the value it arrives at. Each key must be a
// string, an int, or a func(Value) (Value, error).
//
// A string selects the first member of an object with that key. An int
// selects the element of an array at that position, with negative values
// counting backward from the end. A function is applied to the current
// value and traversal continues from its result. A Root is unwrapped before
// each step, so a path may be applied directly to the result of a parse.
func Path(v Value, keys ...any) (Value, error) {
	for _, key := range keys {
		next, err := pathElem(v, key)
		if err != nil {
			return nil, err
		}
		v = next
	}
	if r, ok := v.(*Root); ok {
		return r.Value, nil
	}
	return v, nil
}

func pathElem(v Value, key any) (Value, error) {
	if r, ok := v.(*Root); ok {
		v = r.Value
	}
	switch t := key.(type) {
	case string:
		obj, ok := v.(*Object)
		if !ok {
			return nil, fmt.Errorf("got %T, want object", v)
		}
		m := obj.Find(t)
		if m == nil {
			return nil, fmt.Errorf("key %q not found", t)
		}
		return m.Value, nil

	case int:
		arr, ok := v.(*Array)
		if !ok {
			return nil, fmt.Errorf("got %T, want array", v)
		}
		idx := t
		if idx < 0 {
			idx += len(arr.Values)
		}
		if idx < 0 || idx >= len(arr.Values) {
			return nil, fmt.Errorf("index %d out of range (%d elements)", t, len(arr.Values))
		}
		return arr.Values[idx], nil

	case func(Value) (Value, error):
		return t(v)

	default:
		return nil, fmt.Errorf("invalid path element %T", key)
	}
}
