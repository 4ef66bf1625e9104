// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jpush implements an incremental JSON scanner and parser for
// push-style input delivery.
//
// Unlike a parser that pulls bytes from an io.Reader, the components of this
// package are fed explicitly by the caller: bytes arrive in chunks of any
// size via a [Source], and the scanner and parser consume what is available
// and suspend when it runs out. A suspended call reports [ErrMoreInput]; the
// caller feeds more bytes (or closes the source) and calls again, and the
// machine resumes exactly where it stopped, even in the middle of a token or
// a grammar production.
//
// # Feeding input
//
// A [Source] accumulates input. Feed appends bytes; Close signals that no
// further bytes will ever arrive. Without Close the scanner cannot commit to
// a final token, because for greedy tokens such as numbers a longer match
// may still be possible:
//
//	src := jpush.NewSource()
//	src.FeedString(`{ "a" : 1`)
//	// ... later ...
//	src.FeedString(` }`)
//	src.Close()
//
// # Scanning
//
// A [Scanner] reads lexical tokens from a Source. Each call to Next advances
// to the next token and returns nil, or reports an error. Next returns
// [ErrMoreInput] when the source is starved but still open, and io.EOF at a
// clean end of input:
//
//	sc := jpush.NewScanner(src)
//	for sc.Next() == nil {
//		log.Printf("token: %v %q", sc.Token(), sc.Text())
//	}
//
// # Parsing
//
// A [Stream] runs a table-driven shift/reduce automaton over the token
// stream and delivers events to a [Handler]. Parse returns nil once a
// complete JSON value has been consumed and the input is exhausted,
// ErrMoreInput while suspended, or a [*SyntaxError]:
//
//	st := jpush.NewStream(src)
//	for {
//		err := st.Parse(handler)
//		if err == jpush.ErrMoreInput {
//			feedMore(src) // or src.Close()
//			continue
//		}
//		return err
//	}
//
// Note that after the source is closed one additional Parse call may still
// report ErrMoreInput: the scanner is greedy, so draining the final token
// and running the closing reductions takes one more turn of the loop.
// Callers must loop on ErrMoreInput after Close until Parse reports a
// terminal result.
//
// # Grammar
//
// The grammar accepted is JSON with some departures. The separator between
// an object key and its value may be either ":" or ",", so {"a" , 1} and
// {"a" : 1} denote the same document. Serialization always emits ":". The
// top-level value must be an object or an array, keywords are recognized in
// any letter case, and number literals follow the scanner's automaton rather
// than the JSON number grammar (for example, .5 and 0. are accepted). Escape
// handling in strings is likewise permissive: an unknown escape yields the
// escaped character, and a \u not followed by four hex digits yields a
// literal "u".
package jpush
