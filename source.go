// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpush

import "io"

// A Source is a byte stream fed incrementally by its producer. The consumer
// (a Scanner) pulls bytes one at a time; when the buffer is exhausted the
// source reports either ErrMoreInput, if the producer may still feed more
// bytes, or io.EOF once the producer has called Close.
//
// A Source is not safe for concurrent use. The producer and consumer must
// run on the same goroutine or provide their own synchronization.
type Source struct {
	buf    []byte
	off    int // absolute offset of the next unread byte
	closed bool
	err    error // injected read failure, surfaced before any further bytes
}

// NewSource constructs a new empty, open Source.
func NewSource() *Source { return new(Source) }

// Feed appends data to the bytes available for scanning. The slice is copied
// so the caller may reuse it. Feed panics if the source has been closed.
func (s *Source) Feed(data []byte) {
	if s.closed {
		panic("feed on closed source")
	}
	s.buf = append(s.buf, data...)
}

// FeedString appends str to the bytes available for scanning.
// It panics if the source has been closed.
func (s *Source) FeedString(str string) {
	if s.closed {
		panic("feed on closed source")
	}
	s.buf = append(s.buf, str...)
}

// Close marks the source as complete: no further bytes will ever arrive.
// Once the remaining buffered bytes are consumed, reads report io.EOF
// instead of ErrMoreInput. Close is idempotent.
func (s *Source) Close() { s.closed = true }

// Fail injects a read failure. The next read reports err instead of a byte,
// regardless of buffered data, and the failure persists. Use this to
// propagate a hard I/O error from the producer into a running parse.
func (s *Source) Fail(err error) { s.err = err }

// Offset reports the absolute offset of the next byte to be read, counting
// all bytes ever fed.
func (s *Source) Offset() int { return s.off }

// next returns the next available byte. It reports ErrMoreInput if the
// buffer is empty but the source is still open, and io.EOF if the buffer is
// empty and the source is closed.
func (s *Source) next() (byte, error) {
	if s.err != nil {
		return 0, s.err
	}
	if len(s.buf) == 0 {
		if s.closed {
			return 0, io.EOF
		}
		return 0, ErrMoreInput
	}
	c := s.buf[0]
	s.buf = s.buf[1:]
	s.off++
	return c, nil
}

// unget prepends data to the buffer, to be returned by subsequent reads
// before any fresh bytes. The scanner uses this to push back overshoot read
// past the end of a committed token.
func (s *Source) unget(data []byte) {
	if len(data) == 0 {
		return
	}
	pre := make([]byte, 0, len(data)+len(s.buf))
	pre = append(pre, data...)
	s.buf = append(pre, s.buf...)
	s.off -= len(data)
}
