// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpush

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}
