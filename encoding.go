// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpush

import (
	"errors"
	"strings"

	"github.com/creachadair/jpush/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	esc := escape.Quote(mem.S(src))
	buf := make([]byte, 0, len(esc)+2)
	buf = append(buf, '"')
	buf = append(buf, esc...)
	buf = append(buf, '"')
	return string(buf)
}

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents, with
// the same conventions the scanner applies to string tokens: invalid or
// truncated escapes are passed through rather than reported as errors.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Decode(mem.S(src[1 : len(src)-1])), nil
}
