// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

// escapeChar maps the control characters with a short escape form to their
// escape letter. Controls outside the map are written in \u00XX form.
var escapeChar = [' ']byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

var hexDigit = []byte("0123456789abcdef")

// Quote replaces the characters of src that may not appear literally in the
// payload of a JSON string with escape sequences. The input must be valid
// UTF-8, and the enclosing double quotation marks are not added.
//
// Besides the quote, backslash, and control characters the grammar requires
// escaping, the line and paragraph separators (U+2028, U+2029) and the
// replacement character (U+FFFD) are written in \u form, since they are
// unsafe or invisible in common downstream contexts. All other multibyte
// sequences pass through unchanged.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		switch c := src.At(i); {
		case c == '"' || c == '\\':
			buf = append(buf, '\\', c)
		case c < ' ':
			if e := escapeChar[c]; e != 0 {
				buf = append(buf, '\\', e)
			} else {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[c>>4], hexDigit[c&15])
			}
		case c == 0xe2 && i+2 < src.Len() && src.At(i+1) == 0x80 &&
			src.At(i+2)&0xfe == 0xa8: // line (U+2028) or paragraph (U+2029) separator
			buf = append(buf, '\\', 'u', '2', '0', '2', hexDigit[src.At(i+2)&15])
			i += 2
		case c == 0xef && i+2 < src.Len() && src.At(i+1) == 0xbf &&
			src.At(i+2) == 0xbd: // replacement character (U+FFFD)
			buf = append(buf, '\\', 'u', 'f', 'f', 'f', 'd')
			i += 2
		default:
			buf = append(buf, c)
		}
	}
	return buf
}
