// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import "go4.org/mem"

// Decode replaces the escape sequences in the payload of a JSON string
// literal with their unescaped equivalents. The input must have the
// enclosing double quotation marks already removed.
//
// Decode never reports an error. The two-character escapes \\ \/ \" \t \n
// \r \f \b are rewritten to the characters they denote, and any other
// escaped character is passed through unchanged. A \u escape followed by
// four hexadecimal digits is rewritten to the UTF-8 encoding of that code
// point; if fewer than four hex digits remain in the payload the escape is
// left as a literal "u". Surrogate halves are not combined, each is encoded
// separately as a three-byte sequence.
func Decode(src mem.RO) []byte {
	dec := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		c := src.At(i)
		if c != '\\' {
			dec = append(dec, c)
			continue
		}
		i++
		if i == src.Len() {
			// A trailing backslash cannot arise from the scanner, which treats
			// it as escaping the closing quote. Keep it rather than panicking.
			dec = append(dec, '\\')
			break
		}
		switch c = src.At(i); c {
		case '\\', '/', '"':
			dec = append(dec, c)
		case 't':
			dec = append(dec, '\t')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 'f':
			dec = append(dec, '\f')
		case 'b':
			dec = append(dec, '\b')
		case 'u':
			if i+4 < src.Len() {
				if v, ok := parseHex4(src, i+1); ok {
					dec = appendRune(dec, v)
					i += 4
					break
				}
			}
			dec = append(dec, 'u')
		default:
			dec = append(dec, c)
		}
	}
	return dec
}

// parseHex4 decodes the four bytes of src starting at pos as a hexadecimal
// code point. It reports false if any of them is not a hex digit.
func parseHex4(src mem.RO, pos int) (uint16, bool) {
	var v uint16
	for i := pos; i < pos+4; i++ {
		b := src.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += uint16(b - '0')
		case 'a' <= b && b <= 'f':
			v += uint16(b-'a') + 10
		case 'A' <= b && b <= 'F':
			v += uint16(b-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}

// appendRune appends the UTF-8 encoding of v to dec. Unlike
// utf8.AppendRune it does not reject surrogate halves, which the decoder
// passes through unpaired.
func appendRune(dec []byte, v uint16) []byte {
	switch {
	case v < 0x80:
		return append(dec, byte(v))
	case v < 0x800:
		return append(dec, 0xc0|byte(v>>6), 0x80|byte(v&0x3f))
	default:
		return append(dec, 0xe0|byte(v>>12), 0x80|byte(v>>6&0x3f), 0x80|byte(v&0x3f))
	}
}
