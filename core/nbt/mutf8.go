package nbt

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Strings are stored in Java's modified UTF-8: NUL is written as C0 80 and
// characters outside the BMP as two 3-byte surrogate halves. Neither form is
// valid UTF-8, so valid input takes the fast path unchanged.

func decodeJavaString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			units = append(units, uint16(c))
			i++
		case c&0xe0 == 0xc0 && i+1 < len(b):
			units = append(units, uint16(c&0x1f)<<6|uint16(b[i+1]&0x3f))
			i += 2
		case c&0xf0 == 0xe0 && i+2 < len(b):
			units = append(units, uint16(c&0x0f)<<12|uint16(b[i+1]&0x3f)<<6|uint16(b[i+2]&0x3f))
			i += 3
		default:
			units = append(units, utf8.RuneError)
			i++
		}
	}
	return string(utf16.Decode(units))
}

func encodeJavaString(s string) []byte {
	if !strings.ContainsRune(s, 0) && !hasSupplementary(s) {
		return []byte(s)
	}

	out := make([]byte, 0, len(s)+8)
	for _, r := range s {
		switch {
		case r == 0:
			out = append(out, 0xc0, 0x80)
		case r > 0xffff:
			hi, lo := utf16.EncodeRune(r)
			out = appendUnit(out, uint16(hi))
			out = appendUnit(out, uint16(lo))
		default:
			out = utf8.AppendRune(out, r)
		}
	}
	return out
}

func hasSupplementary(s string) bool {
	for _, r := range s {
		if r > 0xffff {
			return true
		}
	}
	return false
}

func appendUnit(b []byte, u uint16) []byte {
	return append(b, 0xe0|byte(u>>12), 0x80|byte(u>>6)&0x3f, 0x80|byte(u)&0x3f)
}
