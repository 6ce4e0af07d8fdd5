package matcher

import "unicode/utf8"

// EncodedString abstracts a haystack of unspecified in-memory encoding so
// the core matcher can stay encoding-generic (C9). All implementations
// normalize to UTF-8 byte-length bookkeeping: Next reports the UTF-8 byte
// length of the decoded rune, regardless of the source encoding's native
// unit size, so Match offsets are always comparable across
// implementations. Grounded on
// `_examples/original_source/ib-matcher/src/matcher/encoding.rs`'s sealed
// `IStr` trait.
type EncodedString interface {
	// IsASCII reports whether every remaining character is ASCII.
	IsASCII() bool
	// ByteLen reports the UTF-8 byte length of the remaining haystack.
	ByteLen() int
	// Bytes returns the UTF-8 encoding of the remaining haystack.
	Bytes() []byte
	// Next decodes the leading character, returning it, its UTF-8 byte
	// length, and the remaining tail. ok is false once the haystack is
	// exhausted.
	Next() (r rune, byteLen int, rest EncodedString, ok bool)
}

// StringHaystack is the UTF-8 EncodedString implementation; it is the one
// NewInput wraps and carries the bulk of this package's test coverage.
type StringHaystack string

func (h StringHaystack) IsASCII() bool {
	for i := 0; i < len(h); i++ {
		if h[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func (h StringHaystack) ByteLen() int { return len(h) }

func (h StringHaystack) Bytes() []byte { return []byte(h) }

func (h StringHaystack) Next() (rune, int, EncodedString, bool) {
	if len(h) == 0 {
		return 0, 0, h, false
	}
	r, size := utf8.DecodeRuneInString(string(h))
	return r, size, h[size:], true
}

// UTF16Haystack is a lossily-decoded UTF-16 haystack (ill-formed code unit
// sequences decode to U+FFFD). Per spec.md §4.6 this implementation is a
// collaborator, covered lightly relative to StringHaystack.
type UTF16Haystack []uint16

func (h UTF16Haystack) IsASCII() bool {
	for _, u := range h {
		if u >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func (h UTF16Haystack) decodeFirst() (rune, int) {
	if len(h) == 0 {
		return utf8.RuneError, 0
	}
	u := h[0]
	switch {
	case u < 0xD800 || u > 0xDFFF:
		return rune(u), 1
	case u <= 0xDBFF:
		if len(h) < 2 || h[1] < 0xDC00 || h[1] > 0xDFFF {
			return utf8.RuneError, 1
		}
		r := ((rune(u) - 0xD800) << 10) + (rune(h[1]) - 0xDC00) + 0x10000
		return r, 2
	default:
		return utf8.RuneError, 1
	}
}

func (h UTF16Haystack) Next() (rune, int, EncodedString, bool) {
	if len(h) == 0 {
		return 0, 0, h, false
	}
	r, units := h.decodeFirst()
	return r, utf8.RuneLen(r), h[units:], true
}

func (h UTF16Haystack) ByteLen() int {
	total := 0
	rest := h
	for len(rest) > 0 {
		_, n, next, ok := rest.Next()
		if !ok {
			break
		}
		total += n
		rest = next.(UTF16Haystack)
	}
	return total
}

func (h UTF16Haystack) Bytes() []byte {
	out := make([]byte, 0, len(h)*3)
	rest := h
	for len(rest) > 0 {
		r, _, next, ok := rest.Next()
		if !ok {
			break
		}
		out = utf8.AppendRune(out, r)
		rest = next.(UTF16Haystack)
	}
	return out
}

// UTF32Haystack is a lossily-decoded UTF-32 haystack (out-of-range or
// surrogate code points decode to U+FFFD).
type UTF32Haystack []uint32

func (h UTF32Haystack) IsASCII() bool {
	for _, u := range h {
		if u >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func (h UTF32Haystack) Next() (rune, int, EncodedString, bool) {
	if len(h) == 0 {
		return 0, 0, h, false
	}
	u := h[0]
	r := rune(u)
	if u > utf8.MaxRune || (u >= 0xD800 && u <= 0xDFFF) {
		r = utf8.RuneError
	}
	return r, utf8.RuneLen(r), h[1:], true
}

func (h UTF32Haystack) ByteLen() int {
	total := 0
	for _, u := range h {
		r := rune(u)
		if u > utf8.MaxRune || (u >= 0xD800 && u <= 0xDFFF) {
			r = utf8.RuneError
		}
		total += utf8.RuneLen(r)
	}
	return total
}

func (h UTF32Haystack) Bytes() []byte {
	out := make([]byte, 0, len(h)*3)
	for _, u := range h {
		r := rune(u)
		if u > utf8.MaxRune || (u >= 0xD800 && u <= 0xDFFF) {
			r = utf8.RuneError
		}
		out = utf8.AppendRune(out, r)
	}
	return out
}
