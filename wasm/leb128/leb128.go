// Package leb128 reads and writes the variable-length integers used
// throughout the WebAssembly binary format.
//
// Decoding is strict: an integer must fit its target width and must terminate
// within ceil(W/7) bytes. The terminator byte's unused high bits must be zero
// (unsigned) or a consistent sign extension (signed), so every value has
// exactly one encoding of each length and the canonical encoders below
// round-trip.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#integers%E2%91%A4
package leb128

import "errors"

var (
	// ErrTruncated means the input ended before a terminator byte.
	ErrTruncated = errors.New("leb128: unexpected end of input")
	// ErrTooLong means the continuation bit was still set on the last byte
	// the target width allows.
	ErrTooLong = errors.New("leb128: integer representation too long")
	// ErrTooLarge means the terminator byte carries bits beyond the target
	// width.
	ErrTooLarge = errors.New("leb128: integer too large")
)

// maxLen32, maxLen33 and maxLen64 are the byte count budgets for a width in
// bits: ceil(w/7).
const (
	maxLen32 = 5
	maxLen33 = 5
	maxLen64 = 10
)

// LoadUint32 reads a LEB128-encoded uint32 from the front of b, returning the
// value and the number of bytes read.
func LoadUint32(b []byte) (ret uint32, num uint64, err error) {
	v, n, err := loadUnsigned(b, 32, maxLen32)
	return uint32(v), n, err
}

// LoadUint64 reads a LEB128-encoded uint64 from the front of b.
func LoadUint64(b []byte) (ret uint64, num uint64, err error) {
	return loadUnsigned(b, 64, maxLen64)
}

// LoadInt32 reads a signed LEB128-encoded int32 from the front of b.
func LoadInt32(b []byte) (ret int32, num uint64, err error) {
	v, n, err := loadSigned(b, 32, maxLen32)
	return int32(v), n, err
}

// LoadInt33 reads a signed 33-bit LEB128 integer, as used by block types,
// widened to int64.
func LoadInt33(b []byte) (ret int64, num uint64, err error) {
	return loadSigned(b, 33, maxLen33)
}

// LoadInt64 reads a signed LEB128-encoded int64 from the front of b.
func LoadInt64(b []byte) (ret int64, num uint64, err error) {
	return loadSigned(b, 64, maxLen64)
}

func loadUnsigned(b []byte, width, maxLen int) (ret uint64, num uint64, err error) {
	for i := 0; i < maxLen; i++ {
		if i >= len(b) {
			return 0, 0, ErrTruncated
		}
		c := b[i]
		payload := uint64(c & 0x7f)

		if i == maxLen-1 {
			if c&0x80 != 0 {
				return 0, 0, ErrTooLong
			}
			// The terminator may only use the bits left below the width.
			if used := 7 * i; payload>>(width-used) != 0 {
				return 0, 0, ErrTooLarge
			}
		}

		ret |= payload << (7 * i)
		if c&0x80 == 0 {
			// Canonical form only: a zero terminator after a continuation
			// byte encodes the same value one byte shorter.
			if i > 0 && c == 0 {
				return 0, 0, ErrTooLong
			}
			return ret, uint64(i + 1), nil
		}
	}
	panic("unreachable")
}

func loadSigned(b []byte, width, maxLen int) (ret int64, num uint64, err error) {
	shift := 0
	for i := 0; i < maxLen; i++ {
		if i >= len(b) {
			return 0, 0, ErrTruncated
		}
		c := b[i]
		payload := int64(c & 0x7f)

		if i == maxLen-1 {
			if c&0x80 != 0 {
				return 0, 0, ErrTooLong
			}
			// remaining is how many payload bits the width still needs,
			// counting the sign. Bits above them must replicate the sign bit.
			remaining := width - 7*i
			unused := payload >> (remaining - 1)
			if mask := int64(1)<<(7-remaining+1) - 1; unused != 0 && unused != mask {
				return 0, 0, ErrTooLarge
			}
		}

		ret |= payload << shift
		shift += 7
		if c&0x80 == 0 {
			// Canonical form only: a terminator that merely repeats the sign
			// of the previous byte is redundant.
			if i > 0 && ((c == 0 && b[i-1]&0x40 == 0) || (c == 0x7f && b[i-1]&0x40 != 0)) {
				return 0, 0, ErrTooLong
			}
			if shift < 64 && payload&0x40 != 0 {
				ret |= -1 << shift
			}
			// Sign-extend from the target width so a 33-bit value reads the
			// same regardless of encoded length.
			if width < 64 {
				ret = ret << (64 - width) >> (64 - width)
			}
			return ret, uint64(i + 1), nil
		}
	}
	panic("unreachable")
}

// EncodeUint32 appends the canonical (shortest) encoding of v.
func EncodeUint32(v uint32) []byte {
	return EncodeUint64(uint64(v))
}

// EncodeUint64 appends the canonical (shortest) encoding of v.
func EncodeUint64(v uint64) (buf []byte) {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			c |= 0x80
		}
		buf = append(buf, c)
		if c&0x80 == 0 {
			return
		}
	}
}

// EncodeInt32 returns the canonical signed encoding of v.
func EncodeInt32(v int32) []byte {
	return EncodeInt64(int64(v))
}

// EncodeInt64 returns the canonical signed encoding of v. This also encodes
// the 33-bit block type integers, whose minimal encodings coincide with
// int64's.
func EncodeInt64(v int64) (buf []byte) {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && c&0x40 == 0) || (v == -1 && c&0x40 != 0) {
			return append(buf, c)
		}
		buf = append(buf, c|0x80)
	}
}
