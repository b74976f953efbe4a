package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/wasmkit/wasmkit/wasm"
	"github.com/wasmkit/wasmkit/wasm/leb128"
)

// ErrUnexpectedEOF is returned when a read runs past the enclosing frame.
var ErrUnexpectedEOF = io.ErrUnexpectedEOF

// Reader is a cursor over an immutable byte slice. Offsets are absolute
// within the original module image even for sub-frames, so a wasm.Location
// taken from any reader points into the same buffer.
//
// A Reader owns only its cursor; the backing buffer is borrowed and never
// written.
type Reader struct {
	buf []byte
	pos uint32
	end uint32
}

// NewReader returns a cursor over the whole of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf, end: uint32(len(buf))}
}

// Pos returns the current absolute offset.
func (r *Reader) Pos() uint32 { return r.pos }

// Len returns the number of bytes left in this frame.
func (r *Reader) Len() uint32 { return r.end - r.pos }

// From returns the location spanning start to the current position.
func (r *Reader) From(start uint32) wasm.Location {
	return wasm.Location{Offset: start, Length: r.pos - start}
}

// Here returns a zero-length location at the current position, for errors
// about bytes that are not there.
func (r *Reader) Here() wasm.Location {
	return wasm.Location{Offset: r.pos}
}

// Sub carves the next n bytes into a child frame and advances this reader
// past them. The child shares the backing buffer and keeps absolute offsets.
func (r *Reader) Sub(n uint32) (*Reader, error) {
	if r.Len() < n {
		return nil, fmt.Errorf("frame of %d bytes overruns input: %w", n, ErrUnexpectedEOF)
	}
	sub := &Reader{buf: r.buf, pos: r.pos, end: r.pos + n}
	r.pos += n
	return sub, nil
}

// ReadByte reads one byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.Len() < 1 {
		return 0, ErrUnexpectedEOF
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// ReadBytes reads n bytes, returning a view into the backing buffer.
func (r *Reader) ReadBytes(n uint32) ([]byte, error) {
	if r.Len() < n {
		return nil, ErrUnexpectedEOF
	}
	b := r.buf[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadU32 reads a LEB128 uint32.
func (r *Reader) ReadU32() (uint32, error) {
	v, n, err := leb128.LoadUint32(r.rest())
	r.pos += uint32(n)
	return v, err
}

// ReadU64 reads a LEB128 uint64.
func (r *Reader) ReadU64() (uint64, error) {
	v, n, err := leb128.LoadUint64(r.rest())
	r.pos += uint32(n)
	return v, err
}

// ReadS32 reads a signed LEB128 int32.
func (r *Reader) ReadS32() (int32, error) {
	v, n, err := leb128.LoadInt32(r.rest())
	r.pos += uint32(n)
	return v, err
}

// ReadS33 reads the signed 33-bit integer of a block type.
func (r *Reader) ReadS33() (int64, error) {
	v, n, err := leb128.LoadInt33(r.rest())
	r.pos += uint32(n)
	return v, err
}

// ReadS64 reads a signed LEB128 int64.
func (r *Reader) ReadS64() (int64, error) {
	v, n, err := leb128.LoadInt64(r.rest())
	r.pos += uint32(n)
	return v, err
}

// ReadF32 reads the raw bits of a little-endian float32.
func (r *Reader) ReadF32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadF64 reads the raw bits of a little-endian float64.
func (r *Reader) ReadF64() (uint64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadCount reads a vector length and rejects one exceeding the bytes left in
// the frame: every element takes at least one byte, so a larger count cannot
// be satisfied and would otherwise provoke a huge allocation.
func (r *Reader) ReadCount() (uint32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	if v > r.Len() {
		return 0, fmt.Errorf("count %d exceeds remaining %d bytes", v, r.Len())
	}
	return v, nil
}

// ReadName reads a length-prefixed UTF-8 string.
func (r *Reader) ReadName() (string, error) {
	n, err := r.ReadCount()
	if err != nil {
		return "", fmt.Errorf("read size of name: %w", err)
	}
	b, err := r.ReadBytes(n)
	if err != nil {
		return "", fmt.Errorf("read bytes of name: %w", err)
	}
	if !utf8.Valid(b) {
		return "", errors.New("name must be valid as utf8")
	}
	return string(b), nil
}

func (r *Reader) rest() []byte {
	return r.buf[r.pos:r.end]
}
