package exifwalk

import (
	"bytes"
	"encoding/binary"
	"math"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ByteReader is a random-access view over an immutable, fixed-size byte
// region with a mutable endianness flag. It never owns
// the underlying slice's lifetime beyond the parse that borrows it.
//
// Every typed read is bounds-checked: offset+width>len(buf) or offset<0
// fails with an *OutOfBoundsError rather than panicking. Reads never fail
// on data content, only on geometry.
type ByteReader struct {
	buf       []byte
	bigEndian bool
}

// NewByteReader wraps buf for random access, starting in the given
// endianness. The flag may be changed later with SetBigEndian.
func NewByteReader(buf []byte, bigEndian bool) *ByteReader {
	return &ByteReader{buf: buf, bigEndian: bigEndian}
}

// Len returns the length of the underlying byte region.
func (r *ByteReader) Len() int { return len(r.buf) }

// BigEndian reports the current endianness flag.
func (r *ByteReader) BigEndian() bool { return r.bigEndian }

// SetBigEndian changes the current endianness flag. Scoped per parse, but
// may be temporarily overridden for a makernote subtree by the dispatcher,
// which snapshots and restores it.
func (r *ByteReader) SetBigEndian(v bool) { r.bigEndian = v }

func (r *ByteReader) order() binary.ByteOrder {
	if r.bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (r *ByteReader) checkBounds(offset, width int) error {
	if offset < 0 || width < 0 || offset+width > len(r.buf) {
		return &OutOfBoundsError{Offset: offset, Width: width, Length: len(r.buf)}
	}
	return nil
}

// Uint8 reads an unsigned 8-bit integer at offset.
func (r *ByteReader) Uint8(offset int) (uint8, error) {
	if err := r.checkBounds(offset, 1); err != nil {
		return 0, err
	}
	return r.buf[offset], nil
}

// Int8 reads a signed 8-bit integer at offset.
func (r *ByteReader) Int8(offset int) (int8, error) {
	v, err := r.Uint8(offset)
	return int8(v), err
}

// Uint16 reads an unsigned 16-bit integer at offset, honoring the current
// endianness.
func (r *ByteReader) Uint16(offset int) (uint16, error) {
	if err := r.checkBounds(offset, 2); err != nil {
		return 0, err
	}
	return r.order().Uint16(r.buf[offset:]), nil
}

// Int16 reads a signed 16-bit integer at offset.
func (r *ByteReader) Int16(offset int) (int16, error) {
	v, err := r.Uint16(offset)
	return int16(v), err
}

// Uint32 reads an unsigned 32-bit integer at offset.
func (r *ByteReader) Uint32(offset int) (uint32, error) {
	if err := r.checkBounds(offset, 4); err != nil {
		return 0, err
	}
	return r.order().Uint32(r.buf[offset:]), nil
}

// Int32 reads a signed 32-bit integer at offset.
func (r *ByteReader) Int32(offset int) (int32, error) {
	v, err := r.Uint32(offset)
	return int32(v), err
}

// Float32 reads an IEEE-754 single-precision float at offset.
func (r *ByteReader) Float32(offset int) (float32, error) {
	v, err := r.Uint32(offset)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// Float64 reads an IEEE-754 double-precision float at offset, spanning 8
// bytes.
func (r *ByteReader) Float64(offset int) (float64, error) {
	if err := r.checkBounds(offset, 8); err != nil {
		return 0, err
	}
	bits := r.order().Uint64(r.buf[offset:])
	return math.Float64frombits(bits), nil
}

// Bytes returns a copy of length bytes starting at offset.
func (r *ByteReader) Bytes(offset, length int) ([]byte, error) {
	if err := r.checkBounds(offset, length); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, r.buf[offset:offset+length])
	return out, nil
}

// FixedString reads exactly length bytes at offset and interprets them as
// ISO-8859-1 (a superset of ASCII), decoding through
// golang.org/x/text/encoding/charmap so embedded high-bit bytes come back
// as valid UTF-8 rather than mangled runes.
func (r *ByteReader) FixedString(offset, length int) (string, error) {
	if err := r.checkBounds(offset, length); err != nil {
		return "", err
	}
	return decodeISO8859_1(r.buf[offset : offset+length]), nil
}

// NULTerminatedString reads up to maxLen bytes at offset, stopping at the
// first NUL byte (or at maxLen if none is found).
func (r *ByteReader) NULTerminatedString(offset, maxLen int) (string, error) {
	if err := r.checkBounds(offset, 0); err != nil {
		return "", err
	}
	end := offset + maxLen
	if end > len(r.buf) {
		end = len(r.buf)
	}
	n := 0
	for i := offset; i < end; i++ {
		if r.buf[i] == 0 {
			break
		}
		n++
	}
	return decodeISO8859_1(r.buf[offset : offset+n]), nil
}

// HasBytesAt reports whether the region at offset matches sig exactly. An
// out-of-bounds read reports false rather than propagating an error: it is
// used only for best-effort signature sniffing, where a
// short buffer simply means "not this vendor".
func (r *ByteReader) HasBytesAt(offset int, sig []byte) bool {
	b, err := r.Bytes(offset, len(sig))
	if err != nil {
		return false
	}
	return bytes.Equal(b, sig)
}

func decodeISO8859_1(b []byte) string {
	out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
