package exifwalk

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestByteReaderBoundsChecking(t *testing.T) {
	c := qt.New(t)

	r := NewByteReader([]byte{1, 2, 3, 4}, true)

	v, err := r.Uint32(0)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint32(0x01020304))

	_, err = r.Uint32(1)
	c.Assert(err, qt.ErrorMatches, "read of 4 bytes at offset 1 exceeds region of length 4")
	c.Assert(IsOutOfBounds(err), qt.IsTrue)
}

func TestByteReaderEndiannessSwitch(t *testing.T) {
	c := qt.New(t)

	r := NewByteReader([]byte{0x00, 0x01}, true)
	v, err := r.Uint16(0)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint16(1))

	r.SetBigEndian(false)
	v, err = r.Uint16(0)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint16(0x0100))
}

func TestByteReaderHasBytesAt(t *testing.T) {
	c := qt.New(t)

	r := NewByteReader([]byte("OLYMP.."), true)
	c.Assert(r.HasBytesAt(0, []byte("OLYMP")), qt.IsTrue)
	c.Assert(r.HasBytesAt(0, []byte("NIKON")), qt.IsFalse)
	c.Assert(r.HasBytesAt(10, []byte("X")), qt.IsFalse)
}

func TestByteReaderNULTerminatedString(t *testing.T) {
	c := qt.New(t)

	r := NewByteReader([]byte("Canon\x00\x00\x00"), true)
	s, err := r.NULTerminatedString(0, 8)
	c.Assert(err, qt.IsNil)
	c.Assert(s, qt.Equals, "Canon")
}
