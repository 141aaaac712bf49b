package exifwalk

import (
	"encoding/binary"
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestProcessTagRationalArray(t *testing.T) {
	c := qt.New(t)

	buf := make([]byte, 16)
	binary.BigEndian.PutUint32(buf[0:], 1)
	binary.BigEndian.PutUint32(buf[4:], 2)
	binary.BigEndian.PutUint32(buf[8:], 3)
	binary.BigEndian.PutUint32(buf[12:], 4)

	r := NewByteReader(buf, true)
	dir := newDirectory(ExifIFD0)
	processTag(dir, 0x1234, 0, 2, FormatUnsignedRational, r, logEntry{})

	rats, ok := func() ([]RawRational, bool) {
		v, ok := dir.Value(0x1234)
		if !ok {
			return nil, false
		}
		return v.RationalArray()
	}()
	c.Assert(ok, qt.IsTrue)
	c.Assert(rats, qt.HasLen, 2)
	c.Assert(rats[0], qt.Equals, RawRational{Num: 1, Den: 2})
	c.Assert(rats[1], qt.Equals, RawRational{Num: 3, Den: 4})
}

func TestProcessTagDoubleArrayUsesEightByteStride(t *testing.T) {
	c := qt.New(t)

	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf[0:], math.Float64bits(1.5))
	binary.BigEndian.PutUint64(buf[8:], math.Float64bits(-2.25))

	r := NewByteReader(buf, true)
	dir := newDirectory(ExifIFD0)
	processTag(dir, 0x5678, 0, 2, FormatDouble, r, logEntry{})

	v, ok := dir.Value(0x5678)
	c.Assert(ok, qt.IsTrue)
	vals, ok := v.DoubleArray()
	c.Assert(ok, qt.IsTrue)
	c.Assert(vals, qt.DeepEquals, []float64{1.5, -2.25})
}

func TestProcessTagOutOfBoundsRecordsErrorNotPanic(t *testing.T) {
	c := qt.New(t)

	r := NewByteReader([]byte{1, 2}, true)
	dir := newDirectory(ExifIFD0)
	processTag(dir, 0x0001, 0, 1, FormatUnsignedLong, r, logEntry{})

	c.Assert(dir.Errors(), qt.HasLen, 1)
	_, ok := dir.Value(0x0001)
	c.Assert(ok, qt.IsFalse)
}
