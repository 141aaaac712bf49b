package exifwalk

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDecodeKodakFixedOffsetRecord(t *testing.T) {
	c := qt.New(t)

	buf := make([]byte, 200)
	base := 20 // dataOffset = anchor+8, arbitrary for this direct test

	copy(buf[base+0:], "DC4800\x00\x00")
	buf[base+9] = 2 // quality
	buf[base+10] = 1 // burst
	buf[base+12] = 0x02
	buf[base+13] = 0x80 // width, big-endian = 0x0280 = 640
	buf[base+14] = 0x01
	buf[base+15] = 0xE0 // height = 0x01E0 = 480
	buf[base+17] = 124 // year offset -> 1900+124 = 2024
	buf[base+32] = 0
	buf[base+33] = 0
	buf[base+34] = 0x03
	buf[base+35] = 0xE8 // exposure time = 1000
	buf[base+36] = 0xFF
	buf[base+37] = 0xFE // exposure compensation = -2 (big-endian int16)
	buf[base+107] = 0x02 // sharpness = 2

	store := NewStore()
	w := &ifdWalker{
		r:       NewByteReader(buf, true),
		store:   store,
		visited: make(visitedOffsets),
		cfg:     NewConfig(),
	}
	w.decodeKodak(base, true)

	dir := store.GetDirectory(MakerKodak)
	c.Assert(dir, qt.IsNotNil)
	c.Assert(dir.Errors(), qt.HasLen, 0)

	model, ok := dir.GetString(kodakTagModel)
	c.Assert(ok, qt.IsTrue)
	c.Assert(model, qt.Equals, "DC4800")

	quality, ok := dir.GetInteger(kodakTagQuality)
	c.Assert(ok, qt.IsTrue)
	c.Assert(quality, qt.Equals, int32(2))

	width, ok := dir.GetInteger(kodakTagWidth)
	c.Assert(ok, qt.IsTrue)
	c.Assert(width, qt.Equals, int32(640))

	sharpness, ok := dir.GetInteger(kodakTagSharpness)
	c.Assert(ok, qt.IsTrue)
	c.Assert(sharpness, qt.Equals, int32(2))
}

func TestDecodeKodakAbortsOnOutOfBoundsAndKeepsPriorFields(t *testing.T) {
	c := qt.New(t)

	buf := make([]byte, 40) // too short to reach the +107 sharpness field
	copy(buf[0:], "DC4800\x00\x00")

	store := NewStore()
	w := &ifdWalker{
		r:       NewByteReader(buf, true),
		store:   store,
		visited: make(visitedOffsets),
		cfg:     NewConfig(),
	}
	w.decodeKodak(0, true)

	dir := store.GetDirectory(MakerKodak)
	c.Assert(dir, qt.IsNotNil)
	c.Assert(dir.Errors(), qt.HasLen, 1)

	model, ok := dir.GetString(kodakTagModel)
	c.Assert(ok, qt.IsTrue)
	c.Assert(model, qt.Equals, "DC4800")
}
