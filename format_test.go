package exifwalk

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestFormatByteWidth(t *testing.T) {
	c := qt.New(t)

	c.Assert(FormatUnsignedByte.ByteWidth(), qt.Equals, uint32(1))
	c.Assert(FormatUnsignedRational.ByteWidth(), qt.Equals, uint32(8))
	c.Assert(FormatDouble.ByteWidth(), qt.Equals, uint32(8))
	c.Assert(Format(0).ByteWidth(), qt.Equals, uint32(0))
	c.Assert(Format(13).ByteWidth(), qt.Equals, uint32(0))
}

func TestFormatValid(t *testing.T) {
	c := qt.New(t)

	c.Assert(FormatUnsignedByte.Valid(), qt.IsTrue)
	c.Assert(FormatDouble.Valid(), qt.IsTrue)
	c.Assert(Format(0).Valid(), qt.IsFalse)
	c.Assert(Format(13).Valid(), qt.IsFalse)
}
