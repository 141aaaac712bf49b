package exifwalk

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestExifSegmentProcessorCanProcess(t *testing.T) {
	c := qt.New(t)

	p := NewExifSegmentProcessor()
	c.Assert(p.CanProcess([]byte("Exif\x00\x00"), "APP1"), qt.IsTrue)
	c.Assert(p.CanProcess([]byte("EXIF\x00\x00"), "APP1"), qt.IsTrue)
	c.Assert(p.CanProcess([]byte("Exif\x00\x00"), "APP13"), qt.IsFalse)
	c.Assert(p.CanProcess([]byte("XX"), "APP1"), qt.IsFalse)
}

func TestScanJPEGSegmentsFindsAPP1(t *testing.T) {
	c := qt.New(t)

	b := newTIFFBuilder(true)
	b.writeIFD([]ifdEntry{
		entry(0x0100, FormatUnsignedLong, 1, 100),
	}, 0)
	exifPayload := exifSegment(b.buf)

	jpeg := buildJPEGWithAPP1(exifPayload)

	store := NewStore()
	err := ScanJPEGSegments(jpeg, store, NewExifSegmentProcessor())
	c.Assert(err, qt.IsNil)

	dir := store.GetDirectory(ExifIFD0)
	c.Assert(dir, qt.IsNotNil)
	width, ok := dir.GetInteger(0x0100)
	c.Assert(ok, qt.IsTrue)
	c.Assert(width, qt.Equals, int32(100))
}

// buildJPEGWithAPP1 wraps payload in a minimal JPEG SOI + APP1 segment.
func buildJPEGWithAPP1(payload []byte) []byte {
	var buf []byte
	buf = append(buf, 0xFF, 0xD8) // SOI
	length := len(payload) + 2
	buf = append(buf, 0xFF, 0xE1, byte(length>>8), byte(length))
	buf = append(buf, payload...)
	return buf
}
