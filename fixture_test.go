package exifwalk

import "encoding/binary"

// tiffBuilder assembles a minimal, valid TIFF byte region (header plus one
// or more IFDs) for tests, following bep/imagemeta's style of small
// hand-rolled test helpers (helpers_test.go) adapted to this package's
// byte-region-first design instead of an io.Reader stream.
type tiffBuilder struct {
	buf       []byte
	bigEndian bool
}

func newTIFFBuilder(bigEndian bool) *tiffBuilder {
	b := &tiffBuilder{bigEndian: bigEndian}
	if bigEndian {
		b.buf = append(b.buf, 'M', 'M')
	} else {
		b.buf = append(b.buf, 'I', 'I')
	}
	b.putUint16(0x002A)
	b.putUint32(8) // first IFD at offset 8
	return b
}

func (b *tiffBuilder) order() binary.ByteOrder {
	if b.bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (b *tiffBuilder) putUint16(v uint16) {
	tmp := make([]byte, 2)
	b.order().PutUint16(tmp, v)
	b.buf = append(b.buf, tmp...)
}

func (b *tiffBuilder) putUint32(v uint32) {
	tmp := make([]byte, 4)
	b.order().PutUint32(tmp, v)
	b.buf = append(b.buf, tmp...)
}

func (b *tiffBuilder) putInt32(v int32) { b.putUint32(uint32(v)) }

func (b *tiffBuilder) putBytes(bs []byte) { b.buf = append(b.buf, bs...) }

func (b *tiffBuilder) pad(n int) {
	for i := 0; i < n; i++ {
		b.buf = append(b.buf, 0)
	}
}

func (b *tiffBuilder) len() int { return len(b.buf) }

// ifdEntry is one 12-byte IFD entry to be appended by writeIFD.
type ifdEntry struct {
	tag       uint16
	format    Format
	count     int32
	inlineU32 uint32 // used when the value fits inline (byteCount<=4)
	inlineSet bool
}

// writeIFD appends a tag-count, the given entries (assumed to all fit
// inline, byteCount<=4), and a next-IFD pointer. It returns the offset the
// IFD was written at.
func (b *tiffBuilder) writeIFD(entries []ifdEntry, nextIFD uint32) int {
	offset := b.len()
	b.putUint16(uint16(len(entries)))
	for _, e := range entries {
		b.putUint16(e.tag)
		b.putUint16(uint16(e.format))
		b.putInt32(e.count)
		b.putUint32(e.inlineU32)
	}
	b.putUint32(nextIFD)
	return offset
}

func entry(tag uint16, format Format, count int32, inline uint32) ifdEntry {
	return ifdEntry{tag: tag, format: format, count: count, inlineU32: inline, inlineSet: true}
}

// exifSegment wraps a TIFF byte region with the "Exif\0\0" APP1 preamble.
func exifSegment(tiff []byte) []byte {
	out := append([]byte("Exif\x00\x00"), tiff...)
	return out
}
