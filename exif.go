package exifwalk

import "fmt"

// Well-known thumbnail tags read from the ExifThumbnail directory after the
// walk completes, to copy the encoded thumbnail bytes out of the byte
// region and into the directory's payload slot.
const (
	tagThumbnailCompression uint16 = 0x0103
	tagThumbnailOffset      uint16 = 0x0201
	tagThumbnailLength      uint16 = 0x0202
)

// minExifSegmentLength is the six-byte "Exif\0\0" preamble plus an
// eight-byte TIFF header. ExtractExifSegment rejects any byte region of this
// length or shorter.
const minExifSegmentLength = 14

// firstIFDFallbackOffset is the defensive default used when a TIFF header's
// first-IFD pointer lies outside the data region: several known producers
// emit a broken pointer here while still laying the real IFD0 out at this
// fixed offset.
const firstIFDFallbackOffset = 14

// ExtractExifSegment decodes a JPEG APP1 Exif segment: buf must begin with
// the six-byte "Exif\0\0" preamble, immediately followed by a TIFF stream.
// Decoded directories are recorded into store; structural faults are
// recorded as error strings on the nearest directory rather than returned.
func ExtractExifSegment(buf []byte, store MetadataStore, opts ...Option) {
	cfg := NewConfig(opts...)

	if len(buf) <= minExifSegmentLength {
		dir := store.GetOrCreateDirectory(ExifIFD0)
		dir.AddError("Exif segment too short")
		return
	}
	if string(buf[:6]) != "Exif\x00\x00" {
		dir := store.GetOrCreateDirectory(ExifIFD0)
		dir.AddError("Missing Exif preamble")
		return
	}

	walkTIFF(buf, 6, store, cfg)
}

// ExtractTiff decodes a bare TIFF stream, where the byte-order header
// begins at offset 0. Used for raw-format files that embed Exif-style
// metadata without a surrounding JPEG APP1 wrapper.
func ExtractTiff(buf []byte, store MetadataStore, opts ...Option) {
	cfg := NewConfig(opts...)
	walkTIFF(buf, 0, store, cfg)
}

// walkTIFF parses the TIFF header at tiffHeaderOffset and drives the
// recursive IFD walk, then extracts any thumbnail payload the walk
// produced. A panic escaping from deep within the walk (the catastrophic,
// last-resort case — an unexpected fault the reader's bounds checks did not
// anticipate) is recovered here and recorded as a single directory error
// rather than propagated to the caller.
func walkTIFF(buf []byte, tiffHeaderOffset int, store MetadataStore, cfg *Config) {
	dir := store.GetOrCreateDirectory(ExifIFD0)

	defer func() {
		if rec := recover(); rec != nil {
			dir.AddError("Exif data segment ended prematurely")
		}
	}()

	if tiffHeaderOffset+8 > len(buf) {
		dir.AddError("Exif data segment ended prematurely")
		return
	}

	r := NewByteReader(buf, false)

	switch string(buf[tiffHeaderOffset : tiffHeaderOffset+2]) {
	case "MM":
		r.SetBigEndian(true)
	case "II":
		r.SetBigEndian(false)
	default:
		dir.AddError("Unexpected byte-order marker")
		return
	}

	magic, err := r.Uint16(tiffHeaderOffset + 2)
	if err != nil {
		dir.AddError(fmt.Sprintf("Exif data segment ended prematurely: %v", err))
		return
	}
	switch magic {
	case 0x002A, 0x4F52, 0x0055:
	default:
		dir.AddError("Unexpected TIFF marker")
		return
	}

	firstIFDRel, err := r.Int32(tiffHeaderOffset + 4)
	firstIFD := tiffHeaderOffset + int(firstIFDRel)
	if err != nil || firstIFD < 0 || firstIFD >= len(buf)-1 {
		dir.AddError("First IFD offset out of range, falling back to default")
		firstIFD = firstIFDFallbackOffset
	}

	w := &ifdWalker{
		r:       r,
		store:   store,
		visited: make(visitedOffsets),
		cfg:     cfg,
	}
	w.processIFD(ExifIFD0, firstIFD, tiffHeaderOffset)

	extractThumbnail(r, store, tiffHeaderOffset)
}

// extractThumbnail copies the encoded thumbnail's raw bytes into the
// ExifThumbnail directory's payload slot, if the walk produced one with a
// compression tag and valid offset/length tags.
func extractThumbnail(r *ByteReader, store MetadataStore, tiffHeaderOffset int) {
	thumb := store.GetDirectory(ExifThumbnail)
	if thumb == nil || !thumb.ContainsTag(tagThumbnailCompression) {
		return
	}

	offsetVal, ok := thumb.GetInteger(tagThumbnailOffset)
	if !ok {
		return
	}
	lengthVal, ok := thumb.GetInteger(tagThumbnailLength)
	if !ok {
		return
	}

	data, err := r.Bytes(tiffHeaderOffset+int(offsetVal), int(lengthVal))
	if err != nil {
		thumb.AddError(fmt.Sprintf("thumbnail: %v", err))
		return
	}
	thumb.SetThumbnailData(data)
}
