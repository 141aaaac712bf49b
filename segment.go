package exifwalk

import "bytes"

// markerSOI and markerAPP1 are the JPEG marker codes the segment scanner
// looks for: start-of-image, and the application segment Exif is carried
// in.
const (
	markerSOI  = 0xFFD8
	markerAPP1 = 0xFFE1
)

// SegmentProcessor is the collaborator interface a JPEG decoder implements
// to hand one application segment's raw bytes to a metadata extractor. It
// mirrors the shape of a per-source decoder dispatch
// (decoderEXIF/decoderIPTC selected by marker in decoderjpg.go), generalized
// to an explicit interface boundary.
type SegmentProcessor interface {
	// CanProcess reports whether this processor handles the given segment
	// type and payload.
	CanProcess(segment []byte, segmentType string) bool
	// Extract decodes segment and records whatever it finds into store.
	Extract(segment []byte, store MetadataStore, segmentType string) error
}

// ExifSegmentProcessor is the reference SegmentProcessor for "APP1" Exif
// segments: it recognizes the "Exif" preamble case-insensitively and hands
// the segment bytes to ExtractExifSegment.
type ExifSegmentProcessor struct {
	Options []Option
}

// NewExifSegmentProcessor returns a SegmentProcessor configured with the
// given walker options.
func NewExifSegmentProcessor(opts ...Option) *ExifSegmentProcessor {
	return &ExifSegmentProcessor{Options: opts}
}

func (p *ExifSegmentProcessor) CanProcess(segment []byte, segmentType string) bool {
	if segmentType != "APP1" {
		return false
	}
	if len(segment) <= 3 {
		return false
	}
	return bytes.EqualFold(segment[:4], []byte("EXIF"))
}

func (p *ExifSegmentProcessor) Extract(segment []byte, store MetadataStore, segmentType string) error {
	ExtractExifSegment(segment, store, p.Options...)
	return nil
}

// ScanJPEGSegments walks a JPEG byte stream marker by marker (mirroring the
// findMarker loop in decoderjpg.go, generalized from a single
// hard-coded EXIF/IPTC pair to an arbitrary set of SegmentProcessors) and
// hands every application segment to whichever processor claims it.
//
// It stops at the first marker that is not a valid JPEG marker (high byte
// 0xFF), or at end of input, mirroring decoderjpg.go's findMarker behavior.
func ScanJPEGSegments(buf []byte, store MetadataStore, processors ...SegmentProcessor) error {
	if len(buf) < 4 {
		return nil
	}
	pos := 0
	if be16(buf, pos) != markerSOI {
		return nil
	}
	pos += 2

	for pos+4 <= len(buf) {
		marker := be16(buf, pos)
		length := int(be16(buf, pos+2))
		if marker>>8 != 0xFF {
			return nil
		}
		if length < 2 {
			return nil
		}
		segStart := pos + 4
		segEnd := segStart + length - 2
		if segEnd > len(buf) {
			return nil
		}
		segment := buf[segStart:segEnd]

		segType := markerName(marker)
		for _, p := range processors {
			if p.CanProcess(segment, segType) {
				if err := p.Extract(segment, store, segType); err != nil {
					return err
				}
				break
			}
		}

		pos = segEnd
	}
	return nil
}

func be16(buf []byte, pos int) int {
	return int(buf[pos])<<8 | int(buf[pos+1])
}

func markerName(marker int) string {
	switch marker {
	case markerAPP1:
		return "APP1"
	default:
		return "UNKNOWN"
	}
}
