package exifwalk

import "fmt"

// Well-known tag ids the core must recognize structurally.
const (
	tagExifSubIFDPointer = 0x8769
	tagInteropPointer    = 0xA005
	tagGPSPointer        = 0x8825
	tagMakernote         = 0x927C
	tagMake              = 0x010F
)

const ifdEntrySize = 12

// visitedOffsets tracks IFD offsets already entered in this parse, purely
// to prevent cycles. Keyed by offset only: if the same offset
// is legitimately entered with a different tiffHeaderOffset base (possible
// inside nested makernotes), the second entry is suppressed. This is a
// known source of false-positive cycle detection rather than a clear
// defect, and is preserved as observed in the wild.
type visitedOffsets map[int]struct{}

func (v visitedOffsets) seen(offset int) bool {
	_, ok := v[offset]
	return ok
}

func (v visitedOffsets) mark(offset int) {
	v[offset] = struct{}{}
}

// ifdWalker carries the state shared across one processIFD recursion tree:
// the reader, the store, the visited-offset set, the logger, and a
// recursion-depth counter backed by Config.maxRecursionDepth.
type ifdWalker struct {
	r       *ByteReader
	store   MetadataStore
	visited visitedOffsets
	cfg     *Config
	depth   int
}

// processIFD is the recursive TIFF directory walker. kind
// selects which logical directory entries in this IFD (other than the
// known sub-IFD/makernote pointers) are stored into; offset is the IFD's
// absolute position; tiffHeaderOffset is the base every intra-IFD pointer
// is relative to.
func (w *ifdWalker) processIFD(kind DirectoryKind, offset, tiffHeaderOffset int) {
	dir := w.store.GetOrCreateDirectory(kind)

	if w.visited.seen(offset) {
		if w.cfg.strict {
			w.cfg.logEntry().warnf("IFD %s at offset %d already visited: cycle suppressed", kind, offset)
		}
		return
	}
	w.visited.mark(offset)

	if w.depth >= w.cfg.maxRecursionDepth {
		dir.AddError("Ignored IFD: maximum recursion depth exceeded")
		return
	}
	w.depth++
	defer func() { w.depth-- }()

	if offset < 0 || offset >= w.r.Len() {
		dir.AddError("Ignored IFD marked to start outside data segment")
		return
	}

	tagCount, err := w.r.Uint16(offset)
	if err != nil {
		dir.AddError(fmt.Sprintf("Ignored IFD marked to start outside data segment: %v", err))
		return
	}

	dirLength := 2 + ifdEntrySize*int(tagCount) + 4
	if offset+dirLength > w.r.Len() {
		dir.AddError("Illegally sized IFD")
		return
	}

	w.cfg.logEntry().debugf("IFD %s at offset %d: %d entries", kind, offset, tagCount)

	for i := 0; i < int(tagCount); i++ {
		if w.processEntry(dir, kind, offset, tiffHeaderOffset, i) {
			break
		}
	}

	nextOffsetPos := offset + 2 + ifdEntrySize*int(tagCount)
	nextRel, err := w.r.Int32(nextOffsetPos)
	if err != nil || nextRel == 0 {
		return
	}

	next := tiffHeaderOffset + int(nextRel)
	if next >= w.r.Len() || next < offset {
		return
	}

	w.processIFD(ExifThumbnail, next, tiffHeaderOffset)
}

// processEntry handles a single 12-byte IFD entry. It returns having either
// continued (recorded an error and moved on), returned from the whole IFD
// (format-code faults — subsequent bytes are presumed misaligned), or
// dispatched into a sub-IFD, the makernote dispatcher, or processTag.
// abortIFD is true only in the format-code case, telling processIFD to
// skip the remaining entries.
func (w *ifdWalker) processEntry(dir *Directory, kind DirectoryKind, ifdOffset, tiffHeaderOffset, index int) (abortIFD bool) {
	entryOffset := ifdOffset + 2 + ifdEntrySize*index

	tagType, err := w.r.Uint16(entryOffset)
	if err != nil {
		dir.AddError(fmt.Sprintf("Illegal TIFF tag entry: %v", err))
		return
	}

	formatRaw, err := w.r.Uint16(entryOffset + 2)
	if err != nil {
		dir.AddError(fmt.Sprintf("Illegal TIFF tag entry: %v", err))
		return
	}
	formatCode := Format(formatRaw)
	if formatCode < FormatUnsignedByte || formatCode > FormatDouble {
		dir.AddError(fmt.Sprintf("Invalid TIFF tag format code: %d", formatRaw))
		return true // abort the whole IFD: subsequent bytes are presumed misaligned.
	}

	componentCount, err := w.r.Int32(entryOffset + 4)
	if err != nil {
		dir.AddError(fmt.Sprintf("Illegal TIFF tag entry: %v", err))
		return
	}
	if componentCount < 0 {
		dir.AddError("Negative TIFF tag component count")
		return
	}

	byteCount := int(componentCount) * int(formatCode.ByteWidth())

	var valueOffset int
	if byteCount > 4 {
		rawOffset, err := w.r.Int32(entryOffset + 8)
		if err != nil {
			dir.AddError(fmt.Sprintf("Illegal TIFF tag pointer offset: %v", err))
			return
		}
		if int(rawOffset)+byteCount > w.r.Len() {
			dir.AddError("Illegal TIFF tag pointer offset")
			return
		}
		valueOffset = tiffHeaderOffset + int(rawOffset)
	} else {
		valueOffset = entryOffset + 8
	}

	if valueOffset < 0 || valueOffset > w.r.Len() {
		dir.AddError("Illegal TIFF tag pointer offset")
		return
	}
	if byteCount < 0 || valueOffset+byteCount > w.r.Len() {
		dir.AddError("Illegal number of bytes for TIFF tag data")
		return
	}

	switch tagType {
	case tagExifSubIFDPointer:
		sub := tiffHeaderOffset + mustOffset(w.r, valueOffset)
		w.processIFD(ExifSubIFD, sub, tiffHeaderOffset)
	case tagInteropPointer:
		sub := tiffHeaderOffset + mustOffset(w.r, valueOffset)
		w.processIFD(ExifInterop, sub, tiffHeaderOffset)
	case tagGPSPointer:
		sub := tiffHeaderOffset + mustOffset(w.r, valueOffset)
		w.processIFD(Gps, sub, tiffHeaderOffset)
	case tagMakernote:
		w.dispatchMakernote(valueOffset, tiffHeaderOffset)
	default:
		processTag(dir, tagType, valueOffset, componentCount, formatCode, w.r, w.cfg.logEntry())
	}
	return false
}

// mustOffset reads the sub-IFD pointer value at valueOffset. The geometry
// of valueOffset itself was already validated by processEntry; a failure
// here can only mean the 4-byte pointer value straddles the end of the
// region in a way the byteCount<=4 inline path didn't anticipate, so it is
// treated as a relative pointer of 0 (the caller then enters an IFD at
// tiffHeaderOffset itself) rather than propagated.
func mustOffset(r *ByteReader, valueOffset int) int {
	v, err := r.Int32(valueOffset)
	if err != nil {
		return 0
	}
	return int(v)
}
