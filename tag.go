package exifwalk

import "fmt"

// processTag decodes a single IFD entry's value and stores it into dir,
// dispatching on the TIFF format code. valueOffset, componentCount and
// formatCode have already been validated for basic geometry by the caller
// (processIFD); any out-of-bounds read that still occurs here aborts only
// this tag: an error string is appended to dir and the entry is skipped,
// never the whole directory.
func processTag(dir *Directory, tagID uint16, valueOffset int, componentCount int32, formatCode Format, r *ByteReader, log logEntry) {
	if !formatCode.Valid() {
		dir.AddError(fmt.Sprintf("Unknown format code: %d", formatCode))
		return
	}

	count := int(componentCount)
	log.debugf("tag 0x%04x: format=%s count=%d offset=%d", tagID, formatCode, count, valueOffset)

	switch formatCode {
	case FormatUndefined:
		b, err := r.Bytes(valueOffset, count)
		if err != nil {
			dir.AddError(fmt.Sprintf("tag 0x%04x: %v", tagID, err))
			return
		}
		dir.SetByteArray(tagID, b)

	case FormatASCII:
		s, err := r.NULTerminatedString(valueOffset, count)
		if err != nil {
			dir.AddError(fmt.Sprintf("tag 0x%04x: %v", tagID, err))
			return
		}
		dir.SetString(tagID, s)

	case FormatUnsignedByte, FormatSignedByte:
		processIntegral(dir, tagID, valueOffset, count, 1, r, func(off int) (int32, error) {
			if formatCode == FormatSignedByte {
				v, err := r.Int8(off)
				return int32(v), err
			}
			v, err := r.Uint8(off)
			return int32(v), err
		})

	case FormatUnsignedShort, FormatSignedShort:
		processIntegral(dir, tagID, valueOffset, count, 2, r, func(off int) (int32, error) {
			if formatCode == FormatSignedShort {
				v, err := r.Int16(off)
				return int32(v), err
			}
			v, err := r.Uint16(off)
			return int32(v), err
		})

	case FormatUnsignedLong, FormatSignedLong:
		processIntegral(dir, tagID, valueOffset, count, 4, r, func(off int) (int32, error) {
			if formatCode == FormatSignedLong {
				return r.Int32(off)
			}
			v, err := r.Uint32(off)
			return int32(v), err
		})

	case FormatUnsignedRational, FormatSignedRational:
		processRational(dir, tagID, valueOffset, count, formatCode == FormatSignedRational, r)

	case FormatFloat:
		processFloat(dir, tagID, valueOffset, count, r)

	case FormatDouble:
		processDouble(dir, tagID, valueOffset, count, r)
	}
}

// processIntegral reads count values of stride bytes each via read, widening
// every integral format (including 32-bit) into a signed 32-bit slot.
func processIntegral(dir *Directory, tagID uint16, offset, count, stride int, r *ByteReader, read func(int) (int32, error)) {
	if count == 1 {
		v, err := read(offset)
		if err != nil {
			dir.AddError(fmt.Sprintf("tag 0x%04x: %v", tagID, err))
			return
		}
		dir.SetInt(tagID, v)
		return
	}

	vals := make([]int32, 0, count)
	for i := 0; i < count; i++ {
		v, err := read(offset + i*stride)
		if err != nil {
			dir.AddError(fmt.Sprintf("tag 0x%04x: %v", tagID, err))
			return
		}
		vals = append(vals, v)
	}
	dir.SetIntArray(tagID, vals)
}

func processRational(dir *Directory, tagID uint16, offset, count int, signed bool, r *ByteReader) {
	readOne := func(off int) (RawRational, error) {
		n, err := r.Int32(off)
		if err != nil {
			return RawRational{}, err
		}
		d, err := r.Int32(off + 4)
		if err != nil {
			return RawRational{}, err
		}
		return RawRational{Num: int64(n), Den: int64(d), Signed: signed}, nil
	}

	if count == 1 {
		v, err := readOne(offset)
		if err != nil {
			dir.AddError(fmt.Sprintf("tag 0x%04x: %v", tagID, err))
			return
		}
		dir.SetRational(tagID, v)
		return
	}

	vals := make([]RawRational, 0, count)
	for i := 0; i < count; i++ {
		v, err := readOne(offset + i*8)
		if err != nil {
			dir.AddError(fmt.Sprintf("tag 0x%04x: %v", tagID, err))
			return
		}
		vals = append(vals, v)
	}
	dir.SetRationalArray(tagID, vals)
}

func processFloat(dir *Directory, tagID uint16, offset, count int, r *ByteReader) {
	if count == 1 {
		v, err := r.Float32(offset)
		if err != nil {
			dir.AddError(fmt.Sprintf("tag 0x%04x: %v", tagID, err))
			return
		}
		dir.SetFloat(tagID, v)
		return
	}
	vals := make([]float32, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Float32(offset + i*4)
		if err != nil {
			dir.AddError(fmt.Sprintf("tag 0x%04x: %v", tagID, err))
			return
		}
		vals = append(vals, v)
	}
	dir.SetFloatArray(tagID, vals)
}

// processDouble reads DOUBLE values with an 8-byte stride. Some decoders in
// the wild have been seen walking DOUBLE arrays with a 4-byte stride, which
// desynchronizes every component after the first; this implementation uses
// the correct 8-byte stride throughout (see DESIGN.md).
func processDouble(dir *Directory, tagID uint16, offset, count int, r *ByteReader) {
	if count == 1 {
		v, err := r.Float64(offset)
		if err != nil {
			dir.AddError(fmt.Sprintf("tag 0x%04x: %v", tagID, err))
			return
		}
		dir.SetDouble(tagID, v)
		return
	}
	vals := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Float64(offset + i*8)
		if err != nil {
			dir.AddError(fmt.Sprintf("tag 0x%04x: %v", tagID, err))
			return
		}
		vals = append(vals, v)
	}
	dir.SetDoubleArray(tagID, vals)
}
