package exifwalk

import "fmt"

// Kodak maker notes use no sub-IFD structure at all: a flat, fixed-offset
// record. Tag numbers below are synthetic, chosen to ascend with the
// record's byte offset, so sorting them gives record order
// (Directory.Tags() itself returns them in no particular order); they carry
// no meaning outside this decoder.
//
// Grounded on the constant-offset record layouts described for Kodak
// cameras by garyhouston/tiff66's makernotes.go and the general
// fixed-record style of jrm-1535/exif's canon.go.
const (
	kodakTagModel              uint16 = 1
	kodakTagQuality            uint16 = 2
	kodakTagBurstMode          uint16 = 3
	kodakTagWidth              uint16 = 4
	kodakTagHeight             uint16 = 5
	kodakTagYearCreated        uint16 = 6
	kodakTagExposureTime       uint16 = 7
	kodakTagExposureCompensate uint16 = 8
	kodakTagSharpness          uint16 = 9
)

// decodeKodak reads the fixed-offset Kodak makernote record starting at
// base, honoring the forced endianness the signature check selected. Any
// out-of-bounds read aborts the whole record with a single recorded error;
// fields already set before the fault stay set.
func (w *ifdWalker) decodeKodak(base int, bigEndian bool) {
	dir := w.store.GetOrCreateDirectory(MakerKodak)

	saved := w.r.BigEndian()
	w.r.SetBigEndian(bigEndian)
	defer w.r.SetBigEndian(saved)

	r := w.r

	if model, err := r.NULTerminatedString(base+0, 8); err != nil {
		dir.AddError(fmt.Sprintf("Kodak makernote: %v", err))
		return
	} else {
		dir.SetString(kodakTagModel, model)
	}

	if v, err := r.Uint8(base + 9); err != nil {
		dir.AddError(fmt.Sprintf("Kodak makernote: %v", err))
		return
	} else {
		dir.SetInt(kodakTagQuality, int32(v))
	}

	if v, err := r.Uint8(base + 10); err != nil {
		dir.AddError(fmt.Sprintf("Kodak makernote: %v", err))
		return
	} else {
		dir.SetInt(kodakTagBurstMode, int32(v))
	}

	if v, err := r.Uint16(base + 12); err != nil {
		dir.AddError(fmt.Sprintf("Kodak makernote: %v", err))
		return
	} else {
		dir.SetInt(kodakTagWidth, int32(v))
	}

	if v, err := r.Uint16(base + 14); err != nil {
		dir.AddError(fmt.Sprintf("Kodak makernote: %v", err))
		return
	} else {
		dir.SetInt(kodakTagHeight, int32(v))
	}

	if v, err := r.Uint8(base + 17); err != nil {
		dir.AddError(fmt.Sprintf("Kodak makernote: %v", err))
		return
	} else {
		dir.SetInt(kodakTagYearCreated, int32(v)+1900)
	}

	if v, err := r.Uint32(base + 32); err != nil {
		dir.AddError(fmt.Sprintf("Kodak makernote: %v", err))
		return
	} else {
		dir.SetLong(kodakTagExposureTime, int64(v))
	}

	if v, err := r.Int16(base + 36); err != nil {
		dir.AddError(fmt.Sprintf("Kodak makernote: %v", err))
		return
	} else {
		dir.SetInt(kodakTagExposureCompensate, int32(v))
	}

	if v, err := r.Int8(base + 107); err != nil {
		dir.AddError(fmt.Sprintf("Kodak makernote: %v", err))
		return
	} else {
		dir.SetInt(kodakTagSharpness, int32(v))
	}

	w.cfg.logEntry().debugf("Kodak makernote decoded at base %d (big-endian=%v)", base, bigEndian)
}
