package exifwalk

import "strings"

// dispatchMakernote pattern-matches the maker note framing against a
// leading byte signature and/or the camera Make tag, then re-enters the
// IFD walker (or, for Kodak, the fixed-offset record reader) with the
// vendor's offset base, header skip, optional endianness override, and
// target directory kind.
//
// Grounded on the dispatch-by-signature shape of garyhouston/tiff66's
// makernotes.go (identifyMakerNote) and the per-vendor offset arithmetic of
// jrm-1535/exif's nikon.go and apple.go, generalized to the full vendor
// table.
func (w *ifdWalker) dispatchMakernote(anchor, tiffHeaderOffset int) {
	ifd0 := w.store.GetDirectory(ExifIFD0)
	if ifd0 == nil {
		return
	}
	cameraMake, _ := ifd0.GetString(tagMake)

	savedEndian := w.r.BigEndian()
	defer w.r.SetBigEndian(savedEndian)

	r := w.r

	switch {
	case r.HasBytesAt(anchor, []byte("OLYMP")), r.HasBytesAt(anchor, []byte("EPSON")), r.HasBytesAt(anchor, []byte("AGFA")):
		w.enterMakernote(MakerOlympus, anchor+8, tiffHeaderOffset)

	case r.HasBytesAt(anchor, []byte("Nikon")) && strings.HasPrefix(cameraMake, "NIKON") && nikonTypeByte(r, anchor) == 1:
		w.enterMakernote(MakerNikonType1, anchor+8, tiffHeaderOffset)

	case r.HasBytesAt(anchor, []byte("Nikon")) && strings.HasPrefix(cameraMake, "NIKON") && nikonTypeByte(r, anchor) == 2:
		w.enterMakernote(MakerNikonType2, anchor+18, anchor+10)

	case strings.HasPrefix(cameraMake, "NIKON") && !r.HasBytesAt(anchor, []byte("Nikon")):
		w.enterMakernote(MakerNikonType2, anchor, tiffHeaderOffset)

	case r.HasBytesAt(anchor, []byte("SONY CAM")), r.HasBytesAt(anchor, []byte("SONY DSC")):
		w.enterMakernote(MakerSonyType1, anchor+12, tiffHeaderOffset)

	case r.HasBytesAt(anchor, []byte("SEMC MS\x00\x00\x00\x00\x00")):
		w.r.SetBigEndian(true)
		w.enterMakernote(MakerSonyType6, anchor+20, tiffHeaderOffset)

	case r.HasBytesAt(anchor, []byte("SIGMA\x00\x00\x00")), r.HasBytesAt(anchor, []byte("FOVEON\x00\x00")):
		w.enterMakernote(MakerSigma, anchor+10, tiffHeaderOffset)

	case r.HasBytesAt(anchor, []byte("KDK")):
		bigEndian := r.HasBytesAt(anchor, []byte("KDK INFO"[:7]))
		w.decodeKodak(anchor+8, bigEndian)

	case strings.EqualFold(cameraMake, "Canon"):
		w.enterMakernote(MakerCanon, anchor, tiffHeaderOffset)

	case strings.HasPrefix(cameraMake, "CASIO") && r.HasBytesAt(anchor, []byte("QVC\x00\x00\x00")):
		w.enterMakernote(MakerCasioType2, anchor+6, tiffHeaderOffset)

	case strings.HasPrefix(cameraMake, "CASIO"):
		w.enterMakernote(MakerCasioType1, anchor, tiffHeaderOffset)

	case r.HasBytesAt(anchor, []byte("FUJIFILM")), strings.EqualFold(cameraMake, "Fujifilm"):
		w.r.SetBigEndian(false) // the whole Fujifilm block, including this offset, is little-endian.
		rel, err := r.Int32(anchor + 8)
		if err != nil {
			return
		}
		w.enterMakernote(MakerFujifilm, anchor+int(rel), anchor)

	case strings.HasPrefix(cameraMake, "MINOLTA"):
		w.enterMakernote(MakerOlympus, anchor, tiffHeaderOffset)

	case r.HasBytesAt(anchor, []byte("KYOCERA")):
		w.enterMakernote(MakerKyocera, anchor+22, tiffHeaderOffset)

	case r.HasBytesAt(anchor, []byte("LEICA")) && cameraMake == "Leica Camera AG":
		w.r.SetBigEndian(false)
		w.enterMakernote(MakerLeica, anchor+8, tiffHeaderOffset)

	case r.HasBytesAt(anchor, []byte("LEICA")) && cameraMake == "LEICA":
		w.r.SetBigEndian(false)
		w.enterMakernote(MakerPanasonic, anchor+8, tiffHeaderOffset)

	case r.HasBytesAt(anchor, []byte("Panasonic\x00\x00\x00")):
		w.enterMakernote(MakerPanasonic, anchor+12, tiffHeaderOffset)

	case r.HasBytesAt(anchor, []byte("AOC\x00")):
		w.enterMakernote(MakerCasioType2, anchor+6, anchor)

	case strings.HasPrefix(cameraMake, "PENTAX"), strings.HasPrefix(cameraMake, "ASAHI"):
		w.enterMakernote(MakerPentax, anchor, anchor)

	default:
		// Unsupported makernote vendor: silently ignored.
		if w.cfg.strict {
			w.cfg.logEntry().warnf("makernote: no vendor matched at offset %d (Make=%q)", anchor, cameraMake)
		}
	}
}

func nikonTypeByte(r *ByteReader, anchor int) int {
	v, err := r.Uint8(anchor + 6)
	if err != nil {
		return -1
	}
	return int(v)
}

// enterMakernote re-enters the IFD walker for a vendor's makernote IFD,
// logging the dispatch decision.
func (w *ifdWalker) enterMakernote(kind DirectoryKind, subOffset, base int) {
	w.cfg.logEntry().debugf("makernote dispatched to %s at offset %d (base %d)", kind, subOffset, base)
	w.processIFD(kind, subOffset, base)
}
