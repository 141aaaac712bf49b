// Package tagname supplies human-readable names for the tag ids exifwalk
// records structurally. It is a presentation helper, not a dependency of
// the core decoder: tag semantics are explicitly the caller's concern, and
// the core never imports this package.
//
// Trimmed from bep/imagemeta's much larger table (metadecoder_exif_fields.go)
// to the tag ids exifwalk treats structurally plus a small common subset
// useful for dumping a directory for a human.
package tagname

import "fmt"

var names = map[uint16]string{
	0x00fe: "SubfileType",
	0x0100: "ImageWidth",
	0x0101: "ImageHeight",
	0x0102: "BitsPerSample",
	0x0103: "Compression",
	0x0106: "PhotometricInterpretation",
	0x010e: "ImageDescription",
	0x010f: "Make",
	0x0110: "Model",
	0x0111: "StripOffsets",
	0x0112: "Orientation",
	0x0115: "SamplesPerPixel",
	0x0117: "StripByteCounts",
	0x011a: "XResolution",
	0x011b: "YResolution",
	0x0128: "ResolutionUnit",
	0x0131: "Software",
	0x0132: "DateTime",
	0x013b: "Artist",
	0x0201: "JPEGInterchangeFormat",
	0x0202: "JPEGInterchangeFormatLength",
	0x829a: "ExposureTime",
	0x829d: "FNumber",
	0x8769: "ExifSubIFDPointer",
	0x8822: "ExposureProgram",
	0x8825: "GPSInfoIFDPointer",
	0x8827: "ISOSpeedRatings",
	0x9000: "ExifVersion",
	0x9003: "DateTimeOriginal",
	0x9004: "DateTimeDigitized",
	0x9201: "ShutterSpeedValue",
	0x9202: "ApertureValue",
	0x9204: "ExposureBiasValue",
	0x9207: "MeteringMode",
	0x9209: "Flash",
	0x920a: "FocalLength",
	0x927c: "MakerNote",
	0xa002: "PixelXDimension",
	0xa003: "PixelYDimension",
	0xa005: "InteropIFDPointer",
	0xa401: "CustomRendered",
	0xa402: "ExposureMode",
	0xa403: "WhiteBalance",
	0xa406: "SceneCaptureType",
}

// Name returns the human-readable name for id, or a generic
// "UnknownTag0xNNNN" placeholder if id is not in the known table.
func Name(id uint16) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("UnknownTag0x%04x", id)
}
