package exifwalk

// Format is the TIFF tag type code, an integer 1..12.
type Format uint16

const (
	FormatUnsignedByte     Format = 1
	FormatASCII            Format = 2
	FormatUnsignedShort    Format = 3
	FormatUnsignedLong     Format = 4
	FormatUnsignedRational Format = 5
	FormatSignedByte       Format = 6
	FormatUndefined        Format = 7
	FormatSignedShort      Format = 8
	FormatSignedLong       Format = 9
	FormatSignedRational   Format = 10
	FormatFloat            Format = 11
	FormatDouble           Format = 12
)

// formatByteWidths is indexed by Format; index 0 is the reserved/invalid
// slot and must never be dereferenced.
//
// Grounded on kuetemeier/imgindex's imgmeta package, which carries the
// identical table as aExifTagFieldSize.
var formatByteWidths = [...]uint32{0, 1, 1, 2, 4, 8, 1, 1, 2, 4, 8, 4, 8}

// Valid reports whether f is one of the 12 defined TIFF type codes.
func (f Format) Valid() bool {
	return f >= FormatUnsignedByte && f <= FormatDouble
}

// ByteWidth returns the per-component byte width of f, or 0 if f is not a
// valid format code.
func (f Format) ByteWidth() uint32 {
	if !f.Valid() {
		return 0
	}
	return formatByteWidths[f]
}

func (f Format) String() string {
	switch f {
	case FormatUnsignedByte:
		return "BYTE"
	case FormatASCII:
		return "ASCII"
	case FormatUnsignedShort:
		return "SHORT"
	case FormatUnsignedLong:
		return "LONG"
	case FormatUnsignedRational:
		return "RATIONAL"
	case FormatSignedByte:
		return "SBYTE"
	case FormatUndefined:
		return "UNDEFINED"
	case FormatSignedShort:
		return "SSHORT"
	case FormatSignedLong:
		return "SLONG"
	case FormatSignedRational:
		return "SRATIONAL"
	case FormatFloat:
		return "FLOAT"
	case FormatDouble:
		return "DOUBLE"
	default:
		return "UNKNOWN"
	}
}
