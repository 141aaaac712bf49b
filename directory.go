package exifwalk

// DirectoryKind identifies which logical Exif/TIFF directory a Directory
// represents: the five standard ones plus one per supported makernote
// vendor/type.
type DirectoryKind uint8

const (
	ExifIFD0 DirectoryKind = iota + 1
	ExifSubIFD
	ExifInterop
	Gps
	ExifThumbnail

	MakerOlympus
	MakerNikonType1
	MakerNikonType2
	MakerCanon
	MakerCasioType1
	MakerCasioType2
	MakerFujifilm
	MakerKodak
	MakerKyocera
	MakerLeica
	MakerPanasonic
	MakerPentax
	MakerSigma
	MakerSonyType1
	MakerSonyType6
)

var directoryKindNames = map[DirectoryKind]string{
	ExifIFD0:        "IFD0",
	ExifSubIFD:      "ExifSubIFD",
	ExifInterop:     "Interop",
	Gps:             "GPS",
	ExifThumbnail:   "Thumbnail",
	MakerOlympus:    "Makernote.Olympus",
	MakerNikonType1: "Makernote.NikonType1",
	MakerNikonType2: "Makernote.NikonType2",
	MakerCanon:      "Makernote.Canon",
	MakerCasioType1: "Makernote.CasioType1",
	MakerCasioType2: "Makernote.CasioType2",
	MakerFujifilm:   "Makernote.Fujifilm",
	MakerKodak:      "Makernote.Kodak",
	MakerKyocera:    "Makernote.Kyocera",
	MakerLeica:      "Makernote.Leica",
	MakerPanasonic:  "Makernote.Panasonic",
	MakerPentax:     "Makernote.Pentax",
	MakerSigma:      "Makernote.Sigma",
	MakerSonyType1:  "Makernote.SonyType1",
	MakerSonyType6:  "Makernote.SonyType6",
}

func (k DirectoryKind) String() string {
	if name, ok := directoryKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Directory is a single logical IFD's decoded contents: a tag-id-keyed map
// of typed values, an ordered list of error strings accumulated during the
// walk, and (for ExifThumbnail only) the extracted thumbnail payload.
//
// This is the concrete stand-in for the "metadata store" collaborator
// described by interface; MetadataStore (store.go) is the interface
// boundary a caller could replace with a different storage backing.
type Directory struct {
	Kind DirectoryKind

	values map[uint16]Value
	errors []string

	thumbnail []byte
}

func newDirectory(kind DirectoryKind) *Directory {
	return &Directory{Kind: kind, values: make(map[uint16]Value)}
}

// AddError appends a non-fatal structural-fault message.
func (d *Directory) AddError(message string) {
	d.errors = append(d.errors, message)
}

// Errors returns the ordered list of error strings recorded for this
// directory. The slice is owned by the Directory; callers must not mutate
// it.
func (d *Directory) Errors() []string { return d.errors }

// ContainsTag reports whether tagID has a stored value.
func (d *Directory) ContainsTag(tagID uint16) bool {
	_, ok := d.values[tagID]
	return ok
}

// Value returns the raw stored Value for tagID.
func (d *Directory) Value(tagID uint16) (Value, bool) {
	v, ok := d.values[tagID]
	return v, ok
}

// Tags returns the set of tag ids with stored values, in no particular
// order.
func (d *Directory) Tags() []uint16 {
	tags := make([]uint16, 0, len(d.values))
	for t := range d.values {
		tags = append(tags, t)
	}
	return tags
}

// GetString returns the scalar string value for tagID, if one is stored.
func (d *Directory) GetString(tagID uint16) (string, bool) {
	v, ok := d.values[tagID]
	if !ok {
		return "", false
	}
	return v.String()
}

// GetInteger returns the scalar int value for tagID, if one is stored.
func (d *Directory) GetInteger(tagID uint16) (int32, bool) {
	v, ok := d.values[tagID]
	if !ok {
		return 0, false
	}
	return v.Int()
}

func (d *Directory) SetInt(tagID uint16, v int32) { d.values[tagID] = NewIntValue(v) }
func (d *Directory) SetIntArray(tagID uint16, v []int32) { d.values[tagID] = NewIntArrayValue(v) }
func (d *Directory) SetLong(tagID uint16, v int64) { d.values[tagID] = NewLongValue(v) }
func (d *Directory) SetRational(tagID uint16, v RawRational) { d.values[tagID] = NewRationalValue(v) }
func (d *Directory) SetRationalArray(tagID uint16, v []RawRational) {
	d.values[tagID] = NewRationalArrayValue(v)
}
func (d *Directory) SetFloat(tagID uint16, v float32) { d.values[tagID] = NewFloatValue(v) }
func (d *Directory) SetFloatArray(tagID uint16, v []float32) { d.values[tagID] = NewFloatArrayValue(v) }
func (d *Directory) SetDouble(tagID uint16, v float64) { d.values[tagID] = NewDoubleValue(v) }
func (d *Directory) SetDoubleArray(tagID uint16, v []float64) {
	d.values[tagID] = NewDoubleArrayValue(v)
}
func (d *Directory) SetString(tagID uint16, v string) { d.values[tagID] = NewStringValue(v) }
func (d *Directory) SetByteArray(tagID uint16, v []byte) { d.values[tagID] = NewBytesValue(v) }

// SetThumbnailData stores the raw extracted thumbnail bytes. Only
// meaningful on an ExifThumbnail directory.
func (d *Directory) SetThumbnailData(b []byte) { d.thumbnail = b }

// ThumbnailData returns the bytes set by SetThumbnailData, if any.
func (d *Directory) ThumbnailData() []byte { return d.thumbnail }
