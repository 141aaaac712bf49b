package exifwalk

import (
	"errors"
	"fmt"
)

// errOutOfBounds is the sentinel every OutOfBoundsError wraps, following the
// InvalidFormatError pattern in bep/imagemeta's helpers.go: a typed error
// plus an Is method so callers can test with errors.Is without caring about
// the offending offset/width.
var errOutOfBounds = errors.New("exifwalk: read out of bounds")

// OutOfBoundsError is returned by every ByteReader typed-read method when
// the requested region does not fit within the underlying byte region.
// Geometry is the only thing that can make a read fail;
// content is never validated by the reader.
type OutOfBoundsError struct {
	Offset int
	Width  int
	Length int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("read of %d bytes at offset %d exceeds region of length %d", e.Width, e.Offset, e.Length)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == errOutOfBounds
}

// IsOutOfBounds reports whether err is (or wraps) an out-of-bounds read.
func IsOutOfBounds(err error) bool {
	return errors.Is(err, errOutOfBounds)
}
