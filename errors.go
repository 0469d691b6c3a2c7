package gifheader

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is returned when the data is not a GIF header, or when a
// color table is malformed.
var ErrInvalidFormat = errors.New("gif: invalid GIF header")

// UnsupportedVersionError is returned for a valid "GIF" signature followed
// by a version other than 87a or 89a.
type UnsupportedVersionError struct {
	Version string // the offending version text
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("gif: unsupported version %q", e.Version)
}

// IOError reports a failed or short read of a header section.
type IOError struct {
	Section string // "signature", "logical screen descriptor" or "global color table"
	Err     error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("gif: reading %s: %v", e.Section, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
