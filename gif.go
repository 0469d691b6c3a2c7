//
// read the header of a GIF file: signature, logical screen descriptor and
// global color table
//
// GIF spec
// https://www.w3.org/Graphics/GIF/spec-gif89a.txt
//

package gifheader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	bst "github.com/mixcode/binarystruct"
)

const (
	signature = "GIF"

	// sizes of the fixed header blocks
	headerBlockSize = 6
	screenBlockSize = 7

	// logical screen descriptor packed fields
	flagGlobalColorTable = 0x80 // bit 7
	maskColorResolution  = 0x70 // bits 4-6
	shiftColorResolution = 4
	flagSorted           = 0x08 // bit 3
	maskColorTableSize   = 0x07 // bits 0-2
)

// signature and version block
type headerBlock struct {
	Signature [3]byte // "GIF"
	Version   [3]byte // "87a" or "89a"
}

// logical screen descriptor block, little-endian
type screenBlock struct {
	Width, Height        uint16
	Flag                 byte
	BackgroundColorIndex byte // unused if the global color table flag is unset
	PixelAspectRatio     byte
}

// Parse reads the GIF header from r: the signature, the logical screen
// descriptor, and the global color table if the descriptor announces one.
// Exactly the header bytes are consumed; r is left positioned at the first
// block after the global color table.
func Parse(r io.Reader) (*GIF, error) {
	version, err := readVersion(r)
	if err != nil {
		return nil, err
	}

	lsd, err := readLogicalScreenDescriptor(r)
	if err != nil {
		return nil, err
	}

	var gct []Color
	if lsd.HasGlobalColorTable {
		gct, err = readColorTable(r, lsd.GlobalColorTableSize)
		if err != nil {
			return nil, err
		}
	}

	return &GIF{
		Version:          version,
		LSD:              lsd,
		GlobalColorTable: gct,
	}, nil
}

// ParseVersion decodes the 6-byte signature block.
func ParseVersion(b [6]byte) (Version, error) {
	var h headerBlock
	copy(h.Signature[:], b[:3])
	copy(h.Version[:], b[3:])
	return h.version()
}

// ParseLogicalScreenDescriptor decodes the 7-byte logical screen descriptor.
func ParseLogicalScreenDescriptor(b [7]byte) LogicalScreenDescriptor {
	s := screenBlock{
		Width:                uint16(b[0]) | uint16(b[1])<<8,
		Height:               uint16(b[2]) | uint16(b[3])<<8,
		Flag:                 b[4],
		BackgroundColorIndex: b[5],
		PixelAspectRatio:     b[6],
	}
	return s.descriptor()
}

// ParseColorTable splits b into RGB triplets, in order.
// The length of b must be a multiple of 3.
func ParseColorTable(b []byte) ([]Color, error) {
	if len(b)%3 != 0 {
		return nil, fmt.Errorf("%w: color table size %d is not a multiple of 3", ErrInvalidFormat, len(b))
	}
	colors := make([]Color, len(b)/3)
	for i := range colors {
		c := b[i*3 : i*3+3]
		colors[i] = Color{Red: c[0], Green: c[1], Blue: c[2]}
	}
	return colors, nil
}

func (h headerBlock) version() (Version, error) {
	if string(h.Signature[:]) != signature {
		return 0, ErrInvalidFormat
	}
	// the version is 3 ASCII chars
	for _, c := range h.Version {
		if c >= 0x80 {
			return 0, ErrInvalidFormat
		}
	}
	switch v := string(h.Version[:]); v {
	case "87a":
		return Version87a, nil
	case "89a":
		return Version89a, nil
	default:
		return 0, &UnsupportedVersionError{Version: v}
	}
}

func (s screenBlock) descriptor() LogicalScreenDescriptor {
	d := LogicalScreenDescriptor{
		Width:                     s.Width,
		Height:                    s.Height,
		HasGlobalColorTable:       s.Flag&flagGlobalColorTable != 0,
		ColorResolution:           (s.Flag&maskColorResolution)>>shiftColorResolution + 1,
		Sorted:                    s.Flag&flagSorted != 0,
		GlobalColorTableSizeField: s.Flag & maskColorTableSize,
		PixelAspectRatio:          s.PixelAspectRatio,
	}
	d.GlobalColorTableSize = colorTableSize(d.GlobalColorTableSizeField)
	if d.HasGlobalColorTable {
		idx := s.BackgroundColorIndex
		d.BackgroundColorIndex = &idx
	}
	return d
}

// colorTableSize returns the byte size of a color table for the 3-bit size
// field k: (k+1)^2 entries of 3 bytes each.
func colorTableSize(k uint8) int {
	n := int(k) + 1
	return 3 * n * n
}

// read a fixed-size block in full, then decode it into v
func readBlock(r io.Reader, section string, size int, v interface{}) (err error) {
	b := make([]byte, size)
	_, err = io.ReadFull(r, b)
	if err != nil {
		return readError(section, err)
	}
	_, err = bst.Read(bytes.NewReader(b), bst.LittleEndian, v)
	if err != nil {
		return &IOError{Section: section, Err: err}
	}
	return nil
}

func readVersion(r io.Reader) (v Version, err error) {
	var h headerBlock
	err = readBlock(r, "signature", headerBlockSize, &h)
	if err != nil {
		return
	}
	return h.version()
}

func readLogicalScreenDescriptor(r io.Reader) (d LogicalScreenDescriptor, err error) {
	var s screenBlock
	err = readBlock(r, "logical screen descriptor", screenBlockSize, &s)
	if err != nil {
		return
	}
	return s.descriptor(), nil
}

func readColorTable(r io.Reader, size int) (colors []Color, err error) {
	b := make([]byte, size)
	_, err = io.ReadFull(r, b)
	if err != nil {
		err = readError("global color table", err)
		return
	}
	return ParseColorTable(b)
}

// a header section cut short is never a clean end of stream
func readError(section string, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return &IOError{Section: section, Err: err}
}
