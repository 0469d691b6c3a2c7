package gifheader

import (
	"fmt"
	"image/color"
)

// Version is a supported GIF format version.
type Version int

const (
	Version87a Version = iota // "87a"
	Version89a                // "89a"
)

func (v Version) String() string {
	switch v {
	case Version87a:
		return "87a"
	case Version89a:
		return "89a"
	}
	return fmt.Sprintf("Version(%d)", int(v))
}

// MarshalText encodes the version as its 3-char trailer text.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Color is a single RGB entry of a color table.
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// Hex returns the color packed into 24 bits as 0xRRGGBB.
func (c Color) Hex() uint32 {
	return uint32(c.Red)<<16 | uint32(c.Green)<<8 | uint32(c.Blue)
}

func (c Color) String() string {
	return fmt.Sprintf("Color { %06X }", c.Hex())
}

// RGBA implements image/color.Color. GIF colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.Red, c.Green, c.Blue, 0xff}.RGBA()
}

/*
Packed fields of the Logical Screen Descriptor {
	0-2:	GlobalColorTableSize
	  3:	SortFlag
	4-6:	ColorResolution
	  7:	GlobalColorTableFlag
}
*/

// LogicalScreenDescriptor is the 7-byte block following the signature.
type LogicalScreenDescriptor struct {
	Width  uint16
	Height uint16

	HasGlobalColorTable bool
	ColorResolution     uint8 // bits per primary color, 1..8
	Sorted              bool  // global color table is sorted by importance

	// raw 3-bit size field of the global color table
	GlobalColorTableSizeField uint8
	// size of the global color table in bytes
	GlobalColorTableSize int

	// nil unless HasGlobalColorTable is set
	BackgroundColorIndex *uint8

	PixelAspectRatio uint8
}

// GlobalColorTableLen returns the number of entries in the global color
// table, or 0 when the table is absent.
func (d LogicalScreenDescriptor) GlobalColorTableLen() int {
	if !d.HasGlobalColorTable {
		return 0
	}
	return d.GlobalColorTableSize / 3
}

// AspectRatio returns the pixel aspect ratio (width / height) encoded in the
// descriptor. ok is false when no aspect ratio information is given.
func (d LogicalScreenDescriptor) AspectRatio() (ratio float64, ok bool) {
	if d.PixelAspectRatio == 0 {
		return 0, false
	}
	return (float64(d.PixelAspectRatio) + 15) / 64, true
}

// GIF is the parsed header of a GIF file.
type GIF struct {
	Version Version
	LSD     LogicalScreenDescriptor

	// nil unless LSD.HasGlobalColorTable is set
	GlobalColorTable []Color
}

// Palette returns the global color table as an image/color palette.
// Indices are preserved, so image data indices can be looked up directly.
func (g *GIF) Palette() color.Palette {
	if g.GlobalColorTable == nil {
		return nil
	}
	p := make(color.Palette, len(g.GlobalColorTable))
	for i, c := range g.GlobalColorTable {
		p[i] = c
	}
	return p
}
