package core

import "fmt"

// Resolution is the size of a rendered text grid, in characters.
type Resolution struct {
	Width  int // Columns per row
	Height int // Rows per frame
}

// String formats the resolution as WxH.
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Bounds holds the inclusive limits every committed Resolution must respect.
type Bounds struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// DefaultResolution returns the resolution used before any control message arrives.
func DefaultResolution() Resolution {
	return Resolution{Width: 80, Height: 40}
}

// DefaultBounds returns the stock clamp limits (width 20-160, height 10-80).
func DefaultBounds() Bounds {
	return Bounds{
		MinWidth:  20,
		MaxWidth:  160,
		MinHeight: 10,
		MaxHeight: 80,
	}
}

// Clamp restricts width and height independently to the bounds.
func (b Bounds) Clamp(width, height int) Resolution {
	return Resolution{
		Width:  Clamp(width, b.MinWidth, b.MaxWidth),
		Height: Clamp(height, b.MinHeight, b.MaxHeight),
	}
}

// Valid reports whether the bounds describe a non-empty positive range.
func (b Bounds) Valid() bool {
	return b.MinWidth > 0 && b.MinHeight > 0 &&
		b.MinWidth <= b.MaxWidth && b.MinHeight <= b.MaxHeight
}
