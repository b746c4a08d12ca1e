// Package ascii turns images into text grids whose glyph density follows
// per-pixel brightness.
package ascii

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vovakirdan/asciicam/internal/core"
)

// DefaultGlyphs is the stock ramp, darkest to lightest.
const DefaultGlyphs = "@#8&o:*. "

// Ramp is an ordered set of glyphs from darkest to lightest.
// A Ramp is immutable once built.
type Ramp struct {
	glyphs []rune
}

// DefaultRamp returns the stock 9-glyph ramp.
func DefaultRamp() Ramp {
	return Ramp{glyphs: []rune(DefaultGlyphs)}
}

// ParseRamp builds a Ramp from a string, one glyph per rune.
// At least two glyphs are required.
func ParseRamp(s string) (Ramp, error) {
	glyphs := []rune(s)
	if len(glyphs) < 2 {
		return Ramp{}, fmt.Errorf("ascii: ramp needs at least 2 glyphs, got %d", len(glyphs))
	}
	return Ramp{glyphs: glyphs}, nil
}

// Len returns the number of glyphs.
func (r Ramp) Len() int {
	return len(r.glyphs)
}

// String returns the ramp glyphs as a string.
func (r Ramp) String() string {
	return string(r.glyphs)
}

// At returns the glyph at index i, clamped to the ramp.
func (r Ramp) At(i int) rune {
	return r.glyphs[core.Clamp(i, 0, len(r.glyphs)-1)]
}

// Index maps a brightness in [0, 1] to a glyph index: floor(b * (N-1)),
// clamped so out-of-range input and b == 1.0 stay inside the ramp.
func (r Ramp) Index(brightness float64) int {
	if math.IsNaN(brightness) {
		return 0
	}
	n := len(r.glyphs)
	idx := int(math.Floor(brightness * float64(n-1)))
	return core.Clamp(idx, 0, n-1)
}

// Glyph returns the glyph for a brightness in [0, 1].
func (r Ramp) Glyph(brightness float64) rune {
	return r.glyphs[r.Index(brightness)]
}

// Luma returns the brightness of c in [0, 1] using the
// 0.299 R + 0.587 G + 0.114 B weighting.
//
// The weighted sum is taken over the 16-bit channels in integer arithmetic
// so that equal channels yield exactly v/max.
func Luma(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	sum := 299*uint64(r) + 587*uint64(g) + 114*uint64(b)
	return float64(sum) / (1000 * 0xffff)
}
