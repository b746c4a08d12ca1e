package ascii

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/asciicam/internal/core"
)

// Rasterizer converts images into text grids using a glyph ramp.
// The zero value is not usable; build one with NewRasterizer.
type Rasterizer struct {
	ramp Ramp
}

// NewRasterizer returns a Rasterizer using ramp.
func NewRasterizer(ramp Ramp) *Rasterizer {
	return &Rasterizer{ramp: ramp}
}

// Ramp returns the glyph ramp in use.
func (r *Rasterizer) Ramp() Ramp {
	return r.ramp
}

// Rasterize renders img as a width x height grid.
//
// The image is resampled with independent horizontal and vertical scale
// factors (nearest neighbour at cell centres, so smaller sources scale up),
// each sample is reduced to luma and mapped to a glyph.
// Non-positive sizes give an empty grid; an empty image renders the darkest glyph.
// The result depends only on (img, width, height).
func (r *Rasterizer) Rasterize(img image.Image, width, height int) *core.Screen {
	dst := core.NewScreen(width, height)
	if dst.Width() == 0 || dst.Height() == 0 {
		return dst
	}

	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW <= 0 || srcH <= 0 {
		dst.Fill(r.ramp.At(0))
		return dst
	}

	// NearestNeighbor picks the source pixel under each cell centre.
	cells := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(cells, cells.Bounds(), img, b, draw.Src, nil)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst.Set(x, y, r.ramp.Glyph(Luma(cells.RGBAAt(x, y))))
		}
	}
	return dst
}

// Text is Rasterize followed by Screen.String.
func (r *Rasterizer) Text(img image.Image, width, height int) string {
	return r.Rasterize(img, width, height).String()
}
