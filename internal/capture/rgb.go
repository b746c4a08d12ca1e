package capture

import (
	"image"
	"image/color"
)

// RGBImage is a packed 8-bit RGB frame, three bytes per pixel with no
// padding, as produced by GStreamer "video/x-raw,format=RGB".
type RGBImage struct {
	Pix  []byte
	Rect image.Rectangle
}

// NewRGBImage wraps pix as a width x height RGB image.
// It returns nil if pix is shorter than width*height*3.
func NewRGBImage(pix []byte, width, height int) *RGBImage {
	if width <= 0 || height <= 0 || len(pix) < width*height*3 {
		return nil
	}
	return &RGBImage{Pix: pix, Rect: image.Rect(0, 0, width, height)}
}

// ColorModel implements image.Image.
func (p *RGBImage) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (p *RGBImage) Bounds() image.Rectangle { return p.Rect }

// At implements image.Image.
func (p *RGBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := ((y-p.Rect.Min.Y)*p.Rect.Dx() + (x - p.Rect.Min.X)) * 3
	return color.RGBA{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2], A: 0xff}
}
