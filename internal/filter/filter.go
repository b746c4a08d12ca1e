// Package filter holds the image transforms applied to captured frames
// before rasterization.
package filter

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"golang.org/x/image/draw"
)

// Filter transforms one frame into another. Implementations must not
// retain or modify the input.
type Filter interface {
	Name() string
	Apply(img image.Image) image.Image
}

// Names of the built-in filters.
const (
	NameNone  = "none"
	NameEdges = "edges"
)

// Names lists the built-in filter names.
func Names() []string {
	return []string{NameNone, NameEdges}
}

// ByName returns the built-in filter with the given name.
// The empty string selects the identity filter.
func ByName(name string) (Filter, error) {
	switch name {
	case "", NameNone:
		return None{}, nil
	case NameEdges:
		return Edges{}, nil
	default:
		return nil, fmt.Errorf("filter: unknown filter %q", name)
	}
}

// None passes frames through unchanged.
type None struct{}

// Name implements Filter.
func (None) Name() string { return NameNone }

// Apply implements Filter.
func (None) Apply(img image.Image) image.Image { return img }

// Edges highlights brightness discontinuities with a 3x3 Sobel operator
// applied to the luminance of the frame. Output is a grayscale image of the
// same size: flat regions become black, strong edges approach white.
type Edges struct{}

// Name implements Filter.
func (Edges) Name() string { return NameEdges }

// Apply implements Filter.
func (Edges) Apply(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewGray(b)
	if b.Empty() {
		return out
	}

	edges := effect.Sobel(effect.Grayscale(img))
	draw.Draw(out, b, edges, edges.Bounds().Min, draw.Src)
	return out
}
