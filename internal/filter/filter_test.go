package filter

import (
	"image"
	"image/color"
	"testing"
)

func TestByName(t *testing.T) {
	for _, name := range append(Names(), "") {
		f, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q) failed: %v", name, err)
		}
		if name != "" && f.Name() != name {
			t.Errorf("ByName(%q).Name() = %q", name, f.Name())
		}
	}
	if _, err := ByName("sepia"); err == nil {
		t.Error("ByName(sepia) should fail")
	}
}

func TestNonePassesThrough(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	if got := (None{}).Apply(img); got != image.Image(img) {
		t.Error("None.Apply should return its input")
	}
}

func TestEdgesFlatImageIsBlack(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: 90, G: 140, B: 30, A: 255})
		}
	}

	out := (Edges{}).Apply(img)
	if out.Bounds() != img.Bounds() {
		t.Fatalf("bounds = %v, expected %v", out.Bounds(), img.Bounds())
	}
	gray := out.(*image.Gray)
	for y := 1; y < 15; y++ {
		for x := 1; x < 15; x++ {
			if v := gray.GrayAt(x, y).Y; v != 0 {
				t.Fatalf("pixel (%d,%d) = %d, expected 0 on a flat image", x, y, v)
			}
		}
	}
}

func TestEdgesDetectsBar(t *testing.T) {
	// Bright vertical bar on black: one rising and one falling edge.
	img := image.NewGray(image.Rect(0, 0, 20, 9))
	for y := 0; y < 9; y++ {
		for x := 8; x < 12; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	out := (Edges{}).Apply(img).(*image.Gray)
	var peak uint8
	for x := 6; x <= 13; x++ {
		peak = max(peak, out.GrayAt(x, 4).Y)
	}
	if peak < 128 {
		t.Errorf("peak response at the bar = %d, expected a strong edge", peak)
	}
	for _, x := range []int{2, 3, 4, 16, 17} {
		if v := out.GrayAt(x, 4).Y; v != 0 {
			t.Errorf("pixel (%d,4) = %d, expected no response away from the bar", x, v)
		}
	}
}

func TestEdgesKeepsSubImageBounds(t *testing.T) {
	base := image.NewGray(image.Rect(0, 0, 20, 20))
	sub := base.SubImage(image.Rect(5, 5, 15, 12))

	out := (Edges{}).Apply(sub)
	if out.Bounds() != sub.Bounds() {
		t.Errorf("bounds = %v, expected %v", out.Bounds(), sub.Bounds())
	}
}

func TestEdgesEmptyImage(t *testing.T) {
	out := (Edges{}).Apply(image.NewGray(image.Rectangle{}))
	if !out.Bounds().Empty() {
		t.Errorf("expected empty output, got %v", out.Bounds())
	}
}
