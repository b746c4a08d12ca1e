package ascii

import (
	"image"
	"image/color"
	"math"
	"strings"
	"testing"
)

func uniformGray(w, h int, v uint8) image.Image {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func TestDefaultRamp(t *testing.T) {
	r := DefaultRamp()
	if r.Len() != 9 {
		t.Fatalf("Len() = %d, expected 9", r.Len())
	}
	if r.At(0) != '@' || r.At(8) != ' ' {
		t.Errorf("ramp ends = %q/%q, expected '@'/' '", r.At(0), r.At(8))
	}
	if r.String() != DefaultGlyphs {
		t.Errorf("String() = %q", r.String())
	}
}

func TestParseRamp(t *testing.T) {
	if _, err := ParseRamp(""); err == nil {
		t.Error("empty ramp should fail")
	}
	if _, err := ParseRamp("#"); err == nil {
		t.Error("single glyph ramp should fail")
	}
	r, err := ParseRamp("█▓▒░ ")
	if err != nil {
		t.Fatalf("ParseRamp failed: %v", err)
	}
	if r.Len() != 5 || r.At(1) != '▓' {
		t.Errorf("multi-byte ramp parsed wrong: len=%d at(1)=%q", r.Len(), r.At(1))
	}
}

func TestRampIndexClamps(t *testing.T) {
	r := DefaultRamp()
	tests := []struct {
		brightness float64
		expected   int
	}{
		{0, 0},
		{-0.5, 0},
		{1.0, 8},
		{1.7, 8},
		{math.NaN(), 0},
		{0.5, 4},
		{0.124, 0},
		{0.125, 1},
		{0.999, 7},
	}

	for _, tc := range tests {
		if got := r.Index(tc.brightness); got != tc.expected {
			t.Errorf("Index(%v) = %d, expected %d", tc.brightness, got, tc.expected)
		}
	}
}

func TestLuma(t *testing.T) {
	tests := []struct {
		name     string
		c        color.Color
		expected float64
	}{
		{"black", color.Black, 0},
		{"white", color.White, 1},
		{"gray128", color.Gray{Y: 128}, 128.0 / 255},
		{"pure red", color.RGBA{R: 255, A: 255}, 0.299},
		{"pure green", color.RGBA{G: 255, A: 255}, 0.587},
		{"pure blue", color.RGBA{B: 255, A: 255}, 0.114},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Luma(tc.c); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Luma() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRasterizeUniformFrames(t *testing.T) {
	r := NewRasterizer(DefaultRamp())
	sizes := [][2]int{{20, 10}, {80, 40}, {160, 80}, {33, 17}}

	for _, v := range []uint8{0, 1, 31, 32, 64, 127, 128, 200, 254, 255} {
		img := uniformGray(64, 48, v)
		b := float64(v) / 255
		want := r.Ramp().At(int(math.Floor(b * 8)))

		for _, size := range sizes {
			w, h := size[0], size[1]
			text := r.Text(img, w, h)
			if !strings.HasSuffix(text, "\n") {
				t.Fatalf("v=%d %dx%d: output not newline terminated", v, w, h)
			}
			lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
			if len(lines) != h {
				t.Fatalf("v=%d %dx%d: got %d lines", v, w, h, len(lines))
			}
			expectedLine := strings.Repeat(string(want), w)
			for i, line := range lines {
				if line != expectedLine {
					t.Fatalf("v=%d %dx%d: line %d = %q, expected %q", v, w, h, i, line, expectedLine)
				}
			}
		}
	}
}

func TestRasterizeUniformColor(t *testing.T) {
	r := NewRasterizer(DefaultRamp())
	c := color.RGBA{R: 200, G: 40, B: 90, A: 255}
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, c)
		}
	}

	want := r.Ramp().Glyph(Luma(c))
	s := r.Rasterize(img, 20, 10)
	for y := 0; y < s.Height(); y++ {
		if s.Row(y) != strings.Repeat(string(want), 20) {
			t.Fatalf("row %d = %q, expected all %q", y, s.Row(y), want)
		}
	}
}

func TestRasterizeUpscalesSmallSource(t *testing.T) {
	// 2x1 source: black left half, white right half.
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.Pix[0] = 0
	img.Pix[1] = 255

	r := NewRasterizer(DefaultRamp())
	s := r.Rasterize(img, 20, 10)

	if s.Width() != 20 || s.Height() != 10 {
		t.Fatalf("size = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	expected := strings.Repeat("@", 10) + strings.Repeat(" ", 10)
	for y := 0; y < 10; y++ {
		if s.Row(y) != expected {
			t.Errorf("row %d = %q, expected %q", y, s.Row(y), expected)
		}
	}
}

func TestRasterizeHonorsBoundsOffset(t *testing.T) {
	base := image.NewGray(image.Rect(0, 0, 40, 40))
	for i := range base.Pix {
		base.Pix[i] = 255
	}
	// Dark square in the top-left, outside the sub-image below.
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			base.SetGray(x, y, color.Gray{Y: 0})
		}
	}
	sub := base.SubImage(image.Rect(20, 20, 40, 40))

	s := NewRasterizer(DefaultRamp()).Rasterize(sub, 20, 10)
	for y := 0; y < s.Height(); y++ {
		if s.Row(y) != strings.Repeat(" ", 20) {
			t.Fatalf("row %d = %q, expected blank", y, s.Row(y))
		}
	}
}

func TestRasterizeDegenerate(t *testing.T) {
	r := NewRasterizer(DefaultRamp())

	if got := r.Text(uniformGray(10, 10, 128), 0, 10); got != "" {
		t.Errorf("zero width: got %q, expected empty", got)
	}
	if got := r.Text(uniformGray(10, 10, 128), 10, -1); got != "" {
		t.Errorf("negative height: got %q, expected empty", got)
	}

	empty := image.NewGray(image.Rect(0, 0, 0, 0))
	s := r.Rasterize(empty, 20, 10)
	if s.Row(0) != strings.Repeat("@", 20) {
		t.Errorf("empty source row = %q, expected darkest glyph", s.Row(0))
	}
}

func TestRasterizeDeterministic(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 97, 61))
	for y := 0; y < 61; y++ {
		for x := 0; x < 97; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 2), G: uint8(y * 4), B: uint8(x ^ y), A: 255})
		}
	}

	r := NewRasterizer(DefaultRamp())
	first := r.Text(img, 80, 40)
	for i := 0; i < 5; i++ {
		if got := r.Text(img, 80, 40); got != first {
			t.Fatal("Rasterize produced different output for identical input")
		}
	}
}

func TestRasterizeMonotonic(t *testing.T) {
	// Horizontal gradient: brightness grows left to right.
	img := image.NewGray(image.Rect(0, 0, 256, 1))
	for x := 0; x < 256; x++ {
		img.Pix[x] = uint8(x)
	}

	ramp := DefaultRamp()
	s := NewRasterizer(ramp).Rasterize(img, 160, 10)

	index := make(map[rune]int, ramp.Len())
	for i := 0; i < ramp.Len(); i++ {
		index[ramp.At(i)] = i
	}

	row := []rune(s.Row(0))
	for x := 1; x < len(row); x++ {
		if index[row[x]] < index[row[x-1]] {
			t.Fatalf("glyph index decreased at column %d: %q -> %q", x, row[x-1], row[x])
		}
	}

	prev := -1
	for v := 0; v < 256; v++ {
		idx := ramp.Index(Luma(color.Gray{Y: uint8(v)}))
		if idx < prev {
			t.Fatalf("Index decreased at v=%d", v)
		}
		prev = idx
	}
}

func TestRasterizeSamplesCellCentres(t *testing.T) {
	// Alternating dark/bright columns; two cells cover columns 0-1 and 2-3,
	// whose centres land on the bright columns 1 and 3.
	img := image.NewGray(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		img.SetGray(1, y, color.Gray{Y: 255})
		img.SetGray(3, y, color.Gray{Y: 255})
	}

	s := NewRasterizer(DefaultRamp()).Rasterize(img, 2, 1)
	if got := s.Row(0); got != "  " {
		t.Errorf("row = %q, expected %q", got, "  ")
	}
}
