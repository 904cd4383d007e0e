package image

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestResize_Dimensions(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 8))
	dst, err := Resize(src, 4, 2)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if dst.Bounds() != image.Rect(0, 0, 4, 2) {
		t.Errorf("Bounds() = %v, want 4x2", dst.Bounds())
	}
}

func TestResize_SameSizeCopies(t *testing.T) {
	src := testImage()
	sub := src.SubImage(image.Rect(1, 1, 4, 3))

	dst, err := Resize(sub, 3, 2)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	for y := range 2 {
		for x := range 3 {
			want := src.NRGBAAt(x+1, y+1)
			if got := dst.NRGBAAt(x, y); got != want {
				t.Errorf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestResize_UniformStaysUniform(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := range 20 {
		for x := range 20 {
			src.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	dst, err := Resize(src, 7, 7)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	near := func(a, b uint8) bool { return a-b <= 1 || b-a <= 1 }
	for y := range 7 {
		for x := range 7 {
			c := dst.NRGBAAt(x, y)
			if !near(c.R, 200) || !near(c.G, 100) || !near(c.B, 50) || c.A < 254 {
				t.Fatalf("(%d,%d) = %v, want ~{200 100 50 255}", x, y, c)
			}
		}
	}
}

func TestResize_InvalidDimensions(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if _, err := Resize(src, 0, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(0, 2) error = %v, want ErrInvalidDimensions", err)
	}
}
