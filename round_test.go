package iconkit

import (
	"errors"
	"testing"
)

func solidPixmap(t *testing.T, size int, c RGB) *Pixmap {
	t.Helper()
	pm, err := NewPixmap(size, size, FormatRGBA)
	if err != nil {
		t.Fatalf("NewPixmap: %v", err)
	}
	pm.Fill(c)
	return pm
}

func TestRoundCorners(t *testing.T) {
	const size, radius = 64, 16
	red := RGB{R: 220, G: 30, B: 30}
	src := solidPixmap(t, size, red)

	out, err := RoundCorners(src, radius)
	if err != nil {
		t.Fatalf("RoundCorners: %v", err)
	}

	for _, c := range [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}} {
		if a := out.AlphaAt(c[0], c[1]); a != 0 {
			t.Errorf("corner %v alpha = %d, want 0", c, a)
		}
	}
	for _, c := range [][2]int{{size / 2, size / 2}, {radius, radius}, {size - radius - 1, size / 2}} {
		if got := out.NRGBAAt(c[0], c[1]); got != red.NRGBA() {
			t.Errorf("interior %v = %v, want %v", c, got, red.NRGBA())
		}
	}
	if !src.Equal(solidPixmap(t, size, red)) {
		t.Error("RoundCorners modified its input")
	}
}

func TestRoundCorners_DetectedRadius(t *testing.T) {
	const size, radius = 64, 16
	out, err := RoundCorners(solidPixmap(t, size, RGB{G: 255}), radius)
	if err != nil {
		t.Fatalf("RoundCorners: %v", err)
	}
	// The top row only touches the arc's flat end, so the transparent run
	// is shorter than the radius but never empty.
	if got := DetectCornerRadius(out); got <= 0 || got > radius {
		t.Errorf("DetectCornerRadius() = %d, want in (0, %d]", got, radius)
	}
}

func TestRoundCorners_InpaintRestoresSquare(t *testing.T) {
	blue := RGB{R: 40, G: 80, B: 200}
	src := solidPixmap(t, 48, blue)

	rounded, err := RoundCorners(src, 12)
	if err != nil {
		t.Fatalf("RoundCorners: %v", err)
	}
	filled, err := Inpaint(rounded)
	if err != nil {
		t.Fatalf("Inpaint: %v", err)
	}
	if !filled.Equal(src) {
		t.Error("Inpaint(RoundCorners(solid)) should reproduce the solid square")
	}
}

func TestRoundCorners_ZeroRadius(t *testing.T) {
	src := solidPixmap(t, 8, RGB{R: 1, G: 2, B: 3})
	out, err := RoundCorners(src, 0)
	if err != nil {
		t.Fatalf("RoundCorners: %v", err)
	}
	if !out.Equal(src) {
		t.Error("RoundCorners with radius 0 should not change the pixmap")
	}
}

func TestRoundCorners_Errors(t *testing.T) {
	if _, err := RoundCorners(nil, 4); !errors.Is(err, ErrNilPixmap) {
		t.Errorf("RoundCorners(nil) error = %v, want ErrNilPixmap", err)
	}
	src := solidPixmap(t, 4, RGB{})
	if _, err := RoundCorners(src, -1); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("RoundCorners(-1) error = %v, want ErrInvalidRadius", err)
	}
}
