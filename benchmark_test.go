package iconkit

import (
	"strconv"
	"testing"
)

func BenchmarkCompose(b *testing.B) {
	for _, size := range []int{64, 256, 1024} {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			g := DefaultGradient()
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Compose(size, g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkInpaintRounded(b *testing.B) {
	for _, size := range []int{64, 256} {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			src, _ := NewPixmap(size, size, FormatRGBA)
			src.Fill(GradientTopLeft)
			rounded, err := RoundCorners(src, size/5)
			if err != nil {
				b.Fatal(err)
			}
			for b.Loop() {
				if _, err := Inpaint(rounded); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkInpaintTransparent is the worst case: every pixel exhausts the
// search and falls back.
func BenchmarkInpaintTransparent(b *testing.B) {
	src, _ := NewPixmap(64, 64, FormatRGBA)
	for b.Loop() {
		if _, err := Inpaint(src); err != nil {
			b.Fatal(err)
		}
	}
}
