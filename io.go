package iconkit

import (
	"fmt"
	"io"

	ikimage "github.com/gogpu/iconkit/internal/image"
)

// LoadPixmap decodes the image at path into an RGBA pixmap.
func LoadPixmap(path string) (*Pixmap, error) {
	img, format, err := ikimage.Load(path)
	if err != nil {
		return nil, fmt.Errorf("iconkit: load %s: %w", path, err)
	}
	Logger().Debug("iconkit: image loaded", "path", path, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return FromImage(img)
}

// DecodePixmap decodes an image from r into an RGBA pixmap.
func DecodePixmap(r io.Reader) (*Pixmap, error) {
	img, _, err := ikimage.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("iconkit: %w", err)
	}
	return FromImage(img)
}

// SavePNG writes the pixmap to path as PNG. RGB pixmaps are written without
// an alpha channel.
func (p *Pixmap) SavePNG(path string) error {
	if err := ikimage.SavePNG(path, p.ToImage()); err != nil {
		return fmt.Errorf("iconkit: save %s: %w", path, err)
	}
	Logger().Debug("iconkit: image saved", "path", path, "format", p.format.String(),
		"width", p.width, "height", p.height)
	return nil
}

// EncodePNG encodes the pixmap as PNG to w.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return ikimage.EncodePNG(w, p.ToImage())
}

// Resize returns an RGBA copy of p resampled to width×height with a
// Catmull-Rom filter.
func (p *Pixmap) Resize(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	img, err := ikimage.Resize(p.ToImage(), width, height)
	if err != nil {
		return nil, fmt.Errorf("iconkit: resize: %w", err)
	}
	return FromImage(img)
}
