package iconkit

import (
	"bytes"
	"image"
	"image/color"
)

// Format is the pixel storage layout of a Pixmap.
type Format uint8

const (
	// FormatRGB is 24-bit RGB, 3 bytes per pixel, implicitly opaque.
	FormatRGB Format = iota

	// FormatRGBA is 32-bit RGBA with straight (non-premultiplied) alpha.
	FormatRGBA
)

// BytesPerPixel returns the number of bytes per pixel for the format.
func (f Format) BytesPerPixel() int {
	if f == FormatRGB {
		return 3
	}
	return 4
}

// HasAlpha reports whether the format stores an alpha channel.
func (f Format) HasAlpha() bool {
	return f == FormatRGBA
}

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	default:
		return "Unknown"
	}
}

// Pixmap is a rectangular buffer of 8-bit pixels, row-major and tightly
// packed. It implements image.Image.
type Pixmap struct {
	width  int
	height int
	format Format
	data   []uint8
}

// NewPixmap creates a zeroed pixmap. For FormatRGBA that is transparent
// black, for FormatRGB opaque black.
func NewPixmap(width, height int, format Format) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	if format != FormatRGB && format != FormatRGBA {
		return nil, ErrFormat
	}
	return &Pixmap{
		width:  width,
		height: height,
		format: format,
		data:   make([]uint8, width*height*format.BytesPerPixel()),
	}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Format returns the pixel format.
func (p *Pixmap) Format() Format {
	return p.format
}

// Data returns the raw pixel bytes.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

func (p *Pixmap) offset(x, y int) int {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return -1
	}
	return (y*p.width + x) * p.format.BytesPerPixel()
}

// NRGBAAt returns the pixel at (x, y). RGB pixels report alpha 255.
// Out-of-bounds coordinates return transparent black.
func (p *Pixmap) NRGBAAt(x, y int) color.NRGBA {
	i := p.offset(x, y)
	if i < 0 {
		return color.NRGBA{}
	}
	if p.format == FormatRGB {
		return color.NRGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: 255}
	}
	return color.NRGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// RGBAt returns the color channels at (x, y), ignoring alpha.
func (p *Pixmap) RGBAt(x, y int) RGB {
	c := p.NRGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// AlphaAt returns the alpha at (x, y).
func (p *Pixmap) AlphaAt(x, y int) uint8 {
	return p.NRGBAAt(x, y).A
}

// SetNRGBA sets the pixel at (x, y). Alpha is dropped for FormatRGB.
// Out-of-bounds writes are ignored.
func (p *Pixmap) SetNRGBA(x, y int, c color.NRGBA) {
	i := p.offset(x, y)
	if i < 0 {
		return
	}
	p.data[i] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	if p.format == FormatRGBA {
		p.data[i+3] = c.A
	}
}

// SetRGB sets the color at (x, y) with full opacity.
func (p *Pixmap) SetRGB(x, y int, c RGB) {
	p.SetNRGBA(x, y, c.NRGBA())
}

// Fill sets every pixel to c at full opacity.
func (p *Pixmap) Fill(c RGB) {
	for y := range p.height {
		for x := range p.width {
			p.SetRGB(x, y, c)
		}
	}
}

// Clone creates a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, format: p.format, data: data}
}

// Equal reports whether both pixmaps have the same size, format and bytes.
func (p *Pixmap) Equal(other *Pixmap) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.width == other.width &&
		p.height == other.height &&
		p.format == other.format &&
		bytes.Equal(p.data, other.data)
}

// convert returns a copy of p in the given format.
func (p *Pixmap) convert(format Format) *Pixmap {
	if p.format == format {
		return p.Clone()
	}
	out, _ := NewPixmap(p.width, p.height, format)
	for y := range p.height {
		for x := range p.width {
			out.SetNRGBA(x, y, p.NRGBAAt(x, y))
		}
	}
	return out
}

// ToRGBA returns an RGBA copy of the pixmap.
func (p *Pixmap) ToRGBA() *Pixmap {
	return p.convert(FormatRGBA)
}

// ToRGB returns an RGB copy of the pixmap with alpha discarded.
func (p *Pixmap) ToRGB() *Pixmap {
	return p.convert(FormatRGB)
}

// ToImage converts the pixmap to an *image.NRGBA. RGB pixmaps become fully
// opaque images, which the PNG encoder writes without an alpha channel.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	if p.format == FormatRGBA {
		copy(img.Pix, p.data)
		return img
	}
	for i, j := 0, 0; i < len(p.data); i, j = i+3, j+4 {
		img.Pix[j] = p.data[i]
		img.Pix[j+1] = p.data[i+1]
		img.Pix[j+2] = p.data[i+2]
		img.Pix[j+3] = 255
	}
	return img
}

// FromImage creates an RGBA pixmap from any image.Image. Colors are stored
// with straight alpha.
func FromImage(img image.Image) (*Pixmap, error) {
	bounds := img.Bounds()
	pm, err := NewPixmap(bounds.Dx(), bounds.Dy(), FormatRGBA)
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		rowBytes := pm.width * 4
		for y := range pm.height {
			src := nrgba.Pix[nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			copy(pm.data[y*rowBytes:(y+1)*rowBytes], src[:rowBytes])
		}
		return pm, nil
	}

	for y := range pm.height {
		for x := range pm.width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pm.SetNRGBA(x, y, c)
		}
	}
	return pm, nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.NRGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
