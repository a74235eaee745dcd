package filters

import (
	"image"
	"image/color"
)

// Pixmap represents a rectangular pixel buffer.
//
// Pixmaps are immutable by convention: every transform in this package
// reads its inputs and returns a newly allocated Pixmap. The setters exist
// for constructing inputs, not for editing buffers that are already flowing
// through a pipeline.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel, row-major
}

// NewPixmap creates a new zeroed pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// NewPixmapFrom creates a pixmap wrapping the given RGBA data.
// It returns ErrInvalidDimensions if len(data) != width*height*4.
// The data slice is copied so later writes by the caller cannot alias the
// buffer.
func NewPixmapFrom(width, height int, data []uint8) (*Pixmap, error) {
	if width <= 0 || height <= 0 || len(data) != width*height*4 {
		return nil, ErrInvalidDimensions
	}
	p := NewPixmap(width, height)
	copy(p.data, data)
	return p, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	out := NewPixmap(p.width, p.height)
	copy(out.data, p.data)
	return out
}

// Channel returns the value of one channel (0=R, 1=G, 2=B, 3=A) of the
// pixel at (x, y). It returns ErrIndexOutOfRange for coordinates or channel
// indices outside the buffer.
func (p *Pixmap) Channel(x, y, ch int) (uint8, error) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height || ch < 0 || ch >= 4 {
		return 0, ErrIndexOutOfRange
	}
	return p.data[(y*p.width+x)*4+ch], nil
}

// SetChannel sets the value of one channel (0=R, 1=G, 2=B, 3=A) of the
// pixel at (x, y). It returns ErrIndexOutOfRange for coordinates or channel
// indices outside the buffer.
func (p *Pixmap) SetChannel(x, y, ch int, v uint8) error {
	if x < 0 || x >= p.width || y < 0 || y >= p.height || ch < 0 || ch >= 4 {
		return ErrIndexOutOfRange
	}
	p.data[(y*p.width+x)*4+ch] = v
	return nil
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Fill sets every pixel of the pixmap to a color.
func (p *Pixmap) Fill(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image. Colors are stored with
// straight (non-premultiplied) alpha.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	// Fast path: NRGBA already matches the pixmap layout.
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < height; y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pm.data[y*width*4:(y+1)*width*4], src.Pix[off:])
		}
		return pm
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := (y*width + x) * 4
			pm.data[i+0] = c.R
			pm.data[i+1] = c.G
			pm.data[i+2] = c.B
			pm.data[i+3] = c.A
		}
	}

	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
