package filters

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	p := NewPixmap(3, 2)
	if p.Width() != 3 {
		t.Errorf("Width = %d, want 3", p.Width())
	}
	if p.Height() != 2 {
		t.Errorf("Height = %d, want 2", p.Height())
	}
	if len(p.Data()) != 3*2*4 {
		t.Errorf("len(Data) = %d, want %d", len(p.Data()), 3*2*4)
	}
}

func TestNewPixmapFrom(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		dataLen int
		wantErr bool
	}{
		{"exact", 2, 2, 16, false},
		{"single pixel", 1, 1, 4, false},
		{"short data", 2, 2, 15, true},
		{"long data", 2, 2, 17, true},
		{"empty data", 2, 2, 0, true},
		{"zero width", 0, 2, 0, true},
		{"negative width", -1, 2, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPixmapFrom(tt.width, tt.height, make([]uint8, tt.dataLen))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDimensions) {
					t.Errorf("NewPixmapFrom() error = %v, want ErrInvalidDimensions", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPixmapFrom() = %v", err)
			}
			if p.Width() != tt.width || p.Height() != tt.height {
				t.Errorf("dimensions = %dx%d, want %dx%d", p.Width(), p.Height(), tt.width, tt.height)
			}
		})
	}
}

func TestNewPixmapFromCopiesData(t *testing.T) {
	data := []uint8{1, 2, 3, 4}
	p, err := NewPixmapFrom(1, 1, data)
	if err != nil {
		t.Fatalf("NewPixmapFrom() = %v", err)
	}

	data[0] = 99
	if p.Data()[0] != 1 {
		t.Error("pixmap aliases the caller's slice; want a copy")
	}
}

func TestChannelAccessors(t *testing.T) {
	p := NewPixmap(4, 3)
	if err := p.SetChannel(2, 1, 0, 200); err != nil {
		t.Fatalf("SetChannel() = %v", err)
	}

	v, err := p.Channel(2, 1, 0)
	if err != nil {
		t.Fatalf("Channel() = %v", err)
	}
	if v != 200 {
		t.Errorf("Channel(2,1,0) = %d, want 200", v)
	}
}

func TestChannelOutOfRange(t *testing.T) {
	p := NewPixmap(4, 3)

	tests := []struct {
		name    string
		x, y, c int
	}{
		{"x too large", 4, 0, 0},
		{"y too large", 0, 3, 0},
		{"channel too large", 0, 0, 4},
		{"negative x", -1, 0, 0},
		{"negative y", 0, -1, 0},
		{"negative channel", 0, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.Channel(tt.x, tt.y, tt.c); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("Channel(%d,%d,%d) error = %v, want ErrIndexOutOfRange", tt.x, tt.y, tt.c, err)
			}
			if err := p.SetChannel(tt.x, tt.y, tt.c, 1); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("SetChannel(%d,%d,%d) error = %v, want ErrIndexOutOfRange", tt.x, tt.y, tt.c, err)
			}
		})
	}
}

func TestClone(t *testing.T) {
	p := NewPixmap(2, 2)
	p.SetPixel(0, 0, RGB(1, 0, 0))

	c := p.Clone()
	if !bytes.Equal(c.Data(), p.Data()) {
		t.Fatal("clone differs from original")
	}

	c.SetPixel(0, 0, RGB(0, 1, 0))
	if bytes.Equal(c.Data(), p.Data()) {
		t.Error("mutating the clone changed the original")
	}
}

func TestImageRoundTrip(t *testing.T) {
	p := NewPixmap(3, 3)
	p.SetPixel(0, 0, RGB(1, 0, 0))
	p.SetPixel(1, 1, RGBA{R: 0, G: 1, B: 0, A: 0.5})
	p.SetPixel(2, 2, White)

	back := FromImage(p.ToImage())
	if !bytes.Equal(back.Data(), p.Data()) {
		t.Error("ToImage/FromImage round trip changed pixel data")
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	// Sub-images have a non-zero Min; FromImage must respect it.
	img := image.NewNRGBA(image.Rect(2, 3, 5, 6))
	img.SetNRGBA(2, 3, color.NRGBA{R: 255, A: 255})

	p := FromImage(img)
	if p.Width() != 3 || p.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 3x3", p.Width(), p.Height())
	}
	if got, _ := p.Channel(0, 0, 0); got != 255 {
		t.Errorf("pixel (0,0) R = %d, want 255", got)
	}
}

func TestFill(t *testing.T) {
	p := NewPixmap(2, 2)
	p.Fill(RGB(1, 1, 0))

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			c := p.GetPixel(x, y)
			if c.R != 1 || c.G != 1 || c.B != 0 || c.A != 1 {
				t.Errorf("pixel (%d,%d) = %+v, want yellow", x, y, c)
			}
		}
	}
}
