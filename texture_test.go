package filters

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestTextureOverlaySameSize(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	img.SetNRGBA(1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	p, err := TextureOverlay(img)(3, 3)
	if err != nil {
		t.Fatalf("TextureOverlay() = %v", err)
	}
	if got, _ := p.Channel(1, 1, 0); got != 200 {
		t.Errorf("pixel (1,1) R = %d, want 200", got)
	}
}

func TestTextureOverlayScales(t *testing.T) {
	// Uniform image stays uniform at any scale.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 120, G: 130, B: 140, A: 255})
		}
	}

	p, err := TextureOverlay(img)(9, 5)
	if err != nil {
		t.Fatalf("TextureOverlay() = %v", err)
	}
	if p.Width() != 9 || p.Height() != 5 {
		t.Fatalf("size = %dx%d, want 9x5", p.Width(), p.Height())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 9; x++ {
			if got, _ := p.Channel(x, y, 1); got != 130 {
				t.Fatalf("pixel (%d,%d) G = %d, want 130", x, y, got)
			}
		}
	}
}

func TestTextureOverlayInvalidSize(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if _, err := TextureOverlay(img)(0, 5); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("TextureOverlay(0,5) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestTextureOverlayInComposite(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	src := checkerboard(6, 6)
	spec := FilterSpec{
		Name:  "textured",
		Steps: []Step{CompositeStep{Overlay: TextureOverlay(img), Mode: ModeMultiply}},
	}

	out, err := Run(src, spec, nil)
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	// Multiplying by a white texture reproduces the source.
	for i, b := range out.Data() {
		if b != src.Data()[i] {
			t.Fatalf("byte %d = %d, want %d", i, b, src.Data()[i])
		}
	}
}
