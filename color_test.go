package filters

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		hex  string
		want RGBA
	}{
		{"#ff0000", RGBA{R: 1, G: 0, B: 0, A: 1}},
		{"00ff00", RGBA{R: 0, G: 1, B: 0, A: 1}},
		{"#fff", RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"#f00a", RGBA{R: 1, G: 0, B: 0, A: 2.0 / 3}},
		{"#00000080", RGBA{R: 0, G: 0, B: 0, A: 128.0 / 255}},
		{"nonsense", RGBA{R: 0, G: 0, B: 0, A: 1}},
	}

	for _, tt := range tests {
		got := Hex(tt.hex)
		if !approxColor(got, tt.want, 0.005) {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	want := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if !approxColor(got, want, 1e-9) {
		t.Errorf("Black.Lerp(White, 0.5) = %+v, want %+v", got, want)
	}

	if got := Black.Lerp(White, 0); got != Black {
		t.Errorf("Lerp(0) = %+v, want start color", got)
	}
	if got := Black.Lerp(White, 1); got != White {
		t.Errorf("Lerp(1) = %+v, want end color", got)
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGB(0.2, 0.4, 0.6).WithAlpha(0.25)
	if c.A != 0.25 || c.R != 0.2 {
		t.Errorf("WithAlpha = %+v", c)
	}
}

func TestColorRoundTrip(t *testing.T) {
	orig := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	got := FromColor(orig).Color().(color.NRGBA)
	if got != orig {
		t.Errorf("round trip = %+v, want %+v", got, orig)
	}
}

func approxColor(a, b RGBA, eps float64) bool {
	abs := func(x float64) float64 {
		if x < 0 {
			return -x
		}
		return x
	}
	return abs(a.R-b.R) <= eps && abs(a.G-b.G) <= eps && abs(a.B-b.B) <= eps && abs(a.A-b.A) <= eps
}
