package filters

// Separable blend modes for overlay compositing. Each mode maps two
// normalized channel values to a result in [0, 1], following the W3C
// Compositing and Blending Level 1 specification
// (https://www.w3.org/TR/compositing-1/).

import (
	"fmt"
	"math"

	"github.com/fengyun21/canvas-instagram-filters/internal/parallel"
)

// Mode identifies a separable blend formula. The set of modes is closed:
// a formula is selected by value, never supplied as a callback, so every
// valid mode is enumerable and testable.
type Mode int

const (
	// ModeScreen lightens: 1 - (1-s)*(1-d).
	ModeScreen Mode = iota
	// ModeMultiply darkens: s*d.
	ModeMultiply
	// ModeColorBurn darkens the image to reflect the overlay.
	ModeColorBurn
	// ModeColorDodge brightens the image to reflect the overlay.
	ModeColorDodge
	// ModeOverlay multiplies or screens depending on the backdrop.
	ModeOverlay
	// ModeDarken selects the darker channel value.
	ModeDarken
	// ModeLighten selects the lighter channel value.
	ModeLighten
	// ModeHardLight multiplies or screens depending on the overlay.
	ModeHardLight
	// ModeSoftLight is a softer version of HardLight.
	ModeSoftLight
	// ModeDifference takes the absolute channel difference.
	ModeDifference
	// ModeExclusion is like Difference with lower contrast.
	ModeExclusion
	// ModeLinearBurn sums and subtracts one: max(0, s+d-1).
	ModeLinearBurn
	// ModeAdd sums with clamping: min(1, s+d).
	ModeAdd
)

// blendFunc maps the normalized overlay value s and backdrop value d,
// both in [0, 1], to a result in [0, 1].
type blendFunc func(s, d float64) float64

var blendFuncs = [...]blendFunc{
	ModeScreen:     blendScreen,
	ModeMultiply:   blendMultiply,
	ModeColorBurn:  blendColorBurn,
	ModeColorDodge: blendColorDodge,
	ModeOverlay:    blendOverlay,
	ModeDarken:     math.Min,
	ModeLighten:    math.Max,
	ModeHardLight:  blendHardLight,
	ModeSoftLight:  blendSoftLight,
	ModeDifference: blendDifference,
	ModeExclusion:  blendExclusion,
	ModeLinearBurn: blendLinearBurn,
	ModeAdd:        blendAdd,
}

var modeNames = [...]string{
	ModeScreen:     "screen",
	ModeMultiply:   "multiply",
	ModeColorBurn:  "colorBurn",
	ModeColorDodge: "colorDodge",
	ModeOverlay:    "overlay",
	ModeDarken:     "darken",
	ModeLighten:    "lighten",
	ModeHardLight:  "hardLight",
	ModeSoftLight:  "softLight",
	ModeDifference: "difference",
	ModeExclusion:  "exclusion",
	ModeLinearBurn: "linearBurn",
	ModeAdd:        "add",
}

func (m Mode) valid() bool {
	return m >= 0 && int(m) < len(blendFuncs)
}

// String returns the canonical name of the mode.
func (m Mode) String() string {
	if m.valid() {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode resolves a blend mode by its canonical name.
// It returns ErrInvalidBlendMode for unrecognized names.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidBlendMode, name)
}

// Composite blends foreground onto background per channel using the given
// mode and returns the result as a new pixmap. Neither input is mutated.
//
// For every pixel the R, G, B channels are normalized to [0, 1], combined
// by the mode's formula, scaled back to [0, 255], rounded, and clamped.
// The alpha channel is copied unchanged from foreground.
//
// Composite returns ErrDimensionMismatch when the buffers differ in size
// and ErrInvalidBlendMode for a mode outside the enumerated set.
func Composite(background, foreground *Pixmap, mode Mode) (*Pixmap, error) {
	if background.width != foreground.width || background.height != foreground.height {
		return nil, fmt.Errorf("%w: background %dx%d, foreground %dx%d",
			ErrDimensionMismatch,
			background.width, background.height,
			foreground.width, foreground.height)
	}
	if !mode.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlendMode, int(mode))
	}

	fn := blendFuncs[mode]
	out := NewPixmap(background.width, background.height)
	bg, fg, dst := background.data, foreground.data, out.data
	rowLen := background.width * 4

	parallel.Rows(background.height, func(y0, y1 int) {
		for i := y0 * rowLen; i < y1*rowLen; i += 4 {
			for c := 0; c < 3; c++ {
				s := float64(fg[i+c]) / 255
				d := float64(bg[i+c]) / 255
				dst[i+c] = uint8(clamp255(math.Round(fn(s, d) * 255)))
			}
			dst[i+3] = fg[i+3]
		}
	})

	return out, nil
}

// blendScreen produces a lighter result than multiply.
// Formula: 1 - (1-s)*(1-d). Symmetric in s and d.
func blendScreen(s, d float64) float64 {
	return 1 - (1-s)*(1-d)
}

// blendMultiply multiplies overlay and backdrop. Symmetric in s and d.
func blendMultiply(s, d float64) float64 {
	return s * d
}

// blendColorBurn darkens the backdrop to reflect the overlay.
// The zero divisor is guarded: a zero backdrop burns to black.
func blendColorBurn(s, d float64) float64 {
	if d == 0 {
		return 0
	}
	return 1 - math.Min(1, (1-s)/d)
}

// blendColorDodge brightens the backdrop to reflect the overlay.
// The zero divisor is guarded: a full overlay dodges to white.
func blendColorDodge(s, d float64) float64 {
	if s == 1 {
		return 1
	}
	return math.Min(1, d/(1-s))
}

// blendOverlay multiplies dark backdrops and screens light ones.
func blendOverlay(s, d float64) float64 {
	return blendHardLight(d, s)
}

// blendHardLight multiplies for dark overlays and screens for light ones.
func blendHardLight(s, d float64) float64 {
	if s <= 0.5 {
		return 2 * s * d
	}
	return blendScreen(2*s-1, d)
}

// blendSoftLight darkens or lightens depending on the overlay, with the
// W3C piecewise transfer curve for the light half.
func blendSoftLight(s, d float64) float64 {
	if s <= 0.5 {
		return d - (1-2*s)*d*(1-d)
	}
	var dd float64
	if d <= 0.25 {
		dd = ((16*d-12)*d + 4) * d
	} else {
		dd = math.Sqrt(d)
	}
	return d + (2*s-1)*(dd-d)
}

func blendDifference(s, d float64) float64 {
	return math.Abs(s - d)
}

func blendExclusion(s, d float64) float64 {
	return s + d - 2*s*d
}

func blendLinearBurn(s, d float64) float64 {
	return math.Max(0, s+d-1)
}

func blendAdd(s, d float64) float64 {
	return math.Min(1, s+d)
}
