package filters

import (
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Gradient describes a linear gradient overlay. Angle is in degrees:
// 0 runs left to right, 90 top to bottom. Offsets outside the stop range
// pad with the nearest stop's color.
type Gradient struct {
	Angle float64
	Stops []ColorStop
}

// gradientLUTSize is the number of precomputed colors per gradient.
// 256 entries match the channel resolution of the output buffer.
const gradientLUTSize = 256

// Factory returns an OverlayFactory that rasterizes the gradient at the
// requested size. Colors between stops are interpolated in CIE Lab space,
// which avoids the muddy midpoints of naive RGB interpolation; alpha is
// interpolated linearly.
func (g Gradient) Factory() OverlayFactory {
	stops := sortStops(g.Stops)

	// The gradient only varies along one axis, so the per-pixel work is a
	// projection plus a table lookup.
	var lut [gradientLUTSize]RGBA
	for i := range lut {
		lut[i] = colorAtOffset(stops, float64(i)/(gradientLUTSize-1))
	}

	return func(width, height int) (*Pixmap, error) {
		if width <= 0 || height <= 0 {
			return nil, ErrInvalidDimensions
		}

		p := NewPixmap(width, height)

		theta := g.Angle * math.Pi / 180
		dx := math.Cos(theta)
		dy := math.Sin(theta)

		// Project the corners to normalize pixel projections to [0, 1].
		minProj := math.Inf(1)
		maxProj := math.Inf(-1)
		for _, corner := range [4][2]float64{
			{0, 0}, {float64(width), 0}, {0, float64(height)}, {float64(width), float64(height)},
		} {
			proj := corner[0]*dx + corner[1]*dy
			minProj = math.Min(minProj, proj)
			maxProj = math.Max(maxProj, proj)
		}
		span := maxProj - minProj
		if span == 0 {
			span = 1
		}

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				proj := (float64(x)+0.5)*dx + (float64(y)+0.5)*dy
				t := (proj - minProj) / span
				idx := int(t*(gradientLUTSize-1) + 0.5)
				if idx < 0 {
					idx = 0
				} else if idx >= gradientLUTSize {
					idx = gradientLUTSize - 1
				}
				p.SetPixel(x, y, lut[idx])
			}
		}

		return p, nil
	}
}

// SolidOverlay returns an OverlayFactory that fills the buffer with a
// single color.
func SolidOverlay(c RGBA) OverlayFactory {
	return func(width, height int) (*Pixmap, error) {
		if width <= 0 || height <= 0 {
			return nil, ErrInvalidDimensions
		}
		p := NewPixmap(width, height)
		p.Fill(c)
		return p, nil
	}
}

// sortStops sorts color stops by offset without modifying the original.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}

	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	return sorted
}

// colorAtOffset returns the interpolated color at offset t in [0, 1].
// stops must be sorted. Handles edge cases: empty stops, single stop,
// t outside the stop range (pad extend).
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})

	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	stop1 := stops[idx-1]
	stop2 := stops[idx]

	// Coincident stops would divide by zero.
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return blendLab(stop1.Color, stop2.Color, localT)
}

// blendLab interpolates two colors in CIE Lab space. Alpha is interpolated
// linearly since Lab carries no alpha.
func blendLab(c1, c2 RGBA, t float64) RGBA {
	a := colorful.Color{R: c1.R, G: c1.G, B: c1.B}
	b := colorful.Color{R: c2.R, G: c2.G, B: c2.B}
	mixed := a.BlendLab(b, t).Clamped()
	return RGBA{
		R: mixed.R,
		G: mixed.G,
		B: mixed.B,
		A: c1.A + (c2.A-c1.A)*t,
	}
}
