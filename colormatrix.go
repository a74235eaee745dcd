package filters

import (
	"github.com/chewxy/math32"

	"github.com/fengyun21/canvas-instagram-filters/internal/parallel"
)

// ColorMatrix is a 4x5 affine color transform in row-major order:
//
//	[R']   [m00 m01 m02 m03 m04]   [R]
//	[G'] = [m10 m11 m12 m13 m14] * [G]
//	[B']   [m20 m21 m22 m23 m24]   [B]
//	[A']   [m30 m31 m32 m33 m34]   [A]
//	                               [1]
//
// The fifth column provides bias/offset values. Channel values are in
// [0, 255] during transformation and clamped back to that range.
//
// Elements [0-4] = row 0 (R), [5-9] = row 1 (G), [10-14] = row 2 (B),
// [15-19] = row 3 (A).
type ColorMatrix [20]float32

// IdentityMatrix returns the matrix that passes every channel through
// unchanged.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0, // R
		0, 1, 0, 0, 0, // G
		0, 0, 1, 0, 0, // B
		0, 0, 0, 1, 0, // A
	}
}

// Brightness returns a matrix that offsets the R, G, B channels by a
// constant. v is in the conventional UI range -100..100; 0 is neutral,
// -100 shifts fully toward black and 100 fully toward white.
func Brightness(v float32) ColorMatrix {
	offset := v * 255 / 100
	return ColorMatrix{
		1, 0, 0, 0, offset,
		0, 1, 0, 0, offset,
		0, 0, 1, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// Contrast returns a matrix that scales the R, G, B channels about the
// midpoint 127.5. v is in the range -100..100; 0 is neutral, -100 collapses
// to flat gray, 100 doubles the distance from the midpoint.
func Contrast(v float32) ColorMatrix {
	factor := 1 + v/100
	offset := 127.5 * (1 - factor)
	return ColorMatrix{
		factor, 0, 0, 0, offset,
		0, factor, 0, 0, offset,
		0, 0, factor, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// Rec. 709 luminance weights.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// Saturation returns a matrix that interpolates each channel toward the
// pixel's luminance. v is in the range -100..100; 0 is neutral, -100 is
// full grayscale, 100 is oversaturated.
func Saturation(v float32) ColorMatrix {
	factor := 1 + v/100
	inv := 1 - factor
	return ColorMatrix{
		lumR*inv + factor, lumG * inv, lumB * inv, 0, 0,
		lumR * inv, lumG*inv + factor, lumB * inv, 0, 0,
		lumR * inv, lumG * inv, lumB*inv + factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// HueRotate returns a matrix that rotates the R, G, B axes about the
// luminance vector by the given angle in degrees (0..360).
//
// The coefficients follow the SVG feColorMatrix hueRotate primitive,
// a rotation in YIQ space.
func HueRotate(degrees float32) ColorMatrix {
	if degrees == 0 {
		return IdentityMatrix()
	}

	rad := degrees * (math32.Pi / 180)
	cos := math32.Cos(rad)
	sin := math32.Sin(rad)

	// YIQ luminance weights, per the SVG filter spec.
	const (
		yR = 0.213
		yG = 0.715
		yB = 0.072
	)

	return ColorMatrix{
		yR + cos*(1-yR) + sin*(-yR), yG + cos*(-yG) + sin*(-yG), yB + cos*(-yB) + sin*(1-yB), 0, 0,
		yR + cos*(-yR) + sin*0.143, yG + cos*(1-yG) + sin*0.140, yB + cos*(-yB) + sin*(-0.283), 0, 0,
		yR + cos*(-yR) + sin*(-(1 - yR)), yG + cos*(-yG) + sin*yG, yB + cos*(1-yB) + sin*yB, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Grayscale returns a matrix that converts to grayscale using Rec. 709
// luminance weights.
func Grayscale() ColorMatrix {
	return Saturation(-100)
}

// Sepia returns a matrix that applies a sepia tone.
func Sepia() ColorMatrix {
	return ColorMatrix{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Invert returns a matrix that inverts the R, G, B channels.
func Invert() ColorMatrix {
	return ColorMatrix{
		-1, 0, 0, 0, 255,
		0, -1, 0, 0, 255,
		0, 0, -1, 0, 255,
		0, 0, 0, 1, 0,
	}
}

// Opacity returns a matrix that multiplies alpha by factor.
// factor: 0.0 = fully transparent, 1.0 = unchanged.
func Opacity(factor float32) ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, factor, 0,
	}
}

// Tint returns a matrix that blends the R, G, B channels toward a color.
// The blend weight is the color's alpha: 0 leaves the image unchanged,
// 1 replaces it with the tint.
func Tint(c RGBA) ColorMatrix {
	f := float32(c.A)
	inv := 1 - f
	return ColorMatrix{
		inv, 0, 0, 0, float32(c.R*255) * f,
		0, inv, 0, 0, float32(c.G*255) * f,
		0, 0, inv, 0, float32(c.B*255) * f,
		0, 0, 0, 1, 0,
	}
}

// Mul returns the affine product m*n. Applying the result is equivalent
// to applying n first and then m.
func (m ColorMatrix) Mul(n ColorMatrix) ColorMatrix {
	var r ColorMatrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[row*5+k] * n[k*5+col]
			}
			r[row*5+col] = sum
		}
		// Bias column.
		r[row*5+4] = m[row*5+0]*n[4] + m[row*5+1]*n[9] +
			m[row*5+2]*n[14] + m[row*5+3]*n[19] + m[row*5+4]
	}
	return r
}

// BuildMatrix composes the four elementary adjustments into one matrix.
// The adjustments apply in a fixed order: hue rotation, then saturation,
// then contrast, then brightness. Saturation and hue must precede
// contrast and brightness to match conventional filter semantics.
//
// All parameters at their neutral values (0) yield the identity matrix.
func BuildMatrix(brightness, contrast, saturation, hueDegrees float32) ColorMatrix {
	m := Saturation(saturation).Mul(HueRotate(hueDegrees))
	m = Contrast(contrast).Mul(m)
	return Brightness(brightness).Mul(m)
}

// rowIsIdentity reports whether a row passes its own channel through
// unchanged: 1 at its own column, 0 elsewhere, zero bias.
func (m ColorMatrix) rowIsIdentity(row int) bool {
	for col := 0; col < 5; col++ {
		want := float32(0)
		if col == row {
			want = 1
		}
		if m[row*5+col] != want {
			return false
		}
	}
	return true
}

// Apply transforms every pixel of src by the matrix and returns the result
// as a new pixmap. src is never mutated.
//
// For each output channel: result = clamp(round(m·(R,G,B,A,1)), 0, 255).
// Rows equal to the identity row copy their channel unchanged, so a
// default matrix leaves alpha untouched and the identity matrix is a
// byte-for-byte no-op.
func (m ColorMatrix) Apply(src *Pixmap) *Pixmap {
	out := NewPixmap(src.width, src.height)

	var ident [4]bool
	allIdent := true
	for row := 0; row < 4; row++ {
		ident[row] = m.rowIsIdentity(row)
		allIdent = allIdent && ident[row]
	}
	if allIdent {
		copy(out.data, src.data)
		return out
	}

	in, dst := src.data, out.data
	rowLen := src.width * 4

	parallel.Rows(src.height, func(y0, y1 int) {
		for i := y0 * rowLen; i < y1*rowLen; i += 4 {
			r := float32(in[i+0])
			g := float32(in[i+1])
			b := float32(in[i+2])
			a := float32(in[i+3])

			for ch := 0; ch < 4; ch++ {
				if ident[ch] {
					dst[i+ch] = in[i+ch]
					continue
				}
				k := ch * 5
				v := math32.Round(m[k]*r + m[k+1]*g + m[k+2]*b + m[k+3]*a + m[k+4])
				switch {
				case v < 0:
					dst[i+ch] = 0
				case v > 255:
					dst[i+ch] = 255
				default:
					dst[i+ch] = uint8(v)
				}
			}
		}
	})

	return out
}
