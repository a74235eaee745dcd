package filters

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// TextureOverlay returns an OverlayFactory that serves img, rescaled with
// bilinear interpolation when the requested size differs from the image's
// own bounds. Useful for grain, light-leak, and vignette textures.
func TextureOverlay(img image.Image) OverlayFactory {
	return func(width, height int) (*Pixmap, error) {
		if width <= 0 || height <= 0 {
			return nil, ErrInvalidDimensions
		}

		bounds := img.Bounds()
		if bounds.Dx() == width && bounds.Dy() == height {
			return FromImage(img), nil
		}

		dst := image.NewNRGBA(image.Rect(0, 0, width, height))
		xdraw.BiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
		return NewPixmapFrom(width, height, dst.Pix)
	}
}
