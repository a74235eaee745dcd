// Package filters applies Instagram-style visual filters to RGBA pixel
// buffers.
//
// # Overview
//
// A filter is an ordered sequence of two kinds of steps: compositing an
// overlay buffer onto the image with a named blend mode, and applying a
// 4x5 color matrix that adjusts brightness, contrast, saturation, and hue.
// Both operations are pure: inputs are never mutated and every transform
// returns a freshly allocated buffer.
//
// # Quick Start
//
//	import filters "github.com/fengyun21/canvas-instagram-filters"
//
//	src := filters.FromImage(img)
//
//	spec, _ := filters.Preset("clarendon")
//	out, err := filters.Run(src, spec, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result := out.ToImage()
//
// Custom filters are built from the same pieces:
//
//	spec := filters.FilterSpec{
//		Name: "warm-fade",
//		Steps: []filters.Step{
//			filters.CompositeStep{
//				Overlay: filters.Gradient{
//					Angle: 90,
//					Stops: []filters.ColorStop{
//						{Offset: 0, Color: filters.Hex("#f3a86a")},
//						{Offset: 1, Color: filters.Hex("#3a1c71")},
//					},
//				}.Factory(),
//				Mode: filters.ModeSoftLight,
//			},
//			filters.ColorMatrixStep{Brightness: 5, Contrast: 10, Saturation: -15},
//		},
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Pixmap, Mode, ColorMatrix, FilterSpec, presets
//   - Overlay collaborators: Gradient, SolidOverlay, TextureOverlay
//   - Internal: parallel (row partitioning for the per-pixel loops)
//
// # Coordinate System
//
// Pixel data is row-major RGBA, 4 bytes per pixel, origin (0,0) at the
// top-left, X increasing right, Y increasing down.
//
// # Performance
//
// Per-pixel work is independent, so Composite and ColorMatrix.Apply split
// their loops across rows on large buffers. Results are identical to the
// sequential path.
package filters

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
