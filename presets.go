package filters

import (
	"sort"
	"strings"
)

// Named filter presets in the style of the classic Instagram filters.
// Each preset is an ordered list of overlay composites and color matrix
// adjustments.
//
// Overlay alpha cannot soften a blend here (Composite copies alpha from
// the overlay), so partial-strength overlays are expressed by scaling the
// overlay color toward the mode's neutral value: black for screen-family
// modes, white for multiply-family modes.
var presets = map[string]FilterSpec{
	"clarendon": {
		Name: "clarendon",
		Steps: []Step{
			CompositeStep{Overlay: SolidOverlay(Hex("#7fbbe3")), Mode: ModeOverlay},
			ColorMatrixStep{Contrast: 20, Saturation: 35},
		},
	},
	"gingham": {
		Name: "gingham",
		Steps: []Step{
			CompositeStep{Overlay: SolidOverlay(Hex("#e6e6fa")), Mode: ModeSoftLight},
			ColorMatrixStep{Brightness: 5, HueDegrees: 350},
		},
	},
	"juno": {
		Name: "juno",
		Steps: []Step{
			CompositeStep{
				Overlay: Gradient{
					Angle: 90,
					Stops: []ColorStop{
						{Offset: 0, Color: Black.Lerp(Hex("#7f3f97"), 0.25)},
						{Offset: 1, Color: Black.Lerp(Hex("#e05258"), 0.25)},
					},
				}.Factory(),
				Mode: ModeScreen,
			},
			ColorMatrixStep{Brightness: 8, Contrast: 12, Saturation: 40},
		},
	},
	"lark": {
		Name: "lark",
		Steps: []Step{
			CompositeStep{Overlay: SolidOverlay(Hex("#22253f")), Mode: ModeColorDodge},
			ColorMatrixStep{Contrast: -10, Saturation: 25},
		},
	},
	"moon": {
		Name: "moon",
		Steps: []Step{
			CompositeStep{Overlay: SolidOverlay(Hex("#a0a0a0")), Mode: ModeSoftLight},
			CompositeStep{Overlay: SolidOverlay(Hex("#383838")), Mode: ModeScreen},
			ColorMatrixStep{Brightness: 10, Contrast: 10, Saturation: -100},
		},
	},
	"1977": {
		Name: "1977",
		Steps: []Step{
			CompositeStep{Overlay: SolidOverlay(Black.Lerp(Hex("#f36abc"), 0.3)), Mode: ModeScreen},
			ColorMatrixStep{Brightness: 10, Contrast: 10, Saturation: 30},
		},
	},
}

// Preset returns the filter spec registered under name (case-insensitive).
// The second result reports whether the preset exists.
func Preset(name string) (FilterSpec, bool) {
	spec, ok := presets[strings.ToLower(name)]
	return spec, ok
}

// Presets returns the names of all registered presets in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
