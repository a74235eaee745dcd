package filters

import (
	"sort"
	"testing"
)

func TestPresetLookup(t *testing.T) {
	spec, ok := Preset("clarendon")
	if !ok {
		t.Fatal("Preset(clarendon) not found")
	}
	if spec.Name != "clarendon" {
		t.Errorf("spec.Name = %q, want clarendon", spec.Name)
	}
	if len(spec.Steps) == 0 {
		t.Error("clarendon has no steps")
	}
}

func TestPresetLookupCaseInsensitive(t *testing.T) {
	if _, ok := Preset("Clarendon"); !ok {
		t.Error("Preset(Clarendon) not found; lookup should be case-insensitive")
	}
}

func TestPresetUnknown(t *testing.T) {
	if _, ok := Preset("nosuchfilter"); ok {
		t.Error("Preset(nosuchfilter) = ok, want miss")
	}
}

func TestPresetsSorted(t *testing.T) {
	names := Presets()
	if len(names) == 0 {
		t.Fatal("no presets registered")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Presets() = %v, want sorted", names)
	}
}

func TestAllPresetsRun(t *testing.T) {
	src := checkerboard(16, 12)

	for _, name := range Presets() {
		t.Run(name, func(t *testing.T) {
			spec, ok := Preset(name)
			if !ok {
				t.Fatalf("Preset(%q) not found", name)
			}

			out, err := Run(src, spec, nil)
			if err != nil {
				t.Fatalf("Run(%q) = %v", name, err)
			}
			if out.Width() != src.Width() || out.Height() != src.Height() {
				t.Errorf("output %dx%d, want %dx%d", out.Width(), out.Height(), src.Width(), src.Height())
			}
		})
	}
}

func TestMoonIsGrayscale(t *testing.T) {
	src := checkerboard(8, 8)

	spec, ok := Preset("moon")
	if !ok {
		t.Fatal("Preset(moon) not found")
	}

	out, err := Run(src, spec, nil)
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}

	for i := 0; i < len(out.Data()); i += 4 {
		r, g, b := out.Data()[i], out.Data()[i+1], out.Data()[i+2]
		if r != g || g != b {
			t.Fatalf("pixel %d = (%d,%d,%d), want gray", i/4, r, g, b)
		}
	}
}
