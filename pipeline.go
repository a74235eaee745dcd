package filters

import "fmt"

// OverlayFactory produces an overlay buffer of the requested size.
// Implementations are collaborators owned by the caller: gradient
// rasterizers, texture loaders, solid fills.
type OverlayFactory func(width, height int) (*Pixmap, error)

// Step is one stage of a filter: either a composite against an overlay or
// a color matrix adjustment. The set of step kinds is closed.
type Step interface {
	run(p *Pixmap, fallback OverlayFactory) (*Pixmap, error)
}

// CompositeStep blends an overlay onto the current buffer.
type CompositeStep struct {
	// Overlay produces this step's overlay buffer, sized to the current
	// buffer. When nil, the factory passed to Run is used instead.
	Overlay OverlayFactory

	// Mode selects the blend formula.
	Mode Mode
}

func (s CompositeStep) run(p *Pixmap, fallback OverlayFactory) (*Pixmap, error) {
	factory := s.Overlay
	if factory == nil {
		factory = fallback
	}
	if factory == nil {
		return nil, fmt.Errorf("filters: composite step has no overlay source")
	}

	overlay, err := factory(p.width, p.height)
	if err != nil {
		return nil, err
	}
	return Composite(p, overlay, s.Mode)
}

// ColorMatrixStep adjusts brightness, contrast, saturation, and hue.
// The zero value is a no-op.
type ColorMatrixStep struct {
	Brightness float32 // -100..100, 0 neutral
	Contrast   float32 // -100..100, 0 neutral
	Saturation float32 // -100..100, 0 neutral
	HueDegrees float32 // 0..360, 0 neutral
}

func (s ColorMatrixStep) run(p *Pixmap, _ OverlayFactory) (*Pixmap, error) {
	m := BuildMatrix(s.Brightness, s.Contrast, s.Saturation, s.HueDegrees)
	return m.Apply(p), nil
}

// FilterSpec is a named, ordered sequence of steps that together produce
// a recognizable visual style.
type FilterSpec struct {
	Name  string
	Steps []Step
}

// Run executes the spec's steps in order, threading the buffer from one
// step to the next, and returns the final buffer. The source is never
// mutated; an empty step list returns it unchanged.
//
// overlays supplies overlay buffers for composite steps that do not carry
// their own factory; it may be nil when every composite step does.
//
// Run fails fast: the first failing step aborts the remaining steps and
// its error is returned, wrapped with the step index. Identical inputs
// always produce bit-identical output.
func Run(source *Pixmap, spec FilterSpec, overlays OverlayFactory) (*Pixmap, error) {
	log := Logger()

	cur := source
	for i, step := range spec.Steps {
		next, err := step.run(cur, overlays)
		if err != nil {
			return nil, fmt.Errorf("filters: %q step %d: %w", spec.Name, i, err)
		}
		log.Debug("filter step applied",
			"filter", spec.Name,
			"step", i,
			"width", next.width,
			"height", next.height)
		cur = next
	}
	return cur, nil
}
