// Package wheel implements a HSV color picker: a hue ring around a triangle
// with saturated color, white and black corners.
//
// Picker holds no color state. Caller keeps the HSV value, passes it every
// frame and stores what Update returns:
//
//	color, desc = picker.Update(bounds, input, color)
//	render.Draw(screen, desc)
package wheel

// Picker turns pointer input into HSV and HSV into a RenderDescriptor.
type Picker struct {
	cfg *Config
}

// NewPicker creates a Picker. nil cfg means NewConfig().
func NewPicker(cfg *Config) *Picker {
	if cfg == nil {
		cfg = NewConfig()
	}

	return &Picker{cfg: cfg}
}

// Config returns picker's configuration.
func (p *Picker) Config() *Config {
	return p.cfg
}

// Update polls in once, resolves current and describes the result.
func (p *Picker) Update(bounds Rect, in Input, current HSV) (HSV, *RenderDescriptor) {
	pointer, pressed := in.PointerPosition(), in.PrimaryPressed()
	result, hit := p.ResolveHit(bounds, pointer, pressed, current)

	return result, p.Describe(bounds, result, hit)
}
