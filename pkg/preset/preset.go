// Package preset keeps named picker layouts.
package preset

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gucio321/hsvwheel/pkg/wheel"
)

//go:embed presets.json
var presets []byte

var ErrNotFound = errors.New("preset not found")

// Preset describes picker size and layout.
type Preset struct {
	Name        string
	Description string

	// Width and Height are the preferred picker bounds size.
	Width, Height float64

	RingThickness float64
	TriangleInset float64
	Segments      int
	MarkerRadius  float64
}

// Decode parses a JSON list of presets (format of presets.json).
func Decode(data []byte) ([]Preset, error) {
	var result []Preset
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decoding presets: %w", err)
	}

	return result, nil
}

// All returns built-in presets.
func All() ([]Preset, error) {
	return Decode(presets)
}

// Names returns names of built-in presets.
func Names() ([]string, error) {
	all, err := All()
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(all))
	for _, p := range all {
		result = append(result, p.Name)
	}

	return result, nil
}

// Get looks up built-in preset by name.
func Get(name string) (*Preset, error) {
	all, err := All()
	if err != nil {
		return nil, err
	}

	for _, p := range all {
		if p.Name == name {
			return &p, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Config creates validated wheel configuration from p.
func (p *Preset) Config() (*wheel.Config, error) {
	cfg := wheel.NewConfig().
		RingThickness(p.RingThickness).
		TriangleInset(p.TriangleInset).
		Segments(p.Segments).
		MarkerRadius(p.MarkerRadius)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}

	return cfg, nil
}

// Bounds returns p's preferred bounds placed at (x, y).
func (p *Preset) Bounds(x, y float64) wheel.Rect {
	return wheel.Rect{X: x, Y: y, Width: p.Width, Height: p.Height}
}
