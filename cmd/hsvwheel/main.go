package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	"github.com/gucio321/hsvwheel/pkg/preset"
	"github.com/gucio321/hsvwheel/pkg/snapshot"
	"github.com/gucio321/hsvwheel/pkg/viewer"
	"github.com/gucio321/hsvwheel/pkg/wheel"
)

type Flags struct {
	Color         string
	Layout        string
	Size          float64
	RingThickness float64
	TriangleInset float64
	Segments      int
	MarkerRadius  float64
	SnapshotPath  string
	Copy          bool
	Debug         bool
	preset        string
	makePreset    bool
}

func main() {
	var f Flags
	flag.StringVar(&f.Color, "c", "#ffffff", "initial color (#rrggbb)")
	flag.StringVar(&f.Layout, "l", "", "built-in layout name (overrides -s, -rt, -ti, -n, -mr)")
	flag.Float64Var(&f.Size, "s", 200, "picker size in pixels")
	flag.Float64Var(&f.RingThickness, "rt", wheel.DefaultRingThickness, "hue ring thickness")
	flag.Float64Var(&f.TriangleInset, "ti", wheel.DefaultTriangleInset, "gap between ring and triangle")
	flag.IntVar(&f.Segments, "n", wheel.DefaultSegments, "ring segments (0 hides the ring)")
	flag.Float64Var(&f.MarkerRadius, "mr", wheel.DefaultMarkerRadius, "sample marker radius")
	flag.StringVar(&f.SnapshotPath, "svg", "", "write SVG snapshot of the final picker state to this file")
	flag.BoolVar(&f.Copy, "copy", false, "keep the picked color (#rrggbb) on the clipboard")
	flag.BoolVar(&f.Debug, "debug", false, "debug logging")
	flag.StringVar(&f.preset, "preset", "", "JSON preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "auto-generate preset")
	flag.Parse()

	if f.makePreset {
		out, err := json.MarshalIndent(f, "", "\t")
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}
		fmt.Println(string(out))
		glg.Infof("Presets generated")
		return
	}

	if f.preset != "" {
		data, err := os.ReadFile(f.preset)
		if err != nil {
			glg.Fatalf("Unable to read preset from %s: %v (use valid file or empty to not use presets)", f.preset, err)
		}

		if err := json.Unmarshal(data, &f); err != nil {
			glg.Fatalf("Unable to parse preset from %s: %v", f.preset, err)
		}
	}

	if !f.Debug {
		glg.Get().SetLevelMode(glg.DEBG, glg.NONE)
	}

	initial, err := wheel.ParseHex(f.Color)
	if err != nil {
		glg.Fatalf("Cannot parse initial color: %v", err)
	}

	cfg, size, err := f.config()
	if err != nil {
		glg.Fatalf("Invalid picker configuration: %v", err)
	}

	var copier *clipboardSink
	if f.Copy {
		if copier, err = newClipboardSink(); err != nil {
			glg.Errorf("clipboard init: %v", err)
		} else {
			copier.OnChange(initial)
		}
	}

	picker := wheel.NewPicker(cfg)
	v := viewer.NewViewer(picker, size, initial).OnChange(onChange(copier))

	ebiten.SetWindowTitle("hsvwheel")
	ebiten.SetWindowSize(int(size.Width)+120, int(size.Height)+20)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		glg.Fatalf("Cannot run viewer: %v", err)
	}

	final := v.Color()
	glg.Infof("final color %v", final)
	fmt.Println(final.Hex())

	if f.SnapshotPath != "" {
		bounds := wheel.Rect{Width: size.Width, Height: size.Height}
		if err := snapshot.Write(f.SnapshotPath, picker.Describe(bounds, final, wheel.HitState{})); err != nil {
			glg.Fatalf("Cannot write snapshot: %v", err)
		}
	}

	if copier != nil {
		copier.hold()
	}
}

// config returns picker configuration and its preferred size.
func (f *Flags) config() (*wheel.Config, wheel.Rect, error) {
	if f.Layout != "" {
		p, err := preset.Get(f.Layout)
		if err != nil {
			return nil, wheel.Rect{}, err
		}

		glg.Infof("using layout %q: %s", p.Name, p.Description)

		cfg, err := p.Config()
		if err != nil {
			return nil, wheel.Rect{}, err
		}

		return cfg, p.Bounds(0, 0), nil
	}

	cfg := wheel.NewConfig().
		RingThickness(f.RingThickness).
		TriangleInset(f.TriangleInset).
		Segments(f.Segments).
		MarkerRadius(f.MarkerRadius)

	if err := cfg.Validate(); err != nil {
		return nil, wheel.Rect{}, err
	}

	return cfg, wheel.Rect{Width: f.Size, Height: f.Size}, nil
}

// onChange logs picked colors and passes them to copier, if any.
func onChange(copier *clipboardSink) func(wheel.HSV) {
	return func(c wheel.HSV) {
		glg.Debugf("picked %s", c.Hex())

		if copier != nil {
			copier.OnChange(c)
		}
	}
}
