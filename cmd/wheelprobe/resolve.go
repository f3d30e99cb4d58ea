package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/kpango/glg"

	"github.com/gucio321/hsvwheel/pkg/preset"
	"github.com/gucio321/hsvwheel/pkg/snapshot"
	"github.com/gucio321/hsvwheel/pkg/wheel"
)

type resolveCommand struct {
	layout  string
	color   string
	x, y    float64
	pressed bool
	svgPath string
	pngPath string
}

type resolved struct {
	Input    wheel.HSV     `json:"input"`
	Output   wheel.HSV     `json:"output"`
	Hex      string        `json:"hex"`
	Zone     string        `json:"zone"`
	Center   [2]float64    `json:"center"`
	Radii    [3]float64    `json:"radii"`
	Corners  [3][2]float64 `json:"corners"`
	Marker   [2]float64    `json:"marker"`
	Segments int           `json:"segments"`
}

func (*resolveCommand) Name() string     { return "resolve" }
func (*resolveCommand) Synopsis() string { return "Resolve one pointer event against a picker." }
func (*resolveCommand) Usage() string {
	return `resolve [-l layout] [-c #rrggbb] -x X -y Y [-down=false] [-svg out.svg [-png out.png]]:
	Lay the picker out at (0, 0), apply the pointer and print the result as JSON.
`
}

func (cmd *resolveCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.layout, "l", "default", "built-in layout name")
	f.StringVar(&cmd.color, "c", "#ff0000", "current color (#rrggbb)")
	f.Float64Var(&cmd.x, "x", 0, "pointer X")
	f.Float64Var(&cmd.y, "y", 0, "pointer Y")
	f.BoolVar(&cmd.pressed, "down", true, "primary button held")
	f.StringVar(&cmd.svgPath, "svg", "", "write SVG snapshot of the result to this file")
	f.StringVar(&cmd.pngPath, "png", "", "export the snapshot to PNG with inkscape (needs -svg)")
}

func (cmd *resolveCommand) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := preset.Get(cmd.layout)
	if err != nil {
		glg.Error(err)
		return subcommands.ExitUsageError
	}

	cfg, err := p.Config()
	if err != nil {
		glg.Error(err)
		return subcommands.ExitFailure
	}

	current, err := wheel.ParseHex(cmd.color)
	if err != nil {
		glg.Error(err)
		return subcommands.ExitUsageError
	}

	picker := wheel.NewPicker(cfg)
	pointer := wheel.PointerState{Position: wheel.Pt(cmd.x, cmd.y), Pressed: cmd.pressed}
	out, desc := picker.Update(p.Bounds(0, 0), pointer, current)

	g, c := desc.Geometry, desc.Corners
	data, err := json.MarshalIndent(resolved{
		Input:    current,
		Output:   out,
		Hex:      out.Hex(),
		Zone:     desc.Zone.String(),
		Center:   [2]float64{g.Center.X, g.Center.Y},
		Radii:    [3]float64{g.OuterRadius, g.InnerRadius, g.TriangleRadius},
		Corners:  [3][2]float64{{c.Color.X, c.Color.Y}, {c.White.X, c.White.Y}, {c.Black.X, c.Black.Y}},
		Marker:   [2]float64{desc.Marker.Center.X, desc.Marker.Center.Y},
		Segments: len(desc.Ring),
	}, "", "\t")
	if err != nil {
		glg.Error(err)
		return subcommands.ExitFailure
	}

	fmt.Println(string(data))

	if cmd.svgPath == "" {
		if cmd.pngPath != "" {
			glg.Warn("-png needs -svg, skipping")
		}

		return subcommands.ExitSuccess
	}

	if err := snapshot.Write(cmd.svgPath, desc); err != nil {
		glg.Error(err)
		return subcommands.ExitFailure
	}

	if cmd.pngPath != "" {
		if err := snapshot.ExportPNG(cmd.svgPath, cmd.pngPath); err != nil {
			glg.Error(err)
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}
