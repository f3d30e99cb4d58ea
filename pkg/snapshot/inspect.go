package snapshot

import (
	"fmt"

	"github.com/kpango/glg"
	"github.com/rustyoz/svg"
)

// Stats counts drawing instructions found in an SVG document.
type Stats struct {
	Moves  int
	Lines  int
	Curves int
	Closes int
	Paints int
}

// Inspect parses SVG data and counts its drawing instructions.
func Inspect(data []byte) (*Stats, error) {
	parsed, err := svg.ParseSvg(string(data), "", 1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	drawing, errs := parsed.ParseDrawingInstructions()
	if drawing == nil {
		return nil, fmt.Errorf("%w: no drawing instructions", ErrParse)
	}

	return count(drawing, errs)
}

// count reads drawing and errs until both are closed, so the parser goroutine
// never blocks on a full channel. The first error wins.
func count(drawing <-chan *svg.DrawingInstruction, errs <-chan error) (*Stats, error) {
	result := &Stats{}

	var firstErr error
	for drawing != nil || errs != nil {
		select {
		case cmd, ok := <-drawing:
			if !ok {
				drawing = nil
				continue
			}

			if cmd == nil || firstErr != nil {
				continue
			}

			switch cmd.Kind {
			case svg.MoveInstruction:
				result.Moves++
			case svg.LineInstruction:
				result.Lines++
			case svg.CurveInstruction:
				result.Curves++
			case svg.CloseInstruction:
				result.Closes++
			case svg.PaintInstruction:
				result.Paints++
			case svg.CircleInstruction:
				glg.Warn("Circle in snapshot - not expected")
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}

			if err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, firstErr)
	}

	return result, nil
}
