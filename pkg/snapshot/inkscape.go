package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/kpango/glg"
)

// ExportPNG converts SVG snapshot to PNG with inkscape.
// Inkscape must be installed. Existing pngPath is removed first,
// so a PNG left by an earlier run never passes for this export.
func ExportPNG(svgPath, pngPath string) error {
	if err := os.Remove(pngPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: cannot remove old %s: %w", ErrInkscape, pngPath, err)
	}

	if _, err := os.Stat(svgPath); err != nil {
		return fmt.Errorf("%w: %w", ErrInkscape, err)
	}

	proxy := inkscape.NewProxy(inkscape.Verbose(true))
	if err := proxy.Run(); err != nil {
		return fmt.Errorf("%w: cannot run inkscape: %w", ErrInkscape, err)
	}

	defer proxy.Close()

	glg.Infof("running inkscape export %s -> %s", svgPath, pngPath)
	if _, err := proxy.RawCommands(
		fmt.Sprintf("file-open:%s", svgPath),
		fmt.Sprintf("export-filename:%s", pngPath),
		"export-type:png",
		"export-do",
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInkscape, err)
	}

	if _, err := os.Stat(pngPath); err != nil {
		return fmt.Errorf("%w: %s not written: %w", ErrInkscape, pngPath, err)
	}

	glg.Info("inkscape done.")

	return nil
}
