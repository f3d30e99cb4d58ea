package main

import (
	"github.com/kpango/glg"
	"golang.design/x/clipboard"

	"github.com/gucio321/hsvwheel/pkg/wheel"
)

// clipboardSink puts every picked color on the clipboard while the viewer runs.
// On X11 the content lives only as long as this process does.
type clipboardSink struct {
	write    func([]byte) <-chan struct{}
	last     string
	replaced <-chan struct{}
}

func newClipboardSink() (*clipboardSink, error) {
	if err := clipboard.Init(); err != nil {
		return nil, err
	}

	return &clipboardSink{
		write: func(data []byte) <-chan struct{} {
			return clipboard.Write(clipboard.FmtText, data)
		},
	}, nil
}

// OnChange copies c as #rrggbb (dragging repeats the same hex a lot; those are skipped).
func (s *clipboardSink) OnChange(c wheel.HSV) {
	hex := c.Hex()
	if hex == s.last {
		return
	}

	s.last = hex
	s.replaced = s.write([]byte(hex))
	glg.Debugf("%s copied to clipboard", hex)
}

// hold blocks until another application takes the clipboard over.
func (s *clipboardSink) hold() {
	if s.replaced == nil {
		return
	}

	glg.Infof("%s is on the clipboard; keeping it until something else is copied (Ctrl+C to quit)", s.last)
	<-s.replaced
}
