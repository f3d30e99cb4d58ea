package main

import (
	"testing"
	"time"

	"github.com/gucio321/hsvwheel/pkg/wheel"
)

type fakeClipboard struct {
	written  []string
	replaced chan struct{}
}

func (f *fakeClipboard) write(data []byte) <-chan struct{} {
	f.written = append(f.written, string(data))
	f.replaced = make(chan struct{})

	return f.replaced
}

func TestOnChange_clipboard(t *testing.T) {
	fake := &fakeClipboard{}
	copier := &clipboardSink{write: fake.write}
	cb := onChange(copier)

	cb(wheel.HSV{Hue: 0, Saturation: 1, Value: 1})
	cb(wheel.HSV{Hue: 0.001, Saturation: 1, Value: 1}) // same hex while dragging
	cb(wheel.HSV{Hue: 120, Saturation: 1, Value: 1})

	expected := []string{"#ff0000", "#00ff00"}
	if len(fake.written) != len(expected) {
		t.Fatalf("expected writes %v, got %v", expected, fake.written)
	}

	for i := range expected {
		if fake.written[i] != expected[i] {
			t.Errorf("write %d: expected %s, got %s", i, expected[i], fake.written[i])
		}
	}

	held := make(chan struct{})
	go func() {
		copier.hold()
		close(held)
	}()

	select {
	case <-held:
		t.Fatal("hold returned while the color is still on the clipboard")
	case <-time.After(50 * time.Millisecond):
	}

	close(fake.replaced)

	select {
	case <-held:
	case <-time.After(5 * time.Second):
		t.Fatal("hold did not return after clipboard was replaced")
	}
}

func TestOnChange_noClipboard(t *testing.T) {
	// must not panic without -copy
	onChange(nil)(wheel.HSV{Hue: 10, Saturation: 0.5, Value: 0.5})

	(&clipboardSink{}).hold()
}
