//go:build !noebiten

package preview

import (
	"context"
	"errors"
	"testing"

	"github.com/gogpu/gradient"
	"github.com/gogpu/gradient/raster"
)

func TestNewDefaults(t *testing.T) {
	w := New(Config{Width: -1})
	if gw, gh := w.Layout(1000, 1000); gw != 480 || gh != 320 {
		t.Errorf("Layout() = %dx%d, want 480x320", gw, gh)
	}
	if w.cfg.Title != "gradient" {
		t.Errorf("title = %q", w.cfg.Title)
	}
}

func TestSetDescriptorQueuesImage(t *testing.T) {
	w := New(Config{Width: 40, Height: 20})
	d, err := gradient.NewDescriptor(gradient.DefaultStops(), gradient.DefaultRadial())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.SetDescriptor(d); err != nil {
		t.Fatal(err)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending == nil {
		t.Fatal("no pending image")
	}
	if b := w.pending.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("pending bounds = %v, want 40x20", b)
	}
}

func TestSetDescriptorError(t *testing.T) {
	w := New(Config{Width: 40, Height: 20})
	if err := w.SetDescriptor(nil); !errors.Is(err, gradient.ErrEmptyStopList) {
		t.Errorf("SetDescriptor(nil) error = %v", err)
	}
	big := New(Config{Width: raster.MaxSize + 1, Height: 1})
	d, _ := gradient.NewDescriptor(gradient.DefaultStops(), gradient.DefaultLinear())
	if err := big.SetDescriptor(d); !errors.Is(err, raster.ErrInvalidSize) {
		t.Errorf("oversized SetDescriptor error = %v", err)
	}
}

func TestUpdateStopsOnCancel(t *testing.T) {
	w := New(DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	w.ctx = ctx
	if err := w.Update(); err != nil {
		t.Fatalf("Update() = %v before cancel", err)
	}
	cancel()
	if err := w.Update(); !errors.Is(err, ErrClosed) {
		t.Errorf("Update() = %v after cancel, want ErrClosed", err)
	}
}
