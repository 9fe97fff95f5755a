// Package preview shows a gradient in a desktop window and swaps in new
// versions while it is open.
package preview

import (
	"context"
	"errors"
	"image"
	"image/color"
	"slices"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/gradient"
	"github.com/gogpu/gradient/raster"
)

// ErrClosed ends the game loop when the window's context is cancelled.
var ErrClosed = errors.New("preview: window closed")

var backdrop = color.NRGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}

// Config sizes and titles the window. Options are passed to the
// rasterizer for every descriptor.
type Config struct {
	Width, Height int
	Title         string
	Options       []raster.Option
}

// DefaultConfig returns a 480x320 window.
func DefaultConfig() Config {
	return Config{Width: 480, Height: 320, Title: "gradient"}
}

// Window implements ebiten.Game. SetDescriptor may be called from any
// goroutine; the new image is uploaded on the next Update.
type Window struct {
	cfg     Config
	mu      sync.Mutex
	pending *image.NRGBA
	img     *ebiten.Image
	ctx     context.Context
}

// New returns a window for cfg. Non-positive sizes fall back to the
// defaults.
func New(cfg Config) *Window {
	def := DefaultConfig()
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	return &Window{cfg: cfg}
}

// SetDescriptor rasterizes d at the window size and queues it for
// display. opts are applied after the configured options. A later call
// replaces an image that was not yet shown.
func (w *Window) SetDescriptor(d *gradient.Descriptor, opts ...raster.Option) error {
	img, err := raster.Render(d, w.cfg.Width, w.cfg.Height, append(slices.Clone(w.cfg.Options), opts...)...)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.pending = img
	w.mu.Unlock()
	return nil
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.ctx != nil {
		select {
		case <-w.ctx.Done():
			return ErrClosed
		default:
		}
	}
	if w.pending != nil {
		if w.img != nil {
			w.img.Deallocate()
		}
		w.img = ebiten.NewImageFromImage(w.pending)
		w.pending = nil
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()

	screen.Fill(backdrop)
	if w.img != nil {
		screen.DrawImage(w.img, nil)
	}
}

// Layout implements ebiten.Game. The logical size is fixed; ebiten
// scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.cfg.Width, w.cfg.Height
}

// Run opens the window and blocks until it is closed or ctx is done.
func (w *Window) Run(ctx context.Context) error {
	w.mu.Lock()
	w.ctx = ctx
	w.mu.Unlock()

	ebiten.SetWindowSize(w.cfg.Width, w.cfg.Height)
	ebiten.SetWindowTitle(w.cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	gradient.Logger().Info("preview window opened", "width", w.cfg.Width, "height", w.cfg.Height)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ErrClosed) {
		return err
	}
	return nil
}
