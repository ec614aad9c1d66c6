// Package outputs resolves the host monitor layout. Resolution order is a
// named layout from the config, then sway, then plain display bounds.
package outputs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ItsNotGoodName/x-wallsplit/internal/config"
	"github.com/ItsNotGoodName/x-wallsplit/internal/layout"
	"github.com/kbinani/screenshot"
)

func Detect(ctx context.Context) (layout.Layout, error) {
	l, err := Sway(ctx)
	if err == nil {
		return l, nil
	}
	slog.Debug("Sway detection failed, falling back to display bounds", "error", err)

	return Displays()
}

// Displays builds a layout from the active display bounds. Monitors are named
// display-0, display-1, ... in display order.
func Displays() (layout.Layout, error) {
	n := screenshot.NumActiveDisplays()

	monitors := make([]layout.Monitor, 0, n)
	for i := 0; i < n; i++ {
		monitors = append(monitors, layout.Monitor{
			Name: fmt.Sprintf("display-%d", i),
			Rect: screenshot.GetDisplayBounds(i),
		})
	}

	return layout.New(monitors)
}

// FromConfig looks up a named manual layout.
func FromConfig(cfg config.Config, name string) (layout.Layout, error) {
	for _, l := range cfg.Layouts {
		if l.Name != name {
			continue
		}

		monitors := make([]layout.Monitor, 0, len(l.Monitors))
		for _, m := range l.Monitors {
			monitors = append(monitors, layout.NewMonitor(m.Name, m.X, m.Y, m.W, m.H))
		}
		return layout.New(monitors)
	}

	return layout.Layout{}, fmt.Errorf("%w: layout %q not found in config", layout.ErrInvalidLayout, name)
}
