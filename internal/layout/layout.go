package layout

import (
	"errors"
	"fmt"
	"image"
	"slices"
)

var ErrInvalidLayout = errors.New("invalid layout")

// Monitor is a single output rectangle in canvas coordinates. Name doubles as
// the output file stem during export.
type Monitor struct {
	Name string
	Rect image.Rectangle
}

func NewMonitor(name string, x, y, width, height int) Monitor {
	return Monitor{
		Name: name,
		Rect: image.Rect(x, y, x+width, y+height),
	}
}

// Layout is the immutable monitor set for a session.
type Layout struct {
	Monitors []Monitor
	// Bounds is the minimal rectangle enclosing every monitor.
	Bounds image.Rectangle
}

func New(monitors []Monitor) (Layout, error) {
	if len(monitors) == 0 {
		return Layout{}, fmt.Errorf("%w: no monitors", ErrInvalidLayout)
	}

	seen := make(map[string]struct{}, len(monitors))
	bounds := monitors[0].Rect
	for _, m := range monitors {
		if m.Name == "" {
			return Layout{}, fmt.Errorf("%w: monitor with empty name", ErrInvalidLayout)
		}
		if _, ok := seen[m.Name]; ok {
			return Layout{}, fmt.Errorf("%w: duplicate monitor %q", ErrInvalidLayout, m.Name)
		}
		seen[m.Name] = struct{}{}

		if m.Rect.Dx() <= 0 || m.Rect.Dy() <= 0 {
			return Layout{}, fmt.Errorf("%w: monitor %q has size %dx%d", ErrInvalidLayout, m.Name, m.Rect.Dx(), m.Rect.Dy())
		}
		bounds = bounds.Union(m.Rect)
	}

	return Layout{
		Monitors: slices.Clone(monitors),
		Bounds:   bounds,
	}, nil
}
