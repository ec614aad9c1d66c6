// Package placement holds the geometry of an image placed over a monitor
// layout: the pan/zoom transform, the fit presets, and coverage evaluation.
package placement

import (
	"fmt"
	"image"

	"github.com/ItsNotGoodName/x-wallsplit/internal/layout"
)

type FitMode string

const (
	// FitOriginal shows the image at its native resolution.
	FitOriginal FitMode = "original"
	// FitWidth scales the image so it spans the canvas width.
	FitWidth FitMode = "width"
	// FitHeight scales the image so it spans the canvas height.
	FitHeight FitMode = "height"
)

func ParseFitMode(s string) (FitMode, error) {
	switch mode := FitMode(s); mode {
	case FitOriginal, FitWidth, FitHeight:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown fit mode %q", s)
	}
}

// Next returns the successor in the original -> width -> height cycle.
func (m FitMode) Next() FitMode {
	switch m {
	case FitOriginal:
		return FitWidth
	case FitWidth:
		return FitHeight
	default:
		return FitOriginal
	}
}

// Transform places the source image on the canvas. X and Y are the image
// top-left in canvas coordinates, Scale is the zoom factor where 1 means
// native resolution. Scale is always positive.
type Transform struct {
	Scale float64 `json:"scale"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

func (t Transform) Pan(dx, dy float64) Transform {
	t.X += dx
	t.Y += dy
	return t
}

// ZoomAt multiplies the scale by factor while keeping the canvas point
// (px, py) anchored to the same image point.
func (t Transform) ZoomAt(factor, px, py float64) Transform {
	if factor <= 0 {
		return t
	}

	scale := t.Scale * factor
	t.X = px - (px-t.X)/t.Scale*scale
	t.Y = py - (py-t.Y)/t.Scale*scale
	t.Scale = scale
	return t
}

// Reset moves the image top-left back to the canvas top-left without touching
// the scale.
func (t Transform) Reset(l layout.Layout) Transform {
	t.X = float64(l.Bounds.Min.X)
	t.Y = float64(l.Bounds.Min.Y)
	return t
}

// Fit returns the transform for a fit preset. The image anchors at the canvas
// top-left on the axis the preset does not constrain.
func Fit(mode FitMode, l layout.Layout, size image.Point) Transform {
	scale := 1.0
	switch mode {
	case FitWidth:
		scale = float64(l.Bounds.Dx()) / float64(size.X)
	case FitHeight:
		scale = float64(l.Bounds.Dy()) / float64(size.Y)
	}

	return Transform{
		Scale: scale,
		X:     float64(l.Bounds.Min.X),
		Y:     float64(l.Bounds.Min.Y),
	}
}

// Rect is the rendered image rectangle in canvas coordinates.
func (t Transform) Rect(size image.Point) Rect {
	return Rect{
		X: t.X,
		Y: t.Y,
		W: float64(size.X) * t.Scale,
		H: float64(size.Y) * t.Scale,
	}
}

type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func (r Rect) Contains(o image.Rectangle) bool {
	return r.X <= float64(o.Min.X) && r.Y <= float64(o.Min.Y) &&
		r.X+r.W >= float64(o.Max.X) && r.Y+r.H >= float64(o.Max.Y)
}
