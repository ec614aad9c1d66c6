// Package preview renders the composition frame shown while positioning: the
// scaled image over the window background plus one outline per monitor.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/ItsNotGoodName/x-wallsplit/internal/placement"
	"github.com/anthonynsimon/bild/transform"
)

var (
	ColorOK         = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorMissing    = color.RGBA{R: 255, A: 255}
	ColorOverscaled = color.RGBA{R: 255, G: 165, A: 255}
	ColorBackground = color.RGBA{R: 32, G: 32, B: 32, A: 255}
)

// OutlineColor picks the outline color for one monitor: red when the monitor
// is not covered, orange when the whole placement is overscaled.
func OutlineColor(class placement.Class, covered bool) color.RGBA {
	if !covered {
		return ColorMissing
	}
	if class == placement.ClassOverscaled {
		return ColorOverscaled
	}
	return ColorOK
}

func ParseHexColor(s string) (color.RGBA, error) {
	var c color.RGBA
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	c.A = 255
	return c, nil
}

// Renderer composes frames from one source image. The resampled image is
// cached between frames since panning is far more frequent than zooming.
type Renderer struct {
	src        *image.RGBA
	background color.RGBA

	scaled      *image.RGBA
	scaledScale float64
}

func NewRenderer(src *image.RGBA, background color.RGBA) *Renderer {
	return &Renderer{
		src:        src,
		background: background,
	}
}

// Frame renders the composition without outlines into a window-sized raster.
func (r *Renderer) Frame(width, height int, t placement.Transform, view View) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)

	r.ensureScaled(t.Scale * view.Scale)

	wx, wy := view.ToWindow(t.X, t.Y)
	at := image.Pt(int(math.Round(wx)), int(math.Round(wy)))
	draw.Draw(frame, r.scaled.Bounds().Add(at), r.scaled, image.Point{}, draw.Over)
	return frame
}

func (r *Renderer) ensureScaled(scale float64) {
	if r.scaled != nil && r.scaledScale == scale {
		return
	}

	bounds := r.src.Bounds()
	width := int(math.Round(float64(bounds.Dx()) * scale))
	height := int(math.Round(float64(bounds.Dy()) * scale))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	r.scaled = transform.Resize(r.src, width, height, transform.Linear)
	r.scaledScale = scale
}

// StrokeOutlines draws the per-monitor coverage outlines into the frame. The
// window path draws these with the X server instead; this raster variant
// serves headless consumers.
func StrokeOutlines(frame *image.RGBA, cov placement.Coverage, view View) {
	for _, mc := range cov.Monitors {
		strokeRect(frame, view.WindowRect(mc.Monitor.Rect), OutlineColor(cov.Class, mc.Covered))
	}
}

func strokeRect(frame *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(frame.Bounds())
	if r.Empty() {
		return
	}

	for x := r.Min.X; x < r.Max.X; x++ {
		frame.SetRGBA(x, r.Min.Y, c)
		frame.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		frame.SetRGBA(r.Min.X, y, c)
		frame.SetRGBA(r.Max.X-1, y, c)
	}
}
