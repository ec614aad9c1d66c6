package preview

import (
	"image"
	"math"
)

// View maps canvas coordinates onto window pixels. The canvas bounding box
// top-left lands at the window origin.
type View struct {
	Scale  float64
	Origin image.Point
}

// FitView builds a view for a window of the given size. A positive scale is
// used as-is, otherwise the canvas is fit inside the window.
func FitView(bounds image.Rectangle, width, height int, scale float64) View {
	if scale <= 0 {
		sx := float64(width) / float64(bounds.Dx())
		sy := float64(height) / float64(bounds.Dy())
		scale = math.Min(sx, sy)
	}

	return View{
		Scale:  scale,
		Origin: bounds.Min,
	}
}

func (v View) ToWindow(x, y float64) (float64, float64) {
	return (x - float64(v.Origin.X)) * v.Scale, (y - float64(v.Origin.Y)) * v.Scale
}

func (v View) ToCanvas(x, y float64) (float64, float64) {
	return x/v.Scale + float64(v.Origin.X), y/v.Scale + float64(v.Origin.Y)
}

// WindowRect maps a canvas rectangle onto window pixels.
func (v View) WindowRect(r image.Rectangle) image.Rectangle {
	x0, y0 := v.ToWindow(float64(r.Min.X), float64(r.Min.Y))
	x1, y1 := v.ToWindow(float64(r.Max.X), float64(r.Max.Y))
	return image.Rect(
		int(math.Round(x0)), int(math.Round(y0)),
		int(math.Round(x1)), int(math.Round(y1)),
	)
}

// WindowSize returns the window size that shows the whole canvas at this
// view's scale.
func (v View) WindowSize(bounds image.Rectangle) (int, int) {
	return int(math.Ceil(float64(bounds.Dx()) * v.Scale)),
		int(math.Ceil(float64(bounds.Dy()) * v.Scale))
}
