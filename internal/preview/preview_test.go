package preview

import (
	"image"
	"image/color"
	"testing"

	"github.com/ItsNotGoodName/x-wallsplit/internal/core"
	"github.com/ItsNotGoodName/x-wallsplit/internal/layout"
	"github.com/ItsNotGoodName/x-wallsplit/internal/placement"
	"github.com/stretchr/testify/require"
)

func TestFitView(t *testing.T) {
	bounds := image.Rect(0, 0, 3000, 1920)

	v := FitView(bounds, 1500, 1500, 0)
	require.InDelta(t, 0.5, v.Scale, 1e-9)
	require.Equal(t, bounds.Min, v.Origin)

	width, height := v.WindowSize(bounds)
	require.Equal(t, 1500, width)
	require.Equal(t, 960, height)

	// an explicit scale wins over fitting
	v = FitView(bounds, 100, 100, 0.25)
	require.Equal(t, 0.25, v.Scale)
}

func TestViewRoundTrip(t *testing.T) {
	v := FitView(image.Rect(-100, -50, 400, 250), 1000, 600, 0)
	require.InDelta(t, 2, v.Scale, 1e-9)

	wx, wy := v.ToWindow(0, 0)
	require.InDelta(t, 200, wx, 1e-9)
	require.InDelta(t, 100, wy, 1e-9)

	cx, cy := v.ToCanvas(wx, wy)
	require.InDelta(t, 0, cx, 1e-9)
	require.InDelta(t, 0, cy, 1e-9)
}

func TestViewWindowRect(t *testing.T) {
	v := FitView(image.Rect(-100, -50, 400, 250), 1000, 600, 0)
	require.Equal(t, image.Rect(0, 0, 1000, 600), v.WindowRect(image.Rect(-100, -50, 400, 250)))
	require.Equal(t, image.Rect(200, 100, 400, 300), v.WindowRect(image.Rect(0, 0, 100, 100)))
}

func TestOutlineColor(t *testing.T) {
	require.Equal(t, ColorOK, OutlineColor(placement.ClassValid, true))
	require.Equal(t, ColorOK, OutlineColor(placement.ClassUndercovered, true))
	require.Equal(t, ColorMissing, OutlineColor(placement.ClassUndercovered, false))
	require.Equal(t, ColorOverscaled, OutlineColor(placement.ClassOverscaled, true))
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#202020")
	require.NoError(t, err)
	require.Equal(t, color.RGBA{R: 32, G: 32, B: 32, A: 255}, c)

	c, err = ParseHexColor("#FFA500")
	require.NoError(t, err)
	require.Equal(t, color.RGBA{R: 255, G: 165, B: 0, A: 255}, c)

	_, err = ParseHexColor("red")
	require.Error(t, err)
}

func TestRendererFrame(t *testing.T) {
	fill := color.RGBA{R: 200, G: 30, B: 30, A: 255}
	src := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			src.SetRGBA(x, y, fill)
		}
	}

	r := NewRenderer(src, ColorBackground)
	view := View{Scale: 1}

	frame := r.Frame(100, 100, placement.Transform{Scale: 1, X: 10, Y: 20}, view)
	require.Equal(t, image.Rect(0, 0, 100, 100), frame.Bounds())
	require.Equal(t, ColorBackground, frame.RGBAAt(5, 5))
	require.Equal(t, fill, frame.RGBAAt(10, 20))
	require.Equal(t, fill, frame.RGBAAt(49, 59))
	require.Equal(t, ColorBackground, frame.RGBAAt(50, 60))
}

func TestRendererScaledCache(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 40))
	r := NewRenderer(src, ColorBackground)
	view := View{Scale: 1}

	r.Frame(100, 100, placement.Transform{Scale: 0.5}, view)
	first := r.scaled
	require.Equal(t, image.Rect(0, 0, 20, 20), first.Bounds())

	// panning does not resample
	r.Frame(100, 100, placement.Transform{Scale: 0.5, X: 30, Y: 30}, view)
	require.Same(t, first, r.scaled)

	// zooming does
	r.Frame(100, 100, placement.Transform{Scale: 0.6}, view)
	require.NotSame(t, first, r.scaled)
}

func TestStrokeOutlines(t *testing.T) {
	l := core.Must2(layout.New([]layout.Monitor{
		layout.NewMonitor("DP-1", 0, 0, 50, 50),
	}))
	cov := placement.Evaluate(placement.Transform{Scale: 1}, l, image.Pt(50, 50))
	require.Equal(t, placement.ClassValid, cov.Class)

	frame := image.NewRGBA(image.Rect(0, 0, 100, 100))
	StrokeOutlines(frame, cov, View{Scale: 1})

	require.Equal(t, ColorOK, frame.RGBAAt(0, 0))
	require.Equal(t, ColorOK, frame.RGBAAt(49, 0))
	require.Equal(t, ColorOK, frame.RGBAAt(0, 49))
	require.Equal(t, ColorOK, frame.RGBAAt(49, 49))
	require.Equal(t, ColorOK, frame.RGBAAt(25, 49))
	require.Equal(t, color.RGBA{}, frame.RGBAAt(25, 25))
	require.Equal(t, color.RGBA{}, frame.RGBAAt(50, 50))
}
