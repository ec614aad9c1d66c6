package placement

import (
	"image"
	"testing"

	"github.com/ItsNotGoodName/x-wallsplit/internal/core"
	"github.com/ItsNotGoodName/x-wallsplit/internal/layout"
	"github.com/stretchr/testify/require"
)

var testLayout = core.Must2(layout.New([]layout.Monitor{
	layout.NewMonitor("DP-1", 0, 0, 1920, 1080),
	layout.NewMonitor("DP-2", 1920, 0, 1080, 1920),
}))

func TestFitModeNext(t *testing.T) {
	require.Equal(t, FitWidth, FitOriginal.Next())
	require.Equal(t, FitHeight, FitWidth.Next())
	require.Equal(t, FitOriginal, FitHeight.Next())
}

func TestParseFitMode(t *testing.T) {
	mode, err := ParseFitMode("width")
	require.NoError(t, err)
	require.Equal(t, FitWidth, mode)

	_, err = ParseFitMode("cover")
	require.Error(t, err)
}

func TestTransformPan(t *testing.T) {
	tr := Transform{Scale: 1, X: 10, Y: 20}
	tr = tr.Pan(-15, 5)
	require.Equal(t, Transform{Scale: 1, X: -5, Y: 25}, tr)
}

func TestTransformZoomAt(t *testing.T) {
	tr := Transform{Scale: 0.5, X: 40, Y: -60}

	for _, tt := range []struct {
		factor float64
		px, py float64
	}{
		{1.05, 0, 0},
		{0.8, 1920, 540},
		{2.5, -300, 1200},
	} {
		next := tr.ZoomAt(tt.factor, tt.px, tt.py)
		require.InDelta(t, tr.Scale*tt.factor, next.Scale, 1e-9)

		// the canvas point under the pointer maps to the same image point
		require.InDelta(t, (tt.px-tr.X)/tr.Scale, (tt.px-next.X)/next.Scale, 1e-9)
		require.InDelta(t, (tt.py-tr.Y)/tr.Scale, (tt.py-next.Y)/next.Scale, 1e-9)
	}
}

func TestTransformZoomAtBadFactor(t *testing.T) {
	tr := Transform{Scale: 1, X: 5, Y: 5}
	require.Equal(t, tr, tr.ZoomAt(0, 10, 10))
	require.Equal(t, tr, tr.ZoomAt(-1, 10, 10))
}

func TestTransformReset(t *testing.T) {
	l := core.Must2(layout.New([]layout.Monitor{
		layout.NewMonitor("left", -1920, -200, 1920, 1080),
		layout.NewMonitor("right", 0, 0, 2560, 1440),
	}))

	tr := Transform{Scale: 0.75, X: 123, Y: 456}
	tr = tr.Reset(l)
	require.Equal(t, Transform{Scale: 0.75, X: -1920, Y: -200}, tr)
}

func TestFit(t *testing.T) {
	size := image.Pt(6000, 2000)

	tr := Fit(FitOriginal, testLayout, size)
	require.Equal(t, Transform{Scale: 1, X: 0, Y: 0}, tr)

	tr = Fit(FitWidth, testLayout, size)
	require.InDelta(t, 0.5, tr.Scale, 1e-9)
	require.InDelta(t, 3000, tr.Rect(size).W, 1e-9)

	tr = Fit(FitHeight, testLayout, size)
	require.InDelta(t, 0.96, tr.Scale, 1e-9)
	require.InDelta(t, 1920, tr.Rect(size).H, 1e-9)
}

func TestFitAnchorsAtBounds(t *testing.T) {
	l := core.Must2(layout.New([]layout.Monitor{
		layout.NewMonitor("left", -1920, -200, 1920, 1080),
		layout.NewMonitor("right", 0, 0, 2560, 1440),
	}))

	tr := Fit(FitWidth, l, image.Pt(8960, 1000))
	require.InDelta(t, 0.5, tr.Scale, 1e-9)
	require.Equal(t, -1920.0, tr.X)
	require.Equal(t, -200.0, tr.Y)
}

func TestRectContains(t *testing.T) {
	r := Transform{Scale: 0.5, X: 100, Y: 50}.Rect(image.Pt(2000, 1000))
	require.Equal(t, Rect{X: 100, Y: 50, W: 1000, H: 500}, r)

	require.True(t, r.Contains(image.Rect(100, 50, 1100, 550)))
	require.True(t, r.Contains(image.Rect(500, 200, 600, 300)))
	require.False(t, r.Contains(image.Rect(99, 50, 1100, 550)))
	require.False(t, r.Contains(image.Rect(100, 50, 1101, 550)))
}
