package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l, err := New([]Monitor{
		NewMonitor("DP-1", 0, 0, 1920, 1080),
		NewMonitor("DP-2", 1920, 0, 1080, 1920),
	})
	require.NoError(t, err)
	require.Len(t, l.Monitors, 2)
	require.Equal(t, image.Rect(0, 0, 1920, 1080), l.Monitors[0].Rect)
	require.Equal(t, image.Rect(1920, 0, 3000, 1920), l.Monitors[1].Rect)
	require.Equal(t, image.Rect(0, 0, 3000, 1920), l.Bounds)
}

func TestNewNegativeOrigin(t *testing.T) {
	l, err := New([]Monitor{
		NewMonitor("left", -1920, 0, 1920, 1080),
		NewMonitor("right", 0, -200, 2560, 1440),
	})
	require.NoError(t, err)
	require.Equal(t, image.Rect(-1920, -200, 2560, 1240), l.Bounds)
}

func TestNewInvalid(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrInvalidLayout)

	_, err = New([]Monitor{NewMonitor("", 0, 0, 1920, 1080)})
	require.ErrorIs(t, err, ErrInvalidLayout)

	_, err = New([]Monitor{NewMonitor("DP-1", 0, 0, 0, 1080)})
	require.ErrorIs(t, err, ErrInvalidLayout)

	_, err = New([]Monitor{
		NewMonitor("DP-1", 0, 0, 1920, 1080),
		NewMonitor("DP-1", 1920, 0, 1080, 1920),
	})
	require.ErrorIs(t, err, ErrInvalidLayout)
}

func TestNewClonesMonitors(t *testing.T) {
	monitors := []Monitor{NewMonitor("DP-1", 0, 0, 100, 100)}
	l, err := New(monitors)
	require.NoError(t, err)

	monitors[0].Name = "changed"
	require.Equal(t, "DP-1", l.Monitors[0].Name)
}
