package outputs

import (
	"image"
	"testing"

	"github.com/ItsNotGoodName/x-wallsplit/internal/layout"
	"github.com/stretchr/testify/require"
)

const swayOutputsJSON = `[
  {
    "name": "DP-1",
    "make": "Dell Inc.",
    "model": "U2720Q",
    "serial": "ABC123",
    "active": true,
    "scale": 1.0,
    "rect": { "x": 0, "y": 0, "width": 1920, "height": 1080 },
    "current_mode": { "width": 1920, "height": 1080, "refresh": 59997 }
  },
  {
    "name": "HDMI-A-1",
    "make": "Unknown",
    "model": "Unknown",
    "serial": "Unknown",
    "active": false,
    "rect": { "x": 0, "y": 0, "width": 0, "height": 0 }
  },
  {
    "name": "DP-2",
    "make": "Dell Inc.",
    "model": "P2419H",
    "serial": "DEF456",
    "active": true,
    "scale": 1.0,
    "rect": { "x": 1920, "y": 0, "width": 1080, "height": 1920 },
    "current_mode": { "width": 1080, "height": 1920, "refresh": 60000 }
  }
]`

func TestParseSwayOutputs(t *testing.T) {
	l, err := parseSwayOutputs([]byte(swayOutputsJSON))
	require.NoError(t, err)

	// the disabled output is skipped
	require.Len(t, l.Monitors, 2)
	require.Equal(t, "DP-1", l.Monitors[0].Name)
	require.Equal(t, image.Rect(0, 0, 1920, 1080), l.Monitors[0].Rect)
	require.Equal(t, "DP-2", l.Monitors[1].Name)
	require.Equal(t, image.Rect(1920, 0, 3000, 1920), l.Monitors[1].Rect)
	require.Equal(t, image.Rect(0, 0, 3000, 1920), l.Bounds)
}

func TestParseSwayOutputsInvalid(t *testing.T) {
	_, err := parseSwayOutputs([]byte("not json"))
	require.Error(t, err)

	_, err = parseSwayOutputs([]byte(`[{"name": "DP-1", "active": false, "rect": {"x": 0, "y": 0, "width": 1920, "height": 1080}}]`))
	require.ErrorIs(t, err, layout.ErrInvalidLayout)
}
