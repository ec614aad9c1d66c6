package outputs

import (
	"image"
	"testing"

	"github.com/ItsNotGoodName/x-wallsplit/internal/config"
	"github.com/ItsNotGoodName/x-wallsplit/internal/layout"
	"github.com/stretchr/testify/require"
)

func TestFromConfig(t *testing.T) {
	cfg := config.Config{
		Layouts: []config.Layout{
			{
				Name: "desk",
				Monitors: []config.Monitor{
					{Name: "DP-1", X: 0, Y: 0, W: 1920, H: 1080},
					{Name: "DP-2", X: 1920, Y: 0, W: 1080, H: 1920},
				},
			},
		},
	}

	l, err := FromConfig(cfg, "desk")
	require.NoError(t, err)
	require.Len(t, l.Monitors, 2)
	require.Equal(t, image.Rect(0, 0, 3000, 1920), l.Bounds)

	_, err = FromConfig(cfg, "couch")
	require.ErrorIs(t, err, layout.ErrInvalidLayout)
}
