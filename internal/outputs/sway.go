package outputs

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/ItsNotGoodName/x-wallsplit/internal/layout"
)

type swayOutput struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
	Rect   struct {
		X      int `json:"x"`
		Y      int `json:"y"`
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"rect"`
}

// Sway reads the monitor layout from swaymsg. Disabled outputs are skipped.
func Sway(ctx context.Context) (layout.Layout, error) {
	b, err := exec.CommandContext(ctx, "swaymsg", "-t", "get_outputs", "-r").Output()
	if err != nil {
		return layout.Layout{}, fmt.Errorf("swaymsg: %w", err)
	}

	return parseSwayOutputs(b)
}

func parseSwayOutputs(b []byte) (layout.Layout, error) {
	var outs []swayOutput
	if err := json.Unmarshal(b, &outs); err != nil {
		return layout.Layout{}, fmt.Errorf("swaymsg outputs: %w", err)
	}

	var monitors []layout.Monitor
	for _, o := range outs {
		if !o.Active {
			continue
		}
		monitors = append(monitors, layout.NewMonitor(o.Name, o.Rect.X, o.Rect.Y, o.Rect.Width, o.Rect.Height))
	}

	return layout.New(monitors)
}
