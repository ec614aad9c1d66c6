package placement

import (
	"image"

	"github.com/ItsNotGoodName/x-wallsplit/internal/layout"
)

type Class string

const (
	// ClassValid means every monitor is covered at a scale of at most 1.
	ClassValid Class = "valid"
	// ClassUndercovered means at least one monitor is not fully inside the
	// rendered image.
	ClassUndercovered Class = "undercovered"
	// ClassOverscaled means every monitor is covered but the image is
	// stretched beyond its native resolution.
	ClassOverscaled Class = "overscaled"
)

type Coverage struct {
	Class    Class             `json:"class"`
	Monitors []MonitorCoverage `json:"monitors"`
}

type MonitorCoverage struct {
	Monitor layout.Monitor `json:"-"`
	Name    string         `json:"name"`
	Covered bool           `json:"covered"`
}

// Evaluate classifies the transform against the layout. It is a pure
// projection and never blocks anything; export accepts any placement.
func Evaluate(t Transform, l layout.Layout, size image.Point) Coverage {
	rect := t.Rect(size)

	all := true
	monitors := make([]MonitorCoverage, 0, len(l.Monitors))
	for _, m := range l.Monitors {
		covered := rect.Contains(m.Rect)
		all = all && covered
		monitors = append(monitors, MonitorCoverage{
			Monitor: m,
			Name:    m.Name,
			Covered: covered,
		})
	}

	class := ClassValid
	if !all {
		class = ClassUndercovered
	} else if t.Scale > 1 {
		class = ClassOverscaled
	}

	return Coverage{
		Class:    class,
		Monitors: monitors,
	}
}
