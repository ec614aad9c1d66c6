// Package session is the interaction state machine. It consumes abstract
// pointer and action events and owns the image transform; the windowing layer
// only translates raw input into these events and renders the result.
package session

import (
	"image"
	"math"

	"github.com/ItsNotGoodName/x-wallsplit/internal/layout"
	"github.com/ItsNotGoodName/x-wallsplit/internal/placement"
)

const DefaultZoomStep = 1.05

// Event is an abstract input. Coordinates are canvas coordinates.
type Event interface{}

type (
	PointerDown struct {
		X        float64
		Y        float64
		AxisLock bool
	}
	PointerMove struct {
		X float64
		Y float64
	}
	PointerUp struct{}
	// Wheel zooms around the pointer. In means zoom in.
	Wheel struct {
		X  float64
		Y  float64
		In bool
	}
	CycleFit struct{}
	Reset    struct{}
	Confirm  struct{}
	Cancel   struct{}
)

type DragState string

const (
	DragIdle       DragState = "idle"
	DragMoving     DragState = "dragging"
	DragAxisLocked DragState = "axis-locked"
)

type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeCancelled Outcome = "cancelled"
)

type Session struct {
	Layout layout.Layout
	Size   image.Point

	Transform placement.Transform
	Fit       placement.FitMode
	Coverage  placement.Coverage
	Drag      DragState
	Outcome   Outcome

	ZoomStep float64

	// drag bookkeeping in canvas coordinates
	startX, startY   float64
	originX, originY float64
	lastX, lastY     float64
}

func New(l layout.Layout, size image.Point, fit placement.FitMode, zoomStep float64) Session {
	if zoomStep <= 1 {
		zoomStep = DefaultZoomStep
	}

	s := Session{
		Layout:   l,
		Size:     size,
		Fit:      fit,
		Drag:     DragIdle,
		ZoomStep: zoomStep,
	}
	s.Transform = placement.Fit(fit, l, size)
	s.Coverage = placement.Evaluate(s.Transform, l, size)
	return s
}

// Update applies one event and returns the next session. Coverage is
// recomputed after every event so it can never go stale.
func (s Session) Update(ev Event) Session {
	switch ev := ev.(type) {
	case PointerDown:
		if ev.AxisLock {
			s.Drag = DragAxisLocked
		} else {
			s.Drag = DragMoving
		}
		s.startX, s.startY = ev.X, ev.Y
		s.lastX, s.lastY = ev.X, ev.Y
		s.originX, s.originY = s.Transform.X, s.Transform.Y
	case PointerMove:
		switch s.Drag {
		case DragMoving:
			s.Transform = s.Transform.Pan(ev.X-s.lastX, ev.Y-s.lastY)
		case DragAxisLocked:
			// The dominant axis is whichever accumulated more travel since
			// drag start; the other axis stays pinned at its start value.
			dx, dy := ev.X-s.startX, ev.Y-s.startY
			if math.Abs(dx) >= math.Abs(dy) {
				s.Transform.X = s.originX + dx
				s.Transform.Y = s.originY
			} else {
				s.Transform.X = s.originX
				s.Transform.Y = s.originY + dy
			}
		default:
			return s
		}
		s.lastX, s.lastY = ev.X, ev.Y
	case PointerUp:
		s.Drag = DragIdle
	case Wheel:
		factor := s.ZoomStep
		if !ev.In {
			factor = 1 / s.ZoomStep
		}

		before := s.Transform
		s.Transform = s.Transform.ZoomAt(factor, ev.X, ev.Y)

		// Zooming mid-drag shifts the offset; rebase the drag origin by the
		// same shift so the axis lock stays relative to what the user sees.
		if s.Drag != DragIdle {
			s.originX += s.Transform.X - before.X
			s.originY += s.Transform.Y - before.Y
		}
	case CycleFit:
		s.Fit = s.Fit.Next()
		s.Transform = placement.Fit(s.Fit, s.Layout, s.Size)
		s = s.rebaseDrag()
	case Reset:
		s.Fit = placement.FitOriginal
		s.Transform = s.Transform.Reset(s.Layout)
		s = s.rebaseDrag()
	case Confirm:
		s.Outcome = OutcomeConfirmed
	case Cancel:
		s.Outcome = OutcomeCancelled
	}

	s.Coverage = placement.Evaluate(s.Transform, s.Layout, s.Size)
	return s
}

func (s Session) Done() bool {
	return s.Outcome != OutcomeNone
}

// rebaseDrag restarts drag accumulation after the transform jumped to an
// absolute position mid-drag.
func (s Session) rebaseDrag() Session {
	if s.Drag == DragIdle {
		return s
	}
	s.originX, s.originY = s.Transform.X, s.Transform.Y
	s.startX, s.startY = s.lastX, s.lastY
	return s
}

// Snapshot is the read-only view broadcast to observers.
type Snapshot struct {
	Transform placement.Transform `json:"transform"`
	Fit       placement.FitMode   `json:"fit"`
	Drag      DragState           `json:"drag"`
	Coverage  placement.Coverage  `json:"coverage"`
}

func (s Session) Snapshot() Snapshot {
	return Snapshot{
		Transform: s.Transform,
		Fit:       s.Fit,
		Drag:      s.Drag,
		Coverage:  s.Coverage,
	}
}
