package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/ItsNotGoodName/x-wallsplit/internal/bus"
	"github.com/ItsNotGoodName/x-wallsplit/internal/placement"
	"github.com/ItsNotGoodName/x-wallsplit/internal/preview"
	"github.com/ItsNotGoodName/x-wallsplit/internal/session"
	"github.com/ItsNotGoodName/x-wallsplit/internal/xcursor"
	"github.com/ItsNotGoodName/x-wallsplit/internal/xwm"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var ErrCancelled = errors.New("session cancelled")

const title = "x-wallsplit"

type Model struct {
	Session  session.Session
	Renderer *preview.Renderer
	// Result receives the confirmed snapshot when the session ends.
	Result *session.Snapshot
	// ViewScale fixes the canvas-to-window factor. 0 fits the window.
	ViewScale float64

	win        xwm.Window
	view       preview.View
	cursorDrag xproto.Cursor
	class      *Signal[placement.Class]
}

func (m Model) Init(ctx context.Context, conn *xgb.Conn) (xwm.Model, xwm.Cmd) {
	screen := xproto.Setup(conn).DefaultScreen(conn)

	// Size the window so the whole canvas is visible without covering the
	// screen.
	bounds := m.Session.Layout.Bounds
	scale := m.ViewScale
	if scale <= 0 {
		fitW := 0.8 * float64(screen.WidthInPixels) / float64(bounds.Dx())
		fitH := 0.8 * float64(screen.HeightInPixels) / float64(bounds.Dy())
		scale = min(fitW, fitH)
	}
	m.view = preview.FitView(bounds, 0, 0, scale)
	width, height := m.view.WindowSize(bounds)

	win, err := xwm.CreateWindow(conn, title, uint16(width), uint16(height))
	if err != nil {
		return m, xwm.QuitErr(err)
	}
	m.win = win

	m.cursorDrag, err = xcursor.CreateCursor(conn, xcursor.Fleur)
	if err != nil {
		return m, xwm.QuitErr(err)
	}

	// Window title tracks the coverage classification.
	m.class = NewSignal(placement.Class(""))
	wid := win.WID
	m.class.AddEffect(func(class placement.Class) {
		xwm.SetTitle(conn, wid, fmt.Sprintf("%s [%s]", title, class))
	})
	m.class.SetValue(m.Session.Coverage.Class)

	bus.Publish(m.Session.Snapshot())

	return m, nil
}

func (m Model) Update(ctx context.Context, conn *xgb.Conn, msg xwm.Msg) (xwm.Model, xwm.Cmd) {
	switch ev := msg.(type) {
	case xproto.ConfigureNotifyEvent:
		slog.Debug("ConfigureNotifyEvent:", "event", ev.String())

		if ev.Window == m.win.WID {
			m.win.Width = ev.Width
			m.win.Height = ev.Height
			m.view = preview.FitView(m.Session.Layout.Bounds, int(ev.Width), int(ev.Height), m.ViewScale)
		}

		return m, nil
	case xproto.ExposeEvent:
		return m, nil
	case xproto.ButtonPressEvent:
		slog.Debug("ButtonPressEvent", "detail", ev.String())

		x, y := m.view.ToCanvas(float64(ev.EventX), float64(ev.EventY))

		switch ev.Detail {
		case xproto.ButtonIndex1: // Left click
			if err := xwm.SetCursor(conn, m.win.WID, m.cursorDrag); err != nil {
				slog.Error("Failed to set cursor", "error", err)
			}

			return m.apply(session.PointerDown{
				X:        x,
				Y:        y,
				AxisLock: ev.State&xproto.KeyButMaskShift != 0,
			})
		case xproto.ButtonIndex2: // Middle click
			return m.apply(session.Reset{})
		case xproto.ButtonIndex3: // Right click
			return m.apply(session.CycleFit{})
		case xproto.ButtonIndex4: // Wheel up
			return m.apply(session.Wheel{X: x, Y: y, In: true})
		case xproto.ButtonIndex5: // Wheel down
			return m.apply(session.Wheel{X: x, Y: y, In: false})
		}

		return m, nil
	case xproto.ButtonReleaseEvent:
		if ev.Detail == xproto.ButtonIndex1 {
			if err := xwm.SetCursor(conn, m.win.WID, m.win.Cursor); err != nil {
				slog.Error("Failed to set cursor", "error", err)
			}

			return m.apply(session.PointerUp{})
		}

		return m, nil
	case xproto.MotionNotifyEvent:
		x, y := m.view.ToCanvas(float64(ev.EventX), float64(ev.EventY))
		return m.apply(session.PointerMove{X: x, Y: y})
	case xproto.KeyPressEvent:
		slog.Debug("KeyPressEvent", "detail", ev.String())

		switch ev.Detail {
		case 65: // <space>
			return m.apply(session.Confirm{})
		case 24: // q
			slog.Debug("exit: quit key pressed")
			return m.apply(session.Cancel{})
		default:
			return m, nil
		}
	case xproto.DestroyNotifyEvent:
		// Killing the window keeps the X connection alive on most window
		// managers, so treat it as a cancel instead of waiting for EOF.
		slog.Debug("exit: destroy notify event")

		return m.apply(session.Cancel{})
	case xwm.ConnClosedMsg:
		slog.Debug("exit: x connection closed")

		return m.apply(session.Cancel{})
	default:
		slog.Debug("unknown event", "event", ev)
		return m, nil
	}
}

func (m Model) Render(ctx context.Context, conn *xgb.Conn) error {
	frame := m.Renderer.Frame(int(m.win.Width), int(m.win.Height), m.Session.Transform, m.view)
	if err := xwm.PutImage(conn, m.win, frame); err != nil {
		return err
	}

	// One PolyRectangle request per outline color.
	groups := make(map[color.RGBA][]xproto.Rectangle, 2)
	for _, mc := range m.Session.Coverage.Monitors {
		r := m.view.WindowRect(mc.Monitor.Rect)
		c := preview.OutlineColor(m.Session.Coverage.Class, mc.Covered)
		groups[c] = append(groups[c], xproto.Rectangle{
			X:      int16(r.Min.X),
			Y:      int16(r.Min.Y),
			Width:  uint16(r.Dx()),
			Height: uint16(r.Dy()),
		})
	}
	for c, rects := range groups {
		if err := xwm.StrokeRectangles(conn, m.win, c, rects); err != nil {
			return err
		}
	}

	return nil
}

// apply advances the session and turns a terminal outcome into a quit.
func (m Model) apply(ev session.Event) (Model, xwm.Cmd) {
	m.Session = m.Session.Update(ev)
	m.class.SetValue(m.Session.Coverage.Class)
	bus.Publish(m.Session.Snapshot())

	switch m.Session.Outcome {
	case session.OutcomeConfirmed:
		if m.Result != nil {
			*m.Result = m.Session.Snapshot()
		}
		return m, xwm.Quit
	case session.OutcomeCancelled:
		return m, xwm.QuitErr(ErrCancelled)
	default:
		return m, nil
	}
}
