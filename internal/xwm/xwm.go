// Package xwm drives an X window through an update loop: raw X events feed a
// model's Update function and the model renders after every message.
package xwm

import (
	"context"
	"log/slog"

	"github.com/jezek/xgb"
)

// Msg contain data from the result of a IO operation. Msgs trigger the update
// function and, henceforth, the UI.
type Msg interface{}

// Cmd is a deferred side effect that produces the next Msg.
type Cmd func() Msg

type Model interface {
	// Init is the first function that will be called.
	Init(ctx context.Context, conn *xgb.Conn) (Model, Cmd)

	// Update is called when a message is received. Use it to inspect messages
	// and, in response, update the model.
	Update(ctx context.Context, conn *xgb.Conn, msg Msg) (Model, Cmd)

	// Render draws the model after its messages are processed.
	Render(ctx context.Context, conn *xgb.Conn) error
}

// QuitMsg ends the event loop; HandleEvents returns Err.
type QuitMsg struct {
	Err error
}

// Quit is a Cmd that ends the event loop cleanly.
func Quit() Msg {
	return QuitMsg{}
}

// QuitErr is a Cmd that ends the event loop with err.
func QuitErr(err error) Cmd {
	return func() Msg { return QuitMsg{Err: err} }
}

// ConnClosedMsg is delivered when the X connection shuts down beneath us.
type ConnClosedMsg struct{}

// ReceiveEvents pumps X events into eventC until the connection or the
// context closes.
func ReceiveEvents(ctx context.Context, conn *xgb.Conn, eventC chan<- any) {
	for {
		ev, xerr := conn.WaitForEvent()
		if ev == nil && xerr == nil {
			slog.Debug("X connection closed")
			select {
			case <-ctx.Done():
			case eventC <- ConnClosedMsg{}:
			}
			return
		}
		if xerr != nil {
			slog.Error("Failed to receive event", "error", xerr)
			continue
		}

		select {
		case <-ctx.Done():
			return
		case eventC <- ev:
		}
	}
}

// HandleEvents runs the update loop until a QuitMsg or the context ends.
func HandleEvents(ctx context.Context, conn *xgb.Conn, model Model, eventC <-chan any) error {
	model, cmd := model.Init(ctx, conn)

	for {
		for cmd != nil {
			msg := cmd()
			if quit, ok := msg.(QuitMsg); ok {
				return quit.Err
			}
			model, cmd = model.Update(ctx, conn, msg)
		}

		if err := model.Render(ctx, conn); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventC:
			model, cmd = model.Update(ctx, conn, ev)
		}
	}
}
