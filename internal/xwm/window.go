package xwm

import (
	"github.com/ItsNotGoodName/x-wallsplit/internal/xcursor"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

type Window struct {
	WID    xproto.Window
	GC     xproto.Gcontext
	Cursor xproto.Cursor
	Depth  byte
	Width  uint16
	Height uint16
}

// CreateWindow creates and maps the main window along with a graphics context
// for frame uploads.
func CreateWindow(conn *xgb.Conn, title string, width, height uint16) (Window, error) {
	screen := xproto.Setup(conn).DefaultScreen(conn)

	cursor, err := xcursor.CreateCursor(conn, xcursor.LeftPtr)
	if err != nil {
		return Window{}, err
	}

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return Window{}, err
	}

	if err := xproto.CreateWindowChecked(conn, screen.RootDepth,
		wid, screen.Root,
		0, 0, width, height, 0,
		xproto.WindowClassInputOutput, screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask|xproto.CwCursor, // 1, 2, 3
		[]uint32{
			0, // 1
			xproto.EventMaskStructureNotify | xproto.EventMaskExposure |
				xproto.EventMaskKeyPress | xproto.EventMaskButtonPress |
				xproto.EventMaskButtonRelease | xproto.EventMaskPointerMotion, // 2
			uint32(cursor), // 3
		}).Check(); err != nil {
		return Window{}, err
	}

	xproto.ChangeProperty(conn, xproto.PropModeReplace, wid, xproto.AtomWmName,
		xproto.AtomString, 8, uint32(len(title)), []byte(title))

	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		return Window{}, err
	}

	if err := xproto.CreateGCChecked(conn, gc, xproto.Drawable(wid),
		xproto.GcForeground|xproto.GcLineWidth,
		[]uint32{screen.BlackPixel, 2}).Check(); err != nil {
		return Window{}, err
	}

	if err := xproto.MapWindowChecked(conn, wid).Check(); err != nil {
		return Window{}, err
	}

	return Window{
		WID:    wid,
		GC:     gc,
		Cursor: cursor,
		Depth:  screen.RootDepth,
		Width:  width,
		Height: height,
	}, nil
}

// SetTitle replaces the window title.
func SetTitle(conn *xgb.Conn, wid xproto.Window, title string) {
	xproto.ChangeProperty(conn, xproto.PropModeReplace, wid, xproto.AtomWmName,
		xproto.AtomString, 8, uint32(len(title)), []byte(title))
}

// SetCursor swaps the window cursor.
func SetCursor(conn *xgb.Conn, wid xproto.Window, cursor xproto.Cursor) error {
	return xproto.ChangeWindowAttributesChecked(conn, wid,
		xproto.CwCursor, []uint32{uint32(cursor)}).Check()
}
