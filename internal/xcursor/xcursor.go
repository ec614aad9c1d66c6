// Package xcursor creates cursors from the core X cursor font.
package xcursor

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Glyph indexes into the standard cursor font. The mask glyph for a shape is
// the next index up.
const (
	Crosshair = 34
	Fleur     = 52
	Hand2     = 60
	LeftPtr   = 68
	Watch     = 150
)

// CreateCursor makes a black-on-white cursor for glyph.
func CreateCursor(conn *xgb.Conn, glyph uint16) (xproto.Cursor, error) {
	font, err := xproto.NewFontId(conn)
	if err != nil {
		return 0, err
	}
	if err := xproto.OpenFontChecked(conn, font,
		uint16(len("cursor")), "cursor").Check(); err != nil {
		return 0, err
	}

	cursor, err := xproto.NewCursorId(conn)
	if err != nil {
		return 0, err
	}
	if err := xproto.CreateGlyphCursorChecked(conn, cursor, font, font,
		glyph, glyph+1,
		0, 0, 0,
		0xffff, 0xffff, 0xffff).Check(); err != nil {
		return 0, err
	}

	if err := xproto.CloseFontChecked(conn, font).Check(); err != nil {
		return 0, err
	}

	return cursor, nil
}
