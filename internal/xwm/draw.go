package xwm

import (
	"image"
	"image/color"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Big enough for full rows while staying under the maximum request length
// of servers without BIG-REQUESTS.
const maxPutImageBytes = 1<<18 - 1024

// PutImage uploads an RGBA frame to the window in row chunks that fit the
// request size limit. Pixels convert to BGRX as 24-bit TrueColor visuals
// expect.
func PutImage(conn *xgb.Conn, win Window, frame *image.RGBA) error {
	width, height := frame.Bounds().Dx(), frame.Bounds().Dy()
	if width == 0 || height == 0 {
		return nil
	}

	rowsPerChunk := maxPutImageBytes / (width * 4)
	if rowsPerChunk < 1 {
		rowsPerChunk = 1
	}

	buf := make([]byte, 0, rowsPerChunk*width*4)
	for y := 0; y < height; y += rowsPerChunk {
		rows := rowsPerChunk
		if y+rows > height {
			rows = height - y
		}

		buf = buf[:0]
		for yy := y; yy < y+rows; yy++ {
			i := frame.PixOffset(0, yy)
			row := frame.Pix[i : i+width*4]
			for x := 0; x < len(row); x += 4 {
				buf = append(buf, row[x+2], row[x+1], row[x], 0xff)
			}
		}

		if err := xproto.PutImageChecked(conn, xproto.ImageFormatZPixmap,
			xproto.Drawable(win.WID), win.GC,
			uint16(width), uint16(rows), 0, int16(y),
			0, win.Depth, buf).Check(); err != nil {
			return err
		}
	}

	return nil
}

// StrokeRectangles outlines rects in the given color.
func StrokeRectangles(conn *xgb.Conn, win Window, c color.RGBA, rects []xproto.Rectangle) error {
	if len(rects) == 0 {
		return nil
	}

	fg := uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if err := xproto.ChangeGCChecked(conn, win.GC,
		xproto.GcForeground, []uint32{fg}).Check(); err != nil {
		return err
	}

	return xproto.PolyRectangleChecked(conn, xproto.Drawable(win.WID), win.GC, rects).Check()
}
