// Package export slices the placed image into one wallpaper file per monitor.
package export

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ItsNotGoodName/x-wallsplit/internal/layout"
	"github.com/ItsNotGoodName/x-wallsplit/internal/placement"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/image/draw"
)

// WriteError is a failed write for a single monitor. Other monitors keep
// exporting; the caller receives every failure joined together.
type WriteError struct {
	Monitor string
	Path    string
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s for monitor %s: %s", e.Path, e.Monitor, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

type Result struct {
	Monitor string
	Path    string
}

// Export writes "<dir>/<name>.png" for every monitor, each sized exactly to
// the monitor rectangle. Regions the image does not cover stay transparent.
// Already written files are never cleaned up on a partial failure.
func Export(src *image.RGBA, t placement.Transform, l layout.Layout, dir string) ([]Result, error) {
	results := make([]Result, len(l.Monitors))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs *multierror.Error

	for i, mon := range l.Monitors {
		wg.Add(1)
		go func() {
			defer wg.Done()

			filePath := filepath.Join(dir, mon.Name+".png")
			if err := writePNG(filePath, renderMonitor(src, t, mon)); err != nil {
				mu.Lock()
				errs = multierror.Append(errs, &WriteError{Monitor: mon.Name, Path: filePath, Err: err})
				mu.Unlock()
				return
			}

			results[i] = Result{Monitor: mon.Name, Path: filePath}
		}()
	}
	wg.Wait()

	written := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Monitor != "" {
			written = append(written, r)
		}
	}

	return written, errs.ErrorOrNil()
}

// renderMonitor extracts the monitor's rectangle from the placed image. At
// native scale with integral offsets this is a pixel-exact crop, otherwise
// the covered region is resampled with Catmull-Rom.
func renderMonitor(src *image.RGBA, t placement.Transform, mon layout.Monitor) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, mon.Rect.Dx(), mon.Rect.Dy()))

	if t.Scale == 1 && t.X == math.Trunc(t.X) && t.Y == math.Trunc(t.Y) {
		offset := image.Pt(int(t.X), int(t.Y))
		srcRect := mon.Rect.Sub(offset).Intersect(src.Bounds())
		if srcRect.Empty() {
			return dst
		}

		dstRect := srcRect.Add(offset).Sub(mon.Rect.Min)
		draw.Draw(dst, dstRect, src, srcRect.Min, draw.Src)
		return dst
	}

	rect := t.Rect(src.Bounds().Size())
	x0 := math.Max(rect.X, float64(mon.Rect.Min.X))
	y0 := math.Max(rect.Y, float64(mon.Rect.Min.Y))
	x1 := math.Min(rect.X+rect.W, float64(mon.Rect.Max.X))
	y1 := math.Min(rect.Y+rect.H, float64(mon.Rect.Max.Y))
	if x1 <= x0 || y1 <= y0 {
		return dst
	}

	dstRect := image.Rect(
		int(math.Round(x0))-mon.Rect.Min.X,
		int(math.Round(y0))-mon.Rect.Min.Y,
		int(math.Round(x1))-mon.Rect.Min.X,
		int(math.Round(y1))-mon.Rect.Min.Y,
	)
	srcRect := image.Rect(
		int(math.Round((x0-t.X)/t.Scale)),
		int(math.Round((y0-t.Y)/t.Scale)),
		int(math.Round((x1-t.X)/t.Scale)),
		int(math.Round((y1-t.Y)/t.Scale)),
	).Intersect(src.Bounds())
	if dstRect.Empty() || srcRect.Empty() {
		return dst
	}

	draw.CatmullRom.Scale(dst, dstRect, src, srcRect, draw.Over, nil)
	return dst
}

func writePNG(filePath string, img image.Image) error {
	filePathTmp := filePath + ".tmp"
	file, err := os.OpenFile(filePathTmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		os.Remove(filePathTmp)
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	return os.Rename(filePathTmp, filePath)
}

// SwaybgCommand builds the swaybg invocation that applies the exported files.
func SwaybgCommand(results []Result) string {
	parts := []string{"swaybg"}
	for _, r := range results {
		parts = append(parts, "-o", r.Monitor, "-i", r.Path)
	}
	return strings.Join(parts, " ")
}

// SwaylockCommand builds the matching swaylock invocation.
func SwaylockCommand(results []Result) string {
	parts := []string{"swaylock"}
	for _, r := range results {
		parts = append(parts, "-i", r.Monitor+":"+r.Path)
	}
	return strings.Join(parts, " ")
}
