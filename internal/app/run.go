package app

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/ItsNotGoodName/x-wallsplit/internal/api"
	"github.com/ItsNotGoodName/x-wallsplit/internal/bus"
	"github.com/ItsNotGoodName/x-wallsplit/internal/config"
	"github.com/ItsNotGoodName/x-wallsplit/internal/export"
	"github.com/ItsNotGoodName/x-wallsplit/internal/layout"
	"github.com/ItsNotGoodName/x-wallsplit/internal/placement"
	"github.com/ItsNotGoodName/x-wallsplit/internal/preview"
	"github.com/ItsNotGoodName/x-wallsplit/internal/session"
	"github.com/ItsNotGoodName/x-wallsplit/internal/source"
	"github.com/ItsNotGoodName/x-wallsplit/internal/xwm"
	"github.com/ItsNotGoodName/x-wallsplit/pkg/sutureext"
	"github.com/jezek/xgb"
	"github.com/k0kubun/pp"
)

type RunOptions struct {
	Store      config.Store
	ImagePath  string
	TargetDir  string
	LayoutName string
	Apply      string
	Listen     string
	Scale      float64
	Debug      bool
}

// Run places the image and exports one wallpaper per monitor. With Apply set
// it skips the window and exports the named fit directly.
func Run(ctx context.Context, opts RunOptions) error {
	cfg, err := opts.Store.GetConfig()
	if err != nil {
		return err
	}

	l, err := resolveLayout(ctx, cfg, opts.LayoutName)
	if err != nil {
		return err
	}

	src, err := source.Load(opts.ImagePath)
	if err != nil {
		return err
	}

	if opts.Debug {
		pp.Fprintln(os.Stderr, cfg)
		pp.Fprintln(os.Stderr, l)
	}

	fit, err := resolveFit(cfg, opts.Apply)
	if err != nil {
		return err
	}

	background := preview.ColorBackground
	if cfg.Background != "" {
		background, err = preview.ParseHexColor(cfg.Background)
		if err != nil {
			return err
		}
	}

	size := src.Bounds().Size()
	sess := session.New(l, size, fit, cfg.ZoomStep)

	if opts.Apply != "" {
		return exportAndPrint(src, sess.Transform, l, opts.TargetDir, !cfg.NoCommands)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var superC <-chan error
	if opts.Listen != "" {
		super := sutureext.NewSimple("app")
		sutureext.Add(super, api.NewServer(
			opts.Listen,
			bus.NewHub[session.Snapshot]().Register(),
			preview.NewRenderer(src, background),
			l,
			sess.Snapshot(),
		))
		superC = super.ServeBackground(ctx)
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	defer conn.Close()

	result := &session.Snapshot{}
	model := Model{
		Session:   sess,
		Renderer:  preview.NewRenderer(src, background),
		Result:    result,
		ViewScale: resolveViewScale(cfg, opts.Scale),
	}

	eventC := make(chan any)
	go xwm.ReceiveEvents(ctx, conn, eventC)

	if err := xwm.HandleEvents(ctx, conn, model, eventC); err != nil {
		return err
	}

	cancel()
	if superC != nil {
		<-superC
	}

	return exportAndPrint(src, result.Transform, l, opts.TargetDir, !cfg.NoCommands)
}

func exportAndPrint(src *image.RGBA, t placement.Transform, l layout.Layout, dir string, printCommands bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	results, err := export.Export(src, t, l, dir)
	for _, r := range results {
		slog.Info("Wrote wallpaper", "monitor", r.Monitor, "path", r.Path)
	}
	if err != nil {
		return err
	}

	if printCommands {
		fmt.Println(export.SwaybgCommand(results))
		fmt.Println(export.SwaylockCommand(results))
	}

	return nil
}
