package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ItsNotGoodName/x-wallsplit/internal/app"
	"github.com/ItsNotGoodName/x-wallsplit/internal/build"
	"github.com/ItsNotGoodName/x-wallsplit/internal/bus"
	"github.com/ItsNotGoodName/x-wallsplit/internal/config"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/joho/godotenv"
	"github.com/phsym/console-slog"
	"github.com/spf13/cobra"
)

type Options struct {
	Debug  bool   `doc:"enable debug"`
	Config string `doc:"config file" default:".x-wallsplit.yaml"`
	Layout string `doc:"named layout from the config instead of host detection"`
	Apply  string `doc:"apply a fit mode and export without a window [original, width, height]"`
	Listen string `doc:"address for the status api"`
	Scale  string `doc:"preview scale factor, 0 fits the window"`
}

func main() {
	godotenv.Load()

	var args []string

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		if options.Debug {
			InitLogger(slog.LevelDebug)
		} else {
			InitLogger(slog.LevelInfo)
		}

		OnServe(hooks, func(ctx context.Context) error {
			bus.SetContext(ctx)

			scale := 0.0
			if options.Scale != "" {
				var err error
				scale, err = strconv.ParseFloat(options.Scale, 64)
				if err != nil {
					return fmt.Errorf("invalid scale %q: %w", options.Scale, err)
				}
			}

			configFilePath, err := filepath.Abs(options.Config)
			if err != nil {
				return err
			}

			store, err := config.NewStore(config.NewYAML(configFilePath))
			if err != nil {
				return err
			}

			if err := app.NormalizeConfig(store); err != nil {
				return err
			}

			return app.Run(ctx, app.RunOptions{
				Store:      store,
				ImagePath:  args[0],
				TargetDir:  args[1],
				LayoutName: options.Layout,
				Apply:      options.Apply,
				Listen:     options.Listen,
				Scale:      scale,
				Debug:      options.Debug,
			})
		})
	})

	cli.Root().Use = "x-wallsplit IMAGE DIR"
	cli.Root().Short = "Position a wallpaper over the monitor layout and split it into one image per monitor"
	cli.Root().Version = build.Current.Version
	cli.Root().Args = cobra.ExactArgs(2)
	cli.Root().PreRun = func(cmd *cobra.Command, a []string) { args = a }

	cli.Run()
}

func InitLogger(level slog.Level) {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})))
}

func OnServe(hooks humacli.Hooks, serveFn func(ctx context.Context) error) {
	stopC := make(chan struct{})
	hooks.OnStart(func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errC := make(chan error, 1)

		go func() { errC <- serveFn(ctx) }()

		select {
		case <-stopC:
			cancel()
		case err := <-errC:
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Fatal(err)
			}
			return
		}

		<-errC
		<-stopC
	})
	hooks.OnStop(func() {
		stopC <- struct{}{}
		stopC <- struct{}{}
	})
}
