// Package app wires the session, the window loop, and the exporter together.
package app

import (
	"context"

	"github.com/ItsNotGoodName/x-wallsplit/internal/config"
	"github.com/ItsNotGoodName/x-wallsplit/internal/layout"
	"github.com/ItsNotGoodName/x-wallsplit/internal/outputs"
	"github.com/ItsNotGoodName/x-wallsplit/internal/placement"
	"github.com/google/uuid"
)

// NormalizeConfig assigns IDs to config entries that miss them.
func NormalizeConfig(store config.Store) error {
	return store.UpdateConfig(func(cfg config.Config) (config.Config, error) {
		for i := range cfg.Layouts {
			if cfg.Layouts[i].UUID == "" {
				cfg.Layouts[i].UUID = uuid.NewString()
			}
		}

		return cfg, nil
	})
}

// resolveLayout prefers a named layout from the config over host detection.
func resolveLayout(ctx context.Context, cfg config.Config, name string) (layout.Layout, error) {
	if name != "" {
		return outputs.FromConfig(cfg, name)
	}

	return outputs.Detect(ctx)
}

// resolveFit picks the starting fit mode: the apply override first, then the
// config, then original size.
func resolveFit(cfg config.Config, apply string) (placement.FitMode, error) {
	if apply != "" {
		return placement.ParseFitMode(apply)
	}
	if cfg.Fit != "" {
		return placement.ParseFitMode(cfg.Fit)
	}

	return placement.FitOriginal, nil
}

// resolveViewScale prefers the flag over the config. 0 fits the window.
func resolveViewScale(cfg config.Config, flag float64) float64 {
	if flag > 0 {
		return flag
	}

	return cfg.PreviewScale
}
