package app

import (
	"context"

	"github.com/dshills/paintr/internal/config"
)

// OptionsFromConfig builds App options from loaded settings.
func OptionsFromConfig(cfg *config.Config) Options {
	canvas := cfg.Canvas()
	return Options{
		MaxHistory:  cfg.History().MaxEntries,
		Background:  canvas.Background,
		PenColor:    canvas.PenColor,
		StrokeWidth: canvas.StrokeWidth,
		BrushWidth:  canvas.BrushWidth,
		Keymap:      cfg.Keymap(),
	}
}

// ApplyConfig updates the live settings from cfg: pen and brush, history
// size, log level and key bindings. The background only applies to new
// documents and is left alone. Must run on the event loop.
func (a *App) ApplyConfig(cfg *config.Config) error {
	canvas := cfg.Canvas()

	km, err := buildKeymap(cfg.Keymap())
	if err != nil {
		return NewOperationError("configure", "keymap", err)
	}
	if err := a.SetColor(canvas.PenColor); err != nil {
		return err
	}

	a.keymap = km
	a.SetStrokeWidth(canvas.StrokeWidth)
	a.SetBrushWidth(canvas.BrushWidth)
	a.history.SetMaxEntries(cfg.History().MaxEntries)
	a.log.SetLevel(ParseLogLevel(cfg.Logging().Level))
	return nil
}

// WatchConfig applies every successful reload of cfg on the event loop
// until ctx ends. Failed reloads are logged and the old settings stay.
func (a *App) WatchConfig(ctx context.Context, cfg *config.Config) {
	log := a.log.WithComponent("config")
	cfg.OnReload(func(c *config.Config, err error) {
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			log.Warn("reload rejected: %v", err)
			return
		}
		err = a.Do(ctx, func() error { return a.ApplyConfig(c) })
		if err != nil {
			log.Warn("apply reload: %v", err)
			return
		}
		log.Info("settings reloaded from %s", c.Path())
	})
}
