package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dshills/paintr/internal/clipboard"
	"github.com/dshills/paintr/internal/engine/history"
	"github.com/dshills/paintr/internal/gallery"
	"github.com/dshills/paintr/internal/input/keymap"
	"github.com/dshills/paintr/internal/input/mode"
	"github.com/dshills/paintr/internal/scene"
)

// Options configures a new App. Zero values select the defaults.
type Options struct {
	// Logger receives application logs. Defaults to a nop logger.
	Logger *Logger

	// Gallery stores saved canvases. When nil, New opens a private one
	// and Close releases it.
	Gallery *gallery.Gallery

	// MaxHistory bounds the undo stack.
	MaxHistory int

	// Background is the canvas colour of a new document.
	Background string

	// PenColor is the stroke colour for new shapes and the brush.
	PenColor string

	// StrokeWidth is the outline width of new shapes.
	StrokeWidth float64

	// BrushWidth is the free-drawing brush width.
	BrushWidth float64

	// Keymap holds extra key bindings, spec to action.
	Keymap map[string]string

	// InitialMode is the tool active after construction.
	InitialMode string
}

// Default option values.
const (
	DefaultPenColor    = "#000000"
	DefaultStrokeWidth = 2
	DefaultBrushWidth  = 2
	DefaultInitialMode = mode.ModeSelect
)

// App is the application context. It owns the document and everything that
// edits it. State is only touched on the event loop, or directly by a caller
// that does not run the loop at all.
type App struct {
	log     *Logger
	metrics *Metrics

	doc     *scene.Document
	modes   *mode.Manager
	history *history.Store
	clip    *clipboard.Clipboard
	keymap  *keymap.ParsedKeymap
	pen     scene.Style

	gallery     *gallery.Gallery
	ownsGallery bool

	tasks     chan task
	running   atomic.Bool
	stopped   chan struct{}
	closeOnce sync.Once
}

// New creates an App with a blank document inserted as the history base.
func New(ctx context.Context, opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		log = NopLogger()
	}

	pen, err := penStyle(opts.PenColor, opts.StrokeWidth)
	if err != nil {
		return nil, NewOperationError("configure", "pen", err)
	}
	brush, err := penStyle(opts.PenColor, orDefault(opts.BrushWidth, DefaultBrushWidth))
	if err != nil {
		return nil, NewOperationError("configure", "brush", err)
	}
	background := scene.DefaultBackground
	if opts.Background != "" {
		if background, err = scene.NormalizeColor(opts.Background); err != nil {
			return nil, NewOperationError("configure", "background", err)
		}
	}

	km, err := buildKeymap(opts.Keymap)
	if err != nil {
		return nil, NewOperationError("configure", "keymap", err)
	}

	a := &App{
		log:     log.WithComponent("app"),
		metrics: NewMetrics(),
		doc:     scene.NewDocument(scene.WithBackground(background), scene.WithBrush(brush)),
		history: history.NewStore(opts.MaxHistory),
		clip:    clipboard.New(),
		keymap:  km,
		pen:     pen,
		gallery: opts.Gallery,
		tasks:   make(chan task),
		stopped: make(chan struct{}),
	}

	a.modes = mode.NewManager(&mode.Context{
		Canvas: a.doc,
		Pen:    func() scene.Style { return a.pen },
		Commit: a.commit,
	})
	a.modes.Register(mode.Defaults()...)

	if a.gallery == nil {
		g, err := gallery.Open(ctx)
		if err != nil {
			return nil, NewOperationError("open", "gallery", err)
		}
		a.gallery = g
		a.ownsGallery = true
	}

	initial := opts.InitialMode
	if initial == "" {
		initial = DefaultInitialMode
	}
	if err := a.modes.Switch(initial); err != nil {
		a.Close()
		return nil, NewOperationError("mode", initial, err)
	}

	if err := a.history.Insert(a.doc); err != nil {
		a.Close()
		return nil, NewOperationError("snapshot", "base", err)
	}
	a.metrics.RecordSnapshot()

	a.log.Info("ready in %s mode with %d key bindings", initial, km.Len())
	return a, nil
}

// Close releases the gallery if the App opened it.
func (a *App) Close() error {
	var err error
	a.closeOnce.Do(func() {
		if a.ownsGallery && a.gallery != nil {
			err = a.gallery.Close()
		}
	})
	return err
}

// Logger returns the application logger.
func (a *App) Logger() *Logger { return a.log }

// Metrics returns the runtime counters.
func (a *App) Metrics() *Metrics { return a.metrics }

// Document returns the scene being edited.
func (a *App) Document() *scene.Document { return a.doc }

// Modes returns the tool manager.
func (a *App) Modes() *mode.Manager { return a.modes }

// History returns the memento store.
func (a *App) History() *history.Store { return a.history }

// Clipboard returns the shape clipboard.
func (a *App) Clipboard() *clipboard.Clipboard { return a.clip }

// Pen returns the style used for new shapes.
func (a *App) Pen() scene.Style { return a.pen }

// commit records a finished gesture.
func (a *App) commit(tool string) {
	a.snapshot(tool)
}

// snapshot pushes the current document onto the undo stack.
func (a *App) snapshot(reason string) {
	if err := a.history.Insert(a.doc); err != nil {
		a.log.Error("snapshot failed: %v", NewOperationError("snapshot", reason, err))
		return
	}
	a.metrics.RecordSnapshot()
	a.log.Debug("snapshot after %s (%d undo entries)", reason, a.history.UndoCount())
}

func penStyle(color string, width float64) (scene.Style, error) {
	if color == "" {
		color = DefaultPenColor
	}
	c, err := scene.NormalizeColor(color)
	if err != nil {
		return scene.Style{}, err
	}
	return scene.Style{
		Stroke:      c,
		StrokeWidth: float32(orDefault(width, DefaultStrokeWidth)),
	}, nil
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func buildKeymap(extra map[string]string) (*keymap.ParsedKeymap, error) {
	km := keymap.Default()
	if len(extra) > 0 {
		km = km.Merge(keymap.FromMap("config", extra))
	}
	parsed, err := km.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse keymap: %w", err)
	}
	return parsed, nil
}
