package server

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/dshills/paintr/internal/app"
)

//go:embed static
var embedded embed.FS

// Options configures a Server.
type Options struct {
	// StaticDir serves the page from disk instead of the embedded copy.
	StaticDir string
}

// Server routes HTTP requests to an App.
type Server struct {
	app      *app.App
	log      *app.Logger
	assets   fs.FS
	router   *chi.Mux
	upgrader websocket.Upgrader
}

// New creates a Server for a.
func New(a *app.App, opts Options) (*Server, error) {
	assets, err := staticFS(opts.StaticDir)
	if err != nil {
		return nil, err
	}

	s := &Server{
		app:    a,
		log:    a.Logger().WithComponent("server"),
		assets: assets,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 16384,
		},
	}
	s.router = s.routes()
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/favicon.ico", s.handleFavicon)
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(s.assets))))
	r.Get("/ws", s.handleWS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/scene", s.handleScene)
		r.Get("/state", s.handleState)
		r.Get("/metrics", s.handleMetrics)

		r.Post("/mode", s.handleMode)
		r.Post("/pointer", s.handlePointer)
		r.Post("/key", s.handleKey)
		r.Post("/color", s.handleColor)
		r.Post("/actions/{action}", s.handleAction)

		r.Route("/canvases", func(r chi.Router) {
			r.Get("/", s.handleListCanvases)
			r.Post("/", s.handleSaveCanvas)
			r.Post("/{id}/load", s.handleLoadCanvas)
		})
	})
	return r
}

// do runs fn on the App's event loop.
func (s *Server) do(ctx context.Context, fn func() error) error {
	return s.app.Do(ctx, fn)
}

func staticFS(dir string) (fs.FS, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return nil, &fs.PathError{Op: "open", Path: dir, Err: errors.New("not a directory")}
		}
		return os.DirFS(dir), nil
	}
	return fs.Sub(embedded, "static")
}

// requestLogger writes one line per request to log.
func requestLogger(log *app.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				l := log.WithFields(map[string]any{
					"req":      middleware.GetReqID(r.Context()),
					"status":   ww.Status(),
					"bytes":    ww.BytesWritten(),
					"duration": time.Since(start).Round(time.Microsecond),
				})
				if ww.Status() >= http.StatusInternalServerError {
					l.Warn("%s %s", r.Method, r.URL.Path)
					return
				}
				l.Debug("%s %s", r.Method, r.URL.Path)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
