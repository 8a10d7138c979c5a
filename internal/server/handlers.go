package server

import (
	"io/fs"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tidwall/pretty"

	"github.com/dshills/paintr/internal/app"
	"github.com/dshills/paintr/internal/gallery"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(s.assets, "index.html")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

func (s *Server) handleFavicon(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(s.assets, "favicon.svg")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(data)
}

// handleScene returns the serialized document. ?pretty=1 indents it.
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	var data []byte
	err := s.do(r.Context(), func() error {
		var err error
		data, err = s.app.SceneJSON()
		return err
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	if on, _ := strconv.ParseBool(r.URL.Query().Get("pretty")); on {
		data = pretty.Pretty(data)
	}
	writeRawJSON(w, http.StatusOK, data)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	var st app.State
	err := s.do(r.Context(), func() error {
		st = s.app.State()
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// handleMetrics reads the atomic counters directly, without the event loop.
func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.app.Metrics().Snapshot())
}

func (s *Server) handleMode(w http.ResponseWriter, r *http.Request) {
	var req message
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.respondState(w, r, func() error {
		return s.app.SelectMode(req.Mode)
	})
}

func (s *Server) handlePointer(w http.ResponseWriter, r *http.Request) {
	var req message
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	ev, err := req.pointerEvent()
	if err != nil {
		s.writeError(w, badRequest(err))
		return
	}
	s.respondState(w, r, func() error {
		s.app.HandlePointer(ev)
		return nil
	})
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req message
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	ev, err := req.keyEvent()
	if err != nil {
		s.writeError(w, err)
		return
	}

	var handled bool
	err = s.do(r.Context(), func() error {
		handled = s.app.HandleKey(ev)
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"handled": handled})
}

func (s *Server) handleColor(w http.ResponseWriter, r *http.Request) {
	var req message
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.respondState(w, r, func() error {
		return s.app.SetColor(req.Color)
	})
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")

	var changed bool
	var st app.State
	err := s.do(r.Context(), func() error {
		var err error
		if changed, err = s.app.Perform(action); err != nil {
			return err
		}
		st = s.app.State()
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"changed": changed, "state": st})
}

func (s *Server) handleListCanvases(w http.ResponseWriter, r *http.Request) {
	var entries []gallery.Entry
	err := s.do(r.Context(), func() error {
		var err error
		entries, err = s.app.Canvases(r.Context())
		return err
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	if entries == nil {
		entries = []gallery.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleSaveCanvas(w http.ResponseWriter, r *http.Request) {
	var req message
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	var entry gallery.Entry
	err := s.do(r.Context(), func() error {
		var err error
		entry, err = s.app.Save(r.Context(), req.Name)
		return err
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleLoadCanvas(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var entry gallery.Entry
	var st app.State
	err := s.do(r.Context(), func() error {
		var err error
		if entry, err = s.app.Load(r.Context(), id); err != nil {
			return err
		}
		st = s.app.State()
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"canvas": entry, "state": st})
}

// respondState runs fn on the event loop and replies with the new state.
func (s *Server) respondState(w http.ResponseWriter, r *http.Request, fn func() error) {
	var st app.State
	err := s.do(r.Context(), func() error {
		if err := fn(); err != nil {
			return err
		}
		st = s.app.State()
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
