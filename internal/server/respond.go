package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dshills/paintr/internal/app"
	"github.com/dshills/paintr/internal/gallery"
	"github.com/dshills/paintr/internal/input/mode"
	"github.com/dshills/paintr/internal/scene"
)

// maxBodySize bounds request bodies and WebSocket frames. Canvas JSON never
// travels inbound.
const maxBodySize = 64 << 10

var errBadRequest = errors.New("bad request")

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeRawJSON(w http.ResponseWriter, code int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		s.log.Error("request failed: %v", err)
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var (
		nameErr *gallery.NameError
		loadErr *scene.LoadError
	)
	switch {
	case errors.As(err, &nameErr):
		if errors.Is(err, gallery.ErrDuplicateName) {
			return http.StatusConflict
		}
		return http.StatusBadRequest
	case errors.As(err, &loadErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, gallery.ErrNotFound), errors.Is(err, app.ErrUnknownAction):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, mode.ErrUnknownMode),
		errors.Is(err, scene.ErrBadColor):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrNotRunning),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody reads a JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return badRequest(err)
	}
	return nil
}

func badRequest(err error) error {
	return fmt.Errorf("%w: %v", errBadRequest, err)
}
