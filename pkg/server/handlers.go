package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/render"
	"github.com/goliatone/go-textfield/pkg/validation"
)

// StateResponse is the JSON body returned by state changing routes.
type StateResponse struct {
	Field   string      `json:"field"`
	Version uint64      `json:"version"`
	State   field.State `json:"state"`
	Valid   *bool       `json:"valid,omitempty"`
}

type valueRequest struct {
	Value string `json:"value"`
}

type testRequest struct {
	Rules *validation.Rules `json:"rules,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	writeJSON(w, http.StatusOK, map[string]any{
		"fields":    names,
		"renderers": s.cfg.renderers.List(),
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	e, name, ok := s.lookup(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	var view render.View
	e.locked(func(f *field.Field) {
		view = render.ViewOf(f, s.cfg.palette)
	})

	out, contentType, err := s.cfg.renderers.Render(r.Context(), query.Get("renderer"), view, render.RenderOptions{
		ID:           "textfield-" + name,
		ThemeName:    query.Get("theme"),
		ThemeVariant: query.Get("variant"),
		Accent:       query.Get("accent"),
	})
	if err != nil {
		if errors.Is(err, render.ErrNoRenderer) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		s.cfg.logger.Error("render failed", "field", name, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	e, name, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var resp StateResponse
	e.locked(func(f *field.Field) {
		resp = StateResponse{Field: name, Version: e.version, State: f.Snapshot()}
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetValue(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.apply(w, r, "set_value", func(f *field.Field) *bool {
		f.SetValue(req.Value)
		return nil
	})
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	event := chi.URLParam(r, "event")
	var op func(*field.Field) *bool

	switch event {
	case "focus":
		op = func(f *field.Field) *bool { f.Focus(); return nil }
	case "blur":
		op = func(f *field.Field) *bool { f.Blur(); return nil }
	case "input":
		var req valueRequest
		if err := decodeBody(r, &req, false); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		op = func(f *field.Field) *bool {
			f.Input(field.InputEvent{Value: req.Value})
			return nil
		}
	case "icon":
		op = func(f *field.Field) *bool { f.IconClick(&field.BasicEvent{}); return nil }
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %q", ErrUnknownEvent, event))
		return
	}
	s.apply(w, r, event, op)
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	var req testRequest
	if err := decodeBody(r, &req, true); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	predicate := field.NoPredicate
	if req.Rules != nil {
		p, err := validation.FromRules(*req.Rules)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		predicate = p
	}

	s.apply(w, r, "test", func(f *field.Field) *bool {
		valid := f.Test(predicate)
		s.metrics.validation(f.Name(), valid)
		return &valid
	})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, "clear", func(f *field.Field) *bool {
		f.Clear()
		return nil
	})
}

// apply runs op on the named field under its lock and writes the new state.
func (s *Server) apply(w http.ResponseWriter, r *http.Request, event string, op func(*field.Field) *bool) {
	e, name, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var resp StateResponse
	e.locked(func(f *field.Field) {
		valid := op(f)
		resp = StateResponse{Field: name, Version: e.version, State: f.Snapshot(), Valid: valid}
	})

	s.metrics.event(name, event)
	s.cfg.logger.Debug("field event",
		"field", name,
		"event", event,
		"version", resp.Version,
		"focused", resp.State.Focused,
		"error", resp.State.Error,
	)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*entry, string, bool) {
	name := chi.URLParam(r, "name")
	e, ok := s.fields[name]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("%w: %q", ErrUnknownField, name))
		return nil, name, false
	}
	return e, name, true
}

func decodeBody(r *http.Request, dst any, optional bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("server: decode body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
