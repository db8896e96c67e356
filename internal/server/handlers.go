package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/stairpath/pkg/buildinfo"
	"github.com/matzehuels/stairpath/pkg/errors"
	stairio "github.com/matzehuels/stairpath/pkg/io"
	"github.com/matzehuels/stairpath/pkg/pipeline"
)

type request struct {
	Layout  json.RawMessage `json:"layout,omitempty"`
	Text    string          `json:"text,omitempty"`
	Moves   []uint          `json:"moves,omitempty"`
	Rank    string          `json:"rank,omitempty"`
	Path    string          `json:"path,omitempty"`
	Refresh bool            `json:"refresh,omitempty"`
}

type errorBody struct {
	Error struct {
		Code      errors.Code `json:"code"`
		Message   string      `json:"message"`
		RequestID string      `json:"request_id,omitempty"`
	} `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, func(req *request) error {
		req.Rank, req.Path = "", ""
		return nil
	})
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, func(req *request) error {
		if req.Rank == "" {
			return errors.New(errors.ErrCodeInvalidInput, "rank is required")
		}
		req.Path = ""
		return nil
	})
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, func(req *request) error {
		if req.Path == "" {
			return errors.New(errors.ErrCodeInvalidInput, "path is required")
		}
		req.Rank = ""
		return nil
	})
}

// run decodes the request, lets prepare adjust it for the route and
// executes the pipeline.
func (s *Server) run(w http.ResponseWriter, r *http.Request, prepare func(*request) error) {
	req, err := decode(w, r)
	if err == nil {
		err = prepare(&req)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	layout, err := req.layout()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Layout:  &layout,
		Moves:   req.Moves,
		Rank:    req.Rank,
		Path:    req.Path,
		Refresh: req.Refresh,
		Limits:  s.limits,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result.Summary())
}

func decode(w http.ResponseWriter, r *http.Request) (request, error) {
	var req request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return request{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body")
	}
	return req, nil
}

func (req request) layout() (stairio.Layout, error) {
	switch {
	case len(req.Layout) > 0 && req.Text != "":
		return stairio.Layout{}, errors.New(errors.ErrCodeInvalidInput, "layout and text are mutually exclusive")
	case len(req.Layout) > 0:
		return stairio.Parse(req.Layout, stairio.FormatJSON)
	case req.Text != "":
		return stairio.Parse([]byte(req.Text), stairio.FormatText)
	}
	return stairio.Layout{}, errors.New(errors.ErrCodeInvalidInput, "layout or text is required")
}

// statusFor maps error codes to HTTP status codes.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidStructure, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodePrecondition, errors.ErrCodeUnsupportedScale:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)

	var body errorBody
	body.Error.Code = code
	body.Error.Message = errors.UserMessage(err)
	body.Error.RequestID = RequestIDFromContext(r.Context())
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "id", body.Error.RequestID, "error", err)
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
