package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/matzehuels/treetop/pkg/buildinfo"
	terrors "github.com/matzehuels/treetop/pkg/errors"
	"github.com/matzehuels/treetop/pkg/forest"
	"github.com/matzehuels/treetop/pkg/pipeline"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// scoreResponse describes a single tree.
type scoreResponse struct {
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Height    int    `json:"height"`
	Distances [4]int `json:"distances"`
	Score     int    `json:"score"`
	Visible   bool   `json:"visible"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	refresh := false
	if v := r.URL.Query().Get("refresh"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			s.writeError(w, r, terrors.New(terrors.ErrCodeInvalidInput, "refresh %q is not a boolean", v))
			return
		}
		refresh = b
	}

	res, err := s.runner.Execute(r.Context(), pipeline.Options{
		Input:       body,
		Source:      "request " + RequestID(r.Context()),
		Orientation: r.URL.Query().Get("orientation"),
		Refresh:     refresh,
		TTL:         s.ttl,
		Logger:      s.logger,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	row, err := queryInt(r, "row")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	col, err := queryInt(r, "col")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body, ok := s.readBody(w, r)
	if !ok {
		return
	}
	g, err := forest.Parse(string(body))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := terrors.ValidateCoordinate(row, col, g.Rows(), g.Cols()); err != nil {
		s.writeError(w, r, err)
		return
	}

	at := forest.Coord{Row: row, Col: col}
	_, visible := forest.VisiblePositions(g)[at]
	writeJSON(w, http.StatusOK, scoreResponse{
		Row:       row,
		Col:       col,
		Height:    g.At(at),
		Distances: forest.ViewingDistances(g, at),
		Score:     forest.ScenicScore(g, at),
		Visible:   visible,
	})
}

// readBody reads the request body up to MaxBodyBytes. On failure it has
// already written the error response.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeErrorStatus(w, r, http.StatusRequestEntityTooLarge,
				terrors.New(terrors.ErrCodeInvalidInput, "body exceeds %d bytes", MaxBodyBytes))
			return nil, false
		}
		s.writeError(w, r, terrors.Wrap(terrors.ErrCodeInvalidInput, err, "read body"))
		return nil, false
	}
	return body, true
}

func queryInt(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, terrors.New(terrors.ErrCodeInvalidInput, "missing %s parameter", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, terrors.New(terrors.ErrCodeInvalidInput, "%s %q is not a number", name, v)
	}
	return n, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeErrorStatus(w, r, terrors.HTTPStatus(err), err)
}

func (s *Server) writeErrorStatus(w http.ResponseWriter, r *http.Request, status int, err error) {
	code := terrors.GetCode(err)
	if code == "" {
		code = terrors.ErrCodeInternal
	}
	msg := terrors.UserMessage(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", "err", err, "request_id", RequestID(r.Context()))
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{
		Code:      string(code),
		Message:   msg,
		RequestID: RequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
