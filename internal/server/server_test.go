package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/treetop/pkg/cache"
	"github.com/matzehuels/treetop/pkg/forest"
	"github.com/matzehuels/treetop/pkg/observability"
	"github.com/matzehuels/treetop/pkg/pipeline"
)

const sample = "30373\n25512\n65332\n33549\n35390\n"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(fc, nil, logger)
	t.Cleanup(func() { runner.Close() })
	return New(runner, logger, time.Hour)
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decode[map[string]string](t, rec)
	if body["status"] != "ok" || body["version"] == "" {
		t.Errorf("body = %v", body)
	}
}

func TestAnalyze(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/v1/analyze", sample)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	res := decode[pipeline.Result](t, rec)
	if res.Visible != 21 || res.Scenic != 8 {
		t.Errorf("visible/scenic = %d/%d, want 21/8", res.Visible, res.Scenic)
	}
	if want := (forest.Coord{Row: 3, Col: 2}); res.ScenicAt != want {
		t.Errorf("scenic_at = %+v, want %+v", res.ScenicAt, want)
	}
	if res.CacheHit {
		t.Error("first request should not hit the cache")
	}

	if !decode[pipeline.Result](t, do(t, s, http.MethodPost, "/v1/analyze", sample)).CacheHit {
		t.Error("second request should hit the cache")
	}
	if decode[pipeline.Result](t, do(t, s, http.MethodPost, "/v1/analyze?refresh=true", sample)).CacheHit {
		t.Error("refresh should bypass the cache")
	}

	flipped := decode[pipeline.Result](t, do(t, s, http.MethodPost, "/v1/analyze?orientation=flipped", sample))
	if flipped.Orientation != "flipped" || flipped.Scenic != 8 {
		t.Errorf("flipped = %+v", flipped)
	}
}

func TestScore(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/v1/score?row=3&col=2", sample)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	got := decode[scoreResponse](t, rec)
	want := scoreResponse{
		Row:       3,
		Col:       2,
		Height:    5,
		Distances: [4]int{2, 2, 2, 1},
		Score:     8,
		Visible:   true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("score mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		status   int
		wantCode string
	}{
		{"jagged grid", http.MethodPost, "/v1/analyze", "123\n45\n", http.StatusBadRequest, "INVALID_GRID"},
		{"empty grid", http.MethodPost, "/v1/analyze", "", http.StatusBadRequest, "INVALID_GRID"},
		{"bad orientation", http.MethodPost, "/v1/analyze?orientation=up", sample, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad refresh", http.MethodPost, "/v1/analyze?refresh=maybe", sample, http.StatusBadRequest, "INVALID_INPUT"},
		{"missing row", http.MethodPost, "/v1/score?col=1", sample, http.StatusBadRequest, "INVALID_INPUT"},
		{"out of range", http.MethodPost, "/v1/score?row=9&col=1", sample, http.StatusBadRequest, "INVALID_INPUT"},
		{"too large", http.MethodPost, "/v1/analyze", strings.Repeat("1", MaxBodyBytes+1), http.StatusRequestEntityTooLarge, "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(t), tt.method, tt.target, tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body)
			}
			body := decode[errorResponse](t, rec)
			if body.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
			}
			if body.Message == "" {
				t.Error("message should not be empty")
			}
			if body.RequestID == "" || body.RequestID != rec.Header().Get(RequestIDHeader) {
				t.Errorf("request_id = %q, header = %q", body.RequestID, rec.Header().Get(RequestIDHeader))
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/v1/analyze", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want abc-123", got)
	}

	rec = do(t, s, http.MethodGet, "/healthz", "")
	if got := rec.Header().Get(RequestIDHeader); len(got) != 36 {
		t.Errorf("generated X-Request-ID = %q, want a UUID", got)
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	paths    []string
	statuses []int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, path string, status int, _ time.Duration) {
	h.paths = append(h.paths, path)
	h.statuses = append(h.statuses, status)
}

func TestObserveHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	s := newTestServer(t)
	do(t, s, http.MethodGet, "/healthz", "")
	do(t, s, http.MethodPost, "/v1/score?row=x&col=0", sample)

	if diff := cmp.Diff([]string{"/healthz", "/v1/score"}, hooks.paths); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{200, 400}, hooks.statuses); diff != "" {
		t.Errorf("statuses mismatch (-want +got):\n%s", diff)
	}
}

func TestServeShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
