package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"articlesearch/config"
	"articlesearch/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// countingEngine records how often it was invoked so tests can assert that
// validation short-circuits before any backend call.
type countingEngine struct {
	calls     int
	lastQuery string
	lastLimit int
	results   []types.SearchResult
	err       error
}

func (e *countingEngine) Search(_ context.Context, query string, limit int) ([]types.SearchResult, error) {
	e.calls++
	e.lastQuery = query
	e.lastLimit = limit
	return e.results, e.err
}

func serve(t *testing.T, s *Server, method, target string, body string, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestSearchMissingQuery(t *testing.T) {
	engine := &countingEngine{}
	s := NewServer(&config.Config{}, engine, nil, nil)

	w := serve(t, s, http.MethodGet, "/api/search", "", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", w.Code)
	}
	if engine.calls != 0 {
		t.Errorf("engine calls = %d; want 0 before validation passes", engine.calls)
	}

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != `Query parameter "q" is required` {
		t.Errorf("error = %q", body["error"])
	}
}

func TestSearchUnconfigured(t *testing.T) {
	s := NewServer(&config.Config{}, nil, nil, nil)

	w := serve(t, s, http.MethodGet, "/api/search?q=hello", "", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d; want 503", w.Code)
	}
}

func TestSearchSuccess(t *testing.T) {
	engine := &countingEngine{results: []types.SearchResult{
		{ID: "a1", Score: 0.9, Article: types.Article{ID: "a1", Title: "Hit"}},
	}}
	s := NewServer(&config.Config{}, engine, nil, nil)

	w := serve(t, s, http.MethodGet, "/api/search?q=embedding+basics", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body = %s", w.Code, w.Body.String())
	}

	var resp types.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Query != "embedding basics" {
		t.Errorf("query = %q", resp.Query)
	}
	if resp.TotalResults != 1 || len(resp.Results) != 1 {
		t.Errorf("results = %+v", resp)
	}
	if engine.lastQuery != "embedding basics" || engine.lastLimit != config.DefaultSearchLimit {
		t.Errorf("engine saw query=%q limit=%d", engine.lastQuery, engine.lastLimit)
	}
}

func TestSearchBackendFailure(t *testing.T) {
	engine := &countingEngine{err: errors.New("index down")}
	s := NewServer(&config.Config{}, engine, nil, nil)

	w := serve(t, s, http.MethodGet, "/api/search?q=x", "", "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d; want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "index down") {
		t.Error("backend error detail leaked to client")
	}
}

func TestSearchLimitParsing(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", config.DefaultSearchLimit},
		{"5", 5},
		{"0", config.DefaultSearchLimit},
		{"-3", config.DefaultSearchLimit},
		{"abc", config.DefaultSearchLimit},
		{"500", config.MaxSearchLimit},
	}
	for _, tt := range tests {
		engine := &countingEngine{}
		s := NewServer(&config.Config{}, engine, nil, nil)

		target := "/api/search?q=x"
		if tt.raw != "" {
			target += "&limit=" + url.QueryEscape(tt.raw)
		}
		serve(t, s, http.MethodGet, target, "", "")
		if engine.lastLimit != tt.want {
			t.Errorf("limit %q: engine saw %d; want %d", tt.raw, engine.lastLimit, tt.want)
		}
	}
}

func TestHealthModes(t *testing.T) {
	tests := []struct {
		name   string
		cfg    *config.Config
		engine *countingEngine
		want   string
	}{
		{"demo", &config.Config{DemoMode: true}, &countingEngine{}, "demo"},
		{"vector", &config.Config{}, &countingEngine{}, "vector"},
		{"unconfigured", &config.Config{}, nil, "unconfigured"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s *Server
			if tt.engine != nil {
				s = NewServer(tt.cfg, tt.engine, nil, nil)
			} else {
				s = NewServer(tt.cfg, nil, nil, nil)
			}
			w := serve(t, s, http.MethodGet, "/api/health", "", "")
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			var body map[string]string
			json.Unmarshal(w.Body.Bytes(), &body)
			if body["status"] != "healthy" || body["mode"] != tt.want {
				t.Errorf("body = %v; want mode %q", body, tt.want)
			}
		})
	}
}

func TestRevalidateNoServerSecret(t *testing.T) {
	s := NewServer(&config.Config{}, nil, nil, nil)
	w := serve(t, s, http.MethodPost, "/api/revalidate", `{"secret":"x","path":"/articles/a"}`, "application/json")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d; want 500", w.Code)
	}
}

func TestRevalidateBadSecret(t *testing.T) {
	s := NewServer(&config.Config{RevalidateSecret: "right"}, nil, nil, nil)
	w := serve(t, s, http.MethodPost, "/api/revalidate", `{"secret":"wrong","path":"/articles/a"}`, "application/json")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want 401", w.Code)
	}
}

func TestRevalidateByPath(t *testing.T) {
	s := NewServer(&config.Config{RevalidateSecret: "s3cr3t"}, nil, nil, nil)
	w := serve(t, s, http.MethodPost, "/api/revalidate", `{"secret":"s3cr3t","path":"/articles/go-search"}`, "application/json")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body = %s", w.Code, w.Body.String())
	}

	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["revalidated"] != true || body["path"] != "/articles/go-search" {
		t.Errorf("body = %v", body)
	}
}

func TestRevalidateBySlug(t *testing.T) {
	s := NewServer(&config.Config{RevalidateSecret: "s3cr3t"}, nil, nil, nil)
	w := serve(t, s, http.MethodPost, "/api/revalidate", `{"secret":"s3cr3t","slug":"go-search"}`, "application/json")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body = %s", w.Code, w.Body.String())
	}

	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["path"] != "/articles/go-search" {
		t.Errorf("path = %v", body["path"])
	}
}

func TestRevalidateForm(t *testing.T) {
	s := NewServer(&config.Config{RevalidateSecret: "s3cr3t"}, nil, nil, nil)
	form := url.Values{"secret": {"s3cr3t"}, "slug": {"go-search"}}
	w := serve(t, s, http.MethodPost, "/api/revalidate", form.Encode(), "application/x-www-form-urlencoded")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body = %s", w.Code, w.Body.String())
	}
}

func TestRevalidateMissingPathAndSlug(t *testing.T) {
	s := NewServer(&config.Config{RevalidateSecret: "s3cr3t"}, nil, nil, nil)
	w := serve(t, s, http.MethodPost, "/api/revalidate", `{"secret":"s3cr3t"}`, "application/json")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", w.Code)
	}
}

func TestGetArticleNoContentSource(t *testing.T) {
	s := NewServer(&config.Config{}, nil, nil, nil)
	w := serve(t, s, http.MethodGet, "/api/articles/go-search", "", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d; want 503", w.Code)
	}
}
