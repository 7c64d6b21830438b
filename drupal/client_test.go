package drupal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"articlesearch/config"
)

// newTestServer serves the OAuth token endpoint and a canned GraphQL
// response, capturing the last GraphQL request body.
func newTestServer(t *testing.T, graphqlResponse string) (*httptest.Server, *graphqlRequest) {
	t.Helper()
	var lastRequest graphqlRequest

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("token request parse: %v", err)
		}
		if got := r.Form.Get("grant_type"); got != "client_credentials" {
			t.Errorf("grant_type = %q; want client_credentials", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"test-token","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q; want bearer test-token", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&lastRequest); err != nil {
			t.Fatalf("graphql request decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(graphqlResponse))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &lastRequest
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		DrupalBaseURL:      baseURL,
		DrupalClientID:     "client-id",
		DrupalClientSecret: "client-secret",
	}
}

func TestFetchArticles(t *testing.T) {
	srv, lastRequest := newTestServer(t, `{
		"data": {
			"nodeArticles": {
				"nodes": [
					{
						"id": "a1",
						"title": "First",
						"path": "/articles/first",
						"created": {"time": "2024-01-05T08:00:00Z"},
						"body": {"processed": "<p>Hello</p>"},
						"summary": {"value": "Intro"},
						"category": "Dev",
						"tags": "go, search",
						"readTime": "4 min read"
					},
					{
						"id": "a2",
						"title": "Second",
						"path": "/articles/second"
					}
				]
			}
		}
	}`)

	client := NewClient(testConfig(srv.URL))
	articles, err := client.FetchArticles(context.Background())
	if err != nil {
		t.Fatalf("FetchArticles: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("got %d articles; want 2", len(articles))
	}
	if articles[0].Slug != "first" || articles[0].Category != "Dev" {
		t.Errorf("first article = %+v; want slug first / category Dev", articles[0])
	}
	if articles[1].Category != "General" {
		t.Errorf("second article category = %q; want defaulted General", articles[1].Category)
	}

	if lastRequest.Variables["first"] != float64(config.MaxArticlesPerFetch) {
		t.Errorf("first variable = %v; want %d", lastRequest.Variables["first"], config.MaxArticlesPerFetch)
	}
}

func TestFetchArticleByPath(t *testing.T) {
	srv, lastRequest := newTestServer(t, `{
		"data": {
			"route": {
				"entity": {
					"id": "a9",
					"title": "Routed",
					"path": "/articles/routed"
				}
			}
		}
	}`)

	client := NewClient(testConfig(srv.URL))
	article, err := client.FetchArticleByPath(context.Background(), "/articles/routed")
	if err != nil {
		t.Fatalf("FetchArticleByPath: %v", err)
	}
	if article == nil || article.Slug != "routed" {
		t.Fatalf("article = %+v; want slug routed", article)
	}
	if lastRequest.Variables["path"] != "/articles/routed" {
		t.Errorf("path variable = %v", lastRequest.Variables["path"])
	}
}

func TestFetchArticleByPathMiss(t *testing.T) {
	srv, _ := newTestServer(t, `{"data": {"route": {"entity": null}}}`)

	client := NewClient(testConfig(srv.URL))
	article, err := client.FetchArticleByPath(context.Background(), "/articles/nope")
	if err != nil {
		t.Fatalf("FetchArticleByPath: %v", err)
	}
	if article != nil {
		t.Fatalf("article = %+v; want nil for unresolved route", article)
	}
}

func TestGraphQLErrorSurfaced(t *testing.T) {
	srv, _ := newTestServer(t, `{"data": null, "errors": [{"message": "field does not exist"}]}`)

	client := NewClient(testConfig(srv.URL))
	_, err := client.FetchArticles(context.Background())
	if err == nil {
		t.Fatal("FetchArticles: want error for graphql errors payload")
	}
}
