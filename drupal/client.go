package drupal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"articlesearch/config"
	"articlesearch/types"
)

// Client talks to the Drupal GraphQL endpoint, authenticating with an OAuth
// client-credentials grant. The token is fetched and refreshed by the oauth2
// transport; callers only see article values.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient builds a GraphQL client from configuration.
func NewClient(cfg *config.Config) *Client {
	cc := clientcredentials.Config{
		ClientID:     cfg.DrupalClientID,
		ClientSecret: cfg.DrupalClientSecret,
		TokenURL:     cfg.DrupalBaseURL + "/oauth/token",
	}

	httpClient := cc.Client(context.Background())
	httpClient.Timeout = 30 * time.Second

	return &Client{
		endpoint:   cfg.DrupalBaseURL + "/graphql",
		httpClient: httpClient,
	}
}

// graphqlRequest is the wire shape of a GraphQL POST.
type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

// FetchArticles retrieves up to config.MaxArticlesPerFetch article nodes and
// normalizes them. Nodes that normalize to nil are skipped.
func (c *Client) FetchArticles(ctx context.Context) ([]types.Article, error) {
	var data struct {
		NodeArticles struct {
			Nodes []ArticleNode `json:"nodes"`
		} `json:"nodeArticles"`
	}

	err := c.query(ctx, articlesQuery, map[string]interface{}{
		"first": config.MaxArticlesPerFetch,
	}, &data)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch articles: %w", err)
	}

	articles := make([]types.Article, 0, len(data.NodeArticles.Nodes))
	for i := range data.NodeArticles.Nodes {
		if a := Normalize(&data.NodeArticles.Nodes[i]); a != nil {
			articles = append(articles, *a)
		}
	}
	return articles, nil
}

// FetchArticleByPath retrieves a single article by its route path.
// Returns (nil, nil) when the route does not resolve to an article.
func (c *Client) FetchArticleByPath(ctx context.Context, path string) (*types.Article, error) {
	var data struct {
		Route struct {
			Entity *ArticleNode `json:"entity"`
		} `json:"route"`
	}

	err := c.query(ctx, articleByPathQuery, map[string]interface{}{
		"path": path,
	}, &data)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article %q: %w", path, err)
	}

	return Normalize(data.Route.Entity), nil
}

// query POSTs a GraphQL document and decodes the data field into out.
func (c *Client) query(ctx context.Context, doc string, vars map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(graphqlRequest{Query: doc, Variables: vars})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("graphql request failed (status %d): %s", resp.StatusCode, string(b))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode graphql response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("graphql error: %s", envelope.Errors[0].Message)
	}

	return json.Unmarshal(envelope.Data, out)
}
