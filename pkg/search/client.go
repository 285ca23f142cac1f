package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rubiojr/snix/pkg/log"
)

const (
	// DefaultBaseURL is the public search.nixos.org backend.
	DefaultBaseURL = "https://search.nixos.org/backend"

	// DefaultTimeout bounds a single search request.
	DefaultTimeout = 30 * time.Second
)

// Public read-only credentials shipped by the search.nixos.org frontend.
// They grant no write access; the backend simply requires basic auth.
const (
	defaultUsername = "aWVSALXpZv"
	defaultPassword = "X8gPHnzL52wFEekuxsfQ9cSh"
)

// ClientConfig configures a Client. Zero values fall back to the public
// search.nixos.org defaults.
type ClientConfig struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration
}

// Client executes search requests against one backend instance. It performs
// exactly one HTTP call per search and never retries: for an interactive tool
// a silent retry would only mask availability problems.
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
	logger   *log.Logger
}

// NewClient creates a client for the configured backend.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Username == "" {
		cfg.Username = defaultUsername
	}
	if cfg.Password == "" {
		cfg.Password = defaultPassword
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		http:     &http.Client{Timeout: cfg.Timeout},
		logger:   log.ForService("client"),
	}
}

// Search validates params, builds the query document and posts it to the
// index derived from the search type and channel. The returned Response keeps
// the raw body for verbatim JSON output.
func (c *Client) Search(ctx context.Context, params SearchParams) (*Response, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	doc := BuildQuery(params)
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling query: %w", err)
	}

	index := IndexFor(params.Type, params.Channel)
	endpoint := fmt.Sprintf("%s/%s/_search", c.baseURL, index)
	c.logger.Debugf("POST %s", endpoint)
	c.logger.Debugf("query document: %s", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("closing response body: %v", err)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &DecodeError{Err: err}
	}
	out.Raw = raw

	c.logger.Debugf("found %d hits (%d returned)", out.Total(), len(out.Hits.Hits))
	return &out, nil
}
