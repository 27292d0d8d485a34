// Package placeholder implements service.Service against a JSONPlaceholder-style
// REST API (GET {base}/todos and GET {base}/todos/{id}).
package placeholder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/idilsaglam/todoview/internal/model"
	"github.com/idilsaglam/todoview/internal/service"
)

const (
	// DefaultBaseURL is the public demo API.
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"

	// DefaultTimeout bounds a single retrieval.
	DefaultTimeout = 10 * time.Second
)

// Doer is the part of *http.Client the backend needs. Tests substitute their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements service.Service over HTTP.
type Client struct {
	baseURL string
	http    Doer
	timeout time.Duration
}

// Option tunes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// WithTimeout sets the per-retrieval deadline. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New creates a client rooted at baseURL (DefaultBaseURL when empty).
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
		timeout: DefaultTimeout,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the normalized root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// TodosURL is the collection endpoint.
func (c *Client) TodosURL() string { return c.baseURL + "/todos" }

// TodoURL is the single-record endpoint for id.
func (c *Client) TodoURL(id int) string { return c.TodosURL() + "/" + strconv.Itoa(id) }

// Todos fetches the full collection.
func (c *Client) Todos(ctx context.Context) ([]model.Item, error) {
	body, err := c.get(ctx, c.TodosURL())
	if err != nil {
		return nil, err
	}
	var items []model.Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, invalidBody(err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Todo fetches one record. A null or empty object body yields (nil, nil).
func (c *Client) Todo(ctx context.Context, id int) (*model.Item, error) {
	body, err := c.get(ctx, c.TodoURL(id))
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(body)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	// an object with no fields carries no record
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, invalidBody(err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	var it model.Item
	if err := json.Unmarshal(trimmed, &it); err != nil {
		return nil, invalidBody(err)
	}
	return &it, nil
}

func invalidBody(err error) error {
	return &service.NetworkError{Description: fmt.Sprintf("invalid response body: %v", err), Err: err}
}

// get performs exactly one request; there are no retries.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[placeholder] GET %s failed after %s: %v", rawURL, time.Since(start), err)
		return nil, wrapError(err)
	}
	defer resp.Body.Close()

	log.Printf("[placeholder] GET %s -> %d in %s", rawURL, resp.StatusCode, time.Since(start))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &service.HTTPError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(err)
	}
	return body, nil
}

// wrapError turns a transport failure into a NetworkError whose description is
// the underlying cause rather than net/http's "Get <url>:" prefix.
func wrapError(err error) error {
	cause := err
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		cause = uerr.Err
	}
	return &service.NetworkError{Description: cause.Error(), Err: err}
}
