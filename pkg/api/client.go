package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/filmoteca-hq/filmoteca-client/pkg/httpclient"
	"github.com/filmoteca-hq/filmoteca-client/pkg/session"
)

const defaultTimeout = 15 * time.Second

// Client issues requests against the filmoteca API and normalizes every
// outcome, including transport failures, into a Result envelope. The session
// store is read before each request and cleared when the server answers 401,
// so a stale credential is dropped without caller involvement.
type Client struct {
	baseURL string
	headers map[string]string
	http    httpclient.Client
	session session.Store
	log     Logger
}

// Config carries the client dependencies. HTTPClient, Session, and Logger
// are optional; Timeout only applies to the default transport. Headers are
// attached to every request, e.g. for environment-specific routing.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	Headers    map[string]string
	HTTPClient httpclient.Client
	Session    session.Store
	Logger     Logger
}

// New builds an API client for the configured base URL.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("api base URL is required")
	}

	transport := cfg.HTTPClient
	if transport == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		transport = httpclient.NewRestyClient(timeout)
	}

	store := cfg.Session
	if store == nil {
		store = session.NewNoopStore()
	}

	return &Client{
		baseURL: base,
		headers: cfg.Headers,
		http:    transport,
		session: store,
		log:     ensureLogger(cfg.Logger),
	}, nil
}

// Session exposes the store the client reads tokens from.
func (c *Client) Session() session.Store {
	return c.session
}

// requestOptions carries the per-request knobs endpoint wrappers set.
type requestOptions struct {
	headers map[string]string
	body    any
}

// do performs one normalized request: merge headers, attach the stored
// bearer token, issue the call, and map the outcome onto a Result.
func (c *Client) do(ctx context.Context, method, path string, opts requestOptions) Result {
	url := c.baseURL + path

	headers := map[string]string{"Content-Type": "application/json"}
	token, err := c.session.Token()
	if err != nil {
		c.log.WarnObj("session token read failed", "error", err.Error())
	}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	for k, v := range c.headers {
		headers[k] = v
	}
	// Caller headers win on key collision.
	for k, v := range opts.headers {
		headers[k] = v
	}

	resp, err := c.http.Do(ctx, method, url, headers, opts.body)
	if err != nil {
		c.log.WarnObj("request transport failed", "request_error", map[string]any{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		})
		msg := strings.TrimSpace(err.Error())
		if msg == "" {
			msg = MsgNetworkError
		}
		return failureResult(0, msg)
	}

	status := resp.StatusCode()
	if status == http.StatusNoContent {
		return successResult(json.RawMessage(`{}`))
	}

	body := resp.Body()
	if status >= 200 && status < 300 {
		if !json.Valid(body) {
			c.log.WarnObj("malformed success body", "request_error", map[string]any{
				"method": method,
				"path":   path,
				"status": status,
			})
			return failureResult(status, MsgInvalidResponse)
		}
		return successResult(json.RawMessage(body))
	}

	c.log.DebugObj("request failed", "request_error", map[string]any{
		"method": method,
		"path":   path,
		"status": status,
	})
	return c.failFor(status, body)
}

// failFor maps a non-2xx response onto the fixed user-facing message set.
func (c *Client) failFor(status int, body []byte) Result {
	switch status {
	case http.StatusConflict:
		return failureResult(status, MsgEmailRegistered)
	case http.StatusUnauthorized:
		if err := c.session.Clear(); err != nil {
			c.log.WarnObj("session clear failed", "error", err.Error())
		}
		return failureResult(status, MsgSessionExpired)
	case http.StatusBadRequest:
		if msg := serverMessage(body); msg != "" {
			return failureResult(status, msg)
		}
		return failureResult(status, MsgInvalidRequest)
	default:
		if msg := serverMessage(body); msg != "" {
			return failureResult(status, msg)
		}
		return failureResult(status, fmt.Sprintf("HTTP Error: %d", status))
	}
}
