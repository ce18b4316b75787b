package api

import (
	"context"
	"net/http"
	"net/url"
)

// Movie payloads are left as raw JSON on the Result: the catalog schema is
// server-defined and callers decode into their own types.

// Movies lists the movie catalog.
func (c *Client) Movies(ctx context.Context) Result {
	return c.do(ctx, http.MethodGet, "/movies", requestOptions{})
}

// MovieByID fetches a single movie by its identifier.
func (c *Client) MovieByID(ctx context.Context, id string) Result {
	return c.do(ctx, http.MethodGet, "/movies/"+url.PathEscape(id), requestOptions{})
}
