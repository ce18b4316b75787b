package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRestyClientDo(t *testing.T) {
	var gotMethod, gotHeader string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeader = r.Header.Get("X-Test")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewRestyClient(2 * time.Second)
	resp, err := c.Do(context.Background(), http.MethodPost, srv.URL, map[string]string{
		"Content-Type": "application/json",
		"X-Test":       "1",
	}, map[string]string{"name": "ana"})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	if resp.StatusCode() != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.StatusCode())
	}
	if string(resp.Body()) != `{"ok":true}` {
		t.Fatalf("unexpected body %s", resp.Body())
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("expected POST, got %s", gotMethod)
	}
	if gotHeader != "1" {
		t.Fatalf("missing header, got %s", gotHeader)
	}
	if !strings.Contains(string(gotBody), `"name":"ana"`) {
		t.Fatalf("expected JSON body, got %s", gotBody)
	}
}

func TestRestyClientDoReturnsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := NewRestyClient(time.Second)
	if _, err := c.Do(context.Background(), http.MethodGet, srv.URL, nil, nil); err == nil {
		t.Fatalf("expected error for refused connection")
	}
}
