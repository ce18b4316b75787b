package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/filmoteca-hq/filmoteca-client/pkg/session"
)

func newTestClient(t *testing.T, baseURL string, store session.Store) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: baseURL, Session: store})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNoContentYieldsEmptyObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, session.NewMemoryStore())
	res := c.Profile(context.Background())
	if !res.Success {
		t.Fatalf("expected success, got error %q", res.Error)
	}
	if string(res.Data) != "{}" {
		t.Fatalf("expected empty object payload, got %s", res.Data)
	}
	if res.Error != "" {
		t.Fatalf("success result must not carry an error")
	}
}

func TestUnauthorizedClearsStoredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"token expired"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	if err := store.Save("stale-token"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	c := newTestClient(t, srv.URL, store)
	res := c.Movies(context.Background())
	if res.Success {
		t.Fatalf("expected failure result")
	}
	if res.Status != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", res.Status)
	}
	if res.Error != MsgSessionExpired {
		t.Fatalf("expected fixed session-expired message, got %q", res.Error)
	}

	token, err := store.Token()
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if token != "" {
		t.Fatalf("expected stored token to be cleared, got %q", token)
	}
}

func TestConflictUsesFixedMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"server-side wording"}`, http.StatusConflict)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, session.NewMemoryStore())
	res := c.Register(context.Background(), Registration{Name: "Ana", Email: "ana@example.com", Password: "pw"})
	if res.Success {
		t.Fatalf("expected failure result")
	}
	if res.Error != MsgEmailRegistered {
		t.Fatalf("expected fixed conflict message, got %q", res.Error)
	}
}

func TestBadRequestPrefersServerMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"server message", `{"message":"falta el email"}`, "falta el email"},
		{"no message field", `{"code":12}`, MsgInvalidRequest},
		{"empty body", ``, MsgInvalidRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL, session.NewMemoryStore())
			res := c.Login(context.Background(), Credentials{Email: "x", Password: "y"})
			if res.Success {
				t.Fatalf("expected failure result")
			}
			if res.Status != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", res.Status)
			}
			if res.Error != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, res.Error)
			}
		})
	}
}

func TestOtherFailureStatusFallsBack(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"server message wins", http.StatusServiceUnavailable, `{"message":"mantenimiento"}`, "mantenimiento"},
		{"generic fallback", http.StatusInternalServerError, `{}`, "HTTP Error: 500"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL, session.NewMemoryStore())
			res := c.Movies(context.Background())
			if res.Success {
				t.Fatalf("expected failure result")
			}
			if res.Status != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, res.Status)
			}
			if res.Error != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, res.Error)
			}
		})
	}
}

func TestBearerHeaderFollowsStoredToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	c := newTestClient(t, srv.URL, store)

	if res := c.Movies(context.Background()); !res.Success {
		t.Fatalf("Movies: %v", res.Error)
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header without a token, got %q", gotAuth)
	}

	if err := store.Save("t0ken"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if res := c.Movies(context.Background()); !res.Success {
		t.Fatalf("Movies: %v", res.Error)
	}
	if gotAuth != "Bearer t0ken" {
		t.Fatalf("expected stored bearer token, got %q", gotAuth)
	}
}

func TestLogoutUsesExplicitTokenOverStored(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	if err := store.Save("stored-token"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	c := newTestClient(t, srv.URL, store)
	if res := c.Logout(context.Background(), "explicit-token"); !res.Success {
		t.Fatalf("Logout: %v", res.Error)
	}
	if gotAuth != "Bearer explicit-token" {
		t.Fatalf("expected explicit token to win, got %q", gotAuth)
	}
}

func TestNetworkFailureYieldsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // connection refused from here on

	c := newTestClient(t, srv.URL, session.NewMemoryStore())
	res := c.Movies(context.Background())
	if res.Success {
		t.Fatalf("expected failure result")
	}
	if res.Status != 0 {
		t.Fatalf("transport failures carry no HTTP status, got %d", res.Status)
	}
	if res.Error == "" {
		t.Fatalf("expected a non-empty error message")
	}
}

func TestMalformedSuccessBodyIsInvalidResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"truncated":`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, session.NewMemoryStore())
	res := c.Profile(context.Background())
	if res.Success {
		t.Fatalf("expected failure result")
	}
	if res.Status != http.StatusOK {
		t.Fatalf("expected the 2xx status to be reported, got %d", res.Status)
	}
	if res.Error != MsgInvalidResponse {
		t.Fatalf("expected invalid-response message, got %q", res.Error)
	}
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error for missing base URL")
	}
}

func TestNewDefaultsToNoopSession(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Saves to the default store are dropped, so no bearer header appears.
	if err := c.Session().Save("ignored"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if res := c.Movies(context.Background()); !res.Success {
		t.Fatalf("Movies: %v", res.Error)
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header with the noop store, got %q", gotAuth)
	}
}

func TestConfigHeadersAttachToEveryRequest(t *testing.T) {
	var gotEnv string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEnv = r.Header.Get("X-Env")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, err := New(Config{
		BaseURL: srv.URL,
		Headers: map[string]string{"X-Env": "staging"},
		Session: session.NewMemoryStore(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if res := c.Movies(context.Background()); !res.Success {
		t.Fatalf("Movies: %v", res.Error)
	}
	if gotEnv != "staging" {
		t.Fatalf("expected configured header on request, got %q", gotEnv)
	}
}
