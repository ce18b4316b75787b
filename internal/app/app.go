package app

import (
	"fmt"
	"time"

	"github.com/filmoteca-hq/filmoteca-client/internal/config"
	"github.com/filmoteca-hq/filmoteca-client/internal/logger"
	"github.com/filmoteca-hq/filmoteca-client/internal/profiles"
	"github.com/filmoteca-hq/filmoteca-client/pkg/api"
	"github.com/filmoteca-hq/filmoteca-client/pkg/session"
)

// App wires the configured environment, session store, and API client used
// by the CLI commands.
type App struct {
	cfg   *config.Config
	log   logger.Logger
	store session.Store
	api   *api.Client
}

// Options override pieces of the flat config, typically from CLI flags.
type Options struct {
	ProfileID string
	BaseURL   string
}

// New builds the runtime from config, resolving an environment profile when
// one is requested.
func New(cfg *config.Config, log logger.Logger, opts Options) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	baseURL := cfg.APIBaseURL
	timeout := cfg.HTTPTimeout
	var headers map[string]string

	if opts.ProfileID != "" {
		prof, err := resolveProfile(cfg, opts.ProfileID)
		if err != nil {
			return nil, err
		}
		baseURL = prof.BaseURL
		headers = prof.Headers
		if prof.TimeoutSeconds > 0 {
			timeout = time.Duration(prof.TimeoutSeconds) * time.Second
		}
		log.InfoObj("environment profile selected", "profile_meta", map[string]any{
			"id":       prof.ID,
			"base_url": prof.BaseURL,
		})
	}
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}

	store, err := session.NewStore(cfg.SessionStoreType, cfg.SessionPath)
	if err != nil {
		return nil, fmt.Errorf("init session store: %w", err)
	}
	log.DebugObj("session store initialized", "session_config", map[string]any{
		"type": cfg.SessionStoreType,
		"path": cfg.SessionPath,
	})

	client, err := api.New(api.Config{
		BaseURL: baseURL,
		Timeout: timeout,
		Headers: headers,
		Session: store,
		Logger:  log,
	})
	if err != nil {
		closeStore(store, log)
		return nil, fmt.Errorf("init api client: %w", err)
	}

	return &App{
		cfg:   cfg,
		log:   log,
		store: store,
		api:   client,
	}, nil
}

// resolveProfile loads the profile registry and looks up the requested entry.
func resolveProfile(cfg *config.Config, id string) (profiles.Profile, error) {
	if cfg.ProfilesFile == "" {
		return profiles.Profile{}, fmt.Errorf("profile %q requested but no profiles_file configured", id)
	}
	reg, err := profiles.LoadRegistry(cfg.ProfilesFile)
	if err != nil {
		return profiles.Profile{}, fmt.Errorf("load profiles registry: %w", err)
	}
	prof, ok := reg.ByID(id)
	if !ok {
		return profiles.Profile{}, fmt.Errorf("unknown profile %q", id)
	}
	return prof, nil
}

// API returns the configured API client.
func (a *App) API() *api.Client {
	return a.api
}

// Session returns the session store backing the API client.
func (a *App) Session() session.Store {
	return a.store
}

// Close releases the session store.
func (a *App) Close() {
	if a == nil {
		return
	}
	closeStore(a.store, a.log)
}

// closeStore safely closes the session store, logging any errors encountered.
func closeStore(store session.Store, log logger.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		log.ErrorObj("session store close failed", "error", err.Error())
	}
}
