package session

import (
	"fmt"
	"strings"
)

// Package session provides local persistence for the API auth token.

// Store holds the single auth token for the current session.
type Store interface {
	Close() error
	// Token returns the stored token, or "" when none is stored.
	Token() (string, error)
	Save(token string) error
	Clear() error
	IsAuthenticated() (bool, error)
}

// Supported store backends.
const (
	TypeBBolt  = "bbolt"
	TypeMemory = "memory"
)

// NewStore creates the configured session store backend.
func NewStore(typ, path string) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))

	switch typ {
	case "", "none", "disabled":
		return NewNoopStore(), nil
	case TypeMemory:
		return NewMemoryStore(), nil
	case TypeBBolt:
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt session store requires a path")
		}
		return openBolt(path)
	default:
		return nil, fmt.Errorf("unsupported session store type %q", typ)
	}
}

// NewNoopStore creates a store that keeps nothing; callers using it are
// permanently unauthenticated.
func NewNoopStore() Store {
	return noopStore{}
}

type noopStore struct{}

func (noopStore) Close() error                   { return nil }
func (noopStore) Token() (string, error)         { return "", nil }
func (noopStore) Save(string) error              { return nil }
func (noopStore) Clear() error                   { return nil }
func (noopStore) IsAuthenticated() (bool, error) { return false, nil }
