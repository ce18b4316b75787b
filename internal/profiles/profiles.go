package profiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const defaultTimeoutSeconds = 15

// configFile represents the structure of the profiles configuration file.
type configFile struct {
	Profiles []Profile `json:"profiles" yaml:"profiles"`
}

// Profile describes one API environment the client can target.
type Profile struct {
	ID             string            `json:"id" yaml:"id"`
	BaseURL        string            `json:"base_url" yaml:"base_url"`
	Headers        map[string]string `json:"headers" yaml:"headers"`
	TimeoutSeconds int               `json:"timeout_seconds" yaml:"timeout_seconds"`
	Default        *bool             `json:"default" yaml:"default"`
}

// Registry materializes environment profiles loaded from config files.
type Registry struct {
	mu       sync.RWMutex
	profiles []Profile
	idx      map[string]Profile
}

// LoadRegistry loads the profile registry from a YAML/JSON file.
func LoadRegistry(path string) (*Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("profiles file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profiles file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}

	fileReg, err := parseProfileRegistry(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if len(fileReg.Profiles) == 0 {
		return nil, errors.New("profiles file contains no profiles entries")
	}

	reg := &Registry{
		profiles: make([]Profile, len(fileReg.Profiles)),
		idx:      make(map[string]Profile, len(fileReg.Profiles)),
	}

	for i := range fileReg.Profiles {
		prof := sanitizeProfile(fileReg.Profiles[i])
		if err := validateProfile(prof); err != nil {
			return nil, fmt.Errorf("profiles[%d]: %w", i, err)
		}
		if _, exists := reg.idx[prof.ID]; exists {
			return nil, fmt.Errorf("duplicate profile id %q", prof.ID)
		}
		reg.profiles[i] = prof
		reg.idx[prof.ID] = prof
	}

	return reg, nil
}

// parseProfileRegistry attempts to decode the profiles file content.
func parseProfileRegistry(data []byte, ext string) (configFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	attempts := 0
	var attemptErr error
	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		reg, err := unmarshalProfileRegistry(d.name, data, d.fn)
		if err == nil {
			return reg, nil
		}
		attempts++
		attemptErr = err
	}

	// A known extension selects a single decoder; its error is the real cause.
	if attempts == 1 && attemptErr != nil {
		return configFile{}, attemptErr
	}
	return configFile{}, errors.New("profiles file format not recognized (expected YAML or JSON)")
}

// unmarshalProfileRegistry decodes the profiles file using the provided function.
func unmarshalProfileRegistry(name string, data []byte, fn func([]byte, any) error) (configFile, error) {
	var reg configFile
	if err := fn(data, &reg); err != nil {
		return configFile{}, fmt.Errorf("decode %s profiles: %w", name, err)
	}
	return reg, nil
}

// sanitizeProfile trims and normalizes the profile fields.
func sanitizeProfile(prof Profile) Profile {
	prof.ID = strings.TrimSpace(prof.ID)
	prof.BaseURL = strings.TrimRight(strings.TrimSpace(prof.BaseURL), "/")
	prof.Headers = sanitizeHeaders(prof.Headers)
	if prof.TimeoutSeconds <= 0 {
		prof.TimeoutSeconds = defaultTimeoutSeconds
	}
	return prof
}

// sanitizeHeaders trims and removes empty headers.
func sanitizeHeaders(headers map[string]string) map[string]string {
	if len(headers) == 0 {
		return nil
	}
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		key := strings.TrimSpace(k)
		val := strings.TrimSpace(v)
		if key == "" || val == "" {
			continue
		}
		out[key] = val
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// validateProfile checks that required fields are present.
func validateProfile(prof Profile) error {
	if prof.ID == "" {
		return errors.New("id is required")
	}
	if prof.BaseURL == "" {
		return fmt.Errorf("base_url is required for profile %q", prof.ID)
	}
	return nil
}

// ByID returns the profile config by id.
func (r *Registry) ByID(id string) (Profile, bool) {
	if r == nil {
		return Profile{}, false
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return Profile{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	prof, ok := r.idx[id]
	return prof, ok
}

// All returns all configured profiles.
func (r *Registry) All() []Profile {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Profile, len(r.profiles))
	copy(out, r.profiles)
	return out
}

// Default returns the profile marked as default, if any.
func (r *Registry) Default() (Profile, bool) {
	if r == nil {
		return Profile{}, false
	}

	for _, prof := range r.All() {
		if prof.Default != nil && *prof.Default {
			return prof, true
		}
	}
	return Profile{}, false
}
