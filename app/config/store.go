package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"reflect"
	"sync"

	"github.com/go-pkgz/fileutils"
)

// Store keeps every tenant's configuration document in memory, backed by a
// single JSON file. All mutations persist before returning. Safe for
// concurrent use.
type Store struct {
	path     string
	defaults GuildConfig
	guilds   map[string]GuildConfig
	revs     map[string]int64
	lock     sync.RWMutex
}

// NewStore loads the store from path. A missing file is created with defaults,
// a legacy flat document is accepted once and rewritten in the current shape
// with the original preserved as path.bak.
func NewStore(path string) (*Store, error) {
	res := &Store{path: path, revs: map[string]int64{}}
	if err := res.Reload(); err != nil {
		return nil, err
	}
	return res, nil
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// Reload re-reads the backing file, replacing in-memory state. Revisions move
// only for tenants whose documents actually changed.
func (s *Store) Reload() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.load()
}

// load parses the backing file, accepting all three shapes (must be called with lock held)
func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("[INFO] config file %s not found, creating with defaults", s.path)
		s.apply(Defaults(), map[string]GuildConfig{})
		return s.save()
	}
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", s.path, err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfigInvalid, s.path, err)
	}

	_, hasDefaults := probe["defaults"]
	_, hasGuilds := probe["guilds"]
	if !hasDefaults && !hasGuilds {
		// legacy shape, the whole document is the defaults
		defaults := Defaults()
		if err := json.Unmarshal(data, &defaults); err != nil {
			return fmt.Errorf("%w: legacy document %s: %v", ErrConfigInvalid, s.path, err)
		}
		if err := fileutils.CopyFile(s.path, s.path+".bak"); err != nil {
			log.Printf("[WARN] failed to back up legacy config: %v", err)
		}
		log.Printf("[INFO] legacy config %s migrated to the current shape", s.path)
		s.apply(defaults, map[string]GuildConfig{})
		return s.save()
	}

	defaults := Defaults()
	if raw, ok := probe["defaults"]; ok {
		if err := json.Unmarshal(raw, &defaults); err != nil {
			return fmt.Errorf("%w: defaults in %s: %v", ErrConfigInvalid, s.path, err)
		}
	}

	guilds := map[string]GuildConfig{}
	if raw, ok := probe["guilds"]; ok {
		var rawGuilds map[string]json.RawMessage
		if err := json.Unmarshal(raw, &rawGuilds); err != nil {
			return fmt.Errorf("%w: guilds in %s: %v", ErrConfigInvalid, s.path, err)
		}
		for gid, rawDoc := range rawGuilds {
			gc := Defaults()
			if err := json.Unmarshal(rawDoc, &gc); err != nil {
				return fmt.Errorf("%w: guild %s in %s: %v", ErrConfigInvalid, gid, s.path, err)
			}
			guilds[gid] = gc
		}
	}

	s.apply(defaults, guilds)
	return nil
}

// apply swaps in new state and bumps revisions of changed tenants (must be called with lock held)
func (s *Store) apply(defaults GuildConfig, guilds map[string]GuildConfig) {
	for gid := range s.guilds {
		if _, ok := guilds[gid]; !ok {
			s.revs[gid]++
		}
	}
	for gid, g := range guilds {
		if old, ok := s.guilds[gid]; !ok || !reflect.DeepEqual(old, g) {
			s.revs[gid]++
		}
	}
	s.defaults = defaults
	s.guilds = guilds
}

// save writes the document atomically, temp file then rename (must be called with lock held)
func (s *Store) save() error {
	doc := struct {
		Defaults GuildConfig            `json:"defaults"`
		Guilds   map[string]GuildConfig `json:"guilds"`
	}{Defaults: s.defaults, Guilds: s.guilds}

	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

// Guild returns the tenant's document, creating it from defaults on first
// access. The returned value is a private copy.
func (s *Store) Guild(gid string) GuildConfig {
	s.lock.Lock()
	defer s.lock.Unlock()

	if g, ok := s.guilds[gid]; ok {
		return g.Clone()
	}
	g := s.defaults.Clone()
	s.guilds[gid] = g
	if err := s.save(); err != nil {
		log.Printf("[WARN] failed to persist new config for guild %s: %v", gid, err)
	}
	return g.Clone()
}

// DefaultConfig returns a copy of the defaults document.
func (s *Store) DefaultConfig() GuildConfig {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.defaults.Clone()
}

// SetValue coerces and assigns a single key on the tenant's document and
// persists the change. Unknown keys and failed coercions leave state untouched.
func (s *Store) SetValue(gid, key, value string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	g, ok := s.guilds[gid]
	if !ok {
		g = s.defaults.Clone()
	} else {
		g = g.Clone()
	}
	if err := g.Set(key, value); err != nil {
		return err
	}
	s.guilds[gid] = g
	s.revs[gid]++
	if err := s.save(); err != nil {
		return fmt.Errorf("failed to persist config: %w", err)
	}
	return nil
}

// Update applies fn to the tenant's document and persists the result. Used by
// the admin surface for list mutations.
func (s *Store) Update(gid string, fn func(g *GuildConfig)) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	g, ok := s.guilds[gid]
	if !ok {
		g = s.defaults.Clone()
	} else {
		g = g.Clone()
	}
	fn(&g)
	s.guilds[gid] = g
	s.revs[gid]++
	if err := s.save(); err != nil {
		return fmt.Errorf("failed to persist config: %w", err)
	}
	return nil
}

// Revision returns the tenant's mutation counter. Consumers cache state derived
// from the document keyed by it and rebuild when it moves.
func (s *Store) Revision(gid string) int64 {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.revs[gid]
}
