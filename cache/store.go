package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/courtside/scoreboard/game"
)

// ErrNotFound reports that no cache file exists at the store's path yet.
// Read-back callers should tell the user to run a refresh first.
var ErrNotFound = errors.New("cache not found")

// DefaultPath returns the per-user cache location,
// ~/.cache/scoreboard/games.json.
func DefaultPath() string {
	return "~/.cache/scoreboard/games.json"
}

// Store persists a Cache to a single JSON file.
//
// Saves are not locked: the design assumes at most one updater writes a
// given cache file at a time. Concurrent writers would race on the rename.
type Store struct {
	path string
}

// NewStore creates a Store bound to path, expanding a leading ~ and
// creating the parent directory if needed.
func NewStore(path string) (*Store, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	return &Store{path: path}, nil
}

// Path returns the resolved cache file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a cache file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the cache file. Returns ErrNotFound if no file exists.
func (s *Store) Load() (*Cache, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	var c Cache
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing cache: %w", err)
	}

	if c.Seasons == nil {
		c.Seasons = make(map[int]map[string][]game.Game)
	}

	return &c, nil
}

// Save writes the whole cache to disk. The file is written to a temporary
// sibling and renamed into place so an interrupted checkpoint leaves the
// previous cache intact rather than a truncated file.
func (s *Store) Save(c *Cache) error {
	c.touch()

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing cache: %w", err)
	}

	return nil
}

// Games is the library read-back entry: it loads the cache and returns
// the flattened, date-sorted game sequence. Returns ErrNotFound if no
// refresh has run yet.
func (s *Store) Games() ([]game.Game, error) {
	c, err := s.Load()
	if err != nil {
		return nil, err
	}
	return c.Games(), nil
}
