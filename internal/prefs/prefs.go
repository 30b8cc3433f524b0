// Package prefs persists the user's favorites, theme and view mode in a
// local sqlite key-value table. Values are read and written directly on
// every call; there is no caching layer and no cross-key transaction.
package prefs

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"
)

const (
	keyFavorites = "favorites"
	keyTheme     = "theme"
	keyViewMode  = "viewMode"
)

// ViewMode selects the presentation variant.
type ViewMode string

const (
	ModeGrid    ViewMode = "grid"
	ModeList    ViewMode = "list"
	ModeCompact ViewMode = "compact"
)

// ParseViewMode falls back to grid for unknown or unset values.
func ParseViewMode(s string) ViewMode {
	switch ViewMode(s) {
	case ModeList:
		return ModeList
	case ModeCompact:
		return ModeCompact
	default:
		return ModeGrid
	}
}

// Next cycles grid -> list -> compact -> grid.
func (m ViewMode) Next() ViewMode {
	switch m {
	case ModeGrid:
		return ModeList
	case ModeList:
		return ModeCompact
	default:
		return ModeGrid
	}
}

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating prefs dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening prefs db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS prefs (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing prefs schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// get distinguishes an absent key (ok=false, nil error) from a failed
// read; writers must not mistake the latter for an empty value.
func (s *Store) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading pref %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func (s *Store) favorites() ([]string, error) {
	raw, ok, err := s.get(keyFavorites)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decoding favorites: %w", err)
	}
	return ids, nil
}

// Favorites returns the persisted favorite-id set in stored order.
// Orphaned ids (articles no longer aggregated) are kept, never purged.
func (s *Store) Favorites() []string {
	ids, _ := s.favorites()
	return ids
}

func (s *Store) IsFavorite(id string) bool {
	for _, f := range s.Favorites() {
		if f == id {
			return true
		}
	}
	return false
}

func (s *Store) saveFavorites(ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.set(keyFavorites, string(data))
}

// AddFavorite is a no-op when the id is already present. A failed read
// aborts the write: rewriting from a partial view would drop favorites.
func (s *Store) AddFavorite(id string) error {
	ids, err := s.favorites()
	if err != nil {
		return err
	}
	for _, f := range ids {
		if f == id {
			return nil
		}
	}
	return s.saveFavorites(append(ids, id))
}

func (s *Store) RemoveFavorite(id string) error {
	ids, err := s.favorites()
	if err != nil {
		return err
	}
	out := ids[:0]
	for _, f := range ids {
		if f != id {
			out = append(out, f)
		}
	}
	if len(out) == len(ids) {
		return nil
	}
	return s.saveFavorites(out)
}

// ToggleFavorite flips the id's membership and returns the new state.
func (s *Store) ToggleFavorite(id string) (bool, error) {
	ids, err := s.favorites()
	if err != nil {
		return false, err
	}
	for _, f := range ids {
		if f == id {
			return false, s.RemoveFavorite(id)
		}
	}
	return true, s.AddFavorite(id)
}

// Theme returns the stored dark flag. explicit is false when the user
// never chose a theme; the caller then falls back to the terminal's
// dark/light signal, and to light when that is unavailable.
func (s *Store) Theme() (dark bool, explicit bool) {
	raw, ok, err := s.get(keyTheme)
	if err != nil || !ok {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

func (s *Store) SetTheme(dark bool) error {
	return s.set(keyTheme, strconv.FormatBool(dark))
}

// ViewMode returns the persisted presentation variant, defaulting to grid.
func (s *Store) ViewMode() ViewMode {
	raw, _, _ := s.get(keyViewMode)
	return ParseViewMode(raw)
}

func (s *Store) SetViewMode(m ViewMode) error {
	return s.set(keyViewMode, string(m))
}
