package prefs

import (
	"path/filepath"
	"reflect"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestFavoritesEmptyOnFirstUse(t *testing.T) {
	s := testStore(t)
	if got := s.Favorites(); len(got) != 0 {
		t.Errorf("expected empty favorites, got %v", got)
	}
	if s.IsFavorite("abc") {
		t.Error("fresh store should not report favorites")
	}
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	s := testStore(t)

	on, err := s.ToggleFavorite("id1")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !on {
		t.Error("first toggle should return true")
	}

	off, err := s.ToggleFavorite("id1")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if off {
		t.Error("second toggle should return false")
	}

	if got := s.Favorites(); len(got) != 0 {
		t.Errorf("expected set back to pre-test state, got %v", got)
	}
}

func TestAddFavoriteIdempotent(t *testing.T) {
	s := testStore(t)
	for i := 0; i < 3; i++ {
		if err := s.AddFavorite("dup"); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if got := s.Favorites(); !reflect.DeepEqual(got, []string{"dup"}) {
		t.Errorf("expected single entry, got %v", got)
	}
}

func TestRemoveFavoriteMissingIsNoop(t *testing.T) {
	s := testStore(t)
	s.AddFavorite("keep")
	if err := s.RemoveFavorite("never-added"); err != nil {
		t.Fatalf("remove missing: %v", err)
	}
	if got := s.Favorites(); !reflect.DeepEqual(got, []string{"keep"}) {
		t.Errorf("unexpected favorites: %v", got)
	}
}

func TestFavoriteWritesAbortWhenReadFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s.AddFavorite("a")
	s.AddFavorite("b")
	s.Close()

	// Reads now fail; a write from that partial view would clobber the
	// stored set, so it must error out instead.
	if err := s.AddFavorite("c"); err == nil {
		t.Error("AddFavorite on closed store should fail")
	}
	if err := s.RemoveFavorite("a"); err == nil {
		t.Error("RemoveFavorite on closed store should fail")
	}
	if _, err := s.ToggleFavorite("b"); err == nil {
		t.Error("ToggleFavorite on closed store should fail")
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	if got := s2.Favorites(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("stored favorites should survive failed writes, got %v", got)
	}
}

func TestFavoritesPersistAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s.AddFavorite("a")
	s.AddFavorite("b")
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	if got := s2.Favorites(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("favorites lost across reopen: %v", got)
	}
}

func TestThemeTriState(t *testing.T) {
	s := testStore(t)

	if _, explicit := s.Theme(); explicit {
		t.Error("fresh store should have no explicit theme")
	}

	if err := s.SetTheme(true); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	dark, explicit := s.Theme()
	if !explicit || !dark {
		t.Errorf("expected explicit dark theme, got dark=%v explicit=%v", dark, explicit)
	}

	if err := s.SetTheme(false); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	dark, explicit = s.Theme()
	if !explicit || dark {
		t.Errorf("expected explicit light theme, got dark=%v explicit=%v", dark, explicit)
	}
}

func TestViewModeDefaultsToGrid(t *testing.T) {
	s := testStore(t)
	if got := s.ViewMode(); got != ModeGrid {
		t.Errorf("expected grid default, got %s", got)
	}
}

func TestViewModePersists(t *testing.T) {
	s := testStore(t)
	if err := s.SetViewMode(ModeCompact); err != nil {
		t.Fatalf("set view mode: %v", err)
	}
	if got := s.ViewMode(); got != ModeCompact {
		t.Errorf("expected compact, got %s", got)
	}
}

func TestParseViewMode(t *testing.T) {
	tests := []struct {
		input string
		want  ViewMode
	}{
		{"grid", ModeGrid},
		{"list", ModeList},
		{"compact", ModeCompact},
		{"", ModeGrid},
		{"mosaic", ModeGrid},
	}
	for _, tt := range tests {
		if got := ParseViewMode(tt.input); got != tt.want {
			t.Errorf("ParseViewMode(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestViewModeCycle(t *testing.T) {
	m := ModeGrid
	seen := []ViewMode{m.Next(), m.Next().Next(), m.Next().Next().Next()}
	want := []ViewMode{ModeList, ModeCompact, ModeGrid}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("cycle = %v, want %v", seen, want)
	}
}
