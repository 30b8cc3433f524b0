package article

import (
	"strings"
	"testing"
	"time"
)

func TestIDStable(t *testing.T) {
	id1 := ID("https://example.com/post-1", "Post One")
	id2 := ID("https://example.com/post-2", "Post Two")
	id1again := ID("https://example.com/post-1", "Post One")

	if id1 == id2 {
		t.Error("different inputs should produce different IDs")
	}
	if id1 != id1again {
		t.Error("same inputs should produce same ID")
	}
	if len(id1) != 16 {
		t.Errorf("expected 16-char ID, got %d chars: %s", len(id1), id1)
	}
}

func TestIDDistinctAcrossSameDomain(t *testing.T) {
	// URLs from one site share a long common prefix; the id must still
	// differ per article.
	urls := []string{
		"https://example.com/posts/2026/03/release-notes",
		"https://example.com/posts/2026/03/release-candidate",
		"https://example.com/posts/2026/03/release",
		"https://example.com/posts/2026/04/release-notes",
	}
	seen := make(map[string]string, len(urls))
	for _, u := range urls {
		id := ID(u, "Shared headline")
		if prev, ok := seen[id]; ok {
			t.Fatalf("id %s collides for %s and %s", id, prev, u)
		}
		seen[id] = u
	}
}

func TestIDAlphanumeric(t *testing.T) {
	id := ID("https://example.com/a?q=1&r=2", "Title / with + symbols")
	for _, r := range id {
		alnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !alnum {
			t.Fatalf("ID contains non-alphanumeric character %q: %s", r, id)
		}
	}
}

func TestNormalizeDropsInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
	}{
		{"missing url", Raw{Title: "Has title"}},
		{"missing title", Raw{URL: "https://example.com"}},
		{"blank title", Raw{Title: "   ", URL: "https://example.com"}},
		{"markup-only title", Raw{Title: "<br/>", URL: "https://example.com"}},
	}
	for _, tt := range tests {
		if _, ok := Normalize(tt.raw, NicheAI); ok {
			t.Errorf("%s: expected record to be dropped", tt.name)
		}
	}
}

func TestNormalizeDefaults(t *testing.T) {
	a, ok := Normalize(Raw{Title: "A title", URL: "https://example.com/a"}, NicheSecurity)
	if !ok {
		t.Fatal("expected record to be kept")
	}
	if a.Author != "unknown" {
		t.Errorf("expected author sentinel, got %q", a.Author)
	}
	if a.Description != "" {
		t.Errorf("expected empty description, got %q", a.Description)
	}
	if a.Score != 0 {
		t.Errorf("expected score 0, got %d", a.Score)
	}
	if len(a.Keywords) != 0 {
		t.Errorf("expected no keywords, got %v", a.Keywords)
	}
	if a.Niche != NicheSecurity {
		t.Errorf("expected niche tag to carry over, got %s", a.Niche)
	}
	if a.Published.IsZero() {
		t.Error("expected missing timestamp to default to now")
	}
}

func TestNormalizeScoreClamped(t *testing.T) {
	raw := Raw{Title: "T", URL: "https://e.com", Score: 250}
	a, _ := Normalize(raw, NicheAI)
	if a.Score != 100 {
		t.Errorf("expected score clamped to 100, got %d", a.Score)
	}
	raw.Score = -5
	a, _ = Normalize(raw, NicheAI)
	if a.Score != 0 {
		t.Errorf("expected score clamped to 0, got %d", a.Score)
	}
}

func TestNormalizeParsesISOTimestamp(t *testing.T) {
	raw := Raw{Title: "T", URL: "https://e.com", Published: "2026-03-01T12:30:00+00:00"}
	a, _ := Normalize(raw, NicheDev)
	if a.Published.UTC().Hour() != 12 || a.Published.UTC().Minute() != 30 {
		t.Errorf("unexpected published time: %v", a.Published)
	}
}

func TestDisplayDate(t *testing.T) {
	now := time.Now()
	tests := []struct {
		age  time.Duration
		want string
	}{
		{30 * time.Minute, "moments ago"},
		{5 * time.Hour, "5 hours ago"},
		{23 * time.Hour, "23 hours ago"},
		{30 * time.Hour, "yesterday"},
		{3 * 24 * time.Hour, "3 days ago"},
		{6 * 24 * time.Hour, "6 days ago"},
	}
	for _, tt := range tests {
		a := Article{Published: now.Add(-tt.age)}
		if got := a.DisplayDate(); got != tt.want {
			t.Errorf("DisplayDate(age=%v) = %q, want %q", tt.age, got, tt.want)
		}
	}

	old := Article{Published: now.Add(-30 * 24 * time.Hour)}
	want := old.Published.Format("Jan 2, 2006")
	if got := old.DisplayDate(); got != want {
		t.Errorf("DisplayDate(30d) = %q, want calendar date %q", got, want)
	}
}

func TestAgeNeverNegative(t *testing.T) {
	a := Article{Published: time.Now().Add(2 * time.Hour)}
	if a.Age() != 0 {
		t.Errorf("future publish date should age as 0, got %d", a.Age())
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<p>Hello</p>", "Hello"},
		{"<b>Bold</b> and <i>italic</i>", "Bold and italic"},
		{"No tags here", "No tags here"},
		{"<div>  Multiple   spaces  </div>", "Multiple spaces"},
		{"", ""},
		{"Fish &amp; Chips", "Fish & Chips"},
		{"&lt;script&gt;alert(1)&lt;/script&gt;", "alert(1)"},
		{"line\nbreak", "line break"},
		{"bell\x07escape\x1b[31m", "bellescape[31m"},
		{"Go 1.21 < 1.22 benchmarks", "Go 1.21 < 1.22 benchmarks"},
		{"5 > 3", "5 > 3"},
		{"price < 10 <b>today</b>", "price < 10 today"},
	}
	for _, tt := range tests {
		if got := Clean(tt.input); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCleanNeverEmitsTags(t *testing.T) {
	got := Clean("<script>alert('x')</script> legit title")
	if strings.Contains(got, "<") || strings.Contains(got, ">") {
		t.Errorf("cleaned text still contains markup: %q", got)
	}
}

func TestParseNiche(t *testing.T) {
	tests := []struct {
		input   string
		want    Niche
		wantErr bool
	}{
		{"ai", NicheAI, false},
		{"Security", NicheSecurity, false},
		{"  DEV ", NicheDev, false},
		{"finance", NicheFinance, false},
		{"all", NicheAll, false},
		{"crypto", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseNiche(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseNiche(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseNiche(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseNiche(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}
