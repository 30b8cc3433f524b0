package article

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"html"
	"strings"
	"time"
)

// Article is the canonical in-memory form of one feed record. Instances
// are built once at ingestion and never mutated afterward; a new
// aggregation cycle replaces the whole collection.
type Article struct {
	ID          string
	Title       string
	Description string
	URL         string
	Source      string
	Author      string
	Published   time.Time
	Niche       Niche
	Score       int
	Keywords    []string
}

// Raw mirrors one entry of a published source document.
type Raw struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Source      string   `json:"source"`
	Author      string   `json:"author"`
	Published   string   `json:"published"`
	Score       float64  `json:"score"`
	Keywords    []string `json:"keywords"`
}

const idLength = 16

// ID derives a stable article id from url and title. Same inputs always
// produce the same id, across reloads and restarts; the digest keeps
// ids distinct even when URLs share a long common prefix.
func ID(url, title string) string {
	sum := md5.Sum([]byte(url + title))
	return hex.EncodeToString(sum[:])[:idLength]
}

// Normalize converts a raw record tagged with its niche into a canonical
// Article. Records without a usable url or title are dropped (ok=false).
func Normalize(r Raw, niche Niche) (Article, bool) {
	title := Clean(r.Title)
	url := strings.TrimSpace(r.URL)
	if title == "" || url == "" {
		return Article{}, false
	}

	author := strings.TrimSpace(r.Author)
	if author == "" {
		author = "unknown"
	}

	score := int(r.Score)
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	keywords := make([]string, 0, len(r.Keywords))
	for _, k := range r.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}

	return Article{
		ID:          ID(url, title),
		Title:       title,
		Description: Clean(r.Description),
		URL:         url,
		Source:      Clean(r.Source),
		Author:      author,
		Published:   parseTime(r.Published),
		Niche:       niche,
		Score:       score,
		Keywords:    keywords,
	}, true
}

// parseTime accepts the ISO timestamps the generator emits, falling back
// to RFC1123 variants and finally to now.
func parseTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339, time.RFC1123Z, time.RFC1123} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now()
}

// Age returns the article's age in whole hours, computed on demand.
func (a Article) Age() int {
	h := int(time.Since(a.Published).Hours())
	if h < 0 {
		return 0
	}
	return h
}

// DisplayDate maps the article's age to a human label.
func (a Article) DisplayDate() string {
	switch h := a.Age(); {
	case h < 1:
		return "moments ago"
	case h < 24:
		return fmt.Sprintf("%d hours ago", h)
	case h < 48:
		return "yesterday"
	case h < 168:
		return fmt.Sprintf("%d days ago", h/24)
	default:
		return a.Published.Format("Jan 2, 2006")
	}
}

// Clean neutralizes untrusted feed text: entities are decoded, markup is
// stripped, control characters dropped and whitespace collapsed. Nothing
// that looks like a tag or a terminal escape survives.
func Clean(s string) string {
	s = html.UnescapeString(s)
	var b strings.Builder
	inTag := false
	for i, r := range s {
		switch {
		case r == '<' && opensTag(s[i:]):
			inTag = true
		case inTag && r == '>':
			inTag = false
		case inTag:
		case r == '\n' || r == '\t' || r == '\r':
			b.WriteRune(' ')
		case r < 0x20 || r == 0x7f:
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// opensTag reports whether rest (starting at a '<') begins markup: a tag
// name or closing slash follows, and the tag is eventually closed. A bare
// '<' in prose ("1.21 < 1.22") is literal text and stays.
func opensTag(rest string) bool {
	if len(rest) < 2 {
		return false
	}
	c := rest[1]
	letter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	if c != '/' && !letter {
		return false
	}
	return strings.IndexByte(rest, '>') != -1
}
