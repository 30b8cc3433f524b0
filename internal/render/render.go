// Package render turns canonical articles into styled terminal
// fragments. Three variants implement the same capability: Grid (card),
// List (detailed row) and Compact (single line). Feed text is untrusted
// and is sanitized before any styling; a renderer never fails for a
// well-formed article.
package render

import (
	"fmt"
	"strings"

	"github.com/HugoBiegas/Veille-technologique/internal/article"
	"github.com/HugoBiegas/Veille-technologique/internal/prefs"
)

// Renderer is the capability every presentation variant implements.
type Renderer interface {
	Render(a article.Article, fav, selected bool, width int) string
}

// ForMode dispatches over the closed variant set. Unknown or unset
// modes fall back to Grid.
func ForMode(m prefs.ViewMode) Renderer {
	switch m {
	case prefs.ModeList:
		return List{}
	case prefs.ModeCompact:
		return Compact{}
	default:
		return Grid{}
	}
}

// view is the shared derived model every variant renders from.
type view struct {
	title   string
	desc    string
	source  string
	author  string
	badge   string
	date    string
	favMark string
	score   string
}

func buildView(a article.Article, fav bool) view {
	v := view{
		title:  article.Clean(a.Title),
		desc:   article.Clean(a.Description),
		source: article.Clean(a.Source),
		author: article.Clean(a.Author),
		badge:  badgeFor(a.Niche),
		date:   a.DisplayDate(),
	}
	if v.source == "" {
		v.source = "unknown source"
	}
	if fav {
		v.favMark = favStyle.Render("★")
	} else {
		v.favMark = metaStyle.Render("☆")
	}
	if a.Score > 0 {
		v.score = scoreStyle.Render(fmt.Sprintf("%d", a.Score))
	}
	return v
}

// Grid renders a bordered card: wrapped title, truncated description,
// meta footer.
type Grid struct{}

func (Grid) Render(a article.Article, fav, selected bool, width int) string {
	if width < 20 {
		width = 20
	}
	v := buildView(a, fav)
	inner := width - 4 // border + padding

	title := titleStyle.Width(inner).Render(truncate(v.title, inner*2))
	if selected {
		title = selectedTitleStyle.Width(inner).Render(truncate(v.title, inner*2))
	}

	desc := v.desc
	if desc == "" {
		desc = "(no description)"
	}
	body := bodyStyle.Width(inner).Render(truncate(desc, 120))

	head := v.badge + " " + metaStyle.Render(v.date)
	foot := v.favMark + " " + sourceStyle.Render(truncate(v.source, inner-6))
	if v.score != "" {
		foot += metaStyle.Render(" · ") + v.score
	}

	card := strings.Join([]string{head, title, body, foot}, "\n")
	if selected {
		return selectedCardStyle.Width(width - 2).Render(card)
	}
	return cardStyle.Width(width - 2).Render(card)
}

// List renders a detailed block: title line, full meta row, wrapped
// description.
type List struct{}

func (List) Render(a article.Article, fav, selected bool, width int) string {
	if width < 20 {
		width = 20
	}
	v := buildView(a, fav)

	marker := "  "
	ts := titleStyle
	if selected {
		marker = "> "
		ts = selectedTitleStyle
	}
	title := marker + v.favMark + " " + ts.Render(truncate(v.title, width-6))

	meta := "   " + v.badge + " " +
		sourceStyle.Render(v.source) +
		metaStyle.Render(" · "+v.author+" · "+v.date)
	if v.score != "" {
		meta += metaStyle.Render(" · score ") + v.score
	}

	desc := v.desc
	if desc == "" {
		desc = "(no description)"
	}
	// lipgloss wraps at Width, so long descriptions never spill the pane
	body := bodyStyle.Width(width - 3).PaddingLeft(3).Render(truncate(desc, 240))

	return title + "\n" + meta + "\n" + body + "\n"
}

// Compact renders one line: favorite mark, badge, title, minimal meta.
type Compact struct{}

func (Compact) Render(a article.Article, fav, selected bool, width int) string {
	if width < 20 {
		width = 20
	}
	v := buildView(a, fav)

	marker := "  "
	ts := titleStyle
	if selected {
		marker = "> "
		ts = selectedTitleStyle
	}

	meta := metaStyle.Render(" · " + v.date)
	reserved := 14 + len(v.date) // marker, marks, badge label, separators
	title := ts.Render(truncate(v.title, width-reserved))

	return marker + v.favMark + " " + v.badge + " " + title + meta
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
