package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/HugoBiegas/Veille-technologique/internal/article"
	"github.com/HugoBiegas/Veille-technologique/internal/prefs"
	"github.com/HugoBiegas/Veille-technologique/internal/render"
)

const (
	gridCardWidth  = 38
	gridCardHeight = 6
	listItemHeight = 4
)

func (a *App) renderTabs() string {
	sep := metaStyle.Render(" · ")
	order := append([]article.Niche{article.NicheAll}, a.tabs...)

	var parts []string
	for _, n := range order {
		style := tabInactiveStyle
		if n == a.criteria.Niche {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(string(n)))
	}

	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > a.width && row != "" {
			break
		}
		row = candidate
	}
	return tabBarStyle.Width(a.width).Render(row)
}

// renderContent renders the visible articles in the active presentation
// variant, windowed around the cursor.
func (a *App) renderContent(height int) string {
	if len(a.visible) == 0 {
		label := "No articles"
		if a.refreshing {
			label = a.spinner.View() + " Loading articles..."
		}
		return centered(label, a.width, height)
	}

	r := render.ForMode(a.mode)

	switch a.mode {
	case prefs.ModeList:
		return a.renderStacked(r, height, listItemHeight)
	case prefs.ModeCompact:
		return a.renderStacked(r, height, 1)
	default:
		return a.renderGrid(r, height)
	}
}

// renderStacked windows fixed-height fragments vertically (list and
// compact variants).
func (a *App) renderStacked(r render.Renderer, height, itemHeight int) string {
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}
	start, end := window(a.cursor, len(a.visible), visible)

	var b strings.Builder
	for i := start; i < end; i++ {
		art := a.visible[i]
		b.WriteString(r.Render(art, a.store.IsFavorite(art.ID), i == a.cursor, a.width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderGrid lays cards out in columns, windowed by whole rows.
func (a *App) renderGrid(r render.Renderer, height int) string {
	cols := a.width / gridCardWidth
	if cols < 1 {
		cols = 1
	}
	visibleRows := height / gridCardHeight
	if visibleRows < 1 {
		visibleRows = 1
	}

	totalRows := (len(a.visible) + cols - 1) / cols
	cursorRow := a.cursor / cols
	startRow, endRow := window(cursorRow, totalRows, visibleRows)

	var rows []string
	for row := startRow; row < endRow; row++ {
		var cards []string
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(a.visible) {
				break
			}
			art := a.visible[i]
			cards = append(cards, r.Render(art, a.store.IsFavorite(art.ID), i == a.cursor, gridCardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

// window computes the [start, end) slice that keeps cursor in view.
func window(cursor, total, visible int) (int, int) {
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > total {
		end = total
		start = end - visible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

func centered(s string, width, height int) string {
	pad := height / 3
	indent := (width - lipgloss.Width(s)) / 2
	if indent < 0 {
		indent = 0
	}
	return strings.Repeat("\n", pad) + strings.Repeat(" ", indent) + s
}
