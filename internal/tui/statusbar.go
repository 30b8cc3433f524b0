package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderStatusBar() string {
	left := fmt.Sprintf(" %d articles", len(a.visible))
	if a.criteria.Niche != "all" && a.criteria.Niche != "" {
		left += " · " + string(a.criteria.Niche)
	}
	left += " · " + string(a.criteria.SortBy)
	left += " · " + string(a.mode)
	if a.criteria.FavoritesOnly {
		left += " · favorites"
	}
	if a.failures > 0 {
		left += fmt.Sprintf(" · %d source(s) down", a.failures)
	}
	if a.refreshing {
		left = a.spinner.View() + left + " (refreshing...)"
	}

	right := " / search  tab niche  s sort  v view  f favs  space ★  r refresh  q quit "
	if a.searching {
		right = " esc cancel  enter done "
	}

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return statusBarStyle.Width(a.width).Render(left + fmt.Sprintf("%*s", gap, "") + right)
}
