package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/HugoBiegas/Veille-technologique/internal/article"
)

var (
	// Adaptive colors for dark/light terminals
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorText    = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	selectedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)

	bodyStyle = lipgloss.NewStyle().
			Foreground(colorText)

	metaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	sourceStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	favStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	scoreStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	selectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Padding(0, 1)
)

type badge struct {
	label string
	color lipgloss.AdaptiveColor
}

var nicheBadges = map[article.Niche]badge{
	article.NicheAI:       {"AI", lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}},
	article.NicheSecurity: {"SEC", lipgloss.AdaptiveColor{Light: "#D8373D", Dark: "#FF6B6B"}},
	article.NicheDev:      {"DEV", lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}},
	article.NicheFinance:  {"FIN", lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#F2C744"}},
}

// genericBadge covers niches without a configured style.
var genericBadge = badge{"NEWS", lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}}

func badgeFor(n article.Niche) string {
	b, ok := nicheBadges[n]
	if !ok {
		b = genericBadge
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(b.color).
		Padding(0, 1).
		Bold(true).
		Render(b.label)
}
