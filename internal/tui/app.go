package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/HugoBiegas/Veille-technologique/internal/article"
	"github.com/HugoBiegas/Veille-technologique/internal/browser"
	"github.com/HugoBiegas/Veille-technologique/internal/config"
	"github.com/HugoBiegas/Veille-technologique/internal/feed"
	"github.com/HugoBiegas/Veille-technologique/internal/filter"
	"github.com/HugoBiegas/Veille-technologique/internal/prefs"
	"github.com/HugoBiegas/Veille-technologique/internal/sched"
)

var sortCycle = []filter.SortKey{filter.SortDate, filter.SortRelevance, filter.SortSource}

// App is the view controller: it owns the filter criteria and the
// current article collection, and drives the load -> filter -> render
// transition for every user event and refresh tick.
type App struct {
	cfg     *config.Config
	store   *prefs.Store
	fetcher feed.Fetcher

	all      []article.Article
	visible  []article.Article
	seen     map[string]struct{}
	criteria filter.Criteria
	mode     prefs.ViewMode
	tabs     []article.Niche

	cursor int
	width  int
	height int

	searchInput textinput.Model
	spinner     spinner.Model

	searching  bool
	refreshing bool
	dark       bool

	// fetchSeq is a monotonic generation counter: a completed
	// aggregation only lands if it is still the latest one started.
	fetchSeq int

	toast    string
	toastSeq int
	failures int
	err      error

	currentDate string
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg           *config.Config
	Store         *prefs.Store
	Fetcher       feed.Fetcher
	Dark          bool
	Niche         article.Niche
	SortBy        filter.SortKey
	FavoritesOnly bool
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search articles..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	criteria := filter.DefaultCriteria()
	if opts.Niche != "" {
		criteria.Niche = opts.Niche
	}
	if opts.SortBy != "" {
		criteria.SortBy = opts.SortBy
	}
	criteria.FavoritesOnly = opts.FavoritesOnly

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = feed.NewHTTPFetcher()
	}

	return &App{
		cfg:         opts.Cfg,
		store:       opts.Store,
		fetcher:     fetcher,
		criteria:    criteria,
		mode:        opts.Store.ViewMode(),
		tabs:        opts.Cfg.NicheTabs(),
		searchInput: ti,
		spinner:     sp,
		dark:        opts.Dark,
		currentDate: time.Now().Format("Jan 2"),
	}
}

func (a *App) Init() tea.Cmd {
	// Initial load behaves like a manual refresh: visible indicator,
	// no notification.
	a.refreshing = true
	return tea.Batch(a.aggregateCmd(false), a.spinner.Tick)
}

// aggregateCmd starts an aggregation cycle under the next generation.
func (a *App) aggregateCmd(silent bool) tea.Cmd {
	a.fetchSeq++
	seq := a.fetchSeq
	fetcher := a.fetcher
	sources := a.cfg.EnabledSources()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		res := feed.FetchAll(ctx, fetcher, sources)
		return aggregateDoneMsg{seq: seq, silent: silent, articles: res.Articles, failures: len(res.Failures)}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) toastCmd(text string) tea.Cmd {
	a.toast = text
	a.toastSeq++
	seq := a.toastSeq
	ttl := a.cfg.ToastDurationOrDefault()
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// applyFilter recomputes the visible slice from the current collection,
// reading favorites live from the store.
func (a *App) applyFilter() {
	a.visible = filter.Apply(a.all, a.criteria, a.store)
	if a.cursor >= len(a.visible) {
		a.cursor = max(0, len(a.visible)-1)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		a.err = nil
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.searching {
			return a.handleSearchKey(msg)
		}
		return a.handleKey(msg)

	case autoRefreshMsg:
		return a, a.aggregateCmd(true)

	case aggregateDoneMsg:
		if msg.seq != a.fetchSeq {
			// superseded by a newer refresh
			return a, nil
		}
		fresh := 0
		if a.seen != nil {
			for _, art := range msg.articles {
				if _, ok := a.seen[art.ID]; !ok {
					fresh++
				}
			}
		}
		a.all = msg.articles
		a.seen = make(map[string]struct{}, len(msg.articles))
		for _, art := range msg.articles {
			a.seen[art.ID] = struct{}{}
		}
		a.failures = msg.failures
		a.refreshing = false
		a.applyFilter()
		if msg.silent && fresh > 0 {
			return a, a.toastCmd(fmt.Sprintf("%d new article(s)", fresh))
		}
		return a, nil

	case toastExpiredMsg:
		if msg.seq == a.toastSeq {
			a.toast = ""
		}
		return a, nil

	case openErrMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.refreshing {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit

	case "j", "down":
		if a.cursor < len(a.visible)-1 {
			a.cursor++
		}
		return a, nil

	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case "o", "enter":
		if len(a.visible) > 0 && a.cursor < len(a.visible) {
			return a, openBrowserCmd(a.visible[a.cursor].URL)
		}
		return a, nil

	case "tab":
		a.criteria.Niche = a.nextNiche(1)
		a.cursor = 0
		a.applyFilter()
		return a, nil

	case "shift+tab":
		a.criteria.Niche = a.nextNiche(-1)
		a.cursor = 0
		a.applyFilter()
		return a, nil

	case "s":
		a.criteria.SortBy = nextSortKey(a.criteria.SortBy)
		a.applyFilter()
		return a, nil

	case "v":
		a.mode = a.mode.Next()
		a.store.SetViewMode(a.mode)
		a.cursor = 0
		return a, nil

	case "f":
		a.criteria.FavoritesOnly = !a.criteria.FavoritesOnly
		a.cursor = 0
		a.applyFilter()
		return a, nil

	case " ":
		if len(a.visible) > 0 && a.cursor < len(a.visible) {
			a.store.ToggleFavorite(a.visible[a.cursor].ID)
			a.applyFilter()
		}
		return a, nil

	case "t":
		a.dark = !a.dark
		a.store.SetTheme(a.dark)
		lipgloss.SetHasDarkBackground(a.dark)
		return a, nil

	case "r":
		if !a.refreshing {
			a.refreshing = true
			return a, tea.Batch(a.aggregateCmd(false), a.spinner.Tick)
		}
		return a, nil

	case "/":
		a.searching = true
		a.searchInput.Focus()
		return a, textinput.Blink

	case "esc":
		if a.criteria.Query != "" {
			a.criteria.Query = ""
			a.searchInput.SetValue("")
			a.cursor = 0
			a.applyFilter()
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.searching = false
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.criteria.Query = ""
		a.cursor = 0
		a.applyFilter()
		return a, nil
	case "enter":
		a.searching = false
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	if a.criteria.Query != a.searchInput.Value() {
		a.criteria.Query = a.searchInput.Value()
		a.cursor = 0
		a.applyFilter()
	}
	return a, cmd
}

// nextNiche cycles all -> first tab -> ... -> last tab -> all.
func (a *App) nextNiche(dir int) article.Niche {
	order := append([]article.Niche{article.NicheAll}, a.tabs...)
	cur := 0
	for i, n := range order {
		if n == a.criteria.Niche {
			cur = i
			break
		}
	}
	next := (cur + dir + len(order)) % len(order)
	return order[next]
}

func nextSortKey(k filter.SortKey) filter.SortKey {
	for i, s := range sortCycle {
		if s == k {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return filter.SortDate
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  veille")
	}

	header := a.renderHeader()
	tabs := a.renderTabs()
	if a.searching {
		tabs = a.searchInput.View()
	}

	contentHeight := a.height - 4 // header, tabs, toast, status
	if contentHeight < 3 {
		contentHeight = 3
	}
	content := a.renderContent(contentHeight)

	toastLine := ""
	if a.toast != "" {
		toastLine = toastStyle.Render(" " + a.toast + " ")
	}

	status := a.renderStatusBar()
	if a.err != nil {
		status = lipgloss.NewStyle().Foreground(colorAccent).Render(a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, tabs, content, toastLine, status)
}

func (a *App) renderHeader() string {
	left := headerStyle.Render("veille")
	right := headerDateStyle.Render(a.currentDate)
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + fmt.Sprintf("%*s", gap, "") + right
}

// Run starts the TUI and the silent-refresh scheduler.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())

	s := sched.New(opts.Cfg.RefreshDuration(), func() {
		p.Send(autoRefreshMsg{})
	})
	s.Start()
	defer s.Stop()

	_, err := p.Run()
	return err
}
