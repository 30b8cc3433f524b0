package tui

import (
	"github.com/HugoBiegas/Veille-technologique/internal/article"
)

// aggregateDoneMsg carries one completed aggregation cycle. seq is the
// fetch generation that started it; stale generations are discarded.
type aggregateDoneMsg struct {
	seq      int
	silent   bool
	articles []article.Article
	failures int
}

// autoRefreshMsg is sent by the scheduler on each silent-refresh tick.
type autoRefreshMsg struct{}

// toastExpiredMsg dismisses the notification it was armed for.
type toastExpiredMsg struct {
	seq int
}

type openErrMsg struct {
	err error
}
