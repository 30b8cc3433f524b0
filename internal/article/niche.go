package article

import (
	"fmt"
	"strings"
)

// Niche is a fixed content category partitioning sources and filter scope.
type Niche string

const (
	NicheAll      Niche = "all"
	NicheAI       Niche = "ai"
	NicheSecurity Niche = "security"
	NicheDev      Niche = "dev"
	NicheFinance  Niche = "finance"
)

// Niches returns the configured partitions in canonical order, NicheAll
// excluded.
func Niches() []Niche {
	return []Niche{NicheAI, NicheSecurity, NicheDev, NicheFinance}
}

// ParseNiche maps user input (CLI flag, config value) to a Niche.
func ParseNiche(s string) (Niche, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == string(NicheAll) {
		return NicheAll, nil
	}
	for _, n := range Niches() {
		if string(n) == s {
			return n, nil
		}
	}
	valid := make([]string, 0, len(Niches())+1)
	valid = append(valid, string(NicheAll))
	for _, n := range Niches() {
		valid = append(valid, string(n))
	}
	return "", fmt.Errorf("unknown niche %q (valid: %s)", s, strings.Join(valid, ", "))
}
