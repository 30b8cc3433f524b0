package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/HugoBiegas/Veille-technologique/internal/article"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Source maps one niche to the published JSON document that carries its
// articles.
type Source struct {
	Niche   string `yaml:"niche"`
	URL     string `yaml:"url"`
	Enabled bool   `yaml:"enabled"`
}

type Config struct {
	RefreshInterval string   `yaml:"refresh_interval"`
	ToastDuration   string   `yaml:"toast_duration,omitempty"`
	Sources         []Source `yaml:"sources"`
}

// RefreshDuration returns the silent-refresh period, defaulting to 180s.
func (c *Config) RefreshDuration() time.Duration {
	d, err := time.ParseDuration(c.RefreshInterval)
	if err != nil || d <= 0 {
		return 180 * time.Second
	}
	return d
}

// ToastDurationOrDefault returns how long a notification stays visible.
func (c *Config) ToastDurationOrDefault() time.Duration {
	d, err := time.ParseDuration(c.ToastDuration)
	if err != nil || d <= 0 {
		return 4 * time.Second
	}
	return d
}

func (c *Config) EnabledSources() []Source {
	var out []Source
	for _, s := range c.Sources {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// NicheTabs returns the enabled niches in config order, for the filter bar.
func (c *Config) NicheTabs() []article.Niche {
	var out []article.Niche
	for _, s := range c.EnabledSources() {
		n, err := article.ParseNiche(s.Niche)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "veille", "config.yaml")
}

func PrefsPath() string {
	return filepath.Join(xdg.DataHome, "veille", "prefs.db")
}

func LogPath() string {
	return filepath.Join(xdg.StateHome, "veille", "veille.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	for i, s := range cfg.Sources {
		if s.Niche == "" {
			return fmt.Errorf("source %d: niche is required", i)
		}
		n, err := article.ParseNiche(s.Niche)
		if err != nil {
			return fmt.Errorf("source %d: %w", i, err)
		}
		if n == article.NicheAll {
			return fmt.Errorf("source %d: %q is a filter value, not a source niche", i, s.Niche)
		}
		if s.URL == "" {
			return fmt.Errorf("source %q: url is required", s.Niche)
		}
		u, err := url.Parse(s.URL)
		if err != nil {
			return fmt.Errorf("source %q: invalid url: %w", s.Niche, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("source %q: url scheme must be http or https, got %q", s.Niche, u.Scheme)
		}
	}
	return nil
}
