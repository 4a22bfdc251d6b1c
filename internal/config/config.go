package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// SiteConfig holds the UI strings and date formats of a site. It is read
// once per process and passed to whatever needs it.
type SiteConfig struct {
	Site            SiteInfo     `json:"site"`
	Home            HomeText     `json:"home"`
	Category        CategoryText `json:"category"`
	Blog            BlogText     `json:"blog"`
	DateFormat      DateFormat   `json:"dateFormat"`
	DateFormatShort DateFormat   `json:"dateFormatShort"`
}

type SiteInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type HomeText struct {
	Heading      string `json:"heading"`
	EmptyMessage string `json:"emptyMessage"`
}

type CategoryText struct {
	BackToOverview    string `json:"backToOverview"`
	EmptyMessage      string `json:"emptyMessage"`
	PostCountSingular string `json:"postCountSingular"`
	PostCountPlural   string `json:"postCountPlural"`
}

type BlogText struct {
	BackButton string `json:"backButton"`
}

// DateFormat mirrors Intl.DateTimeFormat options: year is "numeric" or
// "2-digit", month is "numeric", "2-digit", "short" or "long", day is
// "numeric" or "2-digit".
type DateFormat struct {
	Locale  string      `json:"locale"`
	Options DateOptions `json:"options"`
}

type DateOptions struct {
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

// Default returns the configuration used when config/site.json is absent.
// Keys missing from the file keep these values.
func Default() *SiteConfig {
	return &SiteConfig{
		Site: SiteInfo{Title: "Blog", Description: "Notes and links"},
		Home: HomeText{Heading: "Categories", EmptyMessage: "No posts yet."},
		Category: CategoryText{
			BackToOverview:    "Back to overview",
			EmptyMessage:      "No posts in this category.",
			PostCountSingular: "post",
			PostCountPlural:   "posts",
		},
		Blog: BlogText{BackButton: "Back"},
		DateFormat: DateFormat{
			Locale:  "en-US",
			Options: DateOptions{Year: "numeric", Month: "long", Day: "numeric"},
		},
		DateFormatShort: DateFormat{
			Locale:  "en-US",
			Options: DateOptions{Year: "numeric", Month: "short", Day: "numeric"},
		},
	}
}

// PostCount renders n with the singular or plural label.
func (c *SiteConfig) PostCount(n int) string {
	label := c.Category.PostCountPlural
	if n == 1 {
		label = c.Category.PostCountSingular
	}
	return fmt.Sprintf("%d %s", n, label)
}

func Path(siteDir string) string {
	return filepath.Join(siteDir, "config", "site.json")
}

func Load(siteDir string) (*SiteConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(Path(siteDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading site config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing site config: %w", err)
	}
	return cfg, nil
}

func Save(siteDir string, cfg *SiteConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling site config: %w", err)
	}
	path := Path(siteDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Env holds settings that may come from the environment. Command-line flags
// take precedence over these.
type Env struct {
	SiteDir    string `env:"FOLIO_SITE_DIR"`
	ContentDir string `env:"FOLIO_CONTENT_DIR"`
	LogLevel   string `env:"FOLIO_LOG_LEVEL" envDefault:"warn"`
}

func LoadEnv() (*Env, error) {
	e := &Env{}
	if err := env.Parse(e); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return e, nil
}
