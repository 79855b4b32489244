package config

import "github.com/dmitrijs2005/campusdesk/internal/library/catalog"

// Config holds runtime settings for the library tool.
//
// Fields:
//   - StateFile: JSON file holding pending requests.
//   - AuditLog: append-only text log of outcomes.
//   - LogFormat: diagnostics format, one of logging.FormatText, FormatJSON, FormatZap.
//   - Catalog: requestable titles.
type Config struct {
	StateFile string
	AuditLog  string
	LogFormat string
	Catalog   []string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StateFile = "book_requests.txt"
	c.AuditLog = "library_log.txt"
	c.LogFormat = "text"
	c.Catalog = append([]string(nil), catalog.DefaultTitles...)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
