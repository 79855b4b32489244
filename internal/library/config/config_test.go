package config

import (
	"os"
	"testing"

	"github.com/dmitrijs2005/campusdesk/internal/library/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "book_requests.txt", c.StateFile)
	assert.Equal(t, "library_log.txt", c.AuditLog)
	assert.Equal(t, "text", c.LogFormat)
	assert.Equal(t, catalog.DefaultTitles, c.Catalog)

	c.Catalog[0] = "changed"
	assert.NotEqual(t, "changed", catalog.DefaultTitles[0], "defaults must not alias the package list")
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "book_requests.txt", cfg.StateFile)
	assert.Equal(t, "library_log.txt", cfg.AuditLog)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"state_file": "from-json.txt",
		"audit_log":  "json-log.txt",
	})
	os.Args = []string{"testbin", "-c", path, "-s", "from-flag.txt"}

	cfg := LoadConfig()

	assert.Equal(t, "from-flag.txt", cfg.StateFile)
	assert.Equal(t, "json-log.txt", cfg.AuditLog)
}
