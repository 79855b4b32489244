package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/campusdesk/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config fields untouched.
type JsonConfig struct {
	StateFile string   `json:"state_file"`
	AuditLog  string   `json:"audit_log"`
	LogFormat string   `json:"log_format"`
	Catalog   []string `json:"catalog"`
}

// parseJson overlays cfg with values from the file named by -c / -config.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StateFile != "" {
		cfg.StateFile = jc.StateFile
	}
	if jc.AuditLog != "" {
		cfg.AuditLog = jc.AuditLog
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	if len(jc.Catalog) > 0 {
		cfg.Catalog = jc.Catalog
	}
}
