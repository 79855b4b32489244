package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/campusdesk/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty values
// leave the corresponding Config fields untouched.
type JsonConfig struct {
	Dir        string `json:"dir"`
	AuditLog   string `json:"audit_log"`
	IndexDSN   string `json:"index_dsn"`
	Backend    string `json:"backend"`
	LogFormat  string `json:"log_format"`
	S3User     string `json:"s3_user"`
	S3Password string `json:"s3_password"`
	S3Bucket   string `json:"s3_bucket"`
	S3Region   string `json:"s3_region"`
	S3Endpoint string `json:"s3_endpoint"`
	S3Prefix   string `json:"s3_prefix"`
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

	overlay(&cfg.Dir, jc.Dir)
	overlay(&cfg.AuditLog, jc.AuditLog)
	overlay(&cfg.IndexDSN, jc.IndexDSN)
	overlay(&cfg.Backend, jc.Backend)
	overlay(&cfg.LogFormat, jc.LogFormat)
	overlay(&cfg.S3User, jc.S3User)
	overlay(&cfg.S3Password, jc.S3Password)
	overlay(&cfg.S3Bucket, jc.S3Bucket)
	overlay(&cfg.S3Region, jc.S3Region)
	overlay(&cfg.S3Endpoint, jc.S3Endpoint)
	overlay(&cfg.S3Prefix, jc.S3Prefix)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
