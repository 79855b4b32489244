package config

// Supported values of Config.Backend.
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// Config holds runtime settings for the submissions tool.
//
// Fields:
//   - Dir: destination directory of the local backend.
//   - AuditLog: append-only text log of outcomes.
//   - IndexDSN: SQLite database of accepted submissions.
//   - Backend: BackendLocal or BackendS3.
//   - S3*: bucket access for BackendS3. S3Endpoint is only needed for
//     S3-compatible servers (e.g. MinIO); S3Prefix scopes the keys.
//   - LogFormat: diagnostics format, one of text, json, zap.
type Config struct {
	Dir       string
	AuditLog  string
	IndexDSN  string
	Backend   string
	LogFormat string

	S3User     string
	S3Password string
	S3Bucket   string
	S3Region   string
	S3Endpoint string
	S3Prefix   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Dir = "submissions"
	c.AuditLog = "submission_log.txt"
	c.IndexDSN = "submissions.db"
	c.Backend = BackendLocal
	c.LogFormat = "text"
	c.S3Region = "us-east-1"
	c.S3Bucket = "submissions"
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
