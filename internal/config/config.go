package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Source kinds understood by the serve command.
const (
	SourceGoogle   = "google"
	SourceWorkbook = "workbook"
)

type Config struct {
	HTTP   HTTPConfig   `yaml:"http"`
	Logger LoggerConfig `yaml:"logger"`
	Google Google       `yaml:"google"`
	Source SourceConfig `yaml:"source"`
	Viewer ViewerConfig `yaml:"viewer"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`

	// CORS
	CORSAllowOrigins []string `yaml:"cors_allow_origins"`
}

type LoggerConfig struct {
	AppEnv   string `yaml:"app_env"`
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type SourceConfig struct {
	Kind        string `yaml:"kind"`
	WorkbookDir string `yaml:"workbook_dir"`
}

type ViewerConfig struct {
	ServerURL   string        `yaml:"server_url"`
	AutoRefresh time.Duration `yaml:"auto_refresh"`
}

// Default returns the configuration used when neither a file nor the
// environment provides a value.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:             ":8080",
			CORSAllowOrigins: []string{"*"},
		},
		Logger: LoggerConfig{
			AppEnv: "production",
			Level:  "info",
		},
		Source: SourceConfig{
			Kind:        SourceGoogle,
			WorkbookDir: ".",
		},
		Viewer: ViewerConfig{
			ServerURL: "http://localhost:8080",
		},
	}
}

// Load builds the configuration from defaults, then the optional YAML file at
// path, then the environment. Later layers win.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.HTTP.Addr = getenv("HTTP_ADDR", cfg.HTTP.Addr)
	if v := getenv("CORS_ALLOW_ORIGINS", ""); v != "" {
		cfg.HTTP.CORSAllowOrigins = splitCSV(v)
	}

	cfg.Logger.AppEnv = getenv("APP_ENV", cfg.Logger.AppEnv)
	cfg.Logger.Level = getenv("LOG_LEVEL", cfg.Logger.Level)
	cfg.Logger.Encoding = getenv("LOG_ENCODING", cfg.Logger.Encoding)

	cfg.Google.ProjectID = getenv("GOOGLE_PROJECT_ID", cfg.Google.ProjectID)
	cfg.Google.PrivateKeyID = getenv("GOOGLE_PRIVATE_KEY_ID", cfg.Google.PrivateKeyID)
	cfg.Google.PrivateKey = getenv("GOOGLE_PRIVATE_KEY", cfg.Google.PrivateKey)
	cfg.Google.ClientEmail = getenv("GOOGLE_CLIENT_EMAIL", cfg.Google.ClientEmail)
	cfg.Google.ClientID = getenv("GOOGLE_CLIENT_ID", cfg.Google.ClientID)
	cfg.Google.ClientX509CertURL = getenv("GOOGLE_CLIENT_X509_CERT_URL", cfg.Google.ClientX509CertURL)

	cfg.Source.Kind = strings.ToLower(getenv("INVENTORY_SOURCE", cfg.Source.Kind))
	cfg.Source.WorkbookDir = getenv("INVENTORY_WORKBOOK_DIR", cfg.Source.WorkbookDir)

	cfg.Viewer.ServerURL = getenv("STOCK_TRACKER_URL", cfg.Viewer.ServerURL)
	cfg.Viewer.AutoRefresh = parseDuration(getenv("AUTO_REFRESH", ""), cfg.Viewer.AutoRefresh)
}

func (c Config) validate() error {
	switch c.Source.Kind {
	case SourceGoogle, SourceWorkbook:
	default:
		return fmt.Errorf("unknown inventory source %q", c.Source.Kind)
	}
	if c.Viewer.AutoRefresh < 0 {
		return fmt.Errorf("auto refresh interval must not be negative, got %s", c.Viewer.AutoRefresh)
	}
	return nil
}

// Development reports whether the logger should use the console encoder.
func (l LoggerConfig) Development() bool {
	switch strings.ToLower(l.AppEnv) {
	case "dev", "development", "local":
		return true
	}
	return false
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// parseDuration accepts Go durations ("30s") and bare seconds ("30").
func parseDuration(v string, def time.Duration) time.Duration {
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}
