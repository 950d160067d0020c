package config

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "portfolio.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			Mode: "release",
		},
		Export: ExportConfig{
			OutputDir: "out",
		},
		Analytics: AnalyticsConfig{
			Enabled:       true,
			DBPath:        "data/portfolio.db",
			RetentionDays: 365,
		},
	}
}
