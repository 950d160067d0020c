package config

// Config is the top-level site configuration, corresponding to portfolio.yml.
type Config struct {
	Server    ServerConfig    `yaml:"server" koanf:"server"`
	Site      SiteConfig      `yaml:"site" koanf:"site"`
	Export    ExportConfig    `yaml:"export" koanf:"export"`
	Analytics AnalyticsConfig `yaml:"analytics" koanf:"analytics"`
	Relay     RelayConfig     `yaml:"relay" koanf:"relay"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           int      `yaml:"port" koanf:"port"`
	Mode           string   `yaml:"mode" koanf:"mode"` // gin mode: debug, release or test
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

// SiteConfig controls how the page references its own assets and endpoints.
type SiteConfig struct {
	// BasePath is the URL prefix for subdirectory hosting, e.g. "/portfolio".
	BasePath string `yaml:"base_path" koanf:"base_path"`
	// APIURL is where the page sends contact submissions. Empty means the
	// same origin under BasePath.
	APIURL string `yaml:"api_url" koanf:"api_url"`
	// AssetsDir, when set, is read instead of the embedded web/ directory.
	// It must contain templates/ and static/.
	AssetsDir string `yaml:"assets_dir" koanf:"assets_dir"`
}

// ExportConfig holds static export settings.
type ExportConfig struct {
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	Exclude   []string `yaml:"exclude" koanf:"exclude"`
}

// AnalyticsConfig holds visitor tracking settings.
type AnalyticsConfig struct {
	Enabled       bool   `yaml:"enabled" koanf:"enabled"`
	DBPath        string `yaml:"db_path" koanf:"db_path"`
	Salt          string `yaml:"salt" koanf:"salt"`
	RetentionDays int    `yaml:"retention_days" koanf:"retention_days"`
}

// RelayConfig identifies the browser-side email relay account. All three
// values are public; the relay is used only when they are all set.
type RelayConfig struct {
	ServiceID  string `yaml:"service_id" koanf:"service_id"`
	TemplateID string `yaml:"template_id" koanf:"template_id"`
	PublicKey  string `yaml:"public_key" koanf:"public_key"`
}

// Enabled reports whether the relay is fully configured.
func (r RelayConfig) Enabled() bool {
	return r.ServiceID != "" && r.TemplateID != "" && r.PublicKey != ""
}
