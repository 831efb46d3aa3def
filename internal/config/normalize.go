package config

// Defaults mirrored by the init scaffold.
const (
	DefaultFeaturesDir    = "features"
	DefaultReportsDir     = "reports"
	DefaultScreenshotsDir = "screenshots"
	DefaultDataDir        = "data"

	DefaultAPIHost = "127.0.0.1"
	DefaultAPIPort = 8001

	DefaultBrowserTimeoutSeconds = 10
	DefaultBrowserWidth          = 1920
	DefaultBrowserHeight         = 1080

	DefaultModelID    = "mock-requirements-v1"
	DefaultXrayURL    = "https://demo.atlassian.net"
	DefaultProjectKey = "DEMO"

	DefaultIndexLimit = 10
)

// Normalize fills zero-valued fields with defaults.
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Dirs.Features == "" {
		cfg.Dirs.Features = DefaultFeaturesDir
	}
	if cfg.Dirs.Reports == "" {
		cfg.Dirs.Reports = DefaultReportsDir
	}
	if cfg.Dirs.Screenshots == "" {
		cfg.Dirs.Screenshots = DefaultScreenshotsDir
	}
	if cfg.Dirs.Data == "" {
		cfg.Dirs.Data = DefaultDataDir
	}
	if cfg.API.Host == "" {
		cfg.API.Host = DefaultAPIHost
	}
	// Port is defaulted in Parse; zero here means an ephemeral bind.
	if cfg.Browser.TimeoutSeconds == 0 {
		cfg.Browser.TimeoutSeconds = DefaultBrowserTimeoutSeconds
	}
	if cfg.Browser.Width == 0 {
		cfg.Browser.Width = DefaultBrowserWidth
	}
	if cfg.Browser.Height == 0 {
		cfg.Browser.Height = DefaultBrowserHeight
	}
	if cfg.Bedrock.ModelID == "" {
		cfg.Bedrock.ModelID = DefaultModelID
	}
	if cfg.Xray.BaseURL == "" {
		cfg.Xray.BaseURL = DefaultXrayURL
	}
	if cfg.Xray.ProjectKey == "" {
		cfg.Xray.ProjectKey = DefaultProjectKey
	}
	if cfg.Report.IndexLimit == 0 {
		cfg.Report.IndexLimit = DefaultIndexLimit
	}
}
