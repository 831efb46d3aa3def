package config

// Config is the parsed .bddkit.yml document.
type Config struct {
	Version  int           `yaml:"version"`
	MockMode bool          `yaml:"mock_mode"`
	Debug    bool          `yaml:"debug"`
	Dirs     DirsConfig    `yaml:"dirs"`
	API      APIConfig     `yaml:"api"`
	Browser  BrowserConfig `yaml:"browser"`
	Bedrock  BedrockConfig `yaml:"bedrock"`
	Xray     XrayConfig    `yaml:"xray"`
	Report   ReportConfig  `yaml:"report"`
}

// DirsConfig holds the artifact directories, relative to the config file.
type DirsConfig struct {
	Features    string `yaml:"features"`
	Reports     string `yaml:"reports"`
	Screenshots string `yaml:"screenshots"`
	Data        string `yaml:"data"`
}

// APIConfig configures the mock API server.
type APIConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// BrowserConfig configures the browser used for UI checks.
type BrowserConfig struct {
	Headless       bool `yaml:"headless"`
	TimeoutSeconds int  `yaml:"timeout_seconds"`
	Width          int  `yaml:"width"`
	Height         int  `yaml:"height"`
}

// BedrockConfig configures the mocked requirement-generation client.
type BedrockConfig struct {
	ModelID string `yaml:"model_id"`
}

// XrayConfig configures the mocked test-management client.
type XrayConfig struct {
	BaseURL    string `yaml:"base_url"`
	ProjectKey string `yaml:"project_key"`
}

// ReportConfig tunes report output.
type ReportConfig struct {
	IndexLimit int `yaml:"index_limit"`
}

// Addr returns the host:port address of the mock API.
func (a APIConfig) Addr() string {
	return joinHostPort(a.Host, a.Port)
}
