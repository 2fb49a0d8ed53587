package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const DefaultPath = "config.yml"

// ServerConfig holds the listen address and the worker pool bound
type ServerConfig struct {
	Addr    string `yaml:"addr"`
	Port    int    `yaml:"port"`
	Workers int    `yaml:"workers"`
}

// ProviderConfig holds everything needed to reach the image provider.
// The API key itself comes from the environment, never from the file.
type ProviderConfig struct {
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	APIKey         string `yaml:"-"`
}

// ImagesConfig controls where generated images land on disk
type ImagesConfig struct {
	Dir        string `yaml:"dir"`
	Thumbnails bool   `yaml:"thumbnails"`
	ThumbSize  int    `yaml:"thumb_size"`
}

// DBConfig holds the optional generation journal connection string
type DBConfig struct {
	DSN string `yaml:"dsn"`
}

// Config holds addresses, ports, provider settings and secrets
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Provider ProviderConfig `yaml:"provider"`
	Images   ImagesConfig   `yaml:"images"`
	DB       DBConfig       `yaml:"db"`

	// SecretKey is the shared secret requests must carry in api_key
	SecretKey string `yaml:"-"`
}

// Load reads the YAML config at path and overlays secrets and
// overrides from the environment (a .env file is honored if present)
func Load(path string) (*Config, error) {
	// Missing .env is fine, the variables may be set directly
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Addr:    "localhost",
			Port:    50051,
			Workers: 10,
		},
		Provider: ProviderConfig{
			BaseURL:        "https://api.openai.com/v1",
			Model:          "dall-e-3",
			TimeoutSeconds: 120,
		},
		Images: ImagesConfig{
			Dir:       "images",
			ThumbSize: 256,
		},
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		// No file: defaults plus environment
	} else if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.Provider.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.SecretKey = os.Getenv("API_SECRET_KEY")
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.DB.DSN = dsn
	}

	return cfg, nil
}

// ValidateServer checks the fields only the server binary requires
func (c *Config) ValidateServer() error {
	if c.Provider.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is not set in environment variables")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("API_SECRET_KEY is not set in environment variables")
	}
	return nil
}

// GenerationTimeout returns the per-call deadline for the provider
func (c *Config) GenerationTimeout() time.Duration {
	return time.Duration(c.Provider.TimeoutSeconds) * time.Second
}

// ClientTarget resolves the address the client dials. SERVER_ADDRESS
// takes precedence over the configured addr:port pair.
func (c *Config) ClientTarget() string {
	if addr := os.Getenv("SERVER_ADDRESS"); addr != "" {
		return addr
	}
	return fmt.Sprintf("%s:%d", c.Server.Addr, c.Server.Port)
}
