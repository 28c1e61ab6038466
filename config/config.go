package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the demo.
type Config struct {
	Retrieve  RetrieveConfig  `yaml:"retrieve"`
	LLM       LLMConfig       `yaml:"llm"`
	Knowledge KnowledgeConfig `yaml:"knowledge"`
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// RetrieveConfig holds retrieval configuration.
type RetrieveConfig struct {
	MinScore     int `yaml:"min_score" validate:"gte=0"`
	MaxDocuments int `yaml:"max_documents" validate:"gte=0"` // 0 = no limit
}

// LLMConfig holds generation backend configuration.
type LLMConfig struct {
	Provider     string  `yaml:"provider" validate:"oneof=openai deepseek ollama mock"`
	Model        string  `yaml:"model" validate:"required"`
	BaseURL      string  `yaml:"base_url" validate:"omitempty,url"`
	APIKeyEnv    string  `yaml:"api_key_env"`
	Temperature  float64 `yaml:"temperature" validate:"gte=0,lte=2"`
	TimeoutSec   int     `yaml:"timeout_sec" validate:"gte=0"`
	MaxRetries   int     `yaml:"max_retries" validate:"gte=0"`
	MockResponse string  `yaml:"mock_response"` // only used by the mock provider
}

// KnowledgeConfig selects where the knowledge base comes from.
type KnowledgeConfig struct {
	Source   string   `yaml:"source" validate:"oneof=builtin yaml dir"`
	Path     string   `yaml:"path" validate:"required_unless=Source builtin"`
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// ServerConfig holds HTTP surface configuration.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file"` // rotated JSON log file, empty = console only
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Retrieve: RetrieveConfig{
			MinScore:     1,
			MaxDocuments: 0,
		},
		LLM: LLMConfig{
			Provider:    "openai",
			Model:       "gpt-4o-mini",
			APIKeyEnv:   "OPENAI_API_KEY",
			Temperature: 0,
			TimeoutSec:  60,
			MaxRetries:  2,
		},
		Knowledge: KnowledgeConfig{
			Source:   "builtin",
			Includes: []string{"**/*.md", "**/*.txt", "**/*.pdf"},
			Excludes: []string{"**/.git/**", "**/node_modules/**"},
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for ragdemo.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "ragdemo.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".ragdemo", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// LoadEnv loads KEY=VALUE pairs from .env in dir into the process
// environment. Variables that are already set win. A missing file is not an
// error.
func LoadEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// APIKey returns the API key named by APIKeyEnv, or "" when unset.
func (c LLMConfig) APIKey() string {
	if c.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.APIKeyEnv)
}
