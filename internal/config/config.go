package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	OpenAIKey     string `yaml:"openai_key"`
	Model         string `yaml:"model"`
	DatabasePath  string `yaml:"database_path"`
	AdminPassword string `yaml:"admin_password"`
	JWTSecret     string `yaml:"jwt_secret"`

	Speech struct {
		Endpoint   string `yaml:"endpoint"`
		APIKey     string `yaml:"api_key"`
		Deployment string `yaml:"deployment"`
	} `yaml:"speech"`

	MetricsConfig struct {
		Enabled bool `yaml:"enabled"`
		Port    int  `yaml:"port"`
	} `yaml:"metrics"`
}

// Load reads and parses the YAML configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.applyDefaults()

	if config.AdminPassword == "" {
		return nil, fmt.Errorf("admin_password is required")
	}
	if config.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "cafeteria.db"
	}
	if c.MetricsConfig.Port == 0 {
		c.MetricsConfig.Port = 9090
	}
}
