package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Transport TransportConfig `yaml:"transport"`
	Agent     AgentConfig     `yaml:"agent"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// TransportConfig selects how the MCP server is exposed: "http" mounts it on
// the REST server, "stdio" runs it over stdin/stdout.
type TransportConfig struct {
	Mode string `yaml:"mode"`
}

// AgentConfig points at the OpenAI-compatible endpoint used for insights.
type AgentConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "attivita.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Transport: TransportConfig{
			Mode: "http",
		},
		Agent: AgentConfig{
			Model: "gpt-4o-mini",
		},
	}

	if path := os.Getenv("ATTIVITA_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("ATTIVITA_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("ATTIVITA_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ATTIVITA_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("ATTIVITA_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("ATTIVITA_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if mode := os.Getenv("ATTIVITA_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if baseURL := os.Getenv("ATTIVITA_AGENT_BASE_URL"); baseURL != "" {
		cfg.Agent.BaseURL = baseURL
	}
	if apiKey := os.Getenv("ATTIVITA_AGENT_API_KEY"); apiKey != "" {
		cfg.Agent.APIKey = apiKey
	}
	if model := os.Getenv("ATTIVITA_AGENT_MODEL"); model != "" {
		cfg.Agent.Model = model
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
