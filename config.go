package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for flutterserve
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Bundle  BundleConfig  `yaml:"bundle"`
	Build   BuildConfig   `yaml:"build"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig contains HTTP listener configuration
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// BundleConfig describes where the built web application lives
type BundleConfig struct {
	Dir       string `yaml:"dir"`
	EntryFile string `yaml:"entry_file"`
}

// BuildConfig describes the external build script
type BuildConfig struct {
	Command string            `yaml:"command"`
	WorkDir string            `yaml:"work_dir"`
	EnvVars map[string]string `yaml:"env_vars"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `yaml:"level"` // "error", "warn", "info", "debug"
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 5000,
		},
		Bundle: BundleConfig{
			Dir:       "web",
			EntryFile: "index.html",
		},
		Build: BuildConfig{
			Command: "./flutter_build.sh",
			EnvVars: map[string]string{},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file. A missing file yields
// the defaults. PORT from the environment overrides server.port.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := config.applyEnv(os.Getenv); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// applyEnv overlays environment variables on top of the file configuration
func (c *Config) applyEnv(getenv func(string) string) error {
	if portStr := getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", portStr, err)
		}
		c.Server.Port = port
	}
	return nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Bundle.Dir == "" {
		return fmt.Errorf("bundle directory not specified")
	}
	if c.Bundle.EntryFile == "" {
		return fmt.Errorf("bundle entry file not specified")
	}
	// The entry file must sit directly inside the bundle directory.
	if filepath.Base(c.Bundle.EntryFile) != c.Bundle.EntryFile || c.Bundle.EntryFile == ".." {
		return fmt.Errorf("entry file must be a plain file name: %s", c.Bundle.EntryFile)
	}

	if strings.TrimSpace(c.Build.Command) == "" {
		return fmt.Errorf("build command not specified")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "error", "warn", "info", "debug":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	return nil
}

// ListenAddr returns the host:port the HTTP service binds to
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
