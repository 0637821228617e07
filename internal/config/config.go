package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "tagkit.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default render output directory.
	DefaultOutput = "dist"
)

// Config represents the complete tagkit.json configuration.
type Config struct {
	// Title is the page title of the rendered gallery.
	Title string `json:"title,omitempty"`

	// Serve contains preview server configuration.
	Serve ServeConfig `json:"serve,omitempty"`

	// Output is the directory rendered HTML is written to.
	Output string `json:"output,omitempty"`

	// Deploy contains S3 deployment configuration.
	Deploy DeployConfig `json:"deploy,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServeConfig contains preview server settings.
type ServeConfig struct {
	// Port is the port to run the preview server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Pretty enables pretty-printed HTML output.
	Pretty bool `json:"pretty,omitempty"`

	// Metrics exposes Prometheus metrics on /metrics.
	Metrics bool `json:"metrics,omitempty"`
}

// DeployConfig contains S3 deployment settings.
type DeployConfig struct {
	// Bucket is the S3 bucket name.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix for uploaded objects.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region. Falls back to the SDK's default
	// resolution chain when empty.
	Region string `json:"region,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Title:  "tagkit gallery",
		Output: DefaultOutput,
		Serve: ServeConfig{
			Port:    DefaultPort,
			Host:    DefaultHost,
			Pretty:  true,
			Metrics: true,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for tagkit.json in the directory; a missing file yields the
// defaults rather than an error.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Addr returns the preview server listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Serve.Host, c.Serve.Port)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = "tagkit gallery"
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}
