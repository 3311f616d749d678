package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/cipher"
)

const (
	DefaultConfigPath = "/etc/ciphers"
	ConfigFileName    = "ciphers.yml"
)

// ValidLogLevels lists the accepted log_level values
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted log_format values
var ValidLogFormats = []string{"text", "json"}

// Config holds the toolkit settings shared by the CLI and the HTTP server
type Config struct {
	// Algorithms is the list of algorithms the server accepts
	Algorithms []string `yaml:"algorithms" json:"algorithms"`

	// Normalize uppercases text and key before transforming
	Normalize bool `yaml:"normalize" json:"normalize"`

	// MaxTextLength is the largest text, in bytes, the server transforms
	MaxTextLength int `yaml:"max_text_length" json:"max_text_length"`

	// LogLevel is one of ValidLogLevels
	LogLevel string `yaml:"log_level" json:"log_level"`

	// LogFormat is one of ValidLogFormats
	LogFormat string `yaml:"log_format" json:"log_format"`

	// BindAddress is the server listen address
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the server listen port
	Port int `yaml:"port" json:"port"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Default returns a config with default values
func Default() *Config {
	cfg := &Config{
		Algorithms:    cipher.AlgorithmStrings(),
		Normalize:     false,
		MaxTextLength: 64 * 1024,
		LogLevel:      "info",
		LogFormat:     "text",
		BindAddress:   "0.0.0.0",
		Port:          8000,
		sources:       make(map[string]string),
	}
	for _, name := range attributeNames() {
		cfg.sources[name] = "default"
	}
	return cfg
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*Config, error) {
	config := Default()

	configPath := os.Getenv("CIPHERS_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig, data)
	}

	if err := config.applyEnvConfig(); err != nil {
		return nil, err
	}

	return config, nil
}

func attributeNames() []string {
	return []string{
		"algorithms", "normalize", "max_text_length",
		"log_level", "log_format", "bind_address", "port",
	}
}

func (c *Config) applyFileConfig(file *Config, raw []byte) {
	if len(file.Algorithms) > 0 {
		c.Algorithms = file.Algorithms
		c.sources["algorithms"] = "file"
	}
	// A false bool is indistinguishable from an absent one after decoding.
	var present map[string]interface{}
	if err := yaml.Unmarshal(raw, &present); err == nil {
		if _, ok := present["normalize"]; ok {
			c.Normalize = file.Normalize
			c.sources["normalize"] = "file"
		}
	}
	if file.MaxTextLength != 0 {
		c.MaxTextLength = file.MaxTextLength
		c.sources["max_text_length"] = "file"
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = "file"
	}
	if file.LogFormat != "" {
		c.LogFormat = file.LogFormat
		c.sources["log_format"] = "file"
	}
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
}

func (c *Config) applyEnvConfig() error {
	if val := os.Getenv("CIPHERS_ALGORITHMS"); val != "" {
		c.Algorithms = splitAndTrim(val)
		c.sources["algorithms"] = "environment"
	}
	if val := os.Getenv("CIPHERS_NORMALIZE"); val != "" {
		c.Normalize = val == "true" || val == "1"
		c.sources["normalize"] = "environment"
	}
	if val := os.Getenv("CIPHERS_MAX_TEXT_LENGTH"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid CIPHERS_MAX_TEXT_LENGTH %q: %w", val, err)
		}
		c.MaxTextLength = i
		c.sources["max_text_length"] = "environment"
	}
	if val := os.Getenv("CIPHERS_LOG_LEVEL"); val != "" {
		c.LogLevel = strings.ToLower(val)
		c.sources["log_level"] = "environment"
	}
	if val := os.Getenv("CIPHERS_LOG_FORMAT"); val != "" {
		c.LogFormat = strings.ToLower(val)
		c.sources["log_format"] = "environment"
	}
	if val := os.Getenv("BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("PORT"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", val, err)
		}
		c.Port = i
		c.sources["port"] = "environment"
	}
	return nil
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// IsAlgorithmEnabled checks if an algorithm is enabled
func (c *Config) IsAlgorithmEnabled(alg cipher.Algorithm) bool {
	for _, a := range c.Algorithms {
		if strings.EqualFold(a, alg.String()) {
			return true
		}
	}
	return false
}

// EnabledAlgorithms returns the enabled algorithms in declaration order
func (c *Config) EnabledAlgorithms() []cipher.Algorithm {
	var enabled []cipher.Algorithm
	for _, alg := range cipher.AlgorithmValues() {
		if c.IsAlgorithmEnabled(alg) {
			enabled = append(enabled, alg)
		}
	}
	return enabled
}

// Validate validates the configuration
func (c *Config) Validate() error {
	for _, a := range c.Algorithms {
		if _, err := cipher.ParseAlgorithm(a); err != nil {
			return fmt.Errorf("invalid algorithms value: %w", err)
		}
	}
	if c.MaxTextLength <= 0 {
		return fmt.Errorf("invalid max_text_length: %d", c.MaxTextLength)
	}
	if !contains(ValidLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}
	if !contains(ValidLogFormats, c.LogFormat) {
		return fmt.Errorf("invalid log_format: %s", c.LogFormat)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "algorithms", Value: strings.Join(c.Algorithms, ","), Source: c.Source("algorithms")},
		{Name: "normalize", Value: strconv.FormatBool(c.Normalize), Source: c.Source("normalize")},
		{Name: "max_text_length", Value: strconv.Itoa(c.MaxTextLength), Source: c.Source("max_text_length")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
		{Name: "log_format", Value: c.LogFormat, Source: c.Source("log_format")},
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: strconv.Itoa(c.Port), Source: c.Source("port")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
