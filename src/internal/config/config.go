package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/shourov-bot/bot-panel/src/internal/log"
)

// LoadConfig reads a TOML configuration file and applies defaults to every
// field the file leaves unset.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config.ApplyDefaults()
	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)

	return &config, nil
}

// LoadOrDefault loads configPath, or returns the defaults when configPath is empty.
func LoadOrDefault(configPath string) (*Config, error) {
	if configPath == "" {
		log.Debugf("No configuration file given, using defaults")
		return DefaultConfig(), nil
	}
	return LoadConfig(configPath)
}

// SetPath sets the file WriteConfig writes to.
func (c *Config) SetPath(path string) {
	c._absConfigFilePath = path
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c._absConfigFilePath
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

func (c *Config) WriteConfig() error {
	if c._absConfigFilePath == "" {
		return fmt.Errorf("configuration path is not set")
	}
	config, err := c.SerializeConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c._absConfigFilePath), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %v", err)
	}
	return os.WriteFile(c._absConfigFilePath, config.Bytes(), 0600)
}
