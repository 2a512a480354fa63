package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/nzai/pubapi/constants"
	"gopkg.in/yaml.v3"
)

// Config global config
type Config struct {
	AlphaVantage struct {
		APIKey   string `toml:"api_key" yaml:"api_key"`
		Endpoint string `toml:"endpoint" yaml:"endpoint"`
	} `toml:"alphavantage" yaml:"alphavantage"`
	Apod struct {
		Endpoint  string `toml:"endpoint" yaml:"endpoint"`
		OutputDir string `toml:"output_dir" yaml:"output_dir"`
	} `toml:"apod" yaml:"apod"`
	HTTP struct {
		TimeoutSeconds int `toml:"timeout_seconds" yaml:"timeout_seconds"`
	} `toml:"http" yaml:"http"`
	Chart struct {
		WidthInch  float64 `toml:"width_inch" yaml:"width_inch"`
		HeightInch float64 `toml:"height_inch" yaml:"height_inch"`
	} `toml:"chart" yaml:"chart"`
	Log Log `toml:"log" yaml:"log"`
}

// Log logger config
type Log struct {
	Level      string `toml:"level" yaml:"level"`
	File       string `toml:"file" yaml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" yaml:"max_backups"`
}

// Default config used when no file given
func Default() *Config {
	c := new(Config)
	c.AlphaVantage.Endpoint = constants.AlphaVantageURL
	c.Apod.Endpoint = constants.ApodURL
	c.Apod.OutputDir = "."
	c.HTTP.TimeoutSeconds = int(constants.RequestTimeout / time.Second)
	c.Chart.WidthInch = 10
	c.Chart.HeightInch = 5
	c.Log.Level = "info"
	c.Log.MaxSizeMB = 10
	c.Log.MaxBackups = 3
	return c
}

// Timeout http request timeout
func (s Config) Timeout() time.Duration {
	if s.HTTP.TimeoutSeconds <= 0 {
		return constants.RequestTimeout
	}

	return time.Duration(s.HTTP.TimeoutSeconds) * time.Second
}

// Valid validate config
func (s *Config) Valid() error {
	if strings.TrimSpace(s.AlphaVantage.Endpoint) == "" {
		s.AlphaVantage.Endpoint = constants.AlphaVantageURL
	}

	if strings.TrimSpace(s.Apod.Endpoint) == "" {
		s.Apod.Endpoint = constants.ApodURL
	}

	if strings.TrimSpace(s.Apod.OutputDir) == "" {
		s.Apod.OutputDir = "."
	}

	if s.HTTP.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: http.timeout_seconds must not be negative", constants.ErrConfig)
	}

	if s.Chart.WidthInch <= 0 || s.Chart.HeightInch <= 0 {
		return fmt.Errorf("%w: chart size must be positive", constants.ErrConfig)
	}

	return nil
}

// APIKey return the alpha vantage key, environment wins over the config file
func (s Config) APIKey() (string, error) {
	key := strings.TrimSpace(os.Getenv(constants.AlphaVantageKeyEnv))
	if key == "" {
		key = strings.TrimSpace(s.AlphaVantage.APIKey)
	}

	if key == "" {
		return "", fmt.Errorf("%w: %s not set", constants.ErrConfig, constants.AlphaVantageKeyEnv)
	}

	return key, nil
}

var (
	currentConfig = Default()
)

// Get get current config
func Get() *Config {
	return currentConfig
}

// Parse load .env into the environment, then parse config from file.
// Files ending in .yaml or .yml are yaml, anything else toml.
// An empty filePath keeps the defaults.
func Parse(filePath string) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: load .env: %v", constants.ErrConfig, err)
	}

	config := Default()
	if filePath != "" {
		err = decodeFile(filePath, config)
		if err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", constants.ErrConfig, filePath, err)
		}
	}

	err = config.Valid()
	if err != nil {
		return nil, err
	}

	currentConfig = config
	return currentConfig, nil
}

func decodeFile(filePath string, config *Config) error {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		buffer, err := os.ReadFile(filePath)
		if err != nil {
			return err
		}

		return yaml.Unmarshal(buffer, config)
	default:
		_, err := toml.DecodeFile(filePath, config)
		return err
	}
}
