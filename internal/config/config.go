// Package config loads and persists the CLI configuration. Only
// non-secret settings live here; the bearer token is kept in the
// credential store, never in the config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultServerURL points at the hosted FEC Analyzer backend.
const DefaultServerURL = "https://nf864ajqb2.execute-api.eu-west-3.amazonaws.com/default/FEC_Analyzer_API"

const configName = ".fec-cli"

// Config represents the application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Format FormatConfig `yaml:"format"`
}

// ServerConfig contains backend connection settings.
type ServerConfig struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

// FormatConfig contains output formatting settings.
type FormatConfig struct {
	Default string `yaml:"default"`
	Colors  bool   `yaml:"colors"`
}

var (
	globalConfig *Config
	debug        bool
	outputFormat string
)

// Initialize loads the configuration from file, creating a default one on
// first run.
func Initialize(configFile string) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not get home directory: %w", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(configName)
	}

	setDefaults()

	viper.SetEnvPrefix("FEC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if err := createDefaultConfig(); err != nil {
				return fmt.Errorf("could not create default config: %w", err)
			}
			// Pick up the file just written so later writes have a target.
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("could not read config file: %w", err)
			}
		} else {
			return fmt.Errorf("could not read config file: %w", err)
		}
	}

	globalConfig = &Config{}
	if err := viper.Unmarshal(globalConfig); err != nil {
		return fmt.Errorf("could not unmarshal config: %w", err)
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("server.url", DefaultServerURL)
	viper.SetDefault("server.timeout", "30s")
	viper.SetDefault("format.default", "table")
	viper.SetDefault("format.colors", true)
}

// createDefaultConfig writes a default configuration file to the home
// directory.
func createDefaultConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, configName+".yaml")

	defaultConfig := Config{
		Server: ServerConfig{
			URL:     DefaultServerURL,
			Timeout: "30s",
		},
		Format: FormatConfig{
			Default: "table",
			Colors:  true,
		},
	}

	data, err := yaml.Marshal(defaultConfig)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// Get returns the global configuration.
func Get() *Config {
	if globalConfig == nil {
		globalConfig = &Config{}
	}
	return globalConfig
}

// Set updates a single key and persists the file.
func Set(key, value string) error {
	viper.Set(key, value)
	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("could not write config: %w", err)
	}
	globalConfig = &Config{}
	return viper.Unmarshal(globalConfig)
}

// SetDebug sets the debug mode.
func SetDebug(enabled bool) {
	debug = enabled
}

// IsDebug returns whether debug mode is enabled.
func IsDebug() bool {
	return debug
}

// SetOutputFormat overrides the output format for this invocation.
func SetOutputFormat(format string) {
	outputFormat = format
}

// GetOutputFormat returns the effective output format.
func GetOutputFormat() string {
	if outputFormat != "" {
		return outputFormat
	}
	if globalConfig != nil && globalConfig.Format.Default != "" {
		return globalConfig.Format.Default
	}
	return "table"
}
