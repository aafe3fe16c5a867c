// Package config loads the file configuration for the annotate CLIs and the
// API server and builds the application logger.
package config

import (
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pepperkit/stopwords/pkg/stopwords"
)

// Config is the application configuration. The stopwords block is handed to
// the resolver untouched; its recognized keys are documented in the stopwords
// package.
type Config struct {
	Server    ServerConfig      `mapstructure:"server"`
	Logging   LoggingConfig     `mapstructure:"logging"`
	Stopwords map[string]string `mapstructure:"stopwords"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LoggingConfig struct {
	Level       string   `mapstructure:"level"`
	Encoding    string   `mapstructure:"encoding"`
	OutputPaths []string `mapstructure:"output_paths"`
}

// Load reads the configuration file at configPath. An empty path yields the
// defaults; a missing or malformed file is an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 3000)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.encoding", "json")
	v.SetDefault("logging.output_paths", []string{"stderr"})

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Properties converts the stopwords block into resolver properties. The
// resolver matches keys case-insensitively, so viper's key lowercasing is
// harmless here.
func (c *Config) Properties() stopwords.Properties {
	props := make(stopwords.Properties, len(c.Stopwords))
	for key, value := range c.Stopwords {
		props[key] = value
	}
	return props
}

// NewLogger builds a zap logger from the logging configuration.
func NewLogger(lc LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(lc.Level))
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if lc.Encoding != "" {
		zc.Encoding = lc.Encoding
	}
	if len(lc.OutputPaths) > 0 {
		zc.OutputPaths = lc.OutputPaths
	}
	return zc.Build()
}
