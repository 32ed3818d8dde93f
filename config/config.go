// Package config loads the TOML configuration shared by the layout tools.
//
//	[codec]
//	max_list_length = 1000000
//	max_string_size = 1048576
//	disallow_unknown_fields = true
//	disallow_trailing_bytes = true
//	indent = "  "
//
//	[registry]
//	addr = "localhost:6379"
//	password = ""
//	db = 0
//	prefix = "layout"
//
//	[log]
//	level = "info"
//	development = false
//
// Missing keys keep their defaults. A zero limit means the codec default.
package config

import (
	"os"

	"github.com/pelletier/go-toml"
	"go.uber.org/zap"

	"github.com/wippyai/layout-codec/errors"
	"github.com/wippyai/layout-codec/registry"
	"github.com/wippyai/layout-codec/transcoder"
)

const (
	DefaultRedisAddr = "localhost:6379"
	DefaultLogLevel  = "info"
)

// Config is the root of the configuration file.
type Config struct {
	Codec    CodecConfig    `toml:"codec"`
	Registry RegistryConfig `toml:"registry"`
	Log      LogConfig      `toml:"log"`
}

// CodecConfig holds codec limits and strictness switches.
type CodecConfig struct {
	MaxListLength         uint64 `toml:"max_list_length"`
	MaxStringSize         uint64 `toml:"max_string_size"`
	DisallowUnknownFields bool   `toml:"disallow_unknown_fields"`
	DisallowTrailingBytes bool   `toml:"disallow_trailing_bytes"`
	Indent                string `toml:"indent"`
}

// RegistryConfig holds the Redis connection of the layout registry.
type RegistryConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Codec.MaxListLength == 0 {
		c.Codec.MaxListLength = transcoder.DefaultMaxListLength
	}
	if c.Codec.MaxStringSize == 0 {
		c.Codec.MaxStringSize = transcoder.DefaultMaxStringSize
	}
	if c.Registry.Addr == "" {
		c.Registry.Addr = DefaultRedisAddr
	}
	if c.Registry.Prefix == "" {
		c.Registry.Prefix = registry.DefaultPrefix
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Load reads the TOML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read config "+path, err)
	}
	return Parse(data)
}

// Parse decodes a TOML document and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Load("parse config", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be verified by decoding alone.
func (c *Config) Validate() error {
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return errors.Load("log.level", err)
	}
	if c.Registry.DB < 0 {
		return errors.Load("registry.db must not be negative", nil)
	}
	return nil
}

// CodecOptions converts the codec section into transcoder options.
func (c *Config) CodecOptions() []transcoder.Option {
	opts := []transcoder.Option{
		transcoder.WithMaxListLength(c.Codec.MaxListLength),
		transcoder.WithMaxStringSize(c.Codec.MaxStringSize),
	}
	if c.Codec.DisallowUnknownFields {
		opts = append(opts, transcoder.WithDisallowUnknownFields())
	}
	if c.Codec.DisallowTrailingBytes {
		opts = append(opts, transcoder.WithDisallowTrailingBytes())
	}
	if c.Codec.Indent != "" {
		opts = append(opts, transcoder.WithIndent("", c.Codec.Indent))
	}
	return opts
}

// RegistryOptions converts the registry section into connection options.
func (c *Config) RegistryOptions() registry.Options {
	return registry.Options{
		Addr:     c.Registry.Addr,
		Password: c.Registry.Password,
		DB:       c.Registry.DB,
		Prefix:   c.Registry.Prefix,
	}
}

// NewLogger builds a zap logger from the log section. Development loggers
// write human-readable output; production loggers write JSON.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, errors.Load("log.level", err)
	}

	var zc zap.Config
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
