package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/iov-one/settle/errors"
	"gopkg.in/yaml.v2"
)

// Config is the configuration of settled. It corresponds to the yaml file
// given with --config. Environment variables override the file.
type Config struct {
	Home    string        `yaml:"home"`
	Debug   bool          `yaml:"debug"`
	Store   StoreConfig   `yaml:"store"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// StoreConfig locates the state database.
type StoreConfig struct {
	// Dir defaults to <home>/data. Use ":memory:" for a store that is not
	// persisted.
	Dir  string `yaml:"dir"`
	Name string `yaml:"name"`
}

// LogConfig configures the logger.
type LogConfig struct {
	// Level is one of debug, info, error or none.
	Level string `yaml:"level"`
}

// MetricsConfig configures the prometheus endpoint of settled serve.
type MetricsConfig struct {
	Address string `yaml:"address"`
}

const memoryStore = ":memory:"

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Home:  filepath.Join(os.Getenv("HOME"), ".settled"),
		Store: StoreConfig{Name: "settle"},
		Log:   LogConfig{Level: "info"},
	}
}

// ReadConfig reads the configuration from the yaml file at path on top of
// the defaults. An empty path reads nothing. Environment variables are
// applied last.
func ReadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(errors.ErrInput, "read config: %s", err)
		}
		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			return cfg, errors.Wrapf(errors.ErrInput, "in file %q: %s", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Home = getEnvString("SETTLE_HOME", c.Home)
	c.Store.Dir = getEnvString("SETTLE_STORE_DIR", c.Store.Dir)
	c.Log.Level = getEnvString("SETTLE_LOG_LEVEL", c.Log.Level)
	c.Metrics.Address = getEnvString("SETTLE_METRICS_ADDRESS", c.Metrics.Address)
	debug, err := getEnvBool("SETTLE_DEBUG", c.Debug)
	if err != nil {
		return err
	}
	c.Debug = debug
	return nil
}

// StoreDir returns the directory of the state database, or an empty
// string for an in memory store.
func (c Config) StoreDir() string {
	switch c.Store.Dir {
	case memoryStore:
		return ""
	case "":
		return filepath.Join(c.Home, "data")
	default:
		return c.Store.Dir
	}
}

// KeysDir returns the directory of the private key files.
func (c Config) KeysDir() string {
	return filepath.Join(c.Home, "keys")
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.Wrapf(errors.ErrInput, "invalid bool for %s: %q", key, value)
	}
	return b, nil
}
