// Package config loads the turing CLI configuration from a YAML file and
// TURING_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix marks environment variables that override file settings.
// TURING_STORE_REDIS_ADDR overrides store.redis.addr.
const EnvPrefix = "TURING_"

// Backend names accepted by store.backend.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config is the fully resolved configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Store   StoreConfig   `mapstructure:"store" yaml:"store"`
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	// File, when set, receives JSON logs in addition to stderr.
	File string `mapstructure:"file" yaml:"file"`
}

type StoreConfig struct {
	Backend string      `mapstructure:"backend" yaml:"backend"`
	Redis   RedisConfig `mapstructure:"redis" yaml:"redis"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr" yaml:"addr"`
	Password string        `mapstructure:"password" yaml:"password"`
	DB       int           `mapstructure:"db" yaml:"db"`
	Prefix   string        `mapstructure:"prefix" yaml:"prefix"`
	TTL      time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" yaml:"port"`
}

type DisplayConfig struct {
	// Window is the number of cells shown on each side of the head.
	Window int `mapstructure:"window" yaml:"window"`
}

// Default returns the configuration used when no file or env is present.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Store: StoreConfig{
			Backend: BackendMemory,
			Redis:   RedisConfig{Addr: "localhost:6379", Prefix: "turing:run:"},
		},
		Server:  ServerConfig{Port: 8080},
		Display: DisplayConfig{Window: 20},
	}
}

// Load reads path (optional) and applies env overrides from os.Environ.
// A missing file is not an error.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, os.Environ())
}

// LoadWithEnv is Load with an explicit environment, as KEY=VALUE pairs.
func LoadWithEnv(path string, environ []string) (Config, error) {
	raw := map[string]any{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
			if raw == nil {
				raw = map[string]any{}
			}
		case os.IsNotExist(err):
		default:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	overlayEnv(raw, environ)

	cfg := Default()
	if err := decode(raw, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the commands cannot act on.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("invalid store.backend %q (want %s or %s)", c.Store.Backend, BackendMemory, BackendRedis)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.Display.Window < 0 {
		return fmt.Errorf("invalid display.window %d", c.Display.Window)
	}
	return nil
}

func decode(raw map[string]any, out *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

// sections lists the top-level Config keys the environment may override.
// Other TURING_* variables, such as TURING_MAX_INPUT_SIZE, belong to other
// packages and are left alone.
var sections = map[string]bool{
	"log":     true,
	"store":   true,
	"server":  true,
	"display": true,
}

// overlayEnv writes TURING_A_B=v into raw["a"]["b"] when a is a config section.
func overlayEnv(raw map[string]any, environ []string) {
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		path := strings.Split(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), "_")
		if !sections[path[0]] {
			continue
		}
		setPath(raw, path, value)
	}
}

func setPath(m map[string]any, path []string, value string) {
	for i, part := range path {
		if part == "" {
			return
		}
		if i == len(path)-1 {
			m[part] = value
			return
		}
		next, ok := m[part].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[part] = next
		}
		m = next
	}
}
