package server

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/pictoplace/pictoplace/pkg/errors"
)

// Config holds the API server configuration, loadable from TOML.
type Config struct {
	// Addr is the listen address (host:port).
	Addr string `toml:"addr"`

	// CacheDir is the file cache directory. Ignored when Redis is set.
	CacheDir string `toml:"cache_dir"`

	// AdjustRef is the default adjustment table path or URL.
	AdjustRef string `toml:"adjust"`

	// CacheScope prefixes every cache key, isolating this deployment's
	// entries when several instances share one Redis.
	CacheScope string `toml:"cache_scope"`

	// Redis configures the shared cache backend. Leaving Addr empty
	// selects the file cache instead.
	Redis RedisConfig `toml:"redis"`
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Addr: ":8080",
	}
}

// LoadConfig reads a TOML config file, applying defaults for anything
// the file leaves unset.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.New(errors.ErrCodeFileNotFound, "config not found: %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config")
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config TOML")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg, nil
}
