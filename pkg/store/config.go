package store

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Backend names accepted in configuration.
const (
	BackendFile  = "file"
	BackendDiskv = "diskv"
)

// Config carries everything the persistence layer and the UI need to
// know about durable storage.
type Config struct {
	// Path is the journal document for the file backend, or the base
	// directory for the diskv backend.
	Path string

	// Backend selects the persistence implementation.
	Backend string

	// Autosave is how often a running UI checkpoints the store. Zero
	// disables the timer; explicit checkpoints still happen.
	Autosave time.Duration
}

// LoadConfig resolves configuration from a .diary config file, DIARY_*
// environment variables, and defaults, in that order of preference.
func LoadConfig() (*Config, error) {
	viper.SetDefault("path", "~/.diary/diary.json")
	viper.SetDefault("backend", BackendFile)
	viper.SetDefault("autosave", "2m")
	viper.SetConfigName(".diary") // .yaml is implicit
	viper.SetEnvPrefix("DIARY")
	viper.AutomaticEnv()

	if override := os.Getenv("DIARY_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &Config{
		Path:     path,
		Backend:  viper.GetString("backend"),
		Autosave: viper.GetDuration("autosave"),
	}, nil
}

// Open creates the persistence backend named by the config. A nil
// config falls back to LoadConfig.
func Open(cfg *Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch cfg.Backend {
	case BackendFile, "":
		return NewFilePersistence(cfg.Path), nil
	case BackendDiskv:
		return NewDiskvPersistence(cfg.Path), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend)
	}
}
