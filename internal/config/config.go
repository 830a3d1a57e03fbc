package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds demo app configuration.
type Config struct {
	Database DatabaseConfig
	Feedback FeedbackConfig
	UI       UIConfig
	Keymap   KeymapConfig
}

// DatabaseConfig holds sqlite settings for the emoji usage store.
type DatabaseConfig struct {
	Path string
}

// FeedbackConfig toggles the feedback channels.
type FeedbackConfig struct {
	Audio  bool
	Haptic bool
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent          string
	DefaultCategory string `mapstructure:"default_category"`
	FrequentLimit   int    `mapstructure:"frequent_limit"`
}

// KeymapConfig carries key binding overrides.
type KeymapConfig struct {
	Overrides []KeymapOverride
}

// KeymapOverride replaces the keys of one (scope, action) binding.
type KeymapOverride struct {
	Scope  string
	Action string
	Keys   []string
}

// Load reads configuration from file and env. Env var overrides use prefix KEYBOARDKIT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "keyboardkit", "usage.db"))
	v.SetDefault("feedback.audio", true)
	v.SetDefault("feedback.haptic", false)
	v.SetDefault("ui.accent", "pink")
	v.SetDefault("ui.default_category", "smileys")
	v.SetDefault("ui.frequent_limit", 30)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("KEYBOARDKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "keyboardkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("KEYBOARDKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("KEYBOARDKIT_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "keyboardkit", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("feedback.audio", cfg.Feedback.Audio)
	v.Set("feedback.haptic", cfg.Feedback.Haptic)
	v.Set("ui.accent", cfg.UI.Accent)
	v.Set("ui.default_category", cfg.UI.DefaultCategory)
	v.Set("ui.frequent_limit", cfg.UI.FrequentLimit)
	v.Set("keymap.overrides", cfg.Keymap.Overrides)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
