// Package config provides configuration management for Zenith.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/xvierd/zenith/internal/domain"
	"github.com/xvierd/zenith/internal/xslog"
)

// EnvPrefix prefixes environment overrides, e.g. ZENITH_LOG_LEVEL.
const EnvPrefix = "ZENITH"

// Config holds all configuration for the Zenith application.
type Config struct {
	Meditation    MeditationConfig   `mapstructure:"meditation"`
	Breathing     BreathingConfig    `mapstructure:"breathing"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Log           LogConfig          `mapstructure:"log"`
	Content       ContentConfig      `mapstructure:"content"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// ThemeConfig holds the accent colors of the TUI.
type ThemeConfig struct {
	ColorAccent    string `mapstructure:"color_accent"`
	ColorHighlight string `mapstructure:"color_highlight"`
	ColorInfo      string `mapstructure:"color_info"`
	ColorSuccess   string `mapstructure:"color_success"`
	ColorWarning   string `mapstructure:"color_warning"`
	ColorDanger    string `mapstructure:"color_danger"`
	ColorMuted     string `mapstructure:"color_muted"`
	ColorSubtle    string `mapstructure:"color_subtle"`
	ColorCard      string `mapstructure:"color_card"`
	ColorText      string `mapstructure:"color_text"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorAccent:    "#B39DDB",
		ColorHighlight: "#651FFF",
		ColorInfo:      "#90CAF9",
		ColorSuccess:   "#00E676",
		ColorWarning:   "#FF9100",
		ColorDanger:    "#FF5252",
		ColorMuted:     "#B0BEC5",
		ColorSubtle:    "#616161",
		ColorCard:      "#1E1E1E",
		ColorText:      "#FFFFFF",
	}
}

// MeditationConfig holds the meditation presets and tick rate.
type MeditationConfig struct {
	Preset1Name     string        `mapstructure:"preset1_name"`
	Preset1Duration time.Duration `mapstructure:"preset1_duration"`
	Preset2Name     string        `mapstructure:"preset2_name"`
	Preset2Duration time.Duration `mapstructure:"preset2_duration"`
	TickInterval    time.Duration `mapstructure:"tick_interval"`
}

// GetPresets returns the two meditation presets.
func (c *MeditationConfig) GetPresets() []domain.MeditationPreset {
	return []domain.MeditationPreset{
		{Name: c.Preset1Name, Duration: c.Preset1Duration},
		{Name: c.Preset2Name, Duration: c.Preset2Duration},
	}
}

// BreathingConfig holds breathing exercise settings.
type BreathingConfig struct {
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// LogConfig holds logging settings. An empty File discards logs.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// ContactConfig is one emergency contact.
type ContactConfig struct {
	Name        string `mapstructure:"name"`
	Contact     string `mapstructure:"contact"`
	Description string `mapstructure:"description"`
	Kind        string `mapstructure:"kind"`
}

// HabitConfig is one seed habit.
type HabitConfig struct {
	Label    string `mapstructure:"label"`
	Category string `mapstructure:"category"`
}

// ContentConfig holds the text and seed data shown by the app.
type ContentConfig struct {
	Quote         string          `mapstructure:"quote"`
	SleepQuote    string          `mapstructure:"sleep_quote"`
	Contacts      []ContactConfig `mapstructure:"contacts"`
	Habits        []HabitConfig   `mapstructure:"habits"`
	SampleHistory bool            `mapstructure:"sample_history"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	content := domain.DefaultContent(time.Now())
	cfg := &Config{
		Meditation: MeditationConfig{
			Preset1Name:     "5 Min",
			Preset1Duration: 5 * time.Minute,
			Preset2Name:     "10 Min",
			Preset2Duration: 10 * time.Minute,
			TickInterval:    time.Second,
		},
		Breathing: BreathingConfig{
			TickInterval: time.Second,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   false,
		},
		Log: LogConfig{
			Level: string(xslog.Default),
		},
		Content: ContentConfig{
			Quote:         content.Quote,
			SleepQuote:    content.SleepQuote,
			SampleHistory: true,
		},
		Theme: DefaultThemeConfig(),
	}
	for _, c := range content.Contacts {
		cfg.Content.Contacts = append(cfg.Content.Contacts, ContactConfig(c))
	}
	for _, h := range content.Habits {
		cfg.Content.Habits = append(cfg.Content.Habits, HabitConfig{Label: h.Label, Category: string(h.Category)})
	}
	return cfg
}

// Load reads the configuration from path, or from GetConfigPath when path is
// empty. A missing file yields the defaults; the file is never created.
// ZENITH_* environment variables override file values.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Lists from the file replace the defaults rather than merging into them.
	if v.IsSet("content.contacts") {
		cfg.Content.Contacts = nil
	}
	if v.IsSet("content.habits") {
		cfg.Content.Habits = nil
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	for i, p := range c.Meditation.GetPresets() {
		if p.Duration <= 0 {
			return fmt.Errorf("meditation.preset%d_duration must be positive, got %s", i+1, p.Duration)
		}
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("meditation.preset%d_name cannot be empty", i+1)
		}
	}
	if c.Meditation.TickInterval <= 0 {
		return fmt.Errorf("meditation.tick_interval must be positive, got %s", c.Meditation.TickInterval)
	}
	if c.Breathing.TickInterval <= 0 {
		return fmt.Errorf("breathing.tick_interval must be positive, got %s", c.Breathing.TickInterval)
	}
	if _, err := xslog.Parse(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".zenith", "config.toml"), nil
}

// setDefaults registers the scalar keys so environment overrides apply
// even when the file does not mention them.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("meditation.preset1_name", cfg.Meditation.Preset1Name)
	v.SetDefault("meditation.preset1_duration", cfg.Meditation.Preset1Duration.String())
	v.SetDefault("meditation.preset2_name", cfg.Meditation.Preset2Name)
	v.SetDefault("meditation.preset2_duration", cfg.Meditation.Preset2Duration.String())
	v.SetDefault("meditation.tick_interval", cfg.Meditation.TickInterval.String())
	v.SetDefault("breathing.tick_interval", cfg.Breathing.TickInterval.String())
	v.SetDefault("notifications.enabled", cfg.Notifications.Enabled)
	v.SetDefault("notifications.sound", cfg.Notifications.Sound)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("content.quote", cfg.Content.Quote)
	v.SetDefault("content.sleep_quote", cfg.Content.SleepQuote)
	v.SetDefault("content.sample_history", cfg.Content.SampleHistory)

	// Theme defaults
	defaults := DefaultThemeConfig()
	v.SetDefault("theme.color_accent", defaults.ColorAccent)
	v.SetDefault("theme.color_highlight", defaults.ColorHighlight)
	v.SetDefault("theme.color_info", defaults.ColorInfo)
	v.SetDefault("theme.color_success", defaults.ColorSuccess)
	v.SetDefault("theme.color_warning", defaults.ColorWarning)
	v.SetDefault("theme.color_danger", defaults.ColorDanger)
	v.SetDefault("theme.color_muted", defaults.ColorMuted)
	v.SetDefault("theme.color_subtle", defaults.ColorSubtle)
	v.SetDefault("theme.color_card", defaults.ColorCard)
	v.SetDefault("theme.color_text", defaults.ColorText)
}

// ToContent converts the content section into domain seed data.
func (c *Config) ToContent(now time.Time) domain.Content {
	content := domain.Content{
		Quote:      c.Content.Quote,
		SleepQuote: c.Content.SleepQuote,
		Presets:    c.Meditation.GetPresets(),
	}
	for _, ct := range c.Content.Contacts {
		content.Contacts = append(content.Contacts, domain.EmergencyContact(ct))
	}
	for _, h := range c.Content.Habits {
		content.Habits = append(content.Habits, domain.HabitSeed{
			Label:    h.Label,
			Category: domain.ParseCategory(h.Category),
		})
	}
	if c.Content.SampleHistory {
		content.History = domain.SampleHistory(now)
	}
	return content
}
