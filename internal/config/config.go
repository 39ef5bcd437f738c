package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	MaxWidth      int    `mapstructure:"max_width"`
	MinCardWidth  int    `mapstructure:"min_card_width"`
	MarkdownStyle string `mapstructure:"markdown_style"`
	AltScreen     bool   `mapstructure:"alt_screen"`
	Mouse         bool   `mapstructure:"mouse"`
}

// LogConfig holds logger settings. An empty Path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// MarkdownStylePlain skips glamour and renders Markdown with lipgloss only.
const MarkdownStylePlain = "plain"

// MarkdownStyles lists the accepted ui.markdown_style values.
var MarkdownStyles = []string{"dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night", MarkdownStylePlain}

// Load reads configuration from file and env. Env var overrides use prefix NEURONDOCTRINE_.
// An explicit path must exist; the default location is optional.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.max_width", 100)
	v.SetDefault("ui.min_card_width", 30)
	v.SetDefault("ui.markdown_style", "dark")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("NEURONDOCTRINE_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "neurondoctrine"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NEURONDOCTRINE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the renderer cannot honour.
func (c Config) Validate() error {
	if c.UI.MaxWidth <= 0 {
		return fmt.Errorf("ui.max_width must be positive, got %d", c.UI.MaxWidth)
	}
	if c.UI.MinCardWidth <= 0 {
		return fmt.Errorf("ui.min_card_width must be positive, got %d", c.UI.MinCardWidth)
	}
	if c.UI.MinCardWidth > c.UI.MaxWidth {
		return fmt.Errorf("ui.min_card_width (%d) exceeds ui.max_width (%d)", c.UI.MinCardWidth, c.UI.MaxWidth)
	}
	if !validMarkdownStyle(c.UI.MarkdownStyle) {
		return fmt.Errorf("ui.markdown_style %q is not one of %s", c.UI.MarkdownStyle, strings.Join(MarkdownStyles, ", "))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

func validMarkdownStyle(s string) bool {
	for _, known := range MarkdownStyles {
		if s == known {
			return true
		}
	}
	return false
}
