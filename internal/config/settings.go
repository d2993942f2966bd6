package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/gridsmith/internal/domain/design"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/theme"
	gridsmitherrors "github.com/alexisbeaulieu97/gridsmith/pkg/errors"
)

// AppName is used for the config file name, its directory and the env prefix.
const AppName = "gridsmith"

// EnvKeyReplacer maps nested keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Settings are the user preferences applied to every command.
type Settings struct {
	HistoryDepth int           `mapstructure:"history_depth" validate:"gte=1,lte=1000"`
	SiteType     string        `mapstructure:"site_type" validate:"required,site_type"`
	LogLevel     string        `mapstructure:"log_level" validate:"required,oneof=trace debug info warn error"`
	HumanLogs    bool          `mapstructure:"human_logs"`
	Seed         uint64        `mapstructure:"seed"`
	Project      string        `mapstructure:"project" validate:"required"`
	DefaultTheme ThemeDefaults `mapstructure:"default_theme"`
}

// ThemeDefaults seed the theme of newly created projects.
type ThemeDefaults struct {
	HeadingFont string `mapstructure:"heading_font" validate:"required,font"`
	BodyFont    string `mapstructure:"body_font" validate:"required,font"`
	Radius      string `mapstructure:"radius" validate:"required,oneof=none sm md lg full"`
	Shadow      string `mapstructure:"shadow" validate:"required,oneof=none sm md lg"`
}

// Defaults lists every settings key with its factory value.
var Defaults = map[string]any{
	"history_depth":              design.DefaultHistoryDepth,
	"site_type":                  string(layout.SiteLandingPage),
	"log_level":                  "info",
	"human_logs":                 true,
	"seed":                       uint64(0),
	"project":                    "design.gridsmith.yaml",
	"default_theme.heading_font": theme.DefaultFont,
	"default_theme.body_font":    theme.DefaultFont,
	"default_theme.radius":       string(theme.RadiusMD),
	"default_theme.shadow":       string(theme.ShadowSM),
}

// LoadSettings reads gridsmith.yaml and GRIDSMITH_* environment overrides on
// top of Defaults. When path is empty the file is searched for in the user
// config directory and the working directory; a missing file is not an error.
// An explicit path must exist.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(AppName)
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppName))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(AppName)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.AutomaticEnv()

	v.SetTypeByDefaultValue(true)
	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, gridsmitherrors.NewParseError(path, extractLine(err), err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, gridsmitherrors.NewParseError(v.ConfigFileUsed(), 0, err)
	}

	if err := ValidateSettings(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParsedSiteType returns the configured archetype in canonical form.
func (s *Settings) ParsedSiteType() layout.SiteType {
	t, err := layout.ParseSiteType(s.SiteType)
	if err != nil {
		return layout.SiteLandingPage
	}
	return t
}

// Theme returns the default theme adjusted with the configured tokens.
func (s *Settings) Theme() theme.DesignTheme {
	t := theme.Default()
	t.Typography.HeadingFont = s.DefaultTheme.HeadingFont
	t.Typography.BodyFont = s.DefaultTheme.BodyFont
	t.Radius = theme.Radius(s.DefaultTheme.Radius)
	t.Shadow = theme.Shadow(s.DefaultTheme.Shadow)
	return t
}
