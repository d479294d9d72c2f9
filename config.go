package hostname

import (
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// SetConfigName makes v look for a TOML config called name in the home
// directory, then in the working directory.
func SetConfigName(v *viper.Viper, name string) {
	v.SetConfigName(name)
	v.SetConfigType("toml")

	// Without a home directory, viper expands "$HOME" itself.
	home := "$HOME"
	if dir, err := os.UserHomeDir(); err == nil {
		home = dir
	}
	v.AddConfigPath(home)
	v.AddConfigPath(".")
}

// InitConfig initializes default config values for given *viper.Viper instance.
func InitConfig(v *viper.Viper, name string) {
	SetConfigName(v, name)

	v.SetDefault("service", map[string]any{
		"log_level": "notice",
	})
	v.SetDefault("group", map[string]*GroupConfig{
		"0": {
			Name:      "Default",
			Hostnames: []string{"localhost"},
		},
	})
}

// Config represents hostcheck supported configuration.
type Config struct {
	Service ServiceConfig           `mapstructure:"service" toml:"service,omitempty"`
	Group   map[string]*GroupConfig `mapstructure:"group" toml:"group" validate:"min=1,dive"`
}

// ServiceConfig specifies the general hostcheck config.
type ServiceConfig struct {
	LogLevel string `mapstructure:"log_level" toml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info notice warn error fatal panic"`
	LogPath  string `mapstructure:"log_path" toml:"log_path,omitempty"`
}

// GroupConfig specifies a named set of hostnames.
type GroupConfig struct {
	Name      string   `mapstructure:"name" toml:"name,omitempty"`
	Hostnames []string `mapstructure:"hostnames" toml:"hostnames" validate:"min=1,dive,valid_hostname"`
}

// GroupKeys returns the keys of cfg.Group in sorted order.
func (c *Config) GroupKeys() []string {
	keys := make([]string, 0, len(c.Group))
	for k := range c.Group {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DisplayName returns the group name, or key if the group has no name.
func (gc *GroupConfig) DisplayName(key string) string {
	if gc.Name != "" {
		return gc.Name
	}
	return key
}

// ValidateConfig validates the given config.
func ValidateConfig(validate *validator.Validate, cfg *Config) error {
	if err := RegisterValidation(validate); err != nil {
		return err
	}
	return validate.Struct(cfg)
}
