// Copyright (c) 2026 ToeiRei
// Pinpad - numeric PIN entry for terminal applications
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads pinpad settings from defaults, pinpad.yaml files,
// PINPAD_* environment variables and command line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/pinpad/internal/pin"
)

// Config is the complete, file-backed configuration of pinpad.
type Config struct {
	Pin      PinConfig     `mapstructure:"pin" yaml:"pin"`
	Keypad   KeypadConfig  `mapstructure:"keypad" yaml:"keypad"`
	Display  DisplayConfig `mapstructure:"display" yaml:"display"`
	Language string        `mapstructure:"language" yaml:"language"`
	Debug    bool          `mapstructure:"debug" yaml:"debug"`
	LogFile  string        `mapstructure:"log_file" yaml:"log_file,omitempty"`
}

type PinConfig struct {
	MaxDigits       int  `mapstructure:"max_digits" yaml:"max_digits"`
	ClearOnComplete bool `mapstructure:"clear_on_complete" yaml:"clear_on_complete"`
}

// KeypadConfig holds the key grid, one row of key tokens per entry.
type KeypadConfig struct {
	Layout []string `mapstructure:"layout" yaml:"layout"`
}

// DisplayConfig holds the glyphs used for filled and empty indicators.
type DisplayConfig struct {
	Filled string `mapstructure:"filled" yaml:"filled"`
	Empty  string `mapstructure:"empty" yaml:"empty"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	d := pin.DefaultConfig()
	return Config{
		Pin: PinConfig{
			MaxDigits:       d.MaxDigits,
			ClearOnComplete: d.ClearOnComplete,
		},
		Keypad:   KeypadConfig{Layout: pin.StandardLayout().Strings()},
		Display:  DisplayConfig{Filled: "●", Empty: "○"},
		Language: "en",
	}
}

// Defaults flattens Default into viper keys.
func Defaults() map[string]any {
	c := Default()
	return map[string]any{
		"pin.max_digits":        c.Pin.MaxDigits,
		"pin.clear_on_complete": c.Pin.ClearOnComplete,
		"keypad.layout":         c.Keypad.Layout,
		"display.filled":        c.Display.Filled,
		"display.empty":         c.Display.Empty,
		"language":              c.Language,
		"debug":                 c.Debug,
		"log_file":              c.LogFile,
	}
}

// FlagKeys maps command line flag names to the config keys they override.
var FlagKeys = map[string]string{
	"max-digits":        "pin.max_digits",
	"clear-on-complete": "pin.clear_on_complete",
	"lang":              "language",
	"debug":             "debug",
	"log-file":          "log_file",
}

// PinConfig converts the pin section for the controller.
func (c Config) PinConfig() pin.Config {
	return pin.Config{
		MaxDigits:       c.Pin.MaxDigits,
		ClearOnComplete: c.Pin.ClearOnComplete,
	}
}

// Layout parses the keypad rows.
func (c Config) Layout() (pin.Layout, error) {
	return pin.ParseLayout(c.Keypad.Layout)
}

// Validate checks the parts of c that the controller and keypad depend on.
func (c Config) Validate() error {
	return errors.Join(c.PinConfig().Validate(), validateLayout(c.Keypad.Layout))
}

func validateLayout(rows []string) error {
	_, err := pin.ParseLayout(rows)
	return err
}

// GetConfigPath returns the full path of the user or system config file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Pinpad")
		default: // Linux, macOS, etc.
			configDir = "/etc/pinpad"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "pinpad")
	}

	return filepath.Join(configDir, "pinpad.yaml"), nil
}

// LoadConfig resolves T from defaults, config files, the environment and the
// flags of cmd listed in FlagKeys. configFile, when set, replaces the search
// for pinpad.yaml.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("pinpad")
	v.SetConfigType("yaml")
	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		if userConfigPath, err := GetConfigPath(false); err == nil {
			v.AddConfigPath(filepath.Dir(userConfigPath))
		}
		if systemConfigPath, err := GetConfigPath(true); err == nil {
			v.AddConfigPath(filepath.Dir(systemConfigPath))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; a broken one is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	v.SetEnvPrefix("pinpad")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for flag, key := range FlagKeys {
			if f := cmd.Flags().Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// Load is LoadConfig for Config with Defaults, followed by validation.
func Load(cmd *cobra.Command, configFile *string) (Config, error) {
	c, err := LoadConfig[Config](cmd, Defaults(), configFile)
	if err != nil {
		return c, err
	}
	return c, c.Validate()
}

// WriteConfigFile writes c as YAML to the user or system config path and
// returns that path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
