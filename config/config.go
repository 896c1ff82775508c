// Package config provides configuration management for rfkill-panel.
// It handles loading, saving, and validating application settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yllada/rfkill-panel/common"
)

// Config represents the application configuration.
// Command-line flags override the values read from the file.
type Config struct {
	// WLANName is matched against the sysfs name of Wi-Fi devices.
	WLANName string `yaml:"wlan_name"`
	// BluetoothName is matched against the sysfs name of Bluetooth devices.
	BluetoothName string `yaml:"bluetooth_name"`
	// WWANName is matched against the sysfs name of WWAN devices.
	// Empty matches by kernel type.
	WWANName string `yaml:"wwan_name"`
	// TimeoutMS closes the panel after this many milliseconds; 0 disables it.
	TimeoutMS int `yaml:"timeout_ms"`
	// Stylesheet is the CSS file applied to the panel.
	Stylesheet string `yaml:"stylesheet"`
	// IconDir is an extra icon theme search path.
	IconDir string `yaml:"icon_dir,omitempty"`
	// Theme sets the color theme: "light", "dark", or "auto".
	Theme string `yaml:"theme"`
	// DryRun logs rfkill commands instead of running them.
	DryRun bool `yaml:"dry_run"`
	// Notifications sends a desktop notification after each change.
	Notifications bool `yaml:"notifications"`
	// LogToFile writes a rotating log under the config directory.
	LogToFile bool `yaml:"log_to_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		WLANName:      common.DefaultWLANName,
		BluetoothName: common.DefaultBluetoothName,
		TimeoutMS:     int(common.AutoQuitTimeout.Milliseconds()),
		Stylesheet:    common.StylesheetFileName,
		Theme:         common.ThemeDark,
	}
}

// DefaultPath returns ~/.config/rfkill-panel/config.yaml.
func DefaultPath() (string, error) {
	dir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, common.ConfigFileName), nil
}

// Load reads the configuration at path, or at DefaultPath when path is empty.
// A missing file yields the defaults; nothing is written.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	// Fields absent from the file keep their defaults.
	config := DefaultConfig()
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", common.ErrConfigLoad, path, err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// validate verifies that configuration values are valid.
func (c *Config) validate() error {
	switch c.Theme {
	case common.ThemeAuto, common.ThemeLight, common.ThemeDark:
	default:
		c.Theme = common.ThemeAuto
	}
	if c.TimeoutMS < 0 {
		return fmt.Errorf("%w: timeout_ms must not be negative, got %d", common.ErrInvalidConf, c.TimeoutMS)
	}
	if c.Stylesheet == "" {
		c.Stylesheet = common.StylesheetFileName
	}
	return nil
}

// Validate checks values set after loading, e.g. from flags.
func (c *Config) Validate() error {
	return c.validate()
}

// Save writes the configuration to path, or to DefaultPath when path is empty.
func (c *Config) Save(path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("%w: creating config directory: %v", common.ErrConfigSave, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: serializing: %v", common.ErrConfigSave, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}
	return nil
}
