// Package common provides shared constants, types, and utilities
// used across rfkill-panel.
package common

import "time"

// Application metadata.
const (
	// AppID is the unique identifier for the GTK application.
	AppID = "com.rfkillpanel.app"
	// AppName is the display name of the application.
	AppName = "Radio Switches"
	// BinaryName is the executable and command name.
	BinaryName = "rfkill-panel"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "rfkill-panel"
)

// File names used by the application.
const (
	ConfigFileName     = "config.yaml"
	LogFileName        = "rfkill-panel.log"
	StylesheetFileName = "window.css"
)

// rfkill subsystem.
const (
	// RfkillSysfsDir is where the kernel exposes one entry per radio.
	RfkillSysfsDir = "/sys/class/rfkill"
	// RfkillBinary is the userspace tool used to change soft-block state.
	RfkillBinary = "rfkill"
	// DefaultWLANName is matched against the sysfs name attribute.
	DefaultWLANName = "acer-wireless"
	// DefaultBluetoothName is matched against the sysfs name attribute.
	DefaultBluetoothName = "acer-bluetooth"
)

// Timeouts.
const (
	// AutoQuitTimeout closes the panel when the user does nothing.
	AutoQuitTimeout = 4000 * time.Millisecond
)

// UI constants.
const (
	// IconSize is the pixel size of the radio icons.
	IconSize = 96
	// IconSpan is the number of grid columns each radio occupies.
	IconSpan = 6
	// GridRowSpacing is the vertical gap between icon and switch rows.
	GridRowSpacing = 10
	// GridColumnSpacing is the horizontal gap between columns.
	GridColumnSpacing = 5
	// PanelBorder is the inner margin of the popup.
	PanelBorder = 12
	// BackgroundAlpha is the opacity of the rounded background.
	BackgroundAlpha = 0.75
)

// Exit codes.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitStylesheet = -1
)

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)
