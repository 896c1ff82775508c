package rfkill

import (
	"fmt"
	"strings"

	"github.com/yllada/rfkill-panel/common"
)

// Class identifies a kind of radio shown on the panel.
type Class int

const (
	WLAN Class = iota
	Bluetooth
	WWAN
)

// Classes lists every class in panel order.
var Classes = []Class{WLAN, Bluetooth, WWAN}

// String returns the canonical lower-case name of the class.
func (c Class) String() string {
	switch c {
	case WLAN:
		return "wlan"
	case Bluetooth:
		return "bluetooth"
	case WWAN:
		return "wwan"
	default:
		return "unknown"
	}
}

// Label returns the human-readable name of the class.
func (c Class) Label() string {
	switch c {
	case WLAN:
		return "Wi-Fi"
	case Bluetooth:
		return "Bluetooth"
	case WWAN:
		return "WWAN"
	default:
		return "Unknown"
	}
}

// IconPrefix returns the prefix of the class's icon names.
func (c Class) IconPrefix() string {
	switch c {
	case Bluetooth:
		return "bt"
	default:
		return c.String()
	}
}

// KernelType returns the value of the sysfs type attribute for the class.
func (c Class) KernelType() string {
	return c.String()
}

// ParseClass parses a class name or one of its aliases.
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wlan", "wifi", "wi-fi":
		return WLAN, nil
	case "bluetooth", "bt":
		return Bluetooth, nil
	case "wwan", "mobile":
		return WWAN, nil
	}
	return 0, fmt.Errorf("%w: %q", common.ErrUnknownClass, s)
}

// IconName returns the icon shown for a class in the given switch state.
func IconName(c Class, active bool) string {
	if active {
		return c.IconPrefix() + "-unblocked"
	}
	return c.IconPrefix() + "-blocked"
}

// Verb is the rfkill sub-command applied to a device.
type Verb int

const (
	VerbBlock Verb = iota
	VerbUnblock
)

// String returns the rfkill sub-command.
func (v Verb) String() string {
	if v == VerbUnblock {
		return "unblock"
	}
	return "block"
}

// VerbFor maps a switch state onto a verb: active means unblocked.
func VerbFor(active bool) Verb {
	if active {
		return VerbUnblock
	}
	return VerbBlock
}
