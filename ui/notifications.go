// Package ui provides the graphical user interface for rfkill-panel.
// This file contains the desktop notifications sent after a radio changes.
package ui

import (
	"fmt"
	"os/exec"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/rfkill-panel/common"
	"github.com/yllada/rfkill-panel/rfkill"
)

const (
	notifyDest      = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyMethod    = notifyDest + ".Notify"
	notifyTimeoutMS = 3000
)

// NotificationType represents the type of notification
type NotificationType int

const (
	NotificationInfo NotificationType = iota
	NotificationWarning
)

// urgency returns the freedesktop urgency level.
func (t NotificationType) urgency() byte {
	if t == NotificationWarning {
		return 2
	}
	return 0
}

// urgencyName returns the notify-send urgency name.
func (t NotificationType) urgencyName() string {
	if t == NotificationWarning {
		return "critical"
	}
	return "low"
}

// Notification represents a system notification
type Notification struct {
	Title   string
	Message string
	Type    NotificationType
	Icon    string
}

// radioNotification describes a radio after its state was applied.
func radioNotification(r *rfkill.Radio) Notification {
	n := Notification{
		Title: fmt.Sprintf("%s %s", r.Class.Label(), r.State()),
		Icon:  rfkill.IconName(r.Class, r.Active()),
		Type:  NotificationInfo,
	}
	if r.Name != "" {
		n.Message = fmt.Sprintf("%s (rfkill %d)", r.Name, r.Index)
	}
	return n
}

// ShowNotification sends a notification over D-Bus, falling back to
// notify-send when the session bus is unavailable.
func ShowNotification(n Notification) {
	err := notifyDBus(n)
	if err == nil {
		return
	}
	common.LogDebug("D-Bus notification failed: %v", err)

	cmd := exec.Command("notify-send",
		"--app-name="+common.AppName,
		"--icon="+n.Icon,
		"--urgency="+n.Type.urgencyName(),
		n.Title,
		n.Message,
	)
	if err := cmd.Run(); err != nil {
		common.LogWarn("Error showing notification: %v", err)
	}
}

func notifyDBus(n Notification) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return err
	}

	obj := conn.Object(notifyDest, dbus.ObjectPath(notifyPath))
	call := obj.Call(notifyMethod, 0,
		common.AppName,
		uint32(0),
		n.Icon,
		n.Title,
		n.Message,
		[]string{},
		map[string]dbus.Variant{
			"urgency": dbus.MakeVariant(n.Type.urgency()),
		},
		int32(notifyTimeoutMS),
	)
	return call.Err
}

// NotifyRadio shows a notification for a radio whose state was applied.
func NotifyRadio(r *rfkill.Radio) {
	ShowNotification(radioNotification(r))
}
