// Package ui provides the graphical user interface for rfkill-panel.
// This file contains the hover-sensitive close control.
package ui

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// newCloseButton returns an image that turns red while hovered and runs
// onClick when pressed.
func newCloseButton(onClick func()) *gtk.Image {
	icon := gtk.NewImageFromFile(closeIconFile)
	icon.AddCSSClass("close-button")
	icon.SetHAlign(gtk.AlignEnd)
	icon.SetTooltipText("Close")

	motion := gtk.NewEventControllerMotion()
	motion.ConnectEnter(func(_, _ float64) {
		icon.SetFromFile(closeHoverIconFile)
	})
	motion.ConnectLeave(func() {
		icon.SetFromFile(closeIconFile)
	})
	icon.AddController(motion)

	click := gtk.NewGestureClick()
	click.ConnectPressed(func(_ int, _, _ float64) {
		onClick()
	})
	icon.AddController(click)

	return icon
}
