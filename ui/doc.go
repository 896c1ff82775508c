// Package ui provides the graphical user interface for rfkill-panel.
//
// The UI is a single borderless GTK4 popup built with the gotk4 bindings:
//
//   - Application: GTK application lifecycle, theme and auto-quit timer
//   - Panel: rounded window with one icon and switch per radio
//   - close control: hover-sensitive image that quits on click
//
// # Startup
//
// The panel shows the state found by the rfkill scan, then marks the
// controller initialized. Only switch changes after that point run
// rfkill commands.
//
// # Thread Safety
//
// GTK operations must execute on the main thread. Radio state is only
// touched from GTK callbacks, so it needs no locking. Background
// goroutines must go through glib.IdleAdd().
//
// # File Organization
//
//   - app.go: Application lifecycle, theme, auto-quit
//   - panel.go: Window layout and switch handling
//   - close_button.go: Close control
//   - icons.go: Icon lookup and generated fallback icons
//   - styles.go: Stylesheet loading
//   - notifications.go: Desktop notifications
package ui
