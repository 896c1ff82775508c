package ui

import (
	"context"
	"os"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/rfkill-panel/common"
	"github.com/yllada/rfkill-panel/config"
	"github.com/yllada/rfkill-panel/rfkill"
)

// Application represents the popup application.
type Application struct {
	ctx        context.Context
	app        *gtk.Application
	panel      *Panel
	controller *rfkill.Controller
	config     *config.Config
	stylesheet string
	version    string
}

// NewApplication creates a new application. stylesheet is the already
// loaded CSS text (see ReadStylesheet).
func NewApplication(ctx context.Context, cfg *config.Config, ctrl *rfkill.Controller, stylesheet, version string) *Application {
	// Non-unique: every launch shows its own short-lived popup.
	app := gtk.NewApplication(common.AppID, gio.ApplicationNonUnique)

	application := &Application{
		ctx:        ctx,
		app:        app,
		controller: ctrl,
		config:     cfg,
		stylesheet: stylesheet,
		version:    version,
	}

	if cfg.Notifications {
		ctrl.SetOnApplied(NotifyRadio)
	}

	app.ConnectActivate(application.onActivate)

	return application
}

// Run runs the application and returns its exit code.
func (a *Application) Run(args []string) int {
	return a.app.Run(args)
}

// onActivate is called when the application is activated
func (a *Application) onActivate() {
	adw.Init()
	a.ApplyTheme(a.config.Theme)

	LoadStyles(a.stylesheet)

	a.panel = NewPanel(a)
	a.panel.Show()

	a.startAutoQuit()
	a.watchContext()
}

// ApplyTheme applies the specified theme to the application.
// Supported values: "auto" (system default), "light", "dark"
func (a *Application) ApplyTheme(theme string) {
	manager := adw.StyleManagerGetDefault()
	if manager == nil {
		return
	}

	switch theme {
	case common.ThemeLight:
		manager.SetColorScheme(adw.ColorSchemeForceLight)
	case common.ThemeDark:
		manager.SetColorScheme(adw.ColorSchemeForceDark)
	default:
		manager.SetColorScheme(adw.ColorSchemeDefault)
	}
}

// startAutoQuit destroys the window and exits once the timeout expires,
// whatever the user is doing.
func (a *Application) startAutoQuit() {
	if a.config.TimeoutMS <= 0 {
		return
	}

	glib.TimeoutAdd(uint(a.config.TimeoutMS), func() bool {
		common.LogDebug("Auto-quit after %d ms", a.config.TimeoutMS)
		if a.panel != nil {
			a.panel.Destroy()
		}
		common.CloseLogger()
		os.Exit(common.ExitOK)
		return false
	})
}

// watchContext quits the main loop when ctx is cancelled (SIGINT/SIGTERM).
func (a *Application) watchContext() {
	go func() {
		<-a.ctx.Done()
		glib.IdleAdd(func() {
			a.Quit()
		})
	}()
}

// GetVersion returns the application version
func (a *Application) GetVersion() string {
	return a.version
}

// Quit closes the application
func (a *Application) Quit() {
	a.app.Quit()
}
