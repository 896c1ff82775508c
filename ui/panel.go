// Package ui provides the graphical user interface for rfkill-panel.
// This file contains the popup panel layout and switch wiring.
package ui

import (
	"errors"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/rfkill-panel/common"
	"github.com/yllada/rfkill-panel/rfkill"
)

// radioRow is one radio's icon and switch.
type radioRow struct {
	radio  *rfkill.Radio
	icon   *gtk.Image
	toggle *gtk.Switch
}

// Panel is the borderless popup window.
type Panel struct {
	app       *Application
	window    *gtk.ApplicationWindow
	grid      *gtk.Grid
	iconTheme *gtk.IconTheme
	rows      []*radioRow
}

// NewPanel creates the popup window for the application's radios.
func NewPanel(app *Application) *Panel {
	p := &Panel{
		app:       app,
		iconTheme: setupIconTheme(app.config.IconDir),
	}

	p.window = gtk.NewApplicationWindow(app.app)
	p.window.SetTitle(common.AppName)
	p.window.SetDecorated(false)
	p.window.SetResizable(false)
	p.window.AddCSSClass("rfkill-panel")

	p.createLayout()
	p.applyInitialState()

	return p
}

// createLayout attaches the close control and one icon/switch column per
// visible radio.
func (p *Panel) createLayout() {
	p.grid = gtk.NewGrid()
	p.grid.AddCSSClass("panel")
	p.grid.SetRowSpacing(common.GridRowSpacing)
	p.grid.SetColumnSpacing(common.GridColumnSpacing)

	visible := p.app.controller.Table().Visible()

	closeButton := newCloseButton(p.app.Quit)
	p.grid.Attach(closeButton, closeColumn(len(visible)), 0, 1, 1)

	var prev *gtk.Image
	for _, radio := range visible {
		row := &radioRow{
			radio:  radio,
			icon:   gtk.NewImage(),
			toggle: gtk.NewSwitch(),
		}
		row.icon.SetPixelSize(common.IconSize)
		row.icon.SetTooltipText(radio.Class.Label())
		row.toggle.SetHAlign(gtk.AlignCenter)
		row.toggle.SetTooltipText(radio.Class.Label())

		if prev == nil {
			p.grid.Attach(row.icon, 0, 1, common.IconSpan, 1)
		} else {
			p.grid.AttachNextTo(row.icon, prev, gtk.PosRight, common.IconSpan, 1)
		}
		p.grid.AttachNextTo(row.toggle, row.icon, gtk.PosBottom, common.IconSpan, 1)
		prev = row.icon

		row.toggle.NotifyProperty("active", func() {
			p.onToggled(row)
		})
		p.rows = append(p.rows, row)
	}

	p.window.SetChild(p.grid)
}

// closeColumn places the close control above the right edge of the last
// radio column.
func closeColumn(columns int) int {
	if columns < 1 {
		columns = 1
	}
	return common.IconSpan*columns - 1
}

// applyInitialState shows the scanned state of every radio and then
// enables commands. Notify does not fire when the value is unchanged, so
// icons are set directly.
func (p *Panel) applyInitialState() {
	for _, row := range p.rows {
		active := row.radio.Active()
		row.toggle.SetActive(active)
		setRadioIcon(row.icon, p.iconTheme, rfkill.IconName(row.radio.Class, active), active)
	}
	p.app.controller.MarkInitialized()
}

// onToggled handles a switch change, whether from the user or from
// applyInitialState.
func (p *Panel) onToggled(row *radioRow) {
	active := row.toggle.Active()

	icon, err := p.app.controller.Toggle(p.app.ctx, row.radio.Class, active)
	if icon != "" {
		setRadioIcon(row.icon, p.iconTheme, icon, active)
	}
	if err != nil && !errors.Is(err, common.ErrNoDevice) {
		common.LogWarn("Failed to switch %s: %v", row.radio.Class.Label(), err)
	}
}

// Show presents the window.
func (p *Panel) Show() {
	p.window.Present()
}

// Destroy destroys the window.
func (p *Panel) Destroy() {
	p.window.Destroy()
}
