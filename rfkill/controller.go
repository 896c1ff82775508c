package rfkill

import (
	"context"

	"github.com/yllada/rfkill-panel/common"
)

// Controller turns switch events into rfkill invocations.
type Controller struct {
	table       *Table
	blocker     Blocker
	initialized bool
	onApplied   func(r *Radio)
}

// NewController creates a controller over the given table.
func NewController(t *Table, b Blocker) *Controller {
	return &Controller{
		table:   t,
		blocker: b,
	}
}

// Table returns the radio table.
func (c *Controller) Table() *Table {
	return c.table
}

// SetOnApplied sets a callback run after a command succeeded.
func (c *Controller) SetOnApplied(callback func(r *Radio)) {
	c.onApplied = callback
}

// MarkInitialized enables commands. Call it once every switch shows
// its startup state.
func (c *Controller) MarkInitialized() {
	c.initialized = true
}

// Initialized reports whether startup has completed.
func (c *Controller) Initialized() bool {
	return c.initialized
}

// Toggle records the new switch state of a class and returns the icon to
// show. After initialization it runs exactly one block or unblock command
// for a discovered radio; undiscovered radios return common.ErrNoDevice.
func (c *Controller) Toggle(ctx context.Context, class Class, active bool) (string, error) {
	radio := c.table.Get(class)
	if radio == nil {
		return "", common.WrapError(common.ErrUnknownClass, class.String())
	}

	radio.Blocked = !active
	icon := IconName(class, active)

	if !c.initialized {
		return icon, nil
	}

	if !radio.Found {
		common.LogWarn("No %s device discovered, not running %s", class.Label(), VerbFor(active))
		return icon, common.WrapError(common.ErrNoDevice, class.String())
	}

	if err := c.blocker.Set(ctx, radio.Index, VerbFor(active)); err != nil {
		return icon, err
	}

	common.LogInfo("%s %s (index %d)", class.Label(), radio.State(), radio.Index)
	if c.onApplied != nil {
		c.onApplied(radio)
	}
	return icon, nil
}
