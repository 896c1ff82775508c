// Package cli provides command-line access to the radios so they can be
// listed and switched from a terminal or a script without the popup.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/yllada/rfkill-panel/common"
	"github.com/yllada/rfkill-panel/rfkill"
)

// CLI represents the command-line interface.
type CLI struct {
	scanner    *rfkill.Scanner
	controller *rfkill.Controller
	out        io.Writer
}

// New creates a CLI over a scanned table. Commands are enabled immediately:
// there is no startup phase to suppress.
func New(scanner *rfkill.Scanner, ctrl *rfkill.Controller) *CLI {
	ctrl.MarkInitialized()
	return &CLI{
		scanner:    scanner,
		controller: ctrl,
		out:        os.Stdout,
	}
}

// SetOutput redirects command output.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// ListDevices prints every rfkill entry and the class it was assigned to.
func (c *CLI) ListDevices() error {
	devices, err := c.scanner.Devices()
	if err != nil {
		return common.WrapError(err, "cannot read "+c.scanner.Root)
	}

	if len(devices) == 0 {
		fmt.Fprintln(c.out, "No rfkill devices found.")
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tTYPE\tNAME\tSOFT\tHARD\tCLASS")
	fmt.Fprintln(w, "-----\t----\t----\t----\t----\t-----")

	for _, dev := range devices {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			dev.Index, orDash(dev.Type), dev.Name,
			blockedWord(dev.Soft), blockedWord(dev.Hard),
			c.classOf(dev))
	}
	return w.Flush()
}

// Status prints the state of each radio class.
func (c *CLI) Status() error {
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CLASS\tDEVICE\tINDEX\tSTATE")
	fmt.Fprintln(w, "-----\t------\t-----\t-----")

	for _, r := range c.controller.Table().Radios() {
		if !r.Found {
			fmt.Fprintf(w, "%s\t-\t-\tnot found\n", r.Class.Label())
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.Class.Label(), r.Name, r.Index, r.State())
	}
	return w.Flush()
}

// Set blocks (active=false) or unblocks (active=true) the radio of a class.
func (c *CLI) Set(ctx context.Context, className string, active bool) error {
	class, err := rfkill.ParseClass(className)
	if err != nil {
		return err
	}

	if _, err := c.controller.Toggle(ctx, class, active); err != nil {
		return err
	}

	r := c.controller.Table().Get(class)
	fmt.Fprintf(c.out, "✓ %s %s\n", class.Label(), r.State())
	return nil
}

// classOf returns the class a device was assigned to by the scan.
func (c *CLI) classOf(dev rfkill.Device) string {
	for _, r := range c.controller.Table().Radios() {
		if r.Found && r.Index == dev.Index && r.Name == dev.Name {
			return r.Class.Label()
		}
	}
	return "-"
}

func blockedWord(blocked bool) string {
	if blocked {
		return "blocked"
	}
	return "unblocked"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
