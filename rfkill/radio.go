package rfkill

import "fmt"

// Radio is the per-class state shared between the scanner, the controller
// and the panel.
type Radio struct {
	Class Class
	// Match is the substring looked for in the sysfs name attribute.
	// When empty the radio is matched by kernel type instead.
	Match string
	// Index is the rfkill device index. Only meaningful when Found.
	Index int
	// Blocked is the soft-block state.
	Blocked bool
	// Found is set when the scan matched a device.
	Found bool
	// Name is the sysfs name of the matched device.
	Name string
}

// Active reports the switch state that represents the radio.
func (r *Radio) Active() bool {
	return !r.Blocked
}

// State returns "blocked" or "unblocked".
func (r *Radio) State() string {
	if r.Blocked {
		return "blocked"
	}
	return "unblocked"
}

func (r *Radio) String() string {
	if !r.Found {
		return fmt.Sprintf("%s: not found", r.Class)
	}
	return fmt.Sprintf("%s: %s (index %d, %s)", r.Class, r.Name, r.Index, r.State())
}

// Table maps each class to its radio, in panel order.
type Table struct {
	radios []*Radio
}

// NewTable creates a table with one radio per class and the given
// name substrings.
func NewTable(wlan, bluetooth, wwan string) *Table {
	return &Table{
		radios: []*Radio{
			{Class: WLAN, Match: wlan},
			{Class: Bluetooth, Match: bluetooth},
			{Class: WWAN, Match: wwan},
		},
	}
}

// Get returns the radio for a class, or nil.
func (t *Table) Get(c Class) *Radio {
	for _, r := range t.radios {
		if r.Class == c {
			return r
		}
	}
	return nil
}

// Radios returns every radio in panel order.
func (t *Table) Radios() []*Radio {
	return t.radios
}

// Visible returns the radios that get a column on the panel.
// Wi-Fi and Bluetooth are always shown; WWAN only once discovered.
func (t *Table) Visible() []*Radio {
	visible := make([]*Radio, 0, len(t.radios))
	for _, r := range t.radios {
		if r.Class == WWAN && !r.Found {
			continue
		}
		visible = append(visible, r)
	}
	return visible
}
