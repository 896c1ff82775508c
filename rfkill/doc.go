// Package rfkill discovers wireless radios through the kernel rfkill
// sysfs tree and flips their soft-block state.
//
// A Table holds one Radio per Class (Wi-Fi, Bluetooth, WWAN). A Scanner
// fills the table once at startup, and a Controller maps switch events to
// `rfkill block|unblock <index>` invocations through a Blocker.
//
// # Lifecycle
//
//	table := rfkill.NewTable("acer-wireless", "acer-bluetooth", "")
//	if err := rfkill.NewScanner(common.RfkillSysfsDir).Scan(table); err != nil {
//	    return err
//	}
//	ctrl := rfkill.NewController(table, rfkill.NewCommandBlocker())
//	// apply initial switch state, then:
//	ctrl.MarkInitialized()
//
// Toggles seen before MarkInitialized only update the icon; they never run
// a command.
//
// # Thread Safety
//
// Table and Controller are not synchronized. Drive them from a single event
// loop (the GTK main loop or the bubbletea update loop).
package rfkill
