// Package common provides shared constants, sentinel errors, logging and
// small utilities used across rfkill-panel.
//
//   - Constants: application identity, sysfs location, default device names
//   - Errors: sentinel errors checked with errors.Is
//   - Logger: leveled logging to stdout with an optional rotating file
//   - Utils: config and log directory helpers
//
// # Usage
//
//	common.LogInfo("Scanning %s", common.RfkillSysfsDir)
//
//	if errors.Is(err, common.ErrNoDevice) {
//	    // the radio was not discovered at startup
//	}
package common
