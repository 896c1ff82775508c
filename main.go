// Package main provides the entry point for rfkill-panel.
// rfkill-panel is a small borderless GTK4 popup that shows the soft-block
// state of the Wi-Fi, Bluetooth and WWAN radios and flips it with rfkill.
//
// Usage:
//
//	rfkill-panel [--wlan name] [--bluetooth name] [--timeout ms]
//	rfkill-panel list|status|tui
//	rfkill-panel block|unblock <wlan|bluetooth|wwan>
//
// Environment:
//
//	The rfkill tool must be installed and allowed to change radio state.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yllada/rfkill-panel/common"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals (SIGINT, SIGTERM)
	setupSignalHandler(cancel)

	err := newRootCmd().ExecuteContext(ctx)
	common.CloseLogger()

	var exit exitError
	switch {
	case err == nil:
		os.Exit(common.ExitOK)
	case errors.As(err, &exit):
		os.Exit(exit.code)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(common.ExitFailure)
	}
}

// exitError carries a process exit code out of a command.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// setupSignalHandler configures graceful shutdown on SIGINT/SIGTERM.
// When a signal is received, it cancels the context to allow cleanup.
func setupSignalHandler(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, shutting down", sig)
		cancel()
	}()
}

// versionString returns the version line printed by --version.
func versionString() string {
	if buildTime == "unknown" {
		return appVersion
	}
	return fmt.Sprintf("%s (built %s, commit %s)", appVersion, buildTime, commitSHA)
}
