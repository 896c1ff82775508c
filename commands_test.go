package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yllada/rfkill-panel/common"
	"github.com/yllada/rfkill-panel/config"
)

func TestRootFlagDefaults(t *testing.T) {
	a := &app{}
	cmd := a.command()
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatal(err)
	}

	if a.opts.wlanName != "acer-wireless" || a.opts.bluetoothName != "acer-bluetooth" {
		t.Errorf("default names = %q, %q", a.opts.wlanName, a.opts.bluetoothName)
	}
	if a.opts.timeoutMS != 4000 {
		t.Errorf("default timeout = %d, want 4000", a.opts.timeoutMS)
	}
}

func TestApplyFlags_OnlyChangedFlagsOverride(t *testing.T) {
	a := &app{}
	cmd := a.command()
	if err := cmd.ParseFlags([]string{"-w", "dell-wifi", "--bluetooth=hci0", "-t", "0"}); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.WWANName = "from-file"
	cfg.Stylesheet = "/etc/rfkill-panel/window.css"
	a.applyFlags(cmd, cfg)

	if cfg.WLANName != "dell-wifi" {
		t.Errorf("WLANName = %q, want flag value", cfg.WLANName)
	}
	if cfg.BluetoothName != "hci0" {
		t.Errorf("BluetoothName = %q, want flag value", cfg.BluetoothName)
	}
	if cfg.TimeoutMS != 0 {
		t.Errorf("TimeoutMS = %d, want 0", cfg.TimeoutMS)
	}
	if cfg.WWANName != "from-file" {
		t.Errorf("WWANName = %q, an unset flag should keep the file value", cfg.WWANName)
	}
	if cfg.Stylesheet != "/etc/rfkill-panel/window.css" {
		t.Errorf("Stylesheet = %q, an unset flag should keep the file value", cfg.Stylesheet)
	}
}

func TestSetup_BuildsController(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("dry_run: true\nwwan_name: sierra\n"), 0600); err != nil {
		t.Fatal(err)
	}

	a := &app{}
	cmd := a.command()
	if err := cmd.ParseFlags([]string{"--config", path, "-n", "huawei"}); err != nil {
		t.Fatal(err)
	}
	if err := a.setup(cmd); err != nil {
		t.Fatalf("setup() error = %v", err)
	}

	if !a.config.DryRun {
		t.Error("dry_run from the config file should be kept")
	}
	if a.config.WWANName != "huawei" {
		t.Errorf("WWANName = %q, want flag value", a.config.WWANName)
	}
	if a.ctrl == nil || a.table == nil || a.scanner == nil {
		t.Fatal("setup() should build the scanner, table and controller")
	}
	if a.scanner.Root != common.RfkillSysfsDir {
		t.Errorf("scanner root = %q", a.scanner.Root)
	}
	if a.ctrl.Initialized() {
		t.Error("the controller should wait for the panel before running commands")
	}
}

func TestExitError(t *testing.T) {
	err := exitError{code: common.ExitStylesheet}
	if err.Error() != "exit status -1" {
		t.Errorf("Error() = %q", err.Error())
	}
}
