package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yllada/rfkill-panel/common"
	"github.com/yllada/rfkill-panel/rfkill"
)

type call struct {
	index int
	verb  rfkill.Verb
}

type recordingBlocker struct {
	calls []call
	err   error
}

func (b *recordingBlocker) Set(_ context.Context, index int, verb rfkill.Verb) error {
	b.calls = append(b.calls, call{index, verb})
	return b.err
}

// writeSysfs creates plain-directory rfkill entries.
func writeSysfs(t *testing.T, entries map[string]map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for entry, attrs := range entries {
		dir := filepath.Join(root, entry)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		for attr, value := range attrs {
			if err := os.WriteFile(filepath.Join(dir, attr), []byte(value+"\n"), 0644); err != nil {
				t.Fatal(err)
			}
		}
	}
	return root
}

func newTestCLI(t *testing.T, blocker rfkill.Blocker) (*CLI, *bytes.Buffer) {
	t.Helper()

	root := writeSysfs(t, map[string]map[string]string{
		"rfkill0": {"name": "acer-wireless", "index": "0", "soft": "0", "hard": "0", "type": "wlan"},
		"rfkill2": {"name": "acer-bluetooth", "index": "2", "soft": "1", "hard": "0", "type": "bluetooth"},
		"rfkill5": {"name": "hci1", "index": "5", "soft": "0", "hard": "1", "type": "bluetooth"},
	})

	scanner := rfkill.NewScanner(root)
	table := rfkill.NewTable(common.DefaultWLANName, common.DefaultBluetoothName, "")
	if err := scanner.Scan(table); err != nil {
		t.Fatal(err)
	}

	c := New(scanner, rfkill.NewController(table, blocker))
	var out bytes.Buffer
	c.SetOutput(&out)
	return c, &out
}

func TestListDevices(t *testing.T) {
	c, out := newTestCLI(t, &recordingBlocker{})

	if err := c.ListDevices(); err != nil {
		t.Fatalf("ListDevices() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("ListDevices() printed %d lines, want header, rule and 3 devices:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[2], "acer-wireless") || !strings.Contains(lines[2], "Wi-Fi") {
		t.Errorf("wlan line = %q", lines[2])
	}
	if !strings.Contains(lines[3], "blocked") || !strings.Contains(lines[3], "Bluetooth") {
		t.Errorf("bluetooth line = %q", lines[3])
	}
	if !strings.HasSuffix(strings.TrimSpace(lines[4]), "-") {
		t.Errorf("unclassified device should have no class, got %q", lines[4])
	}
}

func TestListDevices_Empty(t *testing.T) {
	c := New(rfkill.NewScanner(t.TempDir()), rfkill.NewController(rfkill.NewTable("a", "b", ""), &recordingBlocker{}))
	var out bytes.Buffer
	c.SetOutput(&out)

	if err := c.ListDevices(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No rfkill devices found") {
		t.Errorf("ListDevices() = %q", out.String())
	}
}

func TestListDevices_MissingTree(t *testing.T) {
	c := New(rfkill.NewScanner(filepath.Join(t.TempDir(), "missing")), rfkill.NewController(rfkill.NewTable("a", "b", ""), &recordingBlocker{}))
	if err := c.ListDevices(); err == nil {
		t.Error("ListDevices() should fail without an rfkill tree")
	}
}

func TestStatus(t *testing.T) {
	c, out := newTestCLI(t, &recordingBlocker{})

	if err := c.Status(); err != nil {
		t.Fatal(err)
	}

	s := out.String()
	for _, want := range []string{"Wi-Fi", "unblocked", "Bluetooth", "blocked", "WWAN", "not found"} {
		if !strings.Contains(s, want) {
			t.Errorf("Status() output missing %q:\n%s", want, s)
		}
	}
}

func TestSet(t *testing.T) {
	blocker := &recordingBlocker{}
	c, out := newTestCLI(t, blocker)

	if err := c.Set(context.Background(), "bt", true); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if len(blocker.calls) != 1 || blocker.calls[0] != (call{2, rfkill.VerbUnblock}) {
		t.Errorf("calls = %v, want rfkill unblock 2", blocker.calls)
	}
	if !strings.Contains(out.String(), "Bluetooth unblocked") {
		t.Errorf("Set() output = %q", out.String())
	}
}

func TestSet_Errors(t *testing.T) {
	blocker := &recordingBlocker{}
	c, _ := newTestCLI(t, blocker)

	if err := c.Set(context.Background(), "nfc", true); !errors.Is(err, common.ErrUnknownClass) {
		t.Errorf("Set(nfc) error = %v, want ErrUnknownClass", err)
	}
	if err := c.Set(context.Background(), "wwan", false); !errors.Is(err, common.ErrNoDevice) {
		t.Errorf("Set(wwan) error = %v, want ErrNoDevice", err)
	}
	if len(blocker.calls) != 0 {
		t.Errorf("no command should run on errors, got %v", blocker.calls)
	}
}
