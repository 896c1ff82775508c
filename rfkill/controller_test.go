package rfkill

import (
	"context"
	"errors"
	"testing"

	"github.com/yllada/rfkill-panel/common"
)

type call struct {
	index int
	verb  Verb
}

// recordingBlocker records every invocation instead of running rfkill.
type recordingBlocker struct {
	calls []call
	err   error
}

func (b *recordingBlocker) Set(_ context.Context, index int, verb Verb) error {
	b.calls = append(b.calls, call{index, verb})
	return b.err
}

func discoveredTable() *Table {
	t := NewTable("acer-wireless", "acer-bluetooth", "")
	wlan := t.Get(WLAN)
	wlan.Found, wlan.Index = true, 0
	bt := t.Get(Bluetooth)
	bt.Found, bt.Index = true, 2
	return t
}

func TestToggle_BeforeInitialization(t *testing.T) {
	blocker := &recordingBlocker{}
	ctrl := NewController(discoveredTable(), blocker)

	for _, class := range []Class{WLAN, Bluetooth, WWAN} {
		icon, err := ctrl.Toggle(context.Background(), class, true)
		if err != nil {
			t.Errorf("Toggle(%s) before init error = %v", class, err)
		}
		if icon != IconName(class, true) {
			t.Errorf("Toggle(%s) icon = %q", class, icon)
		}
	}

	if len(blocker.calls) != 0 {
		t.Errorf("no command should run before initialization, got %v", blocker.calls)
	}
}

func TestToggle_BluetoothOffAfterInitialization(t *testing.T) {
	blocker := &recordingBlocker{}
	table := discoveredTable()
	ctrl := NewController(table, blocker)
	ctrl.MarkInitialized()

	icon, err := ctrl.Toggle(context.Background(), Bluetooth, false)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	if icon != "bt-blocked" {
		t.Errorf("icon = %q, want bt-blocked", icon)
	}
	if len(blocker.calls) != 1 {
		t.Fatalf("expected exactly one command, got %v", blocker.calls)
	}
	if got := blocker.calls[0]; got.index != 2 || got.verb != VerbBlock {
		t.Errorf("command = rfkill %s %d, want rfkill block 2", got.verb, got.index)
	}
	if !table.Get(Bluetooth).Blocked {
		t.Error("bluetooth should be recorded as blocked")
	}
}

func TestToggle_OneCommandPerToggle(t *testing.T) {
	blocker := &recordingBlocker{}
	ctrl := NewController(discoveredTable(), blocker)
	ctrl.MarkInitialized()

	steps := []bool{true, false, true}
	for _, active := range steps {
		if _, err := ctrl.Toggle(context.Background(), WLAN, active); err != nil {
			t.Fatal(err)
		}
	}

	want := []call{{0, VerbUnblock}, {0, VerbBlock}, {0, VerbUnblock}}
	if len(blocker.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", blocker.calls, want)
	}
	for i := range want {
		if blocker.calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, blocker.calls[i], want[i])
		}
	}
}

func TestToggle_UndiscoveredRadio(t *testing.T) {
	blocker := &recordingBlocker{}
	ctrl := NewController(NewTable("acer-wireless", "acer-bluetooth", ""), blocker)
	ctrl.MarkInitialized()

	icon, err := ctrl.Toggle(context.Background(), WLAN, false)
	if !errors.Is(err, common.ErrNoDevice) {
		t.Errorf("Toggle() error = %v, want ErrNoDevice", err)
	}
	if icon != "wlan-blocked" {
		t.Errorf("icon = %q, want wlan-blocked even without a device", icon)
	}
	if len(blocker.calls) != 0 {
		t.Errorf("no command should run for an undiscovered radio, got %v", blocker.calls)
	}
}

func TestToggle_UnknownClass(t *testing.T) {
	ctrl := NewController(discoveredTable(), &recordingBlocker{})
	if _, err := ctrl.Toggle(context.Background(), Class(42), true); !errors.Is(err, common.ErrUnknownClass) {
		t.Errorf("Toggle() error = %v, want ErrUnknownClass", err)
	}
}

func TestToggle_BlockerError(t *testing.T) {
	blocker := &recordingBlocker{err: common.ErrCommandFailed}
	applied := 0
	ctrl := NewController(discoveredTable(), blocker)
	ctrl.SetOnApplied(func(*Radio) { applied++ })
	ctrl.MarkInitialized()

	if _, err := ctrl.Toggle(context.Background(), WLAN, true); !errors.Is(err, common.ErrCommandFailed) {
		t.Errorf("Toggle() error = %v, want ErrCommandFailed", err)
	}
	if applied != 0 {
		t.Error("OnApplied should not run when the command fails")
	}
}

func TestToggle_OnApplied(t *testing.T) {
	var got *Radio
	ctrl := NewController(discoveredTable(), &recordingBlocker{})
	ctrl.SetOnApplied(func(r *Radio) { got = r })

	if _, err := ctrl.Toggle(context.Background(), WLAN, false); err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("OnApplied should not run before initialization")
	}

	ctrl.MarkInitialized()
	if _, err := ctrl.Toggle(context.Background(), WLAN, false); err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Class != WLAN || !got.Blocked {
		t.Errorf("OnApplied radio = %+v", got)
	}
}

func TestController_Initialized(t *testing.T) {
	ctrl := NewController(discoveredTable(), &recordingBlocker{})
	if ctrl.Initialized() {
		t.Error("a new controller should not be initialized")
	}
	ctrl.MarkInitialized()
	if !ctrl.Initialized() {
		t.Error("MarkInitialized should set the guard")
	}
}
