package rfkill

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yllada/rfkill-panel/common"
)

// Device is one entry of the rfkill sysfs tree.
type Device struct {
	// Entry is the directory name, e.g. "rfkill0".
	Entry string
	Index int
	Name  string
	Type  string
	Soft  bool
	Hard  bool
}

// Scanner reads radio devices from an rfkill sysfs tree.
type Scanner struct {
	Root string
}

// NewScanner creates a scanner rooted at dir, usually common.RfkillSysfsDir.
func NewScanner(dir string) *Scanner {
	return &Scanner{Root: dir}
}

// Scan classifies every device under Root into the table.
//
// An entry belongs to the first radio whose Match is a substring of the
// entry's name; radios without a Match claim entries of their kernel type.
// When several entries match the same radio the last one wins. A missing
// tree or unreadable attributes leave the table untouched.
func (s *Scanner) Scan(t *Table) error {
	if t == nil {
		return errors.New("rfkill: nil table")
	}

	entries, err := s.entries()
	if err != nil {
		common.LogDebug("Cannot read %s: %v", s.Root, err)
		return nil
	}

	for _, entry := range entries {
		dir := filepath.Join(s.Root, entry)

		name, err := readAttr(dir, "name")
		if err != nil {
			common.LogDebug("Skipping %s: %v", entry, err)
			continue
		}
		index, err := readIndex(dir)
		if err != nil {
			common.LogDebug("Skipping %s: %v", entry, err)
			continue
		}
		kind, _ := readAttr(dir, "type")

		radio := classify(t, name, kind)
		if radio == nil {
			continue
		}

		radio.Found = true
		radio.Index = index
		radio.Name = name
		if soft, err := readAttr(dir, "soft"); err == nil {
			radio.Blocked = !strings.HasPrefix(soft, "0")
		}
		common.LogDebug("Discovered %s", radio)
	}
	return nil
}

// Devices lists every entry under Root, whether or not it matches a radio.
func (s *Scanner) Devices() ([]Device, error) {
	entries, err := s.entries()
	if err != nil {
		return nil, err
	}

	devices := make([]Device, 0, len(entries))
	for _, entry := range entries {
		dir := filepath.Join(s.Root, entry)

		name, err := readAttr(dir, "name")
		if err != nil {
			continue
		}
		index, err := readIndex(dir)
		if err != nil {
			continue
		}

		dev := Device{Entry: entry, Index: index, Name: name}
		dev.Type, _ = readAttr(dir, "type")
		if soft, err := readAttr(dir, "soft"); err == nil {
			dev.Soft = !strings.HasPrefix(soft, "0")
		}
		if hard, err := readAttr(dir, "hard"); err == nil {
			dev.Hard = !strings.HasPrefix(hard, "0")
		}
		devices = append(devices, dev)
	}
	return devices, nil
}

// entries returns the names of symlinks and directories under Root,
// sorted by name.
func (s *Scanner) entries() ([]string, error) {
	dirents, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(dirents))
	for _, d := range dirents {
		if d.Type()&os.ModeSymlink != 0 || d.IsDir() {
			names = append(names, d.Name())
		}
	}
	return names, nil
}

// classify returns the radio an entry belongs to, or nil.
func classify(t *Table, name, kind string) *Radio {
	for _, r := range t.Radios() {
		if r.Match != "" {
			if strings.Contains(name, r.Match) {
				return r
			}
			continue
		}
		if kind != "" && kind == r.Class.KernelType() {
			return r
		}
	}
	return nil
}

func readAttr(dir, attr string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, attr))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func readIndex(dir string) (int, error) {
	raw, err := readAttr(dir, "index")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(raw)
}
