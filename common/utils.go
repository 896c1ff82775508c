// Package common provides shared constants, types, and utilities
// used across rfkill-panel.
package common

import (
	"os"
	"path/filepath"
)

// GetConfigDir returns the path to the application configuration directory.
// It does not create the directory.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", WrapError(err, "failed to get home directory")
	}
	return filepath.Join(homeDir, ".config", ConfigDirName), nil
}

// GetLogDir returns the log directory path.
func GetLogDir() string {
	dir, err := GetConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "logs")
}

// FileExists checks if a regular file or directory exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir ensures a directory exists, creating it if necessary.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0700)
}

// isSymlink reports whether path is a symbolic link.
// A missing path is not a symlink.
func isSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// ExecutableDir returns the directory containing the running binary,
// or "" if it cannot be determined.
func ExecutableDir() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(execPath)
}

// SearchPaths returns name resolved against the working directory, the
// executable directory and the config directory, in that order, skipping
// locations that cannot be determined. Absolute names are returned as is.
func SearchPaths(name string) []string {
	if filepath.IsAbs(name) {
		return []string{name}
	}

	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, name))
	}
	if dir := ExecutableDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, name))
	}
	if dir, err := GetConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths
}

// FindFile returns the first existing path from SearchPaths(name).
func FindFile(name string) (string, bool) {
	for _, p := range SearchPaths(name) {
		if FileExists(p) {
			return p, true
		}
	}
	return "", false
}
