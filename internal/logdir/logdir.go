// Package logdir locates the check log files of a baseline run.
package logdir

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"slices"
	"strings"
)

// Extension is the (case-sensitive) suffix of log files.
const Extension = ".jsonl"

var (
	// ErrNotDirectory is returned when the log directory is missing or is not a directory.
	ErrNotDirectory = errors.New("logdir does not exist or is not a directory")
	// ErrNoLogFiles is returned when the log directory holds no log file.
	ErrNoLogFiles = errors.New("no .jsonl files found in")
)

// File is a discovered log file.
type File struct {
	Name string // base name, as listed in the report
	Path string // absolute path
}

// Resolve expands a leading "~" or "~user" and returns the absolute form of path.
// An unknown user leaves the path as is.
func Resolve(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		name, rest, _ := strings.Cut(path[1:], string(filepath.Separator))

		var home string

		if name == "" {
			dir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("expanding %q: %w", path, err)
			}

			home = dir
		} else if account, err := user.Lookup(name); err == nil {
			home = account.HomeDir
		}

		if home != "" {
			path = filepath.Join(home, rest)
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", path, err)
	}

	return abs, nil
}

// Discover resolves dir and lists its log files sorted by name.
// It returns the resolved directory alongside the files.
func Discover(dir string) (string, []File, error) {
	abs, err := Resolve(dir)
	if err != nil {
		return "", nil, err
	}

	// Symlinks are followed; a dangling one is as good as missing.
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return abs, nil, fmt.Errorf("%w: %s", ErrNotDirectory, abs)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return abs, nil, fmt.Errorf("%w: %s: %w", ErrNotDirectory, abs, err)
	}

	var files []File

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}

		path := filepath.Join(abs, entry.Name())

		// Stat (not the entry type) so that symlinked log files are kept.
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			continue
		}

		files = append(files, File{Name: entry.Name(), Path: path})
	}

	if len(files) == 0 {
		return abs, nil, fmt.Errorf("%w: %s", ErrNoLogFiles, abs)
	}

	slices.SortFunc(files, func(a, b File) int {
		return strings.Compare(a.Name, b.Name)
	})

	return abs, files, nil
}
