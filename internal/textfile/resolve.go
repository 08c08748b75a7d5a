package textfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver maps relative file paths from job steps onto lookup directories.
type Resolver struct {
	dirs []string
}

// NewResolver builds a Resolver over lookupDirs, defaulting to the current
// working directory when none are given.
func NewResolver(lookupDirs []string) (*Resolver, error) {
	if len(lookupDirs) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("could not get current working directory: %w", err)
		}
		return &Resolver{dirs: []string{wd}}, nil
	}

	dirs := make([]string, 0, len(lookupDirs))
	for _, dir := range lookupDirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("invalid lookup directory %q: %w", dir, err)
		}
		dirs = append(dirs, abs)
	}
	return &Resolver{dirs: dirs}, nil
}

// Resolve returns the path to use for a step target: absolute paths pass
// through untouched, relative paths prefer the first lookup directory where
// the file already exists and otherwise join the first directory.
func (r *Resolver) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	for _, dir := range r.dirs {
		abs := filepath.Join(dir, path)
		if _, err := os.Stat(abs); err == nil {
			return abs
		}
	}
	return filepath.Join(r.dirs[0], path)
}
