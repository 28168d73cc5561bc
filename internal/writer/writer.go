// Package writer persists split units as .sql files in a flat output
// directory.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sink writes units into one directory, one file per unit. The zero value
// is not usable; construct with NewSink.
type Sink struct {
	dir string
}

// NewSink creates the output directory (including parents) and returns a
// sink bound to it.
func NewSink(dir string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &Sink{dir: dir}, nil
}

// Dir returns the output directory path.
func (s *Sink) Dir() string {
	return s.dir
}

// Save writes the lines, joined without additional separators, to
// <dir>/<name>.sql. An existing file of the same name is overwritten
// silently.
func (s *Sink) Save(name string, lines []string) error {
	path := filepath.Join(s.dir, name+".sql")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "")), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
