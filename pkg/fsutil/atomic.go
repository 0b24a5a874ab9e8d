// Package fsutil writes generated files without leaving partial content behind.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is the default permission mode for newly created files.
const DefaultFileMode os.FileMode = 0644

// dirMode is the permission mode for directories created by WriteFile.
const dirMode os.FileMode = 0755

// ErrExists is returned by WriteFile when the target exists and Overwrite is false.
var ErrExists = errors.New("file already exists")

// WriteOptions controls WriteFile.
type WriteOptions struct {
	// Mode is the file mode. Zero means DefaultFileMode.
	Mode os.FileMode

	// Overwrite replaces an existing file instead of returning ErrExists.
	Overwrite bool

	// CreateDirs creates missing parent directories.
	CreateDirs bool
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteFile writes content to path through a temp file in the same directory
// followed by a rename, so readers see either the old or the new content.
func WriteFile(ctx context.Context, path string, content []byte, opts WriteOptions) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if !opts.Overwrite && Exists(path) {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}

	dir := filepath.Dir(path)
	if opts.CreateDirs {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return WriteAtomic(path, content, opts.Mode)
}

// WriteAtomic writes content to path using a temp file and rename.
// If mode is 0, DefaultFileMode is used. On error the temp file is removed
// and any existing file at path is left untouched.
func WriteAtomic(path string, content []byte, mode os.FileMode) error {
	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	committed = true
	return nil
}
