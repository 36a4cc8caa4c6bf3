package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/starford/docfront/internal/apperr"
)

const defaultPerm os.FileMode = 0o644

// FS implements Provider backed by the local file system.
type FS struct {
	root     string // absolute path to the docs root
	realRoot string // root with symlinks resolved
}

// NewFS creates a new FS provider rooted at the given directory.
// A missing root yields an error wrapping apperr.ErrNotFound.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("storage: root %s: %w", abs, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	return &FS{root: abs, realRoot: resolved}, nil
}

// Root returns the absolute docs root.
func (f *FS) Root() string {
	return f.root
}

// Rel converts a path produced by walking the root into a root-relative one.
func (f *FS) Rel(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("storage: resolve path: %w", err)
	}
	rel, err := filepath.Rel(f.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage: %s: %w", p, apperr.ErrOutsideRoot)
	}
	return rel, nil
}

// safePath resolves a relative path against the root and rejects any result
// that escapes it (directory traversal).
func (f *FS) safePath(rel string) (string, error) {
	if rel == "" {
		return f.root, nil
	}
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: absolute path %s: %w", rel, apperr.ErrOutsideRoot)
	}
	abs, err := filepath.Abs(filepath.Join(f.root, cleaned))
	if err != nil {
		return "", fmt.Errorf("storage: resolve path: %w", err)
	}
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) && abs != f.root {
		return "", fmt.Errorf("storage: %s: %w", rel, apperr.ErrOutsideRoot)
	}
	return abs, nil
}

// resolve follows symlinks at abs so writes land on the linked document
// rather than replacing the link with a copy. The target must stay under the root. A
// path that does not exist yet resolves to itself.
func (f *FS) resolve(rel, abs string) (string, error) {
	if _, err := os.Lstat(abs); errors.Is(err, fs.ErrNotExist) {
		return abs, nil
	}
	target, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("storage: resolve %s: %w", rel, err)
	}
	if target == abs {
		return abs, nil
	}
	if !strings.HasPrefix(target, f.realRoot+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage: %s links to %s: %w", rel, target, apperr.ErrOutsideRoot)
	}
	return target, nil
}

// Read returns the raw bytes of a document.
func (f *FS) Read(path string) ([]byte, error) {
	abs, err := f.safePath(path)
	if err != nil {
		return nil, err
	}
	abs, err = f.resolve(path, abs)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	return data, nil
}

// Write replaces the document at path in one step (temp file + rename) and
// keeps the permissions of the file it replaces. A symlinked document is
// written through to its target.
func (f *FS) Write(path string, content []byte) error {
	abs, err := f.safePath(path)
	if err != nil {
		return err
	}
	abs, err = f.resolve(path, abs)
	if err != nil {
		return err
	}

	perm := defaultPerm
	if info, statErr := os.Stat(abs); statErr == nil {
		perm = info.Mode().Perm()
	}

	if err := atomic.WriteFile(abs, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("storage: write %s: %w", path, err)
	}
	if err := os.Chmod(abs, perm); err != nil {
		return fmt.Errorf("storage: chmod %s: %w", path, err)
	}
	return nil
}
