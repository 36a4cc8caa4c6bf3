// Package walker enumerates Markdown documents below a docs root.
package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/docfront/internal/apperr"
)

// DefaultExtensions are the file suffixes treated as Markdown documents.
var DefaultExtensions = []string{".md", ".mdx"}

// ErrRootNotFound is returned by Walk when the root directory is missing.
var ErrRootNotFound = fmt.Errorf("walker: root directory %w", apperr.ErrNotFound)

// Walk checks that root is a directory and returns a lazy sequence of the
// paths below it whose base name ends in one of exts. Matching is
// case-sensitive. With no exts, DefaultExtensions are used.
//
// Errors hit while descending are yielded with the offending path and the
// walk carries on. Ordering follows filepath.WalkDir (lexical).
func Walk(root string, exts ...string) (iter.Seq2[string, error], error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("walker: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				if !yield(p, walkErr) {
					return filepath.SkipAll
				}
				return nil
			}
			if d.IsDir() || !Match(d.Name(), exts) {
				return nil
			}
			if !yield(p, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}, nil
}

// Match reports whether name ends with one of exts.
func Match(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
