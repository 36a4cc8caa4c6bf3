// Package apperr holds the sentinel errors shared across docfront packages.
package apperr

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrOutsideRoot        = errors.New("path escapes docs root")
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)
