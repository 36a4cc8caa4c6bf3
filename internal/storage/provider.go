// Package storage reads and rewrites documents below the docs root.
package storage

// Provider is the interface for document file operations.
type Provider interface {
	// Root returns the absolute docs root.
	Root() string
	// Rel converts a path found by walking the root into a root-relative one.
	Rel(path string) (string, error)
	// Read returns the raw bytes of the file at path (relative to the root).
	Read(path string) ([]byte, error)
	// Write atomically replaces the file at path (relative to the root).
	Write(path string, content []byte) error
}
