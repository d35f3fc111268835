// Package storage abstracts where card images live. Two drivers ship:
// "local" (default) and "s3" for S3-compatible object stores.
package storage

import "io"

// Disk is the filesystem driver interface.
type Disk interface {
	// Put writes content to path, creating parents as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// GetStream returns a ReadCloser. Caller must close it.
	GetStream(path string) (io.ReadCloser, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Delete removes a file. Nil if the file did not exist.
	Delete(path string) error

	// URL returns the public URL for path.
	URL(path string) string

	// Files lists filenames directly inside directory.
	Files(directory string) ([]string, error)
}
