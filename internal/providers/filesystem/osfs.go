package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
)

// OSFS is the FS backed by the local operating system
type OSFS struct{}

var _ FS = OSFS{}

// Stat returns file metadata
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadDir returns the entry names of a directory
func (OSFS) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	return names, nil
}

// CreateFile creates an empty file. With exclusive set it fails if the file
// exists; otherwise an existing file is left untouched.
func (OSFS) CreateFile(path string, exclusive bool) error {
	flags := os.O_WRONLY | os.O_CREATE
	if exclusive {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}

// MkdirAll creates a directory and any missing parents
func (OSFS) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

// OpenRead opens a regular file for streaming reads
func (OSFS) OpenRead(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}
	return f, nil
}

// OpenWrite opens path for writing, creating or truncating it
func (OSFS) OpenWrite(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
}

// Rename moves from to to, replacing an existing file at to
func (OSFS) Rename(from, to string) error {
	return os.Rename(from, to)
}

// Remove deletes a file. Directories are refused.
func (OSFS) Remove(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}
	return os.Remove(path)
}
