// Package brandfile saves fetched branding payloads to disk.
package brandfile

import (
	"context"
	"os"
)

// Locker guards an output file while it is replaced.
type Locker interface {
	Lock(ctx context.Context) error
	Unlock() error
}

// FileSystem is the subset of file operations Writer needs to replace an
// output file. Tests swap it to inject failures.
type FileSystem interface {
	WriteFile(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Remove(path string) error
	Rename(oldpath, newpath string) error
}

// OSFileSystem writes to the real disk.
type OSFileSystem struct{}

func (OSFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}

// Rename moves the finished temp file over the output file; atomic on POSIX.
func (OSFileSystem) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}
