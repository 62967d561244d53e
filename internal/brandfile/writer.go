package brandfile

import (
	"context"
	"encoding/json"
	"path/filepath"

	brandingerrors "github.com/princespaghetti/branding/internal/errors"
)

// Writer saves payloads as indented JSON files.
type Writer struct {
	fs        FileSystem
	newLocker func(path string) Locker
}

// NewWriter creates a Writer. A nil fs uses the real file system.
func NewWriter(fs FileSystem) *Writer {
	if fs == nil {
		fs = OSFileSystem{}
	}
	return &Writer{
		fs:        fs,
		newLocker: func(path string) Locker { return NewFileLock(path) },
	}
}

// Write encodes payload and replaces the file at path with it. The file is
// written to a temporary sibling and renamed into place while holding the
// lock for path, so readers never see a partial file.
func (w *Writer) Write(ctx context.Context, path string, payload any) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return &brandingerrors.OpError{Op: "encode payload", Err: err}
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := w.fs.MkdirAll(dir, 0755); err != nil {
			return &brandingerrors.OpError{Op: "create directory", Path: dir, Err: err}
		}
	}

	lock := w.newLocker(path)
	if err := lock.Lock(ctx); err != nil {
		return &brandingerrors.OpError{Op: "lock", Path: path, Err: err}
	}
	defer func() { _ = lock.Unlock() }() // Ignore unlock error - file already written

	tempPath := path + ".tmp"
	if err := w.fs.WriteFile(tempPath, data, 0644); err != nil {
		return &brandingerrors.OpError{Op: "write temp file", Path: tempPath, Err: err}
	}

	// Atomic rename (os.Rename is atomic on POSIX systems)
	if err := w.fs.Rename(tempPath, path); err != nil {
		_ = w.fs.Remove(tempPath)
		return &brandingerrors.OpError{Op: "rename", Path: path, Err: err}
	}

	return nil
}
