package lictool

import (
	"errors"
	"fmt"
)

// Sentinel errors for template and file operations.
// All use prefix "lictool:" for identification. Callers should use errors.Is/errors.As.
var (
	// ErrFileExists indicates the target path is already occupied by a regular file.
	ErrFileExists = errors.New("lictool: file already exists")
)

// FileExistsError wraps ErrFileExists with the conflicting path.
// Use errors.Is(err, ErrFileExists) and errors.As(err, &existsErr) to inspect.
type FileExistsError struct {
	Path string
}

// Error implements error.
func (e *FileExistsError) Error() string {
	return fmt.Sprintf("lictool: the %s file already exists", e.Path)
}

// Unwrap returns ErrFileExists for errors.Is/errors.As.
func (e *FileExistsError) Unwrap() error { return ErrFileExists }

// Compile-time check that FileExistsError implements error.
var _ error = (*FileExistsError)(nil)
