package lictool

import (
	"fmt"
	"os"
)

// WriteFile writes a rendered license text to path. If path already names
// a regular file it refuses to touch it and returns *FileExistsError;
// the caller decides whether to retry with a different path. The write is
// a single call, no temp-file-and-rename dance.
func WriteFile(path, text string) error {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return &FileExistsError{Path: path}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil { // #nosec G306 -- license files are meant to be world-readable
		return fmt.Errorf("lictool: write %s: %w", path, err)
	}
	return nil
}
