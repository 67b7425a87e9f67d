package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when a candidate configuration path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// fetch reads the file at fpath. found is false when the file does not exist.
func fetch(fpath string) (data []byte, found bool, err error) {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, false, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err = os.ReadFile(cleanPath) // #nosec G304 -- path is built from the configured base path and cleaned
	if err != nil {
		return nil, false, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return data, true, nil
}
