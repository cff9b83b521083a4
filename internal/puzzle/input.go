package puzzle

import (
	"fmt"
	"os"
	"path/filepath"
)

// InputPath returns the conventional location of a day's input inside dir,
// e.g. data/input/03.txt.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("%02d.txt", day))
}

// ReadInput reads a whole input file.
func ReadInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
