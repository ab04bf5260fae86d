package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// SanitizeOutputPath returns the absolute, cleaned form of path for
// writing. A path that currently resolves to a symlink is rejected so a
// write cannot be redirected elsewhere. Paths that do not exist yet are
// accepted.
func SanitizeOutputPath(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve %q: %w", path, err)
	}

	info, err := os.Lstat(abs)
	if os.IsNotExist(err) {
		return abs, nil
	}
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot stat %s: %w", abs, err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return "", fmt.Errorf("pathutil: refusing to write through symlink %s", abs)
	}
	return abs, nil
}
