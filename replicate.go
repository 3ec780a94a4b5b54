package perfsplit

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// replaceDir replicates the directory tree at src to dst, deleting any prior
// contents of dst first. A leftover file from an earlier run must not survive
// under dst, so this is a destructive replace, not a merge.
func replaceDir(src, dst string) error {
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("cannot clear %q: %w", dst, err)
	}
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("cannot copy %q to %q: %w", src, dst, err)
	}
	return out.Close()
}
