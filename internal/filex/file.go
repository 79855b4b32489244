// Package filex holds the small filesystem helpers shared by the campus tools:
// directory setup, atomic publish of files and streamed content hashing.
package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// tempSuffix ends the names of in-flight temp files so listings can skip
// them. No accepted submission type ends with it.
const tempSuffix = ".partial"

// EnsureDir creates dir (and parents) if missing and returns its absolute
// path. Relative paths are resolved against the working directory.
func EnsureDir(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// IsTemp reports whether name looks like a temp file created by this package.
func IsTemp(name string) bool {
	return strings.HasPrefix(name, ".") && strings.HasSuffix(name, tempSuffix)
}

// WriteFileAtomic writes data to path via a temp file in the same directory
// followed by a rename, so readers see either the old or the new content.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	return publish(path, perm, func(tmp *os.File) error {
		_, err := tmp.Write(data)
		return err
	})
}

// CopyFileAtomic streams src into dst through a temp file and renames it into
// place. The source mode bits and modification time are carried over.
func CopyFileAtomic(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return err
	}

	return publish(dst, fi.Mode().Perm(), func(tmp *os.File) error {
		if _, err := io.Copy(tmp, in); err != nil {
			return err
		}
		if err := tmp.Sync(); err != nil {
			return err
		}
		return os.Chtimes(tmp.Name(), fi.ModTime(), fi.ModTime())
	})
}

func publish(path string, perm os.FileMode, fill func(tmp *os.File) error) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, "."+base+".*"+tempSuffix)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if err := fill(tmp); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	_ = tmp.Sync()
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
