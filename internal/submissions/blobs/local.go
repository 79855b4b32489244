package blobs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/campusdesk/internal/common"
	"github.com/dmitrijs2005/campusdesk/internal/filex"
	"github.com/dmitrijs2005/campusdesk/internal/submissions/models"
)

var _ Store = (*LocalStore)(nil)

// LocalStore keeps blobs as files in a single directory.
type LocalStore struct {
	dir string
}

// NewLocalStore creates dir if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &LocalStore{dir: abs}, nil
}

// Dir returns the absolute destination directory.
func (l *LocalStore) Dir() string {
	return l.dir
}

func (l *LocalStore) path(name string) string {
	return filepath.Join(l.dir, filepath.Base(name))
}

// Stat reports the size of the named file. Directories and other non-regular
// entries are an error.
func (l *LocalStore) Stat(_ context.Context, name string) (models.StoredFile, error) {
	fi, err := os.Stat(l.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return models.StoredFile{}, common.ErrorNotFound
	}
	if err != nil {
		return models.StoredFile{}, err
	}
	if !fi.Mode().IsRegular() {
		return models.StoredFile{}, fmt.Errorf("%s: not a regular file", fi.Name())
	}
	return models.StoredFile{Name: fi.Name(), Size: fi.Size()}, nil
}

// Open returns the named file for reading.
func (l *LocalStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(l.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, common.ErrorNotFound
	}
	return f, err
}

// Put copies srcPath into the slot atomically, keeping its mode and
// modification time.
func (l *LocalStore) Put(_ context.Context, name, srcPath string) error {
	return filex.CopyFileAtomic(srcPath, l.path(name))
}

// List returns regular files in name order. In-flight temp files are
// skipped.
func (l *LocalStore) List(_ context.Context) ([]models.StoredFile, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, err
	}

	out := make([]models.StoredFile, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || filex.IsTemp(e.Name()) {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		out = append(out, models.StoredFile{Name: e.Name(), Size: fi.Size()})
	}
	return out, nil
}
