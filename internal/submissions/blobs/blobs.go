// Package blobs stores submitted files under their base names. A slot holds
// at most one blob; Put replaces whatever was there.
//
// LocalStore keeps one file per name in a directory. S3Store keeps one
// object per name in a bucket, optionally under a key prefix.
package blobs

import (
	"context"
	"io"

	"github.com/dmitrijs2005/campusdesk/internal/submissions/models"
)

// Store is a filename-keyed blob slot. Missing names yield
// common.ErrorNotFound from Stat and Open.
type Store interface {
	Stat(ctx context.Context, name string) (models.StoredFile, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Put(ctx context.Context, name, srcPath string) error
	List(ctx context.Context) ([]models.StoredFile, error)
}
