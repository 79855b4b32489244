package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/campusdesk/internal/audit"
	"github.com/dmitrijs2005/campusdesk/internal/common"
	"github.com/dmitrijs2005/campusdesk/internal/filex"
	"github.com/dmitrijs2005/campusdesk/internal/logging"
	"github.com/dmitrijs2005/campusdesk/internal/submissions/blobs"
	"github.com/dmitrijs2005/campusdesk/internal/submissions/export"
	"github.com/dmitrijs2005/campusdesk/internal/submissions/models"
	"github.com/dmitrijs2005/campusdesk/internal/submissions/repositories/index"
	"github.com/moby/locker"
)

// Store is safe for concurrent use. Submissions of the same filename are
// serialized between the duplicate check and the publish.
type Store struct {
	blobs    blobs.Store
	index    index.Repository
	recorder audit.Recorder
	logger   logging.Logger
	locks    *locker.Locker
	now      func() time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces time.Now as the source of submission timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns a Store that publishes blobs to b and records every accepted
// version in idx. Outcome events go to rec; diagnostics to logger.
func New(b blobs.Store, idx index.Repository, rec audit.Recorder, logger logging.Logger, opts ...Option) *Store {
	s := &Store{
		blobs:    b,
		index:    idx,
		recorder: rec,
		logger:   logger,
		locks:    locker.New(),
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Submit stores the file at sourcePath on behalf of student.
//
// Errors, in the order they are checked: common.ErrSourceNotFound,
// common.ErrInvalidType, common.ErrTooLarge, common.ErrDuplicateSubmission.
// Failures to publish or index wrap common.ErrPersistence; when only the
// index update fails the blob is already in place and the submission is
// returned with the error.
func (s *Store) Submit(ctx context.Context, student, sourcePath string) (models.Submission, error) {
	student = strings.TrimSpace(student)
	sourcePath = strings.TrimSpace(sourcePath)
	name := filepath.Base(sourcePath)

	fi, err := os.Stat(sourcePath)
	if err != nil || !fi.Mode().IsRegular() || sourcePath == "" {
		return models.Submission{}, s.reject(ctx, student, name, "source not found",
			fmt.Errorf("%w: %s", common.ErrSourceNotFound, sourcePath))
	}

	if !models.AllowedType(name) {
		return models.Submission{}, s.reject(ctx, student, name, "invalid type",
			fmt.Errorf("%w: %q", common.ErrInvalidType, models.Extension(name)))
	}

	if fi.Size() > models.MaxSize {
		return models.Submission{}, s.reject(ctx, student, name, "too large",
			fmt.Errorf("%w: %d bytes", common.ErrTooLarge, fi.Size()))
	}

	hash, err := filex.HashFile(sourcePath)
	if err != nil {
		return models.Submission{}, s.reject(ctx, student, name, "unreadable",
			fmt.Errorf("%w: %v", common.ErrSourceNotFound, err))
	}

	s.locks.Lock(name)
	defer func() { _ = s.locks.Unlock(name) }()

	existing, err := s.hashOf(ctx, name)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return models.Submission{}, fmt.Errorf("%w: hash stored %s: %v", common.ErrPersistence, name, err)
	}
	if err == nil && existing == hash {
		s.record(ctx, audit.Event{
			Kind:    audit.KindDuplicateAttempt,
			Message: fmt.Sprintf("Duplicate submission attempt by %s for file %s", student, name),
			Attrs:   []any{"student", student, "filename", name},
		})
		return models.Submission{}, fmt.Errorf("%w: %s", common.ErrDuplicateSubmission, name)
	}
	overwrite := err == nil

	if err := s.blobs.Put(ctx, name, sourcePath); err != nil {
		s.logger.Error(ctx, "error publishing submission", "filename", name, "error", err)
		return models.Submission{}, fmt.Errorf("%w: publish %s: %v", common.ErrPersistence, name, err)
	}

	// The source may have changed since it was hashed; record what was
	// actually published.
	published, err := s.hashOf(ctx, name)
	if err != nil {
		s.logger.Error(ctx, "error verifying published submission", "filename", name, "error", err)
		return models.Submission{}, fmt.Errorf("%w: verify %s: %v", common.ErrPersistence, name, err)
	}
	size := fi.Size()
	if published != hash {
		s.logger.Warn(ctx, "source changed during submission", "filename", name, "checked", hash, "published", published)
		hash = published
		if st, err := s.blobs.Stat(ctx, name); err == nil {
			size = st.Size
		}
	}

	sub := models.Submission{
		Filename:    name,
		Student:     student,
		Hash:        hash,
		Size:        size,
		SubmittedAt: s.now(),
	}

	var indexErr error
	if err := s.index.Upsert(ctx, &sub); err != nil {
		s.logger.Error(ctx, "error indexing submission", "filename", name, "error", err)
		indexErr = fmt.Errorf("%w: index %s: %v", common.ErrPersistence, name, err)
	}

	s.record(ctx, audit.Event{
		Kind:    audit.KindSubmitted,
		Message: fmt.Sprintf("Assignment submitted by %s: %s, hash: %s", student, name, hash),
		Attrs:   []any{"student", student, "filename", name, "hash", hash, "overwrite", overwrite},
	})

	return sub, indexErr
}

// Check reports whether filename is occupied. The hash is always computed
// from the stored bytes. Names that do not denote a file, such as "" or
// "..", are reported absent.
func (s *Store) Check(ctx context.Context, filename string) (models.CheckResult, error) {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return models.CheckResult{Status: models.StatusAbsent, Name: strings.TrimSpace(filename)}, nil
	}

	st, err := s.blobs.Stat(ctx, name)
	if errors.Is(err, common.ErrorNotFound) {
		return models.CheckResult{Status: models.StatusAbsent, Name: name}, nil
	}
	if err != nil {
		return models.CheckResult{}, err
	}

	hash, err := s.hashOf(ctx, name)
	if err != nil {
		return models.CheckResult{}, err
	}

	res := models.CheckResult{Status: models.StatusPresent, Name: name, Hash: hash, Size: st.Size}

	rec, err := s.index.Get(ctx, name)
	switch {
	case err == nil:
		res.Record = rec
	case !errors.Is(err, common.ErrorNotFound):
		s.logger.Warn(ctx, "index lookup failed", "filename", name, "error", err)
	}
	return res, nil
}

// List returns the stored files ordered by name.
func (s *Store) List(ctx context.Context) ([]models.StoredFile, error) {
	files, err := s.blobs.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// History returns every accepted version of filename, oldest first.
func (s *Store) History(ctx context.Context, filename string) ([]*models.Submission, error) {
	return s.index.History(ctx, filepath.Base(strings.TrimSpace(filename)))
}

// Export writes the listing joined with index records to w as XLSX.
func (s *Store) Export(ctx context.Context, w io.Writer) error {
	files, err := s.List(ctx)
	if err != nil {
		return err
	}

	recs, err := s.index.All(ctx)
	if err != nil {
		return err
	}
	byName := make(map[string]*models.Submission, len(recs))
	for _, r := range recs {
		byName[r.Filename] = r
	}

	rows := make([]export.Row, 0, len(files))
	for _, f := range files {
		row := export.Row{Filename: f.Name, Size: f.Size}
		if r, ok := byName[f.Name]; ok {
			row.Student = r.Student
			row.Hash = r.Hash
			row.SubmittedAt = r.SubmittedAt
		}
		rows = append(rows, row)
	}

	return export.WriteXLSX(w, rows)
}

func (s *Store) hashOf(ctx context.Context, name string) (string, error) {
	rc, err := s.blobs.Open(ctx, name)
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return filex.HashReader(rc)
}

func (s *Store) reject(ctx context.Context, student, name, reason string, err error) error {
	s.record(ctx, audit.Event{
		Kind:    audit.KindSubmitRejected,
		Message: fmt.Sprintf("Submission rejected for %s: %s (%s)", student, name, reason),
		Attrs:   []any{"student", student, "filename", name, "reason", reason},
	})
	return err
}

func (s *Store) record(ctx context.Context, e audit.Event) {
	if err := s.recorder.Record(ctx, e); err != nil {
		s.logger.Warn(ctx, "audit record failed", "kind", string(e.Kind), "error", err)
	}
}
