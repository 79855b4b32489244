package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/campusdesk/internal/audit"
	"github.com/dmitrijs2005/campusdesk/internal/common"
	"github.com/dmitrijs2005/campusdesk/internal/library/catalog"
	"github.com/dmitrijs2005/campusdesk/internal/library/models"
	"github.com/dmitrijs2005/campusdesk/internal/library/repositories/requests"
	"github.com/dmitrijs2005/campusdesk/internal/logging"
	"github.com/go-playground/validator"
)

// Admission is the result of a successful Admit.
type Admission struct {
	Request           models.Request
	PriorityDefaulted bool
}

// Scheduler is safe for concurrent use; the mutex spans each mutation and
// the Save that follows it.
type Scheduler struct {
	mu      sync.Mutex
	pending []models.Request

	catalog  *catalog.Catalog
	repo     requests.Repository
	recorder audit.Recorder
	logger   logging.Logger
	validate *validator.Validate
	now      func() time.Time
}

// Option customizes a Scheduler.
type Option func(*Scheduler)

// WithClock replaces time.Now as the source of admission timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// New constructs a Scheduler with an empty pending collection.
func New(cat *catalog.Catalog, repo requests.Repository, rec audit.Recorder, logger logging.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		catalog:  cat,
		repo:     repo,
		recorder: rec,
		logger:   logger,
		validate: validator.New(),
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load replaces the pending collection with the repository contents. On
// failure the collection is left empty and the error wraps
// common.ErrPersistence.
func (s *Scheduler) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.repo.Load(ctx)
	if err != nil {
		s.pending = nil
		s.logger.Error(ctx, "error loading requests", "error", err)
		s.record(ctx, audit.Event{
			Kind:    audit.KindStateLoadFailed,
			Message: fmt.Sprintf("Error loading requests: %v", err),
		})
		return err
	}

	s.pending = loaded
	s.logger.Debug(ctx, "requests loaded", "count", len(loaded))
	return nil
}

// ListCatalog returns the requestable titles in catalog order.
func (s *Scheduler) ListCatalog() []string {
	return s.catalog.Titles()
}

// Pending returns a snapshot of the pending collection in arrival order.
func (s *Scheduler) Pending() []models.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Request(nil), s.pending...)
}

// Admit appends a request for book by student. rawPriority is normalized
// with NormalizePriority.
//
// If the new state cannot be saved the request stays admitted and the
// returned error wraps common.ErrPersistence.
func (s *Scheduler) Admit(ctx context.Context, student, book, rawPriority string) (Admission, error) {
	student = strings.TrimSpace(student)
	book = strings.TrimSpace(book)

	if student == "" {
		s.record(ctx, audit.Event{
			Kind:    audit.KindRequestFailed,
			Message: fmt.Sprintf("Request failed: no student given for '%s'", book),
			Attrs:   []any{"book", book, "reason", "empty student"},
		})
		return Admission{}, common.ErrInvalidRequester
	}

	if !s.catalog.Contains(book) {
		s.record(ctx, audit.Event{
			Kind:    audit.KindRequestFailed,
			Message: fmt.Sprintf("Request failed: '%s' not available (Student: %s)", book, student),
			Attrs:   []any{"student", student, "book", book, "reason", "unknown book"},
		})
		return Admission{}, fmt.Errorf("%w: %q", common.ErrUnknownResource, book)
	}

	priority, defaulted := NormalizePriority(rawPriority)
	if defaulted {
		s.record(ctx, audit.Event{
			Kind:    audit.KindPriorityDefaulted,
			Message: fmt.Sprintf("Priority defaulted to %d for %s (input: %q)", priority, student, rawPriority),
			Attrs:   []any{"student", student, "book", book, "input", rawPriority},
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req := models.Request{
		Student:     student,
		Book:        book,
		Priority:    priority,
		SubmittedAt: s.nextTimestamp(),
	}
	if err := s.validate.Struct(req); err != nil {
		return Admission{}, fmt.Errorf("invalid request: %w", err)
	}

	s.pending = append(s.pending, req)
	saveErr := s.save(ctx)

	s.record(ctx, audit.Event{
		Kind:    audit.KindRequestCreated,
		Message: fmt.Sprintf("Book requested: '%s' by %s with priority %d", book, student, priority),
		Attrs: []any{
			"student", student,
			"book", book,
			"priority", priority,
			"timestamp", req.SubmittedAt.Format(models.TimestampLayout),
		},
	})

	return Admission{Request: req, PriorityDefaulted: defaulted}, saveErr
}

// Process removes and returns the next request according to mode.
//
// An empty collection yields common.ErrEmptyQueue regardless of mode; an
// unrecognized mode yields common.ErrInvalidMode. Neither mutates the
// collection. A failed Save after removal is reported like in Admit.
func (s *Scheduler) Process(ctx context.Context, mode models.Mode) (models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		s.record(ctx, audit.Event{
			Kind:    audit.KindProcessFailed,
			Message: "Processing failed: no pending book requests",
			Attrs:   []any{"mode", string(mode), "reason", "empty queue"},
		})
		return models.Request{}, common.ErrEmptyQueue
	}

	if !mode.Valid() {
		s.record(ctx, audit.Event{
			Kind:    audit.KindProcessFailed,
			Message: fmt.Sprintf("Processing failed: invalid mode %q", string(mode)),
			Attrs:   []any{"mode", string(mode), "reason", "invalid mode"},
		})
		return models.Request{}, fmt.Errorf("%w: %q", common.ErrInvalidMode, string(mode))
	}

	idx := 0
	if mode == models.ModePriority {
		idx = selectByPriority(s.pending)
	}

	req := s.pending[idx]
	s.pending = append(s.pending[:idx:idx], s.pending[idx+1:]...)
	saveErr := s.save(ctx)

	s.record(ctx, audit.Event{
		Kind:    audit.KindRequestProcessed,
		Message: fmt.Sprintf("Book lent: '%s' to %s (Processed via %s)", req.Book, req.Student, mode.Label()),
		Attrs: []any{
			"mode", string(mode),
			"student", req.Student,
			"book", req.Book,
			"priority", req.Priority,
		},
	})

	return req, saveErr
}

// selectByPriority returns the index of the request with the smallest
// (priority, submitted at, index) triple. pending must not be empty.
func selectByPriority(pending []models.Request) int {
	best := 0
	for i := 1; i < len(pending); i++ {
		c, b := pending[i], pending[best]
		if c.Priority < b.Priority ||
			(c.Priority == b.Priority && c.SubmittedAt.Before(b.SubmittedAt)) {
			best = i
		}
	}
	return best
}

// nextTimestamp keeps admission timestamps non-decreasing at second
// resolution. Callers hold s.mu.
func (s *Scheduler) nextTimestamp() time.Time {
	ts := s.now().Truncate(time.Second)
	if n := len(s.pending); n > 0 && ts.Before(s.pending[n-1].SubmittedAt) {
		ts = s.pending[n-1].SubmittedAt
	}
	return ts
}

// save writes the current snapshot. Callers hold s.mu.
func (s *Scheduler) save(ctx context.Context) error {
	snapshot := append([]models.Request(nil), s.pending...)
	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.logger.Error(ctx, "error saving requests", "error", err)
		if errors.Is(err, common.ErrPersistence) {
			return err
		}
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return nil
}

func (s *Scheduler) record(ctx context.Context, e audit.Event) {
	if err := s.recorder.Record(ctx, e); err != nil {
		s.logger.Warn(ctx, "audit record failed", "kind", string(e.Kind), "error", err)
	}
}
