package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/campusdesk/internal/audit"
	"github.com/dmitrijs2005/campusdesk/internal/common"
	"github.com/dmitrijs2005/campusdesk/internal/console"
	"github.com/dmitrijs2005/campusdesk/internal/filex"
	"github.com/dmitrijs2005/campusdesk/internal/logging"
	"github.com/dmitrijs2005/campusdesk/internal/submissions/models"
)

// Store is the part of store.Store the menu uses.
type Store interface {
	Submit(ctx context.Context, student, sourcePath string) (models.Submission, error)
	Check(ctx context.Context, filename string) (models.CheckResult, error)
	List(ctx context.Context) ([]models.StoredFile, error)
	History(ctx context.Context, filename string) ([]*models.Submission, error)
	Export(ctx context.Context, w io.Writer) error
}

// App serves the submissions menu over a line-oriented reader and writer.
type App struct {
	store    Store
	recorder audit.Recorder
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp wires a menu around s. Input is read from in line by line and all
// prompts and results are written to out; rec receives the session events.
func NewApp(s Store, rec audit.Recorder, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		store:    s,
		recorder: rec,
		logger:   logger,
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Run serves the menu until the user confirms exit or input ends.
func (a *App) Run(ctx context.Context) {
	if eof := runMenu(ctx, a, a.reader, a.out); eof {
		a.record(ctx, audit.Event{Kind: audit.KindSystemExited, Message: "Submission system exited."})
		fmt.Fprintln(a.out)
	}
}

func (a *App) Submit(ctx context.Context) Status {
	student, err := console.GetInline(a.reader, "Enter student name: ", a.out)
	if err != nil {
		return StatusContinue
	}
	path, err := console.GetInline(a.reader, "Enter path to assignment file: ", a.out)
	if err != nil && !errors.Is(err, io.EOF) {
		return StatusContinue
	}

	sub, err := a.store.Submit(ctx, student, path)
	switch {
	case err == nil:
		fmt.Fprintln(a.out, "Assignment submitted successfully.")
	case errors.Is(err, common.ErrSourceNotFound):
		fmt.Fprintln(a.out, "File does not exist.")
	case errors.Is(err, common.ErrInvalidType):
		fmt.Fprintln(a.out, "Invalid file type. Only .pdf and .docx files are accepted.")
	case errors.Is(err, common.ErrTooLarge):
		fmt.Fprintln(a.out, "File is too large. Maximum size is 5MB.")
	case errors.Is(err, common.ErrDuplicateSubmission):
		fmt.Fprintln(a.out, "Duplicate submission detected! File with the same name and content already submitted.")
	case errors.Is(err, common.ErrPersistence) && sub.Filename != "":
		fmt.Fprintln(a.out, "Assignment submitted successfully.")
		fmt.Fprintln(a.out, "Warning: the submission is stored but could not be indexed:", err)
	default:
		fmt.Fprintln(a.out, "Submission failed:", err)
	}
	return StatusContinue
}

func (a *App) Check(ctx context.Context) Status {
	name, err := console.GetInline(a.reader, "Enter the file name to check: ", a.out)
	if err != nil {
		return StatusContinue
	}

	res, err := a.store.Check(ctx, name)
	if err != nil {
		fmt.Fprintln(a.out, "Check failed:", err)
		return StatusContinue
	}
	if res.Status == models.StatusAbsent {
		fmt.Fprintf(a.out, "File '%s' has not been submitted.\n", res.Name)
		return StatusContinue
	}

	fmt.Fprintf(a.out, "File '%s' has already been submitted.\n", res.Name)
	fmt.Fprintln(a.out, "Hash:", res.Hash)
	if res.Record != nil {
		fmt.Fprintf(a.out, "Submitted by %s at %s\n", res.Record.Student, res.Record.SubmittedAt.Local().Format(audit.TimeLayout))
	}
	return StatusContinue
}

func (a *App) List(ctx context.Context) Status {
	files, err := a.store.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "List failed:", err)
		return StatusContinue
	}
	if len(files) == 0 {
		fmt.Fprintln(a.out, "No submissions yet.")
		return StatusContinue
	}
	fmt.Fprintln(a.out, "Submitted Assignments:")
	for _, f := range files {
		fmt.Fprintf(a.out, "%s - Size: %d bytes\n", f.Name, f.Size)
	}
	return StatusContinue
}

func (a *App) History(ctx context.Context) Status {
	name, err := console.GetInline(a.reader, "Enter the file name: ", a.out)
	if err != nil {
		return StatusContinue
	}

	versions, err := a.store.History(ctx, name)
	if err != nil {
		fmt.Fprintln(a.out, "History failed:", err)
		return StatusContinue
	}
	if len(versions) == 0 {
		fmt.Fprintf(a.out, "No recorded submissions of '%s'.\n", name)
		return StatusContinue
	}
	for i, v := range versions {
		fmt.Fprintf(a.out, "%d. %s by %s, %d bytes, hash: %s\n",
			i+1, v.SubmittedAt.Local().Format(audit.TimeLayout), v.Student, v.Size, v.Hash)
	}
	return StatusContinue
}

func (a *App) Export(ctx context.Context) Status {
	path, err := console.GetInline(a.reader, "Enter output file [submissions.xlsx]: ", a.out)
	if err != nil && !errors.Is(err, io.EOF) {
		return StatusContinue
	}
	if path == "" {
		path = "submissions.xlsx"
	}

	var buf bytes.Buffer
	if err := a.store.Export(ctx, &buf); err != nil {
		fmt.Fprintln(a.out, "Export failed:", err)
		return StatusContinue
	}
	if err := filex.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintln(a.out, "Export failed:", err)
		return StatusContinue
	}
	fmt.Fprintln(a.out, "Exported to", path)
	return StatusContinue
}

func (a *App) Exit(ctx context.Context) Status {
	ok, err := console.Confirm(a.reader, "Are you sure you want to exit?", a.out)
	if err != nil && !errors.Is(err, io.EOF) {
		return StatusContinue
	}
	if !ok {
		return StatusContinue
	}
	a.record(ctx, audit.Event{Kind: audit.KindSystemExited, Message: "Submission system exited."})
	fmt.Fprintln(a.out, "Exiting system.")
	return StatusExit
}

func (a *App) record(ctx context.Context, e audit.Event) {
	if err := a.recorder.Record(ctx, e); err != nil {
		a.logger.Warn(ctx, "audit record failed", "kind", string(e.Kind), "error", err)
	}
}
