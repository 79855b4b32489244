package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/dmitrijs2005/campusdesk/internal/audit"
	"github.com/dmitrijs2005/campusdesk/internal/common"
	"github.com/dmitrijs2005/campusdesk/internal/console"
	"github.com/dmitrijs2005/campusdesk/internal/library/models"
	"github.com/dmitrijs2005/campusdesk/internal/library/scheduler"
	"github.com/dmitrijs2005/campusdesk/internal/logging"
)

// Scheduler is the part of scheduler.Scheduler the menu uses.
type Scheduler interface {
	ListCatalog() []string
	Pending() []models.Request
	Admit(ctx context.Context, student, book, rawPriority string) (scheduler.Admission, error)
	Process(ctx context.Context, mode models.Mode) (models.Request, error)
}

// App serves the library menu over a line-oriented reader and writer.
type App struct {
	scheduler Scheduler
	recorder  audit.Recorder
	logger    logging.Logger
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp wires a menu around s. Input is read from in line by line and all
// prompts and results are written to out; rec receives the session events.
func NewApp(s Scheduler, rec audit.Recorder, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		scheduler: s,
		recorder:  rec,
		logger:    logger,
		reader:    bufio.NewReader(in),
		out:       out,
	}
}

// Run records the start of a session and serves the menu until the user
// confirms exit or input ends.
func (a *App) Run(ctx context.Context) {
	a.record(ctx, audit.Event{Kind: audit.KindSystemStarted, Message: "Library system started."})

	if eof := runMenu(ctx, a, a.reader, a.out); eof {
		a.record(ctx, audit.Event{Kind: audit.KindSystemExited, Message: "Library system exited."})
		fmt.Fprintln(a.out)
	}
}

func (a *App) ViewBooks(ctx context.Context) Status {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "--- Available Books in the Library ---")
	for i, title := range a.scheduler.ListCatalog() {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, title)
	}
	fmt.Fprintln(a.out, "--------------------------------------")
	return StatusContinue
}

func (a *App) RequestBook(ctx context.Context) Status {
	student, err := console.GetInline(a.reader, "Enter your name or ID: ", a.out)
	if err != nil {
		return StatusContinue
	}
	a.ViewBooks(ctx)
	book, err := console.GetInline(a.reader, "Enter the book title you want to request: ", a.out)
	if err != nil {
		return StatusContinue
	}

	// Rejections that do not depend on the priority are reported before
	// prompting for it.
	if student == "" || !slices.Contains(a.scheduler.ListCatalog(), book) {
		if _, err := a.scheduler.Admit(ctx, student, book, ""); err != nil {
			a.reportAdmitError(book, err)
		}
		return StatusContinue
	}

	raw, err := console.GetInline(a.reader,
		fmt.Sprintf("Enter priority (%d-%d) [press Enter for default (%d)]: ",
			models.MinPriority, models.MaxPriority, models.DefaultPriority), a.out)
	if err != nil && !errors.Is(err, io.EOF) {
		return StatusContinue
	}

	adm, err := a.scheduler.Admit(ctx, student, book, raw)
	if err != nil && !errors.Is(err, common.ErrPersistence) {
		a.reportAdmitError(book, err)
		return StatusContinue
	}

	if adm.PriorityDefaulted && raw != "" {
		fmt.Fprintf(a.out, "Invalid priority. Using default priority %d.\n", models.DefaultPriority)
	}
	if err != nil {
		fmt.Fprintln(a.out, "Warning: your request was added but could not be saved:", err)
		return StatusContinue
	}
	fmt.Fprintln(a.out, "Your request has been added.")
	return StatusContinue
}

func (a *App) reportAdmitError(book string, err error) {
	switch {
	case errors.Is(err, common.ErrUnknownResource):
		fmt.Fprintf(a.out, "Sorry, the book '%s' is not available in the library.\n", book)
	case errors.Is(err, common.ErrInvalidRequester):
		fmt.Fprintln(a.out, "A student name or ID is required.")
	default:
		fmt.Fprintln(a.out, "Request failed:", err)
	}
}

func (a *App) ProcessRequests(ctx context.Context) Status {
	if len(a.scheduler.Pending()) == 0 {
		// Let the scheduler record the failed attempt.
		_, _ = a.scheduler.Process(ctx, models.ModeFIFO)
		fmt.Fprintln(a.out, "No pending book requests.")
		return StatusContinue
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Select processing mode:")
	fmt.Fprintln(a.out, "1. FIFO (First Come, First Served)")
	fmt.Fprintln(a.out, "2. Priority Scheduling (Highest priority served first)")
	choice, err := console.GetInline(a.reader, "Enter 1 or 2: ", a.out)
	if err != nil {
		return StatusContinue
	}

	mode, perr := models.ParseMode(choice)
	if perr != nil {
		mode = models.Mode(choice)
	}

	req, err := a.scheduler.Process(ctx, mode)
	switch {
	case errors.Is(err, common.ErrInvalidMode):
		fmt.Fprintln(a.out, "Invalid choice. Returning to main menu.")
		return StatusContinue
	case errors.Is(err, common.ErrEmptyQueue):
		fmt.Fprintln(a.out, "No pending book requests.")
		return StatusContinue
	case err != nil && !errors.Is(err, common.ErrPersistence):
		fmt.Fprintln(a.out, "Processing failed:", err)
		return StatusContinue
	}

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Processing request using %s scheduling:\n", mode.Label())
	fmt.Fprintf(a.out, "Student: %s\n", req.Student)
	fmt.Fprintf(a.out, "Book: %s\n", req.Book)
	fmt.Fprintf(a.out, "Priority: %d\n", req.Priority)
	if err != nil {
		fmt.Fprintln(a.out, "Warning: the queue could not be saved:", err)
	}
	fmt.Fprintln(a.out, "Request processed.")
	return StatusContinue
}

func (a *App) Exit(ctx context.Context) Status {
	ok, err := console.Confirm(a.reader, "Are you sure you want to exit?", a.out)
	if err != nil && !errors.Is(err, io.EOF) {
		return StatusContinue
	}
	if !ok {
		fmt.Fprintln(a.out, "Exit cancelled.")
		return StatusContinue
	}
	a.record(ctx, audit.Event{Kind: audit.KindSystemExited, Message: "Library system exited."})
	fmt.Fprintln(a.out, "Exiting system. Goodbye!")
	return StatusExit
}

func (a *App) record(ctx context.Context, e audit.Event) {
	if err := a.recorder.Record(ctx, e); err != nil {
		a.logger.Warn(ctx, "audit record failed", "kind", string(e.Kind), "error", err)
	}
}
