package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/campusdesk/internal/console"
)

// Status tells the menu loop whether to keep going.
type Status int

const (
	StatusContinue Status = iota
	StatusExit
)

// menuHandler is the command surface the menu loop dispatches to.
type menuHandler interface {
	Submit(ctx context.Context) Status
	Check(ctx context.Context) Status
	List(ctx context.Context) Status
	Exit(ctx context.Context) Status
	History(ctx context.Context) Status
	Export(ctx context.Context) Status
}

func displayMenu(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examination Submission System")
	fmt.Fprintln(w, "1. Submit an assignment")
	fmt.Fprintln(w, "2. Check if a file has already been submitted")
	fmt.Fprintln(w, "3. List all submitted assignments")
	fmt.Fprintln(w, "4. Exit")
	fmt.Fprintln(w, "5. Show submission history of a file")
	fmt.Fprintln(w, "6. Export submissions to XLSX")
}

// runMenu dispatches choices until a handler returns StatusExit or input
// ends. It returns true when input ran out.
func runMenu(ctx context.Context, h menuHandler, reader *bufio.Reader, w io.Writer) (eof bool) {
	for {
		if ctx.Err() != nil {
			return false
		}
		displayMenu(w)
		choice, err := console.GetInline(reader, "Choose an option: ", w)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintln(w, "Input error:", err)
			}
			return true
		}

		var st Status
		switch choice {
		case "1":
			st = h.Submit(ctx)
		case "2":
			st = h.Check(ctx)
		case "3":
			st = h.List(ctx)
		case "4":
			st = h.Exit(ctx)
		case "5", "history":
			st = h.History(ctx)
		case "6", "export":
			st = h.Export(ctx)
		default:
			fmt.Fprintln(w, "Invalid option. Please try again.")
		}
		if st == StatusExit {
			return false
		}
	}
}
