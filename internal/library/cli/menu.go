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

// menuHandler is the command surface the menu loop dispatches to. App
// satisfies it; tests provide a stub.
type menuHandler interface {
	ViewBooks(ctx context.Context) Status
	RequestBook(ctx context.Context) Status
	ProcessRequests(ctx context.Context) Status
	Exit(ctx context.Context) Status
}

func displayMenu(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "===== UNIVERSITY LIBRARY SYSTEM =====")
	fmt.Fprintln(w, "1. View available books")
	fmt.Fprintln(w, "2. Request a book")
	fmt.Fprintln(w, "3. Process book requests")
	fmt.Fprintln(w, "4. Exit system")
	fmt.Fprintln(w, "=====================================")
}

// runMenu shows the menu and dispatches choices until a handler returns
// StatusExit or input ends. It returns true when input ran out.
func runMenu(ctx context.Context, h menuHandler, reader *bufio.Reader, w io.Writer) (eof bool) {
	for {
		if ctx.Err() != nil {
			return false
		}
		displayMenu(w)
		choice, err := console.GetInline(reader, "Select an option (1-4): ", w)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintln(w, "Input error:", err)
			}
			return true
		}

		var st Status
		switch choice {
		case "1":
			st = h.ViewBooks(ctx)
		case "2":
			st = h.RequestBook(ctx)
		case "3":
			st = h.ProcessRequests(ctx)
		case "4":
			st = h.Exit(ctx)
		default:
			fmt.Fprintln(w, "Invalid option. Please try again.")
		}
		if st == StatusExit {
			return false
		}
	}
}
