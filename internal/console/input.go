// Package console holds the line-oriented prompt helpers shared by the
// interactive menus.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// IsInteractive reports whether f is attached to a terminal. Menus use it to
// decide whether to echo the user's input back when reading from a pipe.
func IsInteractive(f *os.File) bool {
	return isTerminal(int(f.Fd()))
}

// GetInline prints prompt without a trailing newline and reads one line, in
// the "Enter your name: _" style. Surrounding whitespace is trimmed. If EOF
// occurs after some input was read, the partial line is returned.
func GetInline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	return readLine(reader)
}

// Confirm asks a yes/no question. Only "y" or "yes" (any case) confirm.
func Confirm(reader *bufio.Reader, question string, w io.Writer) (bool, error) {
	answer, err := GetInline(reader, question+" (Y/N): ", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
