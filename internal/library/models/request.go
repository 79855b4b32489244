// Package models defines the library scheduler's data types.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/campusdesk/internal/common"
)

// TimestampLayout is the persisted form of Request.SubmittedAt.
const TimestampLayout = "2006-01-02 15:04:05"

// Priority bounds. Lower values are served sooner.
const (
	MinPriority     = 1
	MaxPriority     = 10
	DefaultPriority = MaxPriority
)

// Request is a pending request for a catalog book.
type Request struct {
	Student     string    `validate:"required"`
	Book        string    `validate:"required"`
	Priority    int       `validate:"min=1,max=10"`
	SubmittedAt time.Time `validate:"required"`
}

func (r Request) String() string {
	return fmt.Sprintf("%s requested '%s' (priority %d, at %s)",
		r.Student, r.Book, r.Priority, r.SubmittedAt.Format(TimestampLayout))
}

// Mode selects how Process picks the next request.
type Mode string

const (
	ModeFIFO     Mode = "FIFO"
	ModePriority Mode = "PRIORITY"
)

// Valid reports whether m is one of the recognized modes.
func (m Mode) Valid() bool {
	return m == ModeFIFO || m == ModePriority
}

// Label is the name shown to users and written to the audit log.
func (m Mode) Label() string {
	if m == ModePriority {
		return "Priority"
	}
	return string(m)
}

// ParseMode maps user input to a Mode. It accepts the menu numbers "1" and
// "2" as well as the mode names, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "fifo":
		return ModeFIFO, nil
	case "2", "priority":
		return ModePriority, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrInvalidMode, s)
	}
}
