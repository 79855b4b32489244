package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeHandler struct {
	calls    []string
	exitWith Status
}

func (f *fakeHandler) ViewBooks(ctx context.Context) Status {
	f.calls = append(f.calls, "view")
	return StatusContinue
}
func (f *fakeHandler) RequestBook(ctx context.Context) Status {
	f.calls = append(f.calls, "request")
	return StatusContinue
}
func (f *fakeHandler) ProcessRequests(ctx context.Context) Status {
	f.calls = append(f.calls, "process")
	return StatusContinue
}
func (f *fakeHandler) Exit(ctx context.Context) Status {
	f.calls = append(f.calls, "exit")
	return f.exitWith
}

func TestRunMenu_DispatchesUntilExit(t *testing.T) {
	in := bufio.NewReader(strings.NewReader(strings.Join([]string{
		"1", "2", "banana", "3", "4", "1",
	}, "\n") + "\n"))
	var out bytes.Buffer
	h := &fakeHandler{exitWith: StatusExit}

	eof := runMenu(context.Background(), h, in, &out)

	assert.False(t, eof)
	assert.Equal(t, []string{"view", "request", "process", "exit"}, h.calls)
	assert.Contains(t, out.String(), "Invalid option. Please try again.")
	assert.Equal(t, 5, strings.Count(out.String(), "Select an option (1-4): "))
}

func TestRunMenu_CancelledExitKeepsLooping(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("4\n4\n"))
	var out bytes.Buffer
	h := &fakeHandler{exitWith: StatusContinue}

	eof := runMenu(context.Background(), h, in, &out)

	assert.True(t, eof)
	assert.Equal(t, []string{"exit", "exit"}, h.calls)
}

func TestRunMenu_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := &fakeHandler{}

	eof := runMenu(ctx, h, bufio.NewReader(strings.NewReader("1\n")), &bytes.Buffer{})

	assert.False(t, eof)
	assert.Empty(t, h.calls)
}
