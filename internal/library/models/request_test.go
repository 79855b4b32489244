package models

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/campusdesk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "1", want: ModeFIFO},
		{in: "fifo", want: ModeFIFO},
		{in: " FIFO ", want: ModeFIFO},
		{in: "2", want: ModePriority},
		{in: "Priority", want: ModePriority},
		{in: "3", wantErr: true},
		{in: "", wantErr: true},
		{in: "lifo", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMode(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestMode_Valid(t *testing.T) {
	assert.True(t, Mode("FIFO").Valid())
	assert.True(t, Mode("PRIORITY").Valid())
	assert.False(t, Mode("Priority").Valid())
	assert.False(t, Mode("SJF").Valid())
	assert.False(t, Mode("").Valid())
}

func TestMode_Label(t *testing.T) {
	assert.Equal(t, "FIFO", ModeFIFO.Label())
	assert.Equal(t, "Priority", ModePriority.Label())
}

func TestRequest_String(t *testing.T) {
	r := Request{
		Student:     "alice",
		Book:        "Clean Code",
		Priority:    3,
		SubmittedAt: time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC),
	}
	assert.Equal(t, "alice requested 'Clean Code' (priority 3, at 2025-05-06 07:08:09)", r.String())
}
