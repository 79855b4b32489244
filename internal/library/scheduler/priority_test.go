package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePriority(t *testing.T) {
	tests := []struct {
		raw           string
		wantPriority  int
		wantDefaulted bool
	}{
		{"1", 1, false},
		{"10", 10, false},
		{" 3 ", 3, false},
		{"", 10, true},
		{"   ", 10, true},
		{"0", 10, true},
		{"11", 10, true},
		{"-2", 10, true},
		{"high", 10, true},
		{"2.5", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			p, d := NormalizePriority(tt.raw)
			assert.Equal(t, tt.wantPriority, p)
			assert.Equal(t, tt.wantDefaulted, d)
		})
	}
}
