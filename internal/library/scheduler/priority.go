package scheduler

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/campusdesk/internal/library/models"
)

// NormalizePriority converts raw user input into a priority. Empty,
// non-numeric or out-of-range input yields models.DefaultPriority and
// defaulted == true.
func NormalizePriority(raw string) (priority int, defaulted bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.DefaultPriority, true
	}

	p, err := strconv.Atoi(raw)
	if err != nil || p < models.MinPriority || p > models.MaxPriority {
		return models.DefaultPriority, true
	}
	return p, false
}
