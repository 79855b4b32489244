// Package models defines the submission store's data types and the upload
// policy.
package models

import (
	"path/filepath"
	"strings"
	"time"
)

// MaxSize is the largest accepted upload in bytes (5 MiB, inclusive).
const MaxSize int64 = 5 * 1024 * 1024

// AllowedExtensions lists the accepted lowercase file suffixes.
var AllowedExtensions = []string{"pdf", "docx"}

// Submission is an accepted upload.
type Submission struct {
	ID          string
	Filename    string
	Student     string
	Hash        string
	Size        int64
	SubmittedAt time.Time
}

// StoredFile is one row of a store listing.
type StoredFile struct {
	Name string
	Size int64
}

// CheckStatus tells whether a filename slot is occupied.
type CheckStatus string

const (
	StatusPresent CheckStatus = "Present"
	StatusAbsent  CheckStatus = "Absent"
)

// CheckResult answers an existence query. Hash is recomputed from the stored
// bytes; Record is the index entry when one exists.
type CheckResult struct {
	Status CheckStatus
	Name   string
	Hash   string
	Size   int64
	Record *Submission
}

// Extension returns the lowercased suffix after the final dot of name, or ""
// when there is none.
func Extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// AllowedType reports whether name carries one of AllowedExtensions.
func AllowedType(name string) bool {
	ext := Extension(name)
	for _, a := range AllowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}
