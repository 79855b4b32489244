// Package store accepts assignment uploads.
//
// A submission is addressed by its base filename. Submit rejects missing
// sources, disallowed extensions and oversized files, then compares the
// SHA-256 of the source with the blob already occupying the slot: an equal
// hash is a duplicate and leaves everything unchanged, a different hash
// replaces the blob. Accepted versions are recorded in the index.
package store
