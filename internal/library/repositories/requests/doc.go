// Package requests persists the scheduler's pending-request collection.
//
// The collection is always read and written wholesale:
//
//	repo := requests.NewJSONFileRepository("book_requests.txt")
//	pending, err := repo.Load(ctx)   // missing file -> empty, nil
//	err = repo.Save(ctx, pending)    // temp file + rename
//
// The on-disk shape is a JSON array of
//
//	{"student": "...", "book": "...", "priority": 1..10, "timestamp": "YYYY-MM-DD HH:MM:SS"}
//
// and is validated against a JSON schema on load. Errors wrap
// common.ErrPersistence.
package requests
