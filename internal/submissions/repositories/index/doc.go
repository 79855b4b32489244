// Package index is the durable record of accepted submissions.
//
// # Overview
//
// The submissions table holds the current version of every filename slot;
// submission_history keeps one row per accepted version, oldest first.
// Duplicates never reach the index, so history only grows on a first upload
// or an overwrite.
//
// Key Types
//
//   - type Repository        : contract used by the submission store
//   - type SQLiteRepository  : SQLite implementation over *sql.DB
//
// Typical Usage
//
//	db, _ := index.Open(ctx, "submissions.db")
//	repo := index.NewSQLiteRepository(db)
//	_ = repo.Upsert(ctx, &sub)
//	cur, _ := repo.Get(ctx, "essay.pdf")
//	versions, _ := repo.History(ctx, "essay.pdf")
package index
