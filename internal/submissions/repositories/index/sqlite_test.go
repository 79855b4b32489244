package index

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/campusdesk/internal/common"
	"github.com/dmitrijs2005/campusdesk/internal/submissions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*SQLiteRepository, *sql.DB) {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db), db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpen_MigratesFileDatabase(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "submissions.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	assert.True(t, tableExists(t, db, "goose_db_version"))
	assert.True(t, tableExists(t, db, "submissions"))
	assert.True(t, tableExists(t, db, "submission_history"))
	require.NoError(t, db.Close())

	db, err = Open(ctx, dsn)
	require.NoError(t, err, "migrations must be idempotent")
	require.NoError(t, db.Close())
}

func TestUpsert_InsertGetAndOverwrite(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()
	at := time.Date(2025, 4, 1, 8, 30, 0, 0, time.UTC)

	first := &models.Submission{Filename: "essay.pdf", Student: "alice", Hash: "h1", Size: 10, SubmittedAt: at}
	require.NoError(t, r.Upsert(ctx, first))
	assert.NotEmpty(t, first.ID)

	got, err := r.Get(ctx, "essay.pdf")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "alice", got.Student)
	assert.True(t, got.SubmittedAt.Equal(at))

	second := &models.Submission{Filename: "essay.pdf", Student: "bob", Hash: "h2", Size: 20, SubmittedAt: at.Add(time.Hour)}
	require.NoError(t, r.Upsert(ctx, second))

	got, err = r.Get(ctx, "essay.pdf")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, "h2", got.Hash)
	assert.Equal(t, int64(20), got.Size)

	hist, err := r.History(ctx, "essay.pdf")
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, "h1", hist[0].Hash)
	assert.Equal(t, "h2", hist[1].Hash)
}

func TestUpsert_KeepsGivenID(t *testing.T) {
	r, _ := setupRepo(t)
	s := &models.Submission{ID: "fixed", Filename: "a.pdf", SubmittedAt: time.Now()}
	require.NoError(t, r.Upsert(context.Background(), s))
	assert.Equal(t, "fixed", s.ID)
}

func TestUpsert_DuplicateIDRollsBack(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &models.Submission{ID: "same", Filename: "a.pdf", Hash: "h1", SubmittedAt: time.Now()}))
	err := r.Upsert(ctx, &models.Submission{ID: "same", Filename: "a.pdf", Hash: "h2", SubmittedAt: time.Now()})
	require.Error(t, err)

	got, err := r.Get(ctx, "a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "h1", got.Hash, "current record must roll back with the history insert")
}

func TestGet_NotFound(t *testing.T) {
	r, _ := setupRepo(t)
	_, err := r.Get(context.Background(), "missing.pdf")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestHistory_EmptyForUnknown(t *testing.T) {
	r, _ := setupRepo(t)
	hist, err := r.History(context.Background(), "missing.pdf")
	require.NoError(t, err)
	assert.Empty(t, hist)
}

func TestAll_OrderedByName(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()
	for _, n := range []string{"c.pdf", "a.pdf", "b.docx"} {
		require.NoError(t, r.Upsert(ctx, &models.Submission{Filename: n, SubmittedAt: time.Now()}))
	}

	all, err := r.All(ctx)
	require.NoError(t, err)
	var names []string
	for _, s := range all {
		names = append(names, s.Filename)
	}
	assert.Equal(t, []string{"a.pdf", "b.docx", "c.pdf"}, names)
}
