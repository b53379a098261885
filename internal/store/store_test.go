package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.DB())
	require.NotNil(t, s.History())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		require.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestSchemaCreated(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='sessions'",
	).Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "sessions", name)
}

func testRecord(id string, finished time.Time) *SessionRecord {
	return &SessionRecord{
		ID:            id,
		FinishedAt:    finished,
		DomainFilter:  "science",
		DurationSecs:  843,
		Correct:       9,
		Wrong:         3,
		Requeued:      3,
		TotalAnswered: 12,
		AccuracyPct:   75,
	}
}

func TestHistory_AppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.History()
	ctx := context.Background()

	finished := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Append(ctx, testRecord("sess-1", finished)))

	recs, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	got := recs[0]
	require.Equal(t, "sess-1", got.ID)
	require.Equal(t, "science", got.DomainFilter)
	require.Equal(t, 843, got.DurationSecs)
	require.Equal(t, 9, got.Correct)
	require.Equal(t, 3, got.Wrong)
	require.Equal(t, 3, got.Requeued)
	require.Equal(t, 12, got.TotalAnswered)
	require.Equal(t, 75, got.AccuracyPct)
	require.WithinDuration(t, finished, got.FinishedAt, time.Second)
}

func TestHistory_RecentNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.History()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := range 3 {
		rec := testRecord("sess-"+string(rune('a'+i)), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Append(ctx, rec))
	}

	recs, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, "sess-c", recs[0].ID)
	require.Equal(t, "sess-b", recs[1].ID)
}

func TestHistory_RecentEmpty(t *testing.T) {
	s := openTestStore(t)

	recs, err := s.History().Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, recs)
}

func TestHistory_DuplicateIDRejected(t *testing.T) {
	s := openTestStore(t)
	repo := s.History()
	ctx := context.Background()

	finished := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Append(ctx, testRecord("dup", finished)))
	require.Error(t, repo.Append(ctx, testRecord("dup", finished)))
}

func TestOpen_FileBacked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	require.Equal(t, "wal", mode)

	_, err = os.Stat(path)
	require.NoError(t, err, "database file should exist")
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("QUIZDECK_DB", want)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	require.Equal(t, want, got)

	info, err := os.Stat(filepath.Dir(want))
	require.NoError(t, err, "parent directory should be created")
	require.True(t, info.IsDir())
}

func TestDefaultDBPath_XDGDataHome(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("QUIZDECK_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dataHome, "quizdeck", "quizdeck.db"), got)
}
