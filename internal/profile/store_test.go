package profile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thekasyap/thinkbot/internal/db"
)

func seedProfile() *Profile {
	p := New("Alice")
	for i := 0; i < 12; i++ {
		p.RecordSession(SessionRecord{
			QuestionID:    i + 1,
			Difficulty:    []string{"easy", "medium", "hard"}[i%3],
			Topic:         []string{"geometry", "geography", "general"}[i%3],
			Answer:        "42",
			Correct:       i%2 == 0,
			ResponseTime:  float64(10 + i*5),
			AnswerChanges: i % 2,
			HintsUsed:     i % 3,
			Skipped:       i == 4,
			Timestamp:     "2026-08-01T10:00:00Z",
		})
	}
	p.CloseQuizSession()
	return p
}

func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()
	fs, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	dsn := "file:" + filepath.Join(t.TempDir(), "profiles.db")
	dbh, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })

	return map[string]Store{
		"mem": NewMemStore(),
		"fs":  fs,
		"sql": NewSQLStore(dbh, "sqlite"),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			want := seedProfile()
			require.NoError(t, store.Save(ctx, want))

			got, err := store.Load(ctx, "Alice")
			require.NoError(t, err)
			require.Equal(t, want, got, "profile must survive a save/load round-trip bit-for-bit")
		})
	}
}

func TestStoreLoadUnknownIsFresh(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			p, err := store.Load(context.Background(), "nobody")
			require.NoError(t, err)
			require.Equal(t, "nobody", p.Name)
			require.Zero(t, p.Quizzes)
			require.Equal(t, StyleUnknown, p.LearningStyle)
			require.Equal(t, LevelLearning, p.EngagementLevel)
		})
	}
}

func TestStoreSaveIsIdempotent(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			p := seedProfile()
			require.NoError(t, store.Save(ctx, p))
			require.NoError(t, store.Save(ctx, p))
			got, err := store.Load(ctx, "Alice")
			require.NoError(t, err)
			require.Equal(t, p, got)
		})
	}
}

func TestFSStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFSStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "student_broken.json"), []byte("{not json"), 0o644))

	_, err = store.Load(context.Background(), "broken")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrCorruptProfile))
}

func TestFSStoreSanitizesNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFSStore(dir)
	require.NoError(t, err)

	p := New("../../etc/passwd")
	require.NoError(t, store.Save(context.Background(), p))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "must write exactly one file inside the base dir")
}

func TestFSStoreNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFSStore(dir)
	require.NoError(t, err)

	ctx := context.Background()
	for _, n := range []string{"ann", "bob"} {
		require.NoError(t, store.Save(ctx, New(n)))
	}
	names, err := store.Names(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"ann", "bob"}, names)
}

func TestStoreOldSchemaDefaulted(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFSStore(dir)
	require.NoError(t, err)

	old := []byte(`{"name":"vintage","quizzes":3,"correct":2}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "student_vintage.json"), old, 0o644))

	p, err := store.Load(context.Background(), "vintage")
	require.NoError(t, err)
	require.Equal(t, 3, p.Quizzes)
	require.Equal(t, 2, p.Correct)
	require.NotNil(t, p.Sessions)
	require.NotNil(t, p.TopicPreferences)
	require.Equal(t, StyleUnknown, p.LearningStyle)
}
