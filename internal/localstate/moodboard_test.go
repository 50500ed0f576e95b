package localstate

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xGitteth/Exhibit-sub000/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMoodboard() *MoodboardStore {
	return NewMoodboardStore(NewMemKV(), testLogger())
}

func moodPost(id, title string) models.Post {
	return models.Post{
		ID:        id,
		Title:     title,
		Caption:   "caption for " + title,
		ImageURL:  "https://img.exhibit.app/" + id + ".jpg",
		CreatedBy: "iris@exhibit.app",
	}
}

func TestMoodboardAddPrepends(t *testing.T) {
	s := newTestMoodboard()

	_, err := s.Add(moodPost("a", "first"))
	require.NoError(t, err)
	entries, err := s.Add(moodPost("b", "second"))
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, "a", entries[1].ID)
}

func TestMoodboardAddIsIdempotent(t *testing.T) {
	s := newTestMoodboard()

	var notifications int
	s.Subscribe(func([]models.MoodboardEntry) { notifications++ })

	_, err := s.Add(moodPost("a", "first"))
	require.NoError(t, err)
	entries, err := s.Add(moodPost("a", "first"))
	require.NoError(t, err)

	assert.Len(t, entries, 1)
	assert.Equal(t, 1, notifications)
}

func TestMoodboardEntryProjection(t *testing.T) {
	s := newTestMoodboard()

	p := moodPost("a", "first")
	entries, err := s.Add(p)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, p.Title, e.Title)
	assert.Equal(t, p.Caption, e.Description)
	assert.Equal(t, p.ImageURL, e.ImageURL)
	assert.Equal(t, p.CreatedBy, e.PhotographerName)
}

func TestMoodboardRemove(t *testing.T) {
	s := newTestMoodboard()

	_, err := s.Add(moodPost("a", "first"))
	require.NoError(t, err)
	_, err = s.Add(moodPost("b", "second"))
	require.NoError(t, err)

	entries, err := s.Remove("a")
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].ID)
	assert.False(t, s.Contains("a"))
	assert.True(t, s.Contains("b"))
}

func TestMoodboardRemoveAbsentDoesNotNotify(t *testing.T) {
	s := newTestMoodboard()
	_, err := s.Add(moodPost("a", "first"))
	require.NoError(t, err)

	var notifications int
	s.Subscribe(func([]models.MoodboardEntry) { notifications++ })

	entries, err := s.Remove("missing")
	require.NoError(t, err)

	assert.Len(t, entries, 1)
	assert.Equal(t, 0, notifications)
}

func TestMoodboardSubscriberSeesSnapshot(t *testing.T) {
	s := newTestMoodboard()

	var seen []models.MoodboardEntry
	s.Subscribe(func(entries []models.MoodboardEntry) { seen = entries })

	_, err := s.Add(moodPost("a", "first"))
	require.NoError(t, err)

	require.Len(t, seen, 1)
	assert.Equal(t, "a", seen[0].ID)
}

func TestMoodboardSurvivesRestart(t *testing.T) {
	kv := NewFileKV(t.TempDir())
	first := NewMoodboardStore(kv, testLogger())
	_, err := first.Add(moodPost("a", "first"))
	require.NoError(t, err)

	second := NewMoodboardStore(kv, testLogger())
	assert.True(t, second.Contains("a"))
}

func TestMoodboardCorruptedCacheFailsOpen(t *testing.T) {
	kv := NewMemKV()
	require.NoError(t, kv.Set(moodboardKey, []byte("{not json")))

	s := NewMoodboardStore(kv, testLogger())
	assert.Empty(t, s.List())

	// A corrupted cache must not block new saves.
	entries, err := s.Add(moodPost("a", "first"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMergeMoodboardPostsLocalFirst(t *testing.T) {
	local := []models.MoodboardEntry{{ID: "a", Title: "local a"}, {ID: "b", Title: "local b"}}
	server := []models.MoodboardEntry{{ID: "b", Title: "server b"}, {ID: "c", Title: "server c"}}

	merged := MergeMoodboardPosts(server, local)

	require.Len(t, merged, 3)
	assert.Equal(t, "a", merged[0].ID)
	assert.Equal(t, "b", merged[1].ID)
	assert.Equal(t, "c", merged[2].ID)
	// The local representation wins a collision.
	assert.Equal(t, "local b", merged[1].Title)
}

func TestMergeMoodboardPostsIsIdempotent(t *testing.T) {
	local := []models.MoodboardEntry{{ID: "a"}}
	server := []models.MoodboardEntry{{ID: "b"}, {ID: "c"}}

	once := MergeMoodboardPosts(server, local)
	twice := MergeMoodboardPosts(server, once)

	assert.Equal(t, once, twice)
}
