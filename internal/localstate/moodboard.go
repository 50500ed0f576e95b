package localstate

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/0xGitteth/Exhibit-sub000/internal/models"
)

const moodboardKey = "exhibit_moodboard"

// MoodboardStore persists the locally cached list of saved posts,
// independent of server connectivity. Every successful mutation persists
// synchronously, then notifies subscribers with the new list so observers
// (e.g. a profile view) stay current without a reload.
type MoodboardStore struct {
	mu     sync.Mutex
	kv     KV
	logger *slog.Logger
	subs   []func([]models.MoodboardEntry)
}

func NewMoodboardStore(kv KV, logger *slog.Logger) *MoodboardStore {
	return &MoodboardStore{kv: kv, logger: logger}
}

func (s *MoodboardStore) List() []models.MoodboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *MoodboardStore) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.load() {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Add projects the post to the cache-entry shape and prepends it. Adding a
// post whose id is already present is a no-op. The returned slice is the
// post-mutation snapshot.
func (s *MoodboardStore) Add(post models.Post) ([]models.MoodboardEntry, error) {
	s.mu.Lock()
	entries := s.load()
	for _, e := range entries {
		if e.ID == post.ID {
			s.mu.Unlock()
			return entries, nil
		}
	}
	entries = append([]models.MoodboardEntry{models.NewMoodboardEntry(post)}, entries...)
	if err := s.persist(entries); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	s.notify(entries)
	return entries, nil
}

// Remove filters out the matching id; removing an absent id is a no-op and
// does not notify.
func (s *MoodboardStore) Remove(id string) ([]models.MoodboardEntry, error) {
	s.mu.Lock()
	entries := s.load()
	kept := make([]models.MoodboardEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		s.mu.Unlock()
		return entries, nil
	}
	if err := s.persist(kept); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	s.notify(kept)
	return kept, nil
}

// Subscribe registers an observer for moodboard updates. Observers run
// synchronously in subscription order.
func (s *MoodboardStore) Subscribe(fn func([]models.MoodboardEntry)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *MoodboardStore) notify(entries []models.MoodboardEntry) {
	s.mu.Lock()
	subs := append([]func([]models.MoodboardEntry){}, s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(entries)
	}
}

func (s *MoodboardStore) load() []models.MoodboardEntry {
	data, ok := s.kv.Get(moodboardKey)
	if !ok {
		return []models.MoodboardEntry{}
	}
	var entries []models.MoodboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("discarding corrupted moodboard cache", "error", err)
		return []models.MoodboardEntry{}
	}
	return entries
}

func (s *MoodboardStore) persist(entries []models.MoodboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize moodboard: %v", err)
	}
	return s.kv.Set(moodboardKey, data)
}

// MergeMoodboardPosts folds server-side saved posts into the locally cached
// moodboard. Entries are deduplicated by id with the local representation
// winning a collision; the result keeps the first-seen order of the combined
// input: local entries first, then remaining server-only entries.
func MergeMoodboardPosts(serverPosts, localPosts []models.MoodboardEntry) []models.MoodboardEntry {
	combined := make([]models.MoodboardEntry, 0, len(serverPosts)+len(localPosts))
	combined = append(combined, localPosts...)
	combined = append(combined, serverPosts...)

	seen := make(map[string]bool, len(combined))
	merged := make([]models.MoodboardEntry, 0, len(combined))
	for _, e := range combined {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		merged = append(merged, e)
	}
	return merged
}
