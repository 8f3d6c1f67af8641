// Package progress persists the two user-owned id sets: favorited
// word ids and completed sentence ids. Each set is stored under its
// own key as a sorted JSON integer array and rewritten synchronously
// after every mutation.
package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

const (
	favoritesKey = "slang.favorites"
	completedKey = "slang.completed"
)

// Tracker holds both progress sets and mirrors every mutation to the
// backing KV.
type Tracker struct {
	kv        KV
	favorites map[int]struct{}
	completed map[int]struct{}
}

// Load hydrates a tracker from kv. A missing or malformed value for
// either key degrades to an empty set with a warning; it is never
// fatal.
func Load(kv KV) *Tracker {
	return &Tracker{
		kv:        kv,
		favorites: loadSet(kv, favoritesKey),
		completed: loadSet(kv, completedKey),
	}
}

func loadSet(kv KV, key string) map[int]struct{} {
	set := make(map[int]struct{})
	raw, ok, err := kv.Get(key)
	if err != nil || !ok {
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: read %s: %v\n", key, err)
		}
		return set
	}
	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s holds malformed data, treating as empty: %v\n", key, err)
		return set
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// ToggleFavorite adds the word id if absent, removes it if present,
// and persists the resulting set.
func (t *Tracker) ToggleFavorite(wordID int) error {
	if _, ok := t.favorites[wordID]; ok {
		delete(t.favorites, wordID)
	} else {
		t.favorites[wordID] = struct{}{}
	}
	return saveSet(t.kv, favoritesKey, t.favorites)
}

// MarkDone records a completed sentence id. Marking is monotonic:
// there is no un-mark, and re-marking is a no-op apart from the write.
func (t *Tracker) MarkDone(sentenceID int) error {
	t.completed[sentenceID] = struct{}{}
	return saveSet(t.kv, completedKey, t.completed)
}

// IsFavorite reports whether the word id is in the favorites set.
func (t *Tracker) IsFavorite(wordID int) bool {
	_, ok := t.favorites[wordID]
	return ok
}

// IsDone reports whether the sentence id is in the completed set.
func (t *Tracker) IsDone(sentenceID int) bool {
	_, ok := t.completed[sentenceID]
	return ok
}

// FavoriteCount returns the size of the favorites set.
func (t *Tracker) FavoriteCount() int { return len(t.favorites) }

// DoneCount returns the size of the completed set.
func (t *Tracker) DoneCount() int { return len(t.completed) }

// Reset clears both persisted sets. Used by the reset command; any
// live tracker must be re-loaded afterwards.
func Reset(kv KV) error {
	for _, key := range []string{favoritesKey, completedKey} {
		if err := kv.Set(key, []byte("[]")); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	return nil
}

func saveSet(kv KV, key string, set map[int]struct{}) error {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(key, raw); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
