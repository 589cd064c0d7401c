// Package session holds the device-local mutable state of the app: theme
// preference, saved-course ids, enrolled courses, and the mentor-chat
// transcript. Each concern is persisted under its own key in a durable
// key/value store and loaded once at startup; every mutation writes back
// synchronously on a best-effort basis.
package session

import (
	"encoding/json"

	"github.com/palakm/gyanguru/internal/catalog"
	"github.com/palakm/gyanguru/internal/store"
)

// Storage keys, one per concern. No cross-key transactionality exists or is
// needed; each key is independently last-writer-wins.
const (
	keyTheme    = "theme"
	keySaved    = "saved"
	keyEnrolled = "enrolled"
	keyChat     = "chat"
)

// Theme is the user's colour scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Store owns the in-memory session state and its write-through persistence.
// Construct exactly one per process and inject it into the view layer.
type Store struct {
	kv store.KV

	theme      Theme
	saved      []int
	enrolled   []catalog.Course
	transcript []ChatMessage
}

// NewStore loads all session slices from kv. Absent, corrupt, or unreadable
// values fall back to their defaults; defaultTheme is used when no valid
// theme preference is stored.
func NewStore(kv store.KV, defaultTheme Theme) *Store {
	s := &Store{kv: kv}

	s.theme = defaultTheme
	var t Theme
	if s.load(keyTheme, themeSchema, &t) && (t == ThemeLight || t == ThemeDark) {
		s.theme = t
	}

	s.load(keySaved, savedSchema, &s.saved)
	s.load(keyEnrolled, enrolledSchema, &s.enrolled)

	if !s.load(keyChat, chatSchema, &s.transcript) || len(s.transcript) == 0 {
		s.transcript = seedTranscript()
	}

	return s
}

// Theme returns the current theme preference.
func (s *Store) Theme() Theme {
	return s.theme
}

// SetTheme updates and persists the theme preference.
func (s *Store) SetTheme(t Theme) {
	s.theme = t
	s.save(keyTheme, t)
}

// SavedIDs returns the saved-course id set in insertion order. Callers must
// not modify the returned slice.
func (s *Store) SavedIDs() []int {
	return s.saved
}

// Saved reports whether the course id is in the saved set.
func (s *Store) Saved(id int) bool {
	for _, v := range s.saved {
		if v == id {
			return true
		}
	}
	return false
}

// ToggleSaved flips membership of id in the saved set and returns the new
// set. Toggling twice with the same id restores the original set.
func (s *Store) ToggleSaved(id int) []int {
	if s.Saved(id) {
		next := make([]int, 0, len(s.saved)-1)
		for _, v := range s.saved {
			if v != id {
				next = append(next, v)
			}
		}
		s.saved = next
	} else {
		s.saved = append(s.saved, id)
	}
	s.save(keySaved, s.saved)
	return s.saved
}

// Enrolled returns the enrolled courses in enrollment order. Callers must
// not modify the returned slice.
func (s *Store) Enrolled() []catalog.Course {
	return s.enrolled
}

// IsEnrolled reports whether a course with the given id is enrolled.
func (s *Store) IsEnrolled(id int) bool {
	for _, c := range s.enrolled {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Enroll appends the course unless a course with the same id is already
// present. Re-enrolling is a no-op that neither reorders nor duplicates.
func (s *Store) Enroll(c catalog.Course) []catalog.Course {
	if s.IsEnrolled(c.ID) {
		return s.enrolled
	}
	s.enrolled = append(s.enrolled, c)
	s.save(keyEnrolled, s.enrolled)
	return s.enrolled
}

// load reads and validates one slice. It returns false when the key is
// absent, the stored value fails validation, or storage itself errors; the
// caller's default then stands.
func (s *Store) load(key string, schema *kvSchema, out any) bool {
	raw, ok, err := s.kv.Get(key)
	if err != nil || !ok {
		return false
	}
	if err := schema.validate([]byte(raw)); err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}

// save serializes and writes one slice. Write failures are swallowed: the
// in-memory value stays authoritative for the rest of the session and only
// durability is lost.
func (s *Store) save(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = s.kv.Set(key, string(raw))
}
