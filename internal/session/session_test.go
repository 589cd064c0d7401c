package session

import (
	"errors"
	"reflect"
	"testing"

	"github.com/palakm/gyanguru/internal/catalog"
	"github.com/palakm/gyanguru/internal/store"
)

func newTestStore(t *testing.T) (*Store, *store.Memory) {
	t.Helper()
	kv := store.NewMemory()
	return NewStore(kv, ThemeDark), kv
}

func TestToggleSavedIsItsOwnInverse(t *testing.T) {
	s, _ := newTestStore(t)

	s.ToggleSaved(3)
	before := append([]int(nil), s.SavedIDs()...)

	s.ToggleSaved(5)
	s.ToggleSaved(5)

	if !reflect.DeepEqual(s.SavedIDs(), before) {
		t.Errorf("double toggle changed the set: %v != %v", s.SavedIDs(), before)
	}
}

func TestToggleSavedEmptyRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	s.ToggleSaved(5)
	if !s.Saved(5) {
		t.Fatal("id 5 should be saved after first toggle")
	}
	s.ToggleSaved(5)
	if len(s.SavedIDs()) != 0 {
		t.Errorf("expected empty set, got %v", s.SavedIDs())
	}
}

func TestToggleSavedNoDuplicates(t *testing.T) {
	s, _ := newTestStore(t)

	s.ToggleSaved(1)
	s.ToggleSaved(2)
	s.ToggleSaved(1) // remove
	s.ToggleSaved(1) // re-add

	seen := make(map[int]bool)
	for _, id := range s.SavedIDs() {
		if seen[id] {
			t.Fatalf("duplicate id %d in saved set %v", id, s.SavedIDs())
		}
		seen[id] = true
	}
}

func TestSavedPersistsAcrossRestart(t *testing.T) {
	kv := store.NewMemory()
	s := NewStore(kv, ThemeDark)
	s.ToggleSaved(7)
	s.ToggleSaved(2)

	reloaded := NewStore(kv, ThemeDark)
	if !reflect.DeepEqual(reloaded.SavedIDs(), []int{7, 2}) {
		t.Errorf("saved set lost on restart: %v", reloaded.SavedIDs())
	}
}

func TestEnrollIsIdempotentByID(t *testing.T) {
	s, _ := newTestStore(t)
	courses := catalog.Generate()

	s.Enroll(courses[0])
	s.Enroll(courses[1])
	n := len(s.Enrolled())

	s.Enroll(courses[0])
	if len(s.Enrolled()) != n {
		t.Errorf("re-enroll changed length: %d != %d", len(s.Enrolled()), n)
	}
	if s.Enrolled()[0].ID != courses[0].ID || s.Enrolled()[1].ID != courses[1].ID {
		t.Error("re-enroll reordered the list")
	}
}

func TestEnrollSnapshotSurvivesRestart(t *testing.T) {
	kv := store.NewMemory()
	s := NewStore(kv, ThemeDark)
	course := catalog.Generate()[4]
	s.Enroll(course)

	reloaded := NewStore(kv, ThemeDark)
	got := reloaded.Enrolled()
	if len(got) != 1 {
		t.Fatalf("expected 1 enrolled course, got %d", len(got))
	}
	if got[0].ID != course.ID || got[0].Title != course.Title {
		t.Errorf("enrolled snapshot mangled: %+v", got[0])
	}
}

func TestAppendMessageRejectsBlankText(t *testing.T) {
	s, _ := newTestStore(t)
	before := len(s.Transcript())

	for _, text := range []string{"", "   ", "\t\n "} {
		if _, ok := s.AppendMessage(SenderMe, text); ok {
			t.Errorf("append accepted blank text %q", text)
		}
	}
	if len(s.Transcript()) != before {
		t.Errorf("transcript length changed: %d != %d", len(s.Transcript()), before)
	}
}

func TestAppendMessagePreservesOrder(t *testing.T) {
	s, _ := newTestStore(t)
	base := len(s.Transcript())

	first, ok := s.AppendMessage(SenderMe, "hello")
	if !ok {
		t.Fatal("append rejected valid text")
	}
	second, _ := s.AppendMessage(SenderMentor, MentorReply)

	transcript := s.Transcript()
	if len(transcript) != base+2 {
		t.Fatalf("expected %d messages, got %d", base+2, len(transcript))
	}
	if transcript[base].ID != first.ID || transcript[base+1].ID != second.ID {
		t.Error("messages not in arrival order")
	}
	if first.ID == second.ID {
		t.Error("message ids must be unique")
	}
}

func TestSeedTranscriptWhenEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	transcript := s.Transcript()
	if len(transcript) != 2 {
		t.Fatalf("expected 2 seed messages, got %d", len(transcript))
	}
	if transcript[0].Sender != SenderMentor || transcript[1].Sender != SenderMe {
		t.Error("seed senders wrong")
	}
}

func TestCorruptThemeFallsBackToDefault(t *testing.T) {
	kv := store.NewMemory()
	if err := kv.Set("theme", "{not json"); err != nil {
		t.Fatal(err)
	}

	s := NewStore(kv, ThemeLight)
	if s.Theme() != ThemeLight {
		t.Errorf("corrupt theme should fall back to default, got %q", s.Theme())
	}
}

func TestCorruptSlicesFallBackToDefaults(t *testing.T) {
	kv := store.NewMemory()
	kv.Set("saved", `["not","integers"]`)
	kv.Set("enrolled", `[{"title":"missing id"}]`)
	kv.Set("chat", `42`)

	s := NewStore(kv, ThemeDark)
	if len(s.SavedIDs()) != 0 {
		t.Errorf("corrupt saved should default empty, got %v", s.SavedIDs())
	}
	if len(s.Enrolled()) != 0 {
		t.Errorf("corrupt enrolled should default empty, got %d", len(s.Enrolled()))
	}
	if len(s.Transcript()) != 2 {
		t.Errorf("corrupt chat should reseed, got %d messages", len(s.Transcript()))
	}
}

func TestStorageReadFailureFallsBackToDefaults(t *testing.T) {
	kv := store.NewMemory()
	kv.Set("theme", `"light"`)
	kv.FailReads = true
	kv.FailErr = errors.New("disk gone")

	s := NewStore(kv, ThemeDark)
	if s.Theme() != ThemeDark {
		t.Errorf("read failure should yield default theme, got %q", s.Theme())
	}
}

func TestStorageWriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	kv := store.NewMemory()
	s := NewStore(kv, ThemeDark)

	kv.FailWrites = true
	kv.FailErr = errors.New("quota exceeded")

	s.ToggleSaved(9)
	if !s.Saved(9) {
		t.Error("in-memory state must survive a failed write")
	}
	s.SetTheme(ThemeLight)
	if s.Theme() != ThemeLight {
		t.Error("in-memory theme must survive a failed write")
	}
}

func TestThemePersistsAcrossRestart(t *testing.T) {
	kv := store.NewMemory()
	s := NewStore(kv, ThemeDark)
	s.SetTheme(ThemeLight)

	reloaded := NewStore(kv, ThemeDark)
	if reloaded.Theme() != ThemeLight {
		t.Errorf("theme lost on restart: %q", reloaded.Theme())
	}
}

func TestDetectHostTheme(t *testing.T) {
	tests := []struct {
		value string
		want  Theme
	}{
		{"", ThemeDark},
		{"garbage", ThemeDark},
		{"15;0", ThemeDark},
		{"0;15", ThemeLight},
		{"12;default;7", ThemeLight},
		{"15;8", ThemeDark},
	}
	for _, tt := range tests {
		if got := themeFromColorFGBG(tt.value); got != tt.want {
			t.Errorf("themeFromColorFGBG(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
