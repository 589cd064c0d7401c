package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/palakm/gyanguru/internal/screen"
)

type stubScreen struct {
	name       string
	initCalled bool
	tornDown   bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initCalled = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.name }
func (s *stubScreen) Title() string                           { return s.name }
func (s *stubScreen) Teardown()                               { s.tornDown = true }

func TestPushAndPop(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	if r.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", r.Depth())
	}

	detail := &stubScreen{name: "detail"}
	r.Update(PushScreenMsg{Screen: detail})
	if r.Depth() != 2 || r.Active() != detail {
		t.Error("push did not make detail active")
	}
	if !detail.initCalled {
		t.Error("push should call Init on the new screen")
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active() != home {
		t.Error("pop did not restore home")
	}
}

func TestPopNeverEmptiesStack(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active() != home {
		t.Error("popping the last screen must be a no-op")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	first := &stubScreen{name: "first"}
	second := &stubScreen{name: "second"}
	r := New(first)

	r.Update(ReplaceScreenMsg{Screen: second})
	if r.Depth() != 1 || r.Active() != second {
		t.Error("replace should swap the top screen in place")
	}
	if !second.initCalled {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestPopTearsDownScreen(t *testing.T) {
	home := &stubScreen{name: "home"}
	chat := &stubScreen{name: "chat"}
	r := New(home)
	r.Push(chat)

	r.Pop()
	if !chat.tornDown {
		t.Error("pop must tear down the leaving screen")
	}
	if home.tornDown {
		t.Error("surviving screens must not be torn down")
	}
}

func TestReplaceTearsDownOldScreen(t *testing.T) {
	old := &stubScreen{name: "old"}
	r := New(old)
	r.Replace(&stubScreen{name: "new"})

	if !old.tornDown {
		t.Error("replace must tear down the replaced screen")
	}
}
