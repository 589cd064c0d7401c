package coursedetail

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/palakm/gyanguru/internal/catalog"
	"github.com/palakm/gyanguru/internal/router"
	"github.com/palakm/gyanguru/internal/session"
	"github.com/palakm/gyanguru/internal/store"
)

func newTestDetail(t *testing.T, id int) (*DetailScreen, *session.Store) {
	t.Helper()
	sess := session.NewStore(store.NewMemory(), session.ThemeDark)
	return New(catalog.New(catalog.Generate()), sess, id), sess
}

func TestUnknownIDShowsNotFound(t *testing.T) {
	d, _ := newTestDetail(t, 999)
	if d.found {
		t.Fatal("id 999 should not resolve")
	}
	if d.Title() != "Not Found" {
		t.Errorf("Title() = %q, want Not Found", d.Title())
	}

	// Keys are inert on the not-found state.
	_, cmd := d.Update(tea.KeyPressMsg{Code: 'e'})
	if cmd != nil {
		t.Error("enroll on a missing course should do nothing")
	}
}

func TestEnrollReplacesWithMyCourses(t *testing.T) {
	d, sess := newTestDetail(t, 3)

	_, cmd := d.Update(tea.KeyPressMsg{Code: 'e'})
	if !sess.IsEnrolled(3) {
		t.Error("e should enroll the course")
	}
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
}

func TestSaveToggleFromDetail(t *testing.T) {
	d, sess := newTestDetail(t, 5)

	d.Update(tea.KeyPressMsg{Code: 's'})
	if !sess.Saved(5) {
		t.Error("s should save the course")
	}
	d.Update(tea.KeyPressMsg{Code: 's'})
	if sess.Saved(5) {
		t.Error("s again should unsave it")
	}
}

func TestAccordionTogglesSections(t *testing.T) {
	d, _ := newTestDetail(t, 1)

	if !d.expanded[0] {
		t.Fatal("first section starts expanded")
	}
	d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if d.expanded[0] {
		t.Error("enter should collapse the focused section")
	}

	d.Update(tea.KeyPressMsg{Code: 'j'})
	d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !d.expanded[1] {
		t.Error("enter should expand the second section")
	}
}

func TestEnrollButtonLabelTracksPrice(t *testing.T) {
	// Course 1 is free, course 2 is paid.
	free, _ := newTestDetail(t, 1)
	paid, _ := newTestDetail(t, 2)

	if free.enroll.Label != "Enroll for Free" {
		t.Errorf("free label = %q", free.enroll.Label)
	}
	if paid.enroll.Label != "Buy Now" {
		t.Errorf("paid label = %q", paid.enroll.Label)
	}
}
