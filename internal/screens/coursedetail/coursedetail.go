// Package coursedetail renders one course: summary, price box, and the
// curriculum accordion. An id that resolves to nothing shows a not-found
// state instead of failing.
package coursedetail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/palakm/gyanguru/internal/catalog"
	"github.com/palakm/gyanguru/internal/router"
	"github.com/palakm/gyanguru/internal/screen"
	"github.com/palakm/gyanguru/internal/screens/mycourses"
	"github.com/palakm/gyanguru/internal/session"
	"github.com/palakm/gyanguru/internal/ui/components"
	"github.com/palakm/gyanguru/internal/ui/layout"
	"github.com/palakm/gyanguru/internal/ui/theme"
)

// DetailScreen shows a single course resolved by id.
type DetailScreen struct {
	sess     *session.Store
	course   catalog.Course
	found    bool
	cursor   int
	expanded map[int]bool
	enroll   components.Button
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New resolves id against the catalog and creates the detail screen.
func New(cat *catalog.Catalog, sess *session.Store, id int) *DetailScreen {
	course, found := cat.ByID(id)
	d := &DetailScreen{
		sess:     sess,
		course:   course,
		found:    found,
		expanded: map[int]bool{0: true},
	}
	label := "Buy Now"
	if course.Free() {
		label = "Enroll for Free"
	}
	d.enroll = components.NewButton(label, true, func() tea.Cmd {
		d.sess.Enroll(d.course)
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: mycourses.New(d.sess)}
		}
	})
	return d
}

func (d *DetailScreen) Init() tea.Cmd {
	return nil
}

func (d *DetailScreen) Title() string {
	if !d.found {
		return "Not Found"
	}
	return "Course"
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	if !d.found {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Sections"},
		{Key: "Enter", Description: "Expand"},
		{Key: "e", Description: "Buy"},
		{Key: "s", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !d.found {
		return d, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.course.Curriculum)-1 {
			d.cursor++
		}
	case "enter", " ":
		d.expanded[d.cursor] = !d.expanded[d.cursor]
	case "s":
		d.sess.ToggleSaved(d.course.ID)
	case "e":
		return d, d.enroll.OnPress()
	}
	return d, nil
}

func (d *DetailScreen) View(width, height int) string {
	if !d.found {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Title.Render("Course not found")+"\n\n"+
				theme.Hint.Render("The course you're looking for doesn't exist."))
	}

	c := d.course
	var b strings.Builder

	b.WriteString(" " + theme.Title.Render(c.Title) + "\n")
	b.WriteString(" " + theme.Hint.Render(fmt.Sprintf("by %s · %s · %s · %s",
		c.Instructor, c.Category, c.Level, c.Language)) + "\n")
	b.WriteString(" " + theme.Body.Render(c.Description) + "\n\n")

	// Price box
	price := theme.Good.Render("Free")
	if c.Price != 0 {
		price = theme.Body.Render(fmt.Sprintf("%s%d one-time", c.Currency, c.Price))
	}
	status := ""
	if d.sess.IsEnrolled(c.ID) {
		status += "  " + theme.Good.Render("Enrolled")
	}
	if d.sess.Saved(c.ID) {
		status += "  " + theme.BadgeAccent.Render("▣ Saved")
	}
	b.WriteString(" " + theme.Body.Render(fmt.Sprintf("This course includes: %s · ★ %.1f (%d reviews) · %d students",
		c.Duration, c.Rating, c.ReviewCount, c.StudentCount)) + "\n")
	b.WriteString(" " + price + status + "\n")
	b.WriteString(" " + d.enroll.View() + "\n\n")

	// Video slot. There is no terminal video playback; show the source.
	b.WriteString(" " + theme.Hint.Render("▶ Preview: "+c.Curriculum[0].Lessons[0].VideoURL) + "\n\n")

	// Curriculum accordion
	b.WriteString(" " + theme.Body.Render("Curriculum") + "\n")
	for i, sec := range c.Curriculum {
		chevron := "▸"
		if d.expanded[i] {
			chevron = "▾"
		}
		style := theme.Unselected
		if i == d.cursor {
			style = theme.Selected
		}
		b.WriteString(" " + style.Render(chevron+" "+sec.Title) + "\n")
		if d.expanded[i] {
			for _, l := range sec.Lessons {
				b.WriteString("     " + theme.Body.Render("▹ "+l.Title) +
					"  " + theme.Hint.Render(l.Duration) + "\n")
			}
		}
	}

	return b.String()
}
