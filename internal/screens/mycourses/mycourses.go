// Package mycourses lists the enrolled courses, or an empty-state card when
// nothing has been enrolled yet.
package mycourses

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/palakm/gyanguru/internal/screen"
	"github.com/palakm/gyanguru/internal/session"
	"github.com/palakm/gyanguru/internal/ui/layout"
	"github.com/palakm/gyanguru/internal/ui/theme"
)

// MyCoursesScreen shows the enrolled-course list.
type MyCoursesScreen struct {
	sess   *session.Store
	cursor int
}

var _ screen.Screen = (*MyCoursesScreen)(nil)
var _ screen.KeyHintProvider = (*MyCoursesScreen)(nil)

// New creates the my-courses screen.
func New(sess *session.Store) *MyCoursesScreen {
	return &MyCoursesScreen{sess: sess}
}

func (m *MyCoursesScreen) Init() tea.Cmd {
	return nil
}

func (m *MyCoursesScreen) Title() string {
	return "My Courses"
}

func (m *MyCoursesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (m *MyCoursesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sess.Enrolled())-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m *MyCoursesScreen) View(width, height int) string {
	enrolled := m.sess.Enrolled()
	if len(enrolled) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Card.Render(
				theme.Body.Render("No courses yet")+"\n"+
					theme.Hint.Render("Enroll in a course to get started.")))
	}

	var b strings.Builder
	b.WriteString(" " + theme.Title.Render("My Courses") + "\n\n")
	for i, c := range enrolled {
		marker := "   "
		style := theme.Unselected
		if i == m.cursor {
			marker = " ▸ "
			style = theme.Selected
		}
		b.WriteString(marker + style.Render(c.Title) + "\n")
		b.WriteString("     " + theme.Hint.Render(fmt.Sprintf("by %s · %s · %s",
			c.Instructor, c.Duration, c.Level)) + "\n")
	}
	return b.String()
}
