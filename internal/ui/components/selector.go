package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/palakm/gyanguru/internal/ui/theme"
)

// Selector cycles through a fixed list of options with the left/right keys.
// The filter bars use one per criterion (category, level, price, sort).
type Selector struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewSelector creates a selector over options, starting at the first.
func NewSelector(label string, options []string) Selector {
	return Selector{Label: label, Options: options}
}

// Update handles left/right cycling while focused.
func (s Selector) Update(msg tea.Msg) (Selector, bool) {
	if !s.Focused || len(s.Options) == 0 {
		return s, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, false
	}
	switch kmsg.String() {
	case "left", "h":
		s.Selected = (s.Selected + len(s.Options) - 1) % len(s.Options)
		return s, true
	case "right", "l":
		s.Selected = (s.Selected + 1) % len(s.Options)
		return s, true
	}
	return s, false
}

// Value returns the selected option.
func (s Selector) Value() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected]
}

// View renders "Label ◂ value ▸" with the value highlighted when focused.
func (s Selector) View() string {
	value := s.Value()
	if s.Focused {
		return theme.Hint.Render(s.Label+" ") + theme.Selected.Render("◂ "+value+" ▸")
	}
	return theme.Hint.Render(s.Label+" ") + theme.Unselected.Render(value)
}
