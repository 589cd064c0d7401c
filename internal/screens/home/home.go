// Package home implements the catalog browser: filter pills, search, sort
// selection, and the course list. The display list is recomputed through
// catalog.Query on every criteria change.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/palakm/gyanguru/internal/catalog"
	"github.com/palakm/gyanguru/internal/router"
	"github.com/palakm/gyanguru/internal/screen"
	authscreen "github.com/palakm/gyanguru/internal/screens/auth"
	chatscreen "github.com/palakm/gyanguru/internal/screens/chat"
	"github.com/palakm/gyanguru/internal/screens/coursedetail"
	"github.com/palakm/gyanguru/internal/screens/downloads"
	"github.com/palakm/gyanguru/internal/screens/mycourses"
	"github.com/palakm/gyanguru/internal/screens/settings"
	"github.com/palakm/gyanguru/internal/session"
	"github.com/palakm/gyanguru/internal/ui/components"
	"github.com/palakm/gyanguru/internal/ui/layout"
	"github.com/palakm/gyanguru/internal/ui/theme"
)

// focus zones cycled with tab.
const (
	focusList = iota
	focusSearch
	focusCategory
	focusLevel
	focusPrice
	focusSort
	focusZones
)

// HomeScreen is the catalog browser, the root screen of the application.
type HomeScreen struct {
	cat  *catalog.Catalog
	sess *session.Store

	search     components.TextInput
	category   components.Selector
	level      components.Selector
	price      components.Selector
	sortBy     components.Selector
	popular    bool
	focus      int
	cursor     int
	results    []catalog.Course
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the catalog browser over cat with session state sess.
func New(cat *catalog.Catalog, sess *session.Store) *HomeScreen {
	categories := make([]string, len(catalog.Categories))
	for i, c := range catalog.Categories {
		categories[i] = string(c)
	}
	levels := []string{string(catalog.LevelAll), string(catalog.LevelBeginner),
		string(catalog.LevelIntermediate), string(catalog.LevelAdvanced)}
	prices := []string{"all", "free", "paid"}
	sorts := make([]string, len(catalog.SortKeys))
	for i, k := range catalog.SortKeys {
		sorts[i] = k.Label()
	}

	h := &HomeScreen{
		cat:      cat,
		sess:     sess,
		search:   components.NewTextInput("Search courses, topics, mentors", false, 64),
		category: components.NewSelector("Category", categories),
		level:    components.NewSelector("Level", levels),
		price:    components.NewSelector("Price", prices),
		sortBy:   components.NewSelector("Sort", sorts),
	}
	h.search.Blur()
	h.requery()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Browse"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.focus == focusSearch {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Done"},
			{Key: "Enter", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Focus"},
		{Key: "Enter", Description: "Open"},
		{Key: "s", Description: "Save"},
		{Key: "p", Description: "Popular"},
		{Key: "c/m/d/o/a", Description: "Chat/Mine/Downloads/Settings/Account"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// criteria assembles the current query criteria from the widgets.
func (h *HomeScreen) criteria() catalog.Criteria {
	return catalog.Criteria{
		Category:       catalog.Category(h.category.Value()),
		Level:          catalog.Level(h.level.Value()),
		Price:          catalog.PriceFilter(h.price.Value()),
		BestsellerOnly: h.popular,
		Search:         h.search.Value(),
		Sort:           catalog.SortKeys[h.sortBy.Selected],
	}
}

func (h *HomeScreen) requery() {
	h.results = catalog.Query(h.cat.All(), h.criteria())
	if h.cursor >= len(h.results) {
		h.cursor = len(h.results) - 1
	}
	if h.cursor < 0 {
		h.cursor = 0
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// While the search box is focused, every key except focus-leaving ones
	// belongs to the input.
	if h.focus == focusSearch {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "esc", "enter", "tab":
				if kmsg.String() == "tab" {
					h.setFocus(focusCategory)
				} else {
					h.setFocus(focusList)
				}
				return h, nil
			}
		}
		var cmd tea.Cmd
		h.search, cmd = h.search.Update(msg)
		h.requery()
		return h, cmd
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	// Selector zones take left/right.
	switch h.focus {
	case focusCategory:
		if next, handled := h.category.Update(msg); handled {
			h.category = next
			h.requery()
			return h, nil
		}
	case focusLevel:
		if next, handled := h.level.Update(msg); handled {
			h.level = next
			h.requery()
			return h, nil
		}
	case focusPrice:
		if next, handled := h.price.Update(msg); handled {
			h.price = next
			h.requery()
			return h, nil
		}
	case focusSort:
		if next, handled := h.sortBy.Update(msg); handled {
			h.sortBy = next
			h.requery()
			return h, nil
		}
	}

	switch kmsg.String() {
	case "tab":
		h.setFocus((h.focus + 1) % focusZones)
	case "shift+tab":
		h.setFocus((h.focus + focusZones - 1) % focusZones)
	case "/":
		h.setFocus(focusSearch)
		return h, h.search.Focus()
	case "p":
		h.popular = !h.popular
		h.requery()
	case "up", "k":
		if h.focus == focusList && h.cursor > 0 {
			h.cursor--
		}
	case "down", "j":
		if h.focus == focusList && h.cursor < len(h.results)-1 {
			h.cursor++
		}
	case "s":
		if h.focus == focusList && h.cursor < len(h.results) {
			h.sess.ToggleSaved(h.results[h.cursor].ID)
		}
	case "enter":
		if h.focus == focusList && h.cursor < len(h.results) {
			id := h.results[h.cursor].ID
			return h, func() tea.Msg {
				return router.PushScreenMsg{Screen: coursedetail.New(h.cat, h.sess, id)}
			}
		}
	case "c":
		return h, push(chatscreen.New(h.sess))
	case "m":
		return h, push(mycourses.New(h.sess))
	case "d":
		return h, push(downloads.New())
	case "o":
		return h, push(settings.New(h.sess, func() screen.Screen {
			return authscreen.New(authscreen.ModeLogin)
		}))
	case "a":
		return h, push(authscreen.New(authscreen.ModeLogin))
	}

	return h, nil
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) setFocus(zone int) {
	h.focus = zone
	if zone == focusSearch {
		h.search.Focus()
	} else {
		h.search.Blur()
	}
	h.category.Focused = zone == focusCategory
	h.level.Focused = zone == focusLevel
	h.price.Focused = zone == focusPrice
	h.sortBy.Focused = zone == focusSort
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	// Filter bar
	popular := theme.Pill.Render("popular only: off")
	if h.popular {
		popular = theme.PillActive.Render("popular only: on")
	}
	filters := strings.Join([]string{
		h.category.View(),
		h.level.View(),
		h.price.View(),
		h.sortBy.View(),
		popular,
	}, "   ")
	b.WriteString(" " + filters + "\n")

	// Search bar
	b.WriteString(" " + theme.Hint.Render("Search ") + h.search.View() + "\n")
	b.WriteString(" " + theme.Subtitle.Render(fmt.Sprintf("%d results", len(h.results))) + "\n\n")

	listHeight := height - lipgloss.Height(b.String()) - 1
	if listHeight < 1 {
		listHeight = 1
	}

	if len(h.results) == 0 {
		b.WriteString(theme.Hint.Render("  No courses match these filters."))
		return b.String()
	}

	// Keep the cursor visible inside the scrolling window.
	rowsPerCourse := 2
	visible := listHeight / rowsPerCourse
	if visible < 1 {
		visible = 1
	}
	start := 0
	if h.cursor >= visible {
		start = h.cursor - visible + 1
	}
	end := start + visible
	if end > len(h.results) {
		end = len(h.results)
	}

	for i := start; i < end; i++ {
		b.WriteString(h.renderRow(h.results[i], i == h.cursor && h.focus == focusList, width))
	}
	return b.String()
}

func (h *HomeScreen) renderRow(c catalog.Course, selected bool, width int) string {
	marker := "   "
	titleStyle := theme.Unselected
	if selected {
		marker = " ▸ "
		titleStyle = theme.Selected
	}

	price := theme.Good.Render("Free")
	if c.Price != 0 {
		price = theme.Body.Render(fmt.Sprintf("%s%d", c.Currency, c.Price))
	}

	badges := ""
	if c.IsBestseller {
		badges += " " + theme.BadgeAccent.Render("Popular")
	}
	if h.sess.Saved(c.ID) {
		badges += " " + theme.BadgeAccent.Render("▣ Saved")
	}
	if h.sess.IsEnrolled(c.ID) {
		badges += " " + theme.Good.Render("Enrolled")
	}

	line1 := marker + titleStyle.Render(c.Title) + badges
	line2 := "     " + theme.Hint.Render(fmt.Sprintf(
		"★ %.1f (%d) · %s · %s · by %s · ", c.Rating, c.ReviewCount, c.Category, c.Level, c.Instructor,
	)) + price

	return line1 + "\n" + line2 + "\n"
}
