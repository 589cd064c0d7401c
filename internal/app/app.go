package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/palakm/gyanguru/internal/catalog"
	"github.com/palakm/gyanguru/internal/router"
	"github.com/palakm/gyanguru/internal/screen"
	"github.com/palakm/gyanguru/internal/screens/home"
	"github.com/palakm/gyanguru/internal/session"
	"github.com/palakm/gyanguru/internal/ui/layout"
	"github.com/palakm/gyanguru/internal/ui/theme"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Catalog *catalog.Catalog
	Session *session.Store
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *session.Store
	width  int
	height int
}

// newAppModel creates a new AppModel with the catalog browser as the root screen.
func newAppModel(opts Options) AppModel {
	if opts.Session.Theme() == session.ThemeLight {
		theme.Apply(theme.Light)
	} else {
		theme.Apply(theme.Dark)
	}
	return AppModel{
		router: router.New(home.New(opts.Catalog, opts.Session)),
		sess:   opts.Session,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, len(m.sess.SavedIDs()), len(m.sess.Enrolled()), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(m.height))
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
