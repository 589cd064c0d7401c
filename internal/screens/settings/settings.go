// Package settings exposes user preferences and account shortcuts. The theme
// preference persists via the session store and takes effect immediately.
package settings

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/palakm/gyanguru/internal/router"
	"github.com/palakm/gyanguru/internal/screen"
	"github.com/palakm/gyanguru/internal/session"
	"github.com/palakm/gyanguru/internal/ui/components"
	"github.com/palakm/gyanguru/internal/ui/layout"
	"github.com/palakm/gyanguru/internal/ui/theme"
)

// AccountFactory builds the auth screen on demand, breaking the import cycle
// with the screens that link here.
type AccountFactory func() screen.Screen

// SettingsScreen holds the user-facing preferences.
type SettingsScreen struct {
	sess    *session.Store
	menu    components.Menu
	account AccountFactory
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen. account may be nil when no auth entry
// point should be offered.
func New(sess *session.Store, account AccountFactory) *SettingsScreen {
	s := &SettingsScreen{sess: sess, account: account}

	items := []components.MenuItem{
		{Label: "Toggle theme", Action: func() tea.Cmd {
			s.toggleTheme()
			return nil
		}},
		{Label: "Login / Create account", Disabled: account == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: s.account()}
			}
		}},
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SettingsScreen) toggleTheme() {
	next := session.ThemeDark
	if s.sess.Theme() == session.ThemeDark {
		next = session.ThemeLight
	}
	s.sess.SetTheme(next)
	applyTheme(next)
}

// applyTheme switches the active palette to match the preference.
func applyTheme(t session.Theme) {
	if t == session.ThemeLight {
		theme.Apply(theme.Light)
	} else {
		theme.Apply(theme.Dark)
	}
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(" " + theme.Title.Render("Settings") + "\n\n")

	mode := "Dark"
	if s.sess.Theme() == session.ThemeLight {
		mode = "Light"
	}
	b.WriteString("   " + theme.Body.Render("Theme: "+mode) + "\n\n")
	b.WriteString(s.menu.View())
	return b.String()
}
