// Package downloads shows the fixed offline-materials list. There is no
// real download pipeline behind it.
package downloads

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/palakm/gyanguru/internal/screen"
	"github.com/palakm/gyanguru/internal/ui/layout"
	"github.com/palakm/gyanguru/internal/ui/theme"
)

type entry struct {
	Name string
	Size string
}

var entries = []entry{
	{Name: "Lesson 1 - Slides.pdf", Size: "2.3MB"},
	{Name: "Project Starter.zip", Size: "12.5MB"},
}

// DownloadsScreen lists downloadable materials.
type DownloadsScreen struct{}

var _ screen.Screen = (*DownloadsScreen)(nil)
var _ screen.KeyHintProvider = (*DownloadsScreen)(nil)

// New creates the downloads screen.
func New() *DownloadsScreen {
	return &DownloadsScreen{}
}

func (d *DownloadsScreen) Init() tea.Cmd {
	return nil
}

func (d *DownloadsScreen) Title() string {
	return "Downloads"
}

func (d *DownloadsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (d *DownloadsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *DownloadsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(" " + theme.Title.Render("Downloads") + "\n\n")
	for _, e := range entries {
		b.WriteString("   " + theme.Body.Render(e.Name) + "\n")
		b.WriteString("   " + theme.Hint.Render(e.Size) + "\n\n")
	}
	return b.String()
}
