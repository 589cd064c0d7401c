// Package chat implements the mock mentor-chat panel. Sending a message
// schedules the canned mentor reply after a fixed delay; the pending reply
// carries a generation token so teardown (or any cancellation) makes it a
// stale no-op instead of a state mutation after the screen is gone.
package chat

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/palakm/gyanguru/internal/screen"
	"github.com/palakm/gyanguru/internal/session"
	"github.com/palakm/gyanguru/internal/ui/components"
	"github.com/palakm/gyanguru/internal/ui/layout"
	"github.com/palakm/gyanguru/internal/ui/theme"
)

// mentorReplyMsg fires when the mocked mentor reply delay elapses.
type mentorReplyMsg struct {
	gen int
}

// ChatScreen is the mentor-chat panel.
type ChatScreen struct {
	sess  *session.Store
	input components.TextInput

	// gen is bumped on every schedule and on teardown; a reply message
	// whose gen doesn't match is stale and ignored.
	gen     int
	pending bool
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.Teardowner = (*ChatScreen)(nil)

// New creates the chat screen over the session transcript.
func New(sess *session.Store) *ChatScreen {
	return &ChatScreen{
		sess:  sess,
		input: components.NewTextInput("Type a message", false, 256),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return "Mentor Support"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

// Teardown cancels the pending mentor reply, if any.
func (c *ChatScreen) Teardown() {
	c.gen++
	c.pending = false
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case mentorReplyMsg:
		if msg.gen != c.gen {
			return c, nil // cancelled or superseded
		}
		c.pending = false
		c.sess.AppendMessage(session.SenderMentor, session.MentorReply)
		return c, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return c, c.send()
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// send appends the composed message and schedules the mentor reply. Blank
// input sends nothing.
func (c *ChatScreen) send() tea.Cmd {
	text := c.input.Value()
	if _, ok := c.sess.AppendMessage(session.SenderMe, text); !ok {
		return nil
	}
	c.input.SetValue("")

	c.gen++
	c.pending = true
	gen := c.gen
	return tea.Tick(session.ReplyDelay, func(time.Time) tea.Msg {
		return mentorReplyMsg{gen: gen}
	})
}

func (c *ChatScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(" " + theme.Body.Render("Mentor Support") + "  " + theme.Good.Render("Connected") + "\n\n")

	transcriptHeight := height - 5
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	bubbleWidth := width * 8 / 10
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	// Render newest-last and keep the tail visible, the terminal version of
	// scroll-to-end on append.
	var lines []string
	for _, m := range c.sess.Transcript() {
		lines = append(lines, renderBubble(m, bubbleWidth, width))
	}
	if c.pending {
		lines = append(lines, theme.Hint.Render("  mentor is typing…"))
	}

	all := strings.Split(strings.Join(lines, "\n"), "\n")
	if len(all) > transcriptHeight {
		all = all[len(all)-transcriptHeight:]
	}
	b.WriteString(strings.Join(all, "\n"))
	b.WriteString("\n\n " + c.input.View())

	return b.String()
}

func renderBubble(m session.ChatMessage, bubbleWidth, width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.BgCard).
		Padding(0, 1).
		MaxWidth(bubbleWidth)

	prefix := "  "
	if m.Sender == session.SenderMe {
		style = style.Background(theme.Primary)
		pad := width - bubbleWidth - 2
		if pad > 0 {
			prefix = strings.Repeat(" ", pad)
		}
	}
	return prefix + style.Render(m.Text)
}
