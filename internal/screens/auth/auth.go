// Package auth renders the mocked login/signup/OTP flow on top of the
// internal/auth state machine. Nothing is validated for real; the OTP
// "verification" is a fixed short delay carrying a generation token so a
// torn-down screen can never complete the flow afterwards.
package auth

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	authflow "github.com/palakm/gyanguru/internal/auth"
	"github.com/palakm/gyanguru/internal/router"
	"github.com/palakm/gyanguru/internal/screen"
	"github.com/palakm/gyanguru/internal/ui/components"
	"github.com/palakm/gyanguru/internal/ui/layout"
	"github.com/palakm/gyanguru/internal/ui/theme"
)

// Mode selects the starting stage of the flow.
type Mode = authflow.Stage

const (
	ModeLogin  Mode = authflow.StageLogin
	ModeSignup Mode = authflow.StageSignup
)

// verifyDelay is how long the mocked OTP verification "takes".
const verifyDelay = 800 * time.Millisecond

// verifyDoneMsg fires when the mocked verification delay elapses.
type verifyDoneMsg struct {
	gen int
}

// AuthScreen renders the auth flow.
type AuthScreen struct {
	flow *authflow.Flow

	name     components.TextInput
	contact  components.TextInput
	password components.TextInput
	otp      [authflow.OTPDigits]components.TextInput
	otpFocus int
	field    int // focused form field index
	showPass bool

	verifying bool
	gen       int
}

var _ screen.Screen = (*AuthScreen)(nil)
var _ screen.KeyHintProvider = (*AuthScreen)(nil)
var _ screen.Teardowner = (*AuthScreen)(nil)

// New creates the auth screen starting in the given mode.
func New(mode Mode) *AuthScreen {
	s := &AuthScreen{
		flow:     authflow.New(mode),
		name:     components.NewTextInput("Full name", false, 64),
		contact:  components.NewTextInput("Email or phone", false, 64),
		password: components.NewTextInput("Password", false, 64),
	}
	for i := range s.otp {
		s.otp[i] = components.NewTextInput("·", true, 1)
		s.otp[i].Blur()
	}
	s.password.Model.EchoMode = textinput.EchoPassword
	s.name.Blur()
	s.password.Blur()
	s.syncFocus()
	return s
}

func (s *AuthScreen) Init() tea.Cmd {
	return s.contact.Init()
}

func (s *AuthScreen) Title() string {
	switch {
	case s.flow.Stage() == authflow.StageOTP:
		return "Verify OTP"
	case s.flow.Stage() == authflow.StageSignup:
		return "Create Account"
	default:
		return "Login"
	}
}

func (s *AuthScreen) KeyHints() []layout.KeyHint {
	if s.flow.Stage() == authflow.StageOTP {
		return []layout.KeyHint{
			{Key: "0-9", Description: "Code"},
			{Key: "Enter", Description: "Verify"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+T", Description: "Login/Signup"},
		{Key: "Ctrl+P", Description: "Show password"},
		{Key: "Esc", Description: "Back"},
	}
}

// Teardown cancels any pending deferred verification.
func (s *AuthScreen) Teardown() {
	s.gen++
	s.verifying = false
}

func (s *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case verifyDoneMsg:
		if msg.gen != s.gen {
			return s, nil // cancelled or superseded
		}
		s.verifying = false
		s.flow.Verify()
		return s, pop()

	case tea.KeyMsg:
		if s.verifying {
			return s, nil
		}
		if s.flow.Stage() == authflow.StageOTP {
			return s.updateOTP(msg)
		}
		return s.updateForm(msg)
	}

	return s.forwardToField(msg)
}

func (s *AuthScreen) updateForm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		s.field = (s.field + 1) % s.fieldCount()
		s.syncFocus()
		return s, nil
	case "shift+tab":
		s.field = (s.field + s.fieldCount() - 1) % s.fieldCount()
		s.syncFocus()
		return s, nil
	case "ctrl+t":
		s.flow.ToggleMode()
		s.field = 0
		s.syncFocus()
		return s, nil
	case "ctrl+p":
		s.showPass = !s.showPass
		if s.showPass {
			s.password.Model.EchoMode = textinput.EchoNormal
		} else {
			s.password.Model.EchoMode = textinput.EchoPassword
		}
		return s, nil
	case "enter":
		return s.submit()
	}
	return s.forwardToField(msg)
}

// submit advances the state machine. A login completes (any non-empty
// contact); a signup "sends" the OTP and switches to digit entry.
func (s *AuthScreen) submit() (screen.Screen, tea.Cmd) {
	s.flow.SetContact(strings.TrimSpace(s.contact.Value()))
	if s.flow.Stage() == authflow.StageLogin && s.flow.Contact() == "" {
		return s, nil
	}
	s.flow.Submit()
	if s.flow.Done() {
		return s, pop()
	}
	if s.flow.Stage() == authflow.StageOTP {
		s.otpFocus = 0
		s.syncOTPFocus()
	}
	return s, nil
}

func (s *AuthScreen) updateOTP(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	switch {
	case key == "enter":
		// Mocked verification: any digits, even incomplete, succeed.
		s.verifying = true
		s.gen++
		gen := s.gen
		return s, tea.Tick(verifyDelay, func(time.Time) tea.Msg {
			return verifyDoneMsg{gen: gen}
		})
	case key == "backspace":
		s.otp[s.otpFocus].SetValue("")
		s.flow.ClearDigit(s.otpFocus)
		if s.otpFocus > 0 {
			s.otpFocus--
			s.syncOTPFocus()
		}
		return s, nil
	case key == "left":
		if s.otpFocus > 0 {
			s.otpFocus--
			s.syncOTPFocus()
		}
		return s, nil
	case key == "right", key == "tab":
		if s.otpFocus < authflow.OTPDigits-1 {
			s.otpFocus++
			s.syncOTPFocus()
		}
		return s, nil
	case len(key) == 1:
		// Single-rune input: the state machine accepts numerals only and
		// discards everything else silently.
		if s.flow.SetDigit(s.otpFocus, rune(key[0])) {
			s.otp[s.otpFocus].SetValue(key)
			if s.otpFocus < authflow.OTPDigits-1 {
				s.otpFocus++
				s.syncOTPFocus()
			}
		}
		return s, nil
	}
	return s, nil
}

func (s *AuthScreen) fieldCount() int {
	if s.flow.Stage() == authflow.StageSignup {
		return 3
	}
	return 2
}

// fieldInput maps the focused index to the input for the current stage.
func (s *AuthScreen) fieldInput() *components.TextInput {
	if s.flow.Stage() == authflow.StageSignup {
		switch s.field {
		case 0:
			return &s.name
		case 1:
			return &s.contact
		default:
			return &s.password
		}
	}
	if s.field == 0 {
		return &s.contact
	}
	return &s.password
}

func (s *AuthScreen) syncFocus() {
	s.name.Blur()
	s.contact.Blur()
	s.password.Blur()
	s.fieldInput().Focus()
}

func (s *AuthScreen) syncOTPFocus() {
	for i := range s.otp {
		s.otp[i].Blur()
	}
	s.otp[s.otpFocus].Focus()
}

func (s *AuthScreen) forwardToField(msg tea.Msg) (screen.Screen, tea.Cmd) {
	in := s.fieldInput()
	next, cmd := in.Update(msg)
	*in = next
	return s, cmd
}

func pop() tea.Cmd {
	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}

func (s *AuthScreen) View(width, height int) string {
	var b strings.Builder

	if s.flow.Stage() == authflow.StageOTP {
		b.WriteString(theme.Title.Render("Verify OTP") + "\n\n")
		contact := s.flow.Contact()
		if contact == "" {
			contact = "your phone"
		}
		b.WriteString(theme.Hint.Render("Enter the 4-digit code sent to "+contact) + "\n\n")

		var boxes []string
		for i := range s.otp {
			style := theme.ButtonInactive
			if i == s.otpFocus && !s.verifying {
				style = theme.ButtonActive
			}
			digit := " "
			if d := s.flow.Digit(i); d != 0 {
				digit = string(d)
			}
			boxes = append(boxes, style.Render(digit))
		}
		b.WriteString(strings.Join(boxes, " ") + "\n\n")

		if s.verifying {
			b.WriteString(theme.Hint.Render("Verifying…"))
		} else {
			b.WriteString(theme.Hint.Render("Enter to verify · Resend is a mock"))
		}
	} else {
		if s.flow.Stage() == authflow.StageSignup {
			b.WriteString(theme.Title.Render("Create an Account") + "\n")
			b.WriteString(theme.Subtitle.Render("Sign up to unlock personalized learning") + "\n\n")
			b.WriteString(s.name.Labelled("Full name") + "\n\n")
		} else {
			b.WriteString(theme.Title.Render("Welcome Back") + "\n")
			b.WriteString(theme.Subtitle.Render("Login to continue learning") + "\n\n")
		}
		b.WriteString(s.contact.Labelled("Email or phone") + "\n\n")
		b.WriteString(s.password.Labelled("Password") + "\n\n")

		if s.flow.Stage() == authflow.StageSignup {
			b.WriteString(theme.Hint.Render("Already have an account? Ctrl+T to login"))
		} else {
			b.WriteString(theme.Hint.Render("New here? Ctrl+T to create an account"))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
